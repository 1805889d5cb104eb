package repository

import (
	"context"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/models"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/booking"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, b *models.Booking) error
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByIndex(ctx context.Context, tx *gorm.DB, index int) (*models.Booking, error)
	FindByReference(ctx context.Context, ref string) (*models.Booking, error)
	FindByIdempotencyKey(ctx context.Context, tx *gorm.DB, key string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status booking.Status) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	DeleteAll(ctx context.Context) error
	CountByStatus(ctx context.Context, status booking.Status) (int64, error)
	OldestByStatus(ctx context.Context, status booking.Status) (*models.Booking, error)
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, b *models.Booking) error {
	return tx.WithContext(ctx).Create(b).Error
}

// FindAll returns bookings ordered by id ASC. This ordering defines the
// positional index that confirm/reject/delete address bookings by.
func (r *bookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByIndex resolves a positional index against the same id ASC ordering
// FindAll uses. Callers that go on to mutate must do so in the same tx.
func (r *bookingRepository) FindByIndex(ctx context.Context, tx *gorm.DB, index int) (*models.Booking, error) {
	if index < 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var bookings []models.Booking
	err := tx.WithContext(ctx).
		Order("id ASC").
		Offset(index).
		Limit(1).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &bookings[0], nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, ref string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).Where("reference = ?", ref).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) FindByIdempotencyKey(ctx context.Context, tx *gorm.DB, key string) (*models.Booking, error) {
	var b models.Booking
	err := tx.WithContext(ctx).
		Where("idempotency_key = ?", key).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status booking.Status) error {
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *bookingRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

func (r *bookingRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Booking{}).Error
}

func (r *bookingRepository) CountByStatus(ctx context.Context, status booking.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) OldestByStatus(ctx context.Context, status booking.Status) (*models.Booking, error) {
	var b models.Booking
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id ASC").
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}
