package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/dto"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/models"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/repository"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/booking"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrReferenceTaken  = errors.New("could not allocate a unique booking reference")
)

// Reference charset drops 0/1/I/O so staff can read codes back over the phone.
const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type BookingService interface {
	// SubmitBooking creates a pending booking, or returns the existing one
	// when the idempotency key has been seen before.
	SubmitBooking(ctx context.Context, req booking.Request, idempotencyKey string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ConfirmBooking(ctx context.Context, index int) (*models.Booking, error)
	RejectBooking(ctx context.Context, index int) (*models.Booking, error)
	DeleteBooking(ctx context.Context, index int) (*models.Booking, error)
	ClearAllBookings(ctx context.Context) error
	GetByReference(ctx context.Context, ref string) (*models.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	publisher *rabbitmq.Publisher
}

func NewBookingService(repo repository.BookingRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{repo: repo, publisher: publisher}
}

func (s *bookingService) SubmitBooking(ctx context.Context, req booking.Request, idempotencyKey string) (*models.Booking, error) {
	var result *models.Booking
	created := false

	err := s.repo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// A retried delivery of the same logical submission must not create
		// a second booking.
		if idempotencyKey != "" {
			existing, err := s.repo.FindByIdempotencyKey(ctx, tx, idempotencyKey)
			if err == nil {
				result = existing
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		ref, err := s.uniqueReference(ctx)
		if err != nil {
			return err
		}

		b := &models.Booking{
			Reference:          ref,
			IdempotencyKey:     idempotencyKey,
			Name:               req.Name,
			Phone:              req.Phone,
			Guests:             req.Guests,
			Date:               req.Date,
			Time:               req.Time,
			SpecialRequest:     req.SpecialRequest,
			ScreenshotFileName: req.ScreenshotFileName,
			Status:             booking.StatusPending,
		}
		if req.Payment != nil {
			b.AdvanceAmount = req.Payment.AdvanceAmount
			b.PaymentMethod = req.Payment.PaymentMethod
			b.UPIDetails = req.Payment.UPIDetails
			b.BankDetails = req.Payment.BankDetails
		}
		if err := s.repo.Create(ctx, tx, b); err != nil {
			return err
		}
		result = b
		created = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created && s.publisher != nil {
		_ = s.publisher.Publish("booking.submitted", dto.ToBooking(result))
	}
	return result, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.repo.FindAll(ctx)
}

// ConfirmBooking sets the booking at index to confirmed regardless of its
// current status, so re-confirming is a harmless no-op.
func (s *bookingService) ConfirmBooking(ctx context.Context, index int) (*models.Booking, error) {
	return s.setStatus(ctx, index, booking.StatusConfirmed, "booking.confirmed")
}

// RejectBooking mirrors ConfirmBooking with the rejected status.
func (s *bookingService) RejectBooking(ctx context.Context, index int) (*models.Booking, error) {
	return s.setStatus(ctx, index, booking.StatusRejected, "booking.rejected")
}

func (s *bookingService) setStatus(ctx context.Context, index int, status booking.Status, routingKey string) (*models.Booking, error) {
	var result *models.Booking

	err := s.repo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := s.repo.FindByIndex(ctx, tx, index)
		if err != nil {
			return ErrBookingNotFound
		}
		if b.Status != status {
			if err := s.repo.UpdateStatus(ctx, tx, b.ID, status); err != nil {
				return err
			}
			b.Status = status
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(routingKey, dto.ToBooking(result))
	}
	return result, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, index int) (*models.Booking, error) {
	var result *models.Booking

	err := s.repo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := s.repo.FindByIndex(ctx, tx, index)
		if err != nil {
			return ErrBookingNotFound
		}
		if err := s.repo.Delete(ctx, tx, b.ID); err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.deleted", dto.ToBooking(result))
	}
	return result, nil
}

func (s *bookingService) ClearAllBookings(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.cleared", map[string]string{"event": "cleared"})
	}
	return nil
}

func (s *bookingService) GetByReference(ctx context.Context, ref string) (*models.Booking, error) {
	b, err := s.repo.FindByReference(ctx, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// uniqueReference draws PP-XXXXXX codes until one is free. Collisions are
// rare at this scale; five draws is plenty.
func (s *bookingService) uniqueReference(ctx context.Context) (string, error) {
	for i := 0; i < 5; i++ {
		ref := newReference()
		_, err := s.repo.FindByReference(ctx, ref)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ref, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", ErrReferenceTaken
}

func newReference() string {
	var sb strings.Builder
	sb.WriteString("PP-")
	for i := 0; i < 6; i++ {
		sb.WriteByte(referenceAlphabet[rand.Intn(len(referenceAlphabet))])
	}
	return sb.String()
}
