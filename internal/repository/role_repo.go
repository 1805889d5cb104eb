package repository

import (
	"context"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepository interface {
	Find(ctx context.Context, principal string) (*models.UserRole, error)
	Assign(ctx context.Context, principal, role string) error
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Find(ctx context.Context, principal string) (*models.UserRole, error) {
	var role models.UserRole
	if err := r.db.WithContext(ctx).First(&role, "principal = ?", principal).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// Assign upserts the role for a principal.
func (r *roleRepository) Assign(ctx context.Context, principal, role string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "principal"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
	}).Create(&models.UserRole{Principal: principal, Role: role}).Error
}
