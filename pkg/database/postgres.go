package database

import (
	"log"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Booking{}, &models.UserRole{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: one booking per client idempotency key, without
	// forcing a key on bookings submitted without one
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_idempotency
		ON bookings (idempotency_key)
		WHERE idempotency_key <> ''
	`)

	return db
}
