package jobs

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/repository"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/booking"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/rabbitmq"
	"gorm.io/gorm"
)

// PendingSummary is the daily reminder of bookings still awaiting a
// confirm/reject decision. Read-only: bookings never expire on their own.
type PendingSummary struct {
	repo      repository.BookingRepository
	publisher *rabbitmq.Publisher
}

func NewPendingSummary(repo repository.BookingRepository, publisher *rabbitmq.Publisher) *PendingSummary {
	return &PendingSummary{repo: repo, publisher: publisher}
}

type summaryPayload struct {
	PendingCount    int64  `json:"pending_count"`
	OldestReference string `json:"oldest_reference,omitempty"`
	OldestDate      string `json:"oldest_date,omitempty"`
	GeneratedAt     string `json:"generated_at"`
}

func (j *PendingSummary) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := j.repo.CountByStatus(ctx, booking.StatusPending)
	if err != nil {
		log.Printf("[Jobs] pending summary failed: %v", err)
		return
	}

	payload := summaryPayload{
		PendingCount: count,
		GeneratedAt:  time.Now().Format(time.RFC3339),
	}

	oldest, err := j.repo.OldestByStatus(ctx, booking.StatusPending)
	switch {
	case err == nil:
		payload.OldestReference = oldest.Reference
		payload.OldestDate = oldest.Date
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Printf("[Jobs] oldest pending lookup failed: %v", err)
	}

	log.Printf("[Jobs] %d pending booking(s) awaiting review", count)

	if j.publisher != nil {
		_ = j.publisher.Publish("booking.summary", payload)
	}
}
