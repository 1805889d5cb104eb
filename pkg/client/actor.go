package client

import (
	"context"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/booking"
)

// Actor is the remote booking backend as seen by the website. Bookings are
// addressed by their position in the list returned by GetAllBookings; that
// ordering is defined by the backend and stable between mutations.
type Actor interface {
	// SubmitBooking reports whether the backend accepted the request.
	SubmitBooking(ctx context.Context, sub Submission) (bool, error)
	GetAllBookings(ctx context.Context) ([]booking.Booking, error)
	ConfirmBooking(ctx context.Context, index int) error
	RejectBooking(ctx context.Context, index int) error
	DeleteBooking(ctx context.Context, index int) error
	ClearAllBookings(ctx context.Context) error
	CallerRole(ctx context.Context) (string, error)
	IsCallerAdmin(ctx context.Context) (bool, error)
}

// Submission is a validated booking request plus the idempotency key that
// lets the backend collapse retried deliveries into one booking.
type Submission struct {
	booking.Request
	IdempotencyKey string
}
