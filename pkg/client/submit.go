package client

import (
	"context"
	"fmt"
	"time"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/booking"
	"github.com/google/uuid"
)

// One initial attempt plus three retries on a not-ready gate.
const submitAttempts = 4

// Submitter validates a booking request locally, then delivers it through
// the readiness gate, tolerating transient not-ready conditions with a
// bounded backoff and surfacing everything else immediately.
type Submitter struct {
	gate    *Gate
	cache   *ListCache
	backoff Backoff
}

func NewSubmitter(gate *Gate, cache *ListCache, backoff Backoff) *Submitter {
	if backoff == nil {
		backoff = DefaultBackoff
	}
	return &Submitter{gate: gate, cache: cache, backoff: backoff}
}

// Receipt describes an accepted submission. The idempotency key is what
// the backend deduplicated retried deliveries on.
type Receipt struct {
	IdempotencyKey string
	Attempts       int
}

// Submit runs the booking-submission workflow. The error is one of
// *booking.ValidationError, ErrConnectionUnavailable (wrapped) or
// *RemoteRejectedError. Retries within a call are strictly sequential, and
// the same idempotency key is carried on every one of them.
func (s *Submitter) Submit(ctx context.Context, req booking.Request) (*Receipt, error) {
	req = req.Normalized()
	if verr := booking.Validate(req); verr != nil {
		return nil, verr
	}

	sub := Submission{Request: req, IdempotencyKey: uuid.NewString()}

	for attempt := 1; attempt <= submitAttempts; attempt++ {
		actor, ok := s.gate.Actor()
		if !ok {
			if attempt == submitAttempts {
				break
			}
			if err := sleep(ctx, s.backoff(attempt)); err != nil {
				return nil, err
			}
			continue
		}

		accepted, err := actor.SubmitBooking(ctx, sub)
		if err != nil {
			// The backend answered: this is permanent, not a readiness
			// problem, so no retry.
			return nil, &RemoteRejectedError{Message: err.Error()}
		}
		if !accepted {
			return nil, &RemoteRejectedError{Message: "booking was not accepted"}
		}

		if s.cache != nil {
			s.cache.Invalidate()
		}
		return &Receipt{IdempotencyKey: sub.IdempotencyKey, Attempts: attempt}, nil
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrConnectionUnavailable, submitAttempts)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
