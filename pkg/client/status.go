package client

import "context"

// AdminWorkflow applies status transitions to existing bookings, addressed
// by their position in the fetched list. Calling any of these before the
// gate is ready is a caller error and fails immediately; there is no retry
// loop on this path.
type AdminWorkflow struct {
	gate  *Gate
	cache *ListCache
}

func NewAdminWorkflow(gate *Gate, cache *ListCache) *AdminWorkflow {
	return &AdminWorkflow{gate: gate, cache: cache}
}

// Confirm sets the booking at index to confirmed. Total and idempotent:
// re-confirming a confirmed booking succeeds and changes nothing.
func (w *AdminWorkflow) Confirm(ctx context.Context, index int) error {
	return w.mutate(ctx, "confirm", index, func(a Actor) error {
		return a.ConfirmBooking(ctx, index)
	})
}

// Reject sets the booking at index to rejected. Same totality as Confirm.
func (w *AdminWorkflow) Reject(ctx context.Context, index int) error {
	return w.mutate(ctx, "reject", index, func(a Actor) error {
		return a.RejectBooking(ctx, index)
	})
}

// Delete removes the booking at index entirely. Terminal.
func (w *AdminWorkflow) Delete(ctx context.Context, index int) error {
	return w.mutate(ctx, "delete", index, func(a Actor) error {
		return a.DeleteBooking(ctx, index)
	})
}

// Clear removes every booking.
func (w *AdminWorkflow) Clear(ctx context.Context) error {
	return w.mutate(ctx, "clear", -1, func(a Actor) error {
		return a.ClearAllBookings(ctx)
	})
}

// IsAdmin reports whether the caller's token carries the admin role.
func (w *AdminWorkflow) IsAdmin(ctx context.Context) (bool, error) {
	actor, ok := w.gate.Actor()
	if !ok {
		return false, ErrConnectionUnavailable
	}
	return actor.IsCallerAdmin(ctx)
}

func (w *AdminWorkflow) mutate(ctx context.Context, op string, index int, fn func(Actor) error) error {
	actor, ok := w.gate.Actor()
	if !ok {
		return ErrConnectionUnavailable
	}
	if err := fn(actor); err != nil {
		return &RemoteError{Op: op, Err: err}
	}
	if w.cache != nil {
		w.cache.Invalidate()
	}
	return nil
}
