package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/booking"
)

// --- Mock Actor ---

type mockActor struct {
	mu sync.Mutex

	submitFn  func(ctx context.Context, sub Submission) (bool, error)
	getAllFn  func(ctx context.Context) ([]booking.Booking, error)
	confirmFn func(ctx context.Context, index int) error
	rejectFn  func(ctx context.Context, index int) error
	deleteFn  func(ctx context.Context, index int) error
	clearFn   func(ctx context.Context) error
	roleFn    func(ctx context.Context) (string, error)

	submitCalls  int
	getAllCalls  int
	confirmCalls int
	rejectCalls  int
	deleteCalls  int
}

func (m *mockActor) SubmitBooking(ctx context.Context, sub Submission) (bool, error) {
	m.mu.Lock()
	m.submitCalls++
	m.mu.Unlock()
	if m.submitFn != nil {
		return m.submitFn(ctx, sub)
	}
	return true, nil
}

func (m *mockActor) GetAllBookings(ctx context.Context) ([]booking.Booking, error) {
	m.mu.Lock()
	m.getAllCalls++
	m.mu.Unlock()
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockActor) ConfirmBooking(ctx context.Context, index int) error {
	m.mu.Lock()
	m.confirmCalls++
	m.mu.Unlock()
	if m.confirmFn != nil {
		return m.confirmFn(ctx, index)
	}
	return nil
}

func (m *mockActor) RejectBooking(ctx context.Context, index int) error {
	m.mu.Lock()
	m.rejectCalls++
	m.mu.Unlock()
	if m.rejectFn != nil {
		return m.rejectFn(ctx, index)
	}
	return nil
}

func (m *mockActor) DeleteBooking(ctx context.Context, index int) error {
	m.mu.Lock()
	m.deleteCalls++
	m.mu.Unlock()
	if m.deleteFn != nil {
		return m.deleteFn(ctx, index)
	}
	return nil
}

func (m *mockActor) ClearAllBookings(ctx context.Context) error {
	if m.clearFn != nil {
		return m.clearFn(ctx)
	}
	return nil
}

func (m *mockActor) CallerRole(ctx context.Context) (string, error) {
	if m.roleFn != nil {
		return m.roleFn(ctx)
	}
	return "guest", nil
}

func (m *mockActor) IsCallerAdmin(ctx context.Context) (bool, error) {
	role, err := m.CallerRole(ctx)
	return role == "admin", err
}

// --- In-memory Actor with real list semantics ---

// memoryActor behaves like the remote backend: an ordered booking list,
// positional mutations, idempotency-key dedupe.
type memoryActor struct {
	mu       sync.Mutex
	bookings []booking.Booking
	seenKeys map[string]bool
	nextRef  int
}

func newMemoryActor() *memoryActor {
	return &memoryActor{seenKeys: make(map[string]bool)}
}

func (m *memoryActor) SubmitBooking(_ context.Context, sub Submission) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sub.IdempotencyKey != "" && m.seenKeys[sub.IdempotencyKey] {
		return true, nil
	}
	m.seenKeys[sub.IdempotencyKey] = true
	m.nextRef++
	m.bookings = append(m.bookings, booking.Booking{
		Request:   sub.Request,
		Reference: fmt.Sprintf("PP-TEST%02d", m.nextRef),
		Status:    booking.StatusPending,
	})
	return true, nil
}

func (m *memoryActor) GetAllBookings(context.Context) ([]booking.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]booking.Booking(nil), m.bookings...), nil
}

func (m *memoryActor) ConfirmBooking(_ context.Context, index int) error {
	return m.setStatus(index, booking.StatusConfirmed)
}

func (m *memoryActor) RejectBooking(_ context.Context, index int) error {
	return m.setStatus(index, booking.StatusRejected)
}

func (m *memoryActor) DeleteBooking(_ context.Context, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.bookings) {
		return fmt.Errorf("booking not found")
	}
	m.bookings = append(m.bookings[:index], m.bookings[index+1:]...)
	return nil
}

func (m *memoryActor) ClearAllBookings(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings = nil
	return nil
}

func (m *memoryActor) CallerRole(context.Context) (string, error) {
	return "admin", nil
}

func (m *memoryActor) IsCallerAdmin(context.Context) (bool, error) {
	return true, nil
}

func (m *memoryActor) setStatus(index int, status booking.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.bookings) {
		return fmt.Errorf("booking not found")
	}
	m.bookings[index].Status = status
	return nil
}

// readyGate returns a gate with the actor already installed.
func readyGate(a Actor) *Gate {
	g := NewGate()
	g.Set(a)
	return g
}
