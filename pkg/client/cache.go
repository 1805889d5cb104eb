package client

import (
	"context"
	"sync"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/booking"
)

// ListCache holds the most recently fetched booking list. Workflows never
// mutate it directly; they mark it stale and the next read refetches.
type ListCache struct {
	mu       sync.Mutex
	gate     *Gate
	loaded   bool
	stale    bool
	bookings []booking.Booking
}

func NewListCache(gate *Gate) *ListCache {
	return &ListCache{gate: gate}
}

// Invalidate marks the cached list stale. It never refetches synchronously.
func (c *ListCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stale = true
}

// Stale reports whether the next read will refetch.
func (c *ListCache) Stale() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stale || !c.loaded
}

// Bookings returns the booking list, refetching through the gate's handle
// when the cache is stale or has never been filled.
func (c *ListCache) Bookings(ctx context.Context) ([]booking.Booking, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && !c.stale {
		return append([]booking.Booking(nil), c.bookings...), nil
	}

	actor, ok := c.gate.Actor()
	if !ok {
		return nil, ErrConnectionUnavailable
	}

	bookings, err := actor.GetAllBookings(ctx)
	if err != nil {
		return nil, err
	}

	c.bookings = bookings
	c.loaded = true
	c.stale = false
	return append([]booking.Booking(nil), c.bookings...), nil
}
