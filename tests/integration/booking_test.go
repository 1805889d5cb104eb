//go:build integration

package integration

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/models"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/repository"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/internal/service"
	"github.com/caffeinepub/pind-pahadi-restaurant-delhi/pkg/booking"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingService() service.BookingService {
	repo := repository.NewBookingRepository(testDB)
	return service.NewBookingService(repo, nil)
}

func newRequest(name string) booking.Request {
	return booking.Request{
		Name:   name,
		Phone:  "9876543210",
		Guests: 2,
		Date:   time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		Time:   "19:00",
	}
}

// Test: a submitted booking lands in the table as pending with a reference.
func TestSubmitBooking_CreatesPending(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	b, err := svc.SubmitBooking(t.Context(), newRequest("Asha Verma"), uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, b.Status)
	assert.Regexp(t, `^PP-[A-Z2-9]{6}$`, b.Reference)

	var stored models.Booking
	require.NoError(t, testDB.First(&stored, b.ID).Error)
	assert.Equal(t, "Asha Verma", stored.Name)
	assert.Equal(t, booking.StatusPending, stored.Status)
}

// Test: retried delivery with the same idempotency key creates one row.
func TestSubmitBooking_IdempotentRetry(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	key := uuid.NewString()
	first, err := svc.SubmitBooking(t.Context(), newRequest("Retry User"), key)
	require.NoError(t, err)

	second, err := svc.SubmitBooking(t.Context(), newRequest("Retry User"), key)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Reference, second.Reference)

	var count int64
	testDB.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(1), count, "retried submission must not create a second row")
}

// Test: concurrent retries of the same logical submission still create one row.
func TestSubmitBooking_ConcurrentIdempotentRetry(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	key := uuid.NewString()
	attempts := 10
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, _ = svc.SubmitBooking(t.Context(), newRequest("Flaky Network"), key)
		}()
	}
	wg.Wait()

	var count int64
	testDB.Model(&models.Booking{}).Where("idempotency_key = ?", key).Count(&count)
	assert.Equal(t, int64(1), count, "partial unique index should collapse concurrent retries")
}

// Test: confirm and reject address bookings by list position and are
// harmless to repeat.
func TestStatusMutations_ByIndexAndIdempotent(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	for i := 0; i < 3; i++ {
		_, err := svc.SubmitBooking(t.Context(), newRequest(fmt.Sprintf("Guest %d", i)), uuid.NewString())
		require.NoError(t, err)
	}

	confirmed, err := svc.ConfirmBooking(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Guest 1", confirmed.Name)
	assert.Equal(t, booking.StatusConfirmed, confirmed.Status)

	// Confirming again changes nothing.
	again, err := svc.ConfirmBooking(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, confirmed.ID, again.ID)
	assert.Equal(t, booking.StatusConfirmed, again.Status)

	rejected, err := svc.RejectBooking(t.Context(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Guest 2", rejected.Name)
	assert.Equal(t, booking.StatusRejected, rejected.Status)

	// Rejecting an already-confirmed booking overwrites it; the operation
	// is total over any current status.
	flipped, err := svc.RejectBooking(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusRejected, flipped.Status)

	var count int64
	testDB.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(3), count, "status mutations never change list length")

	list, err := svc.ListBookings(t.Context())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, booking.StatusPending, list[0].Status)
	assert.Equal(t, booking.StatusRejected, list[1].Status)
	assert.Equal(t, booking.StatusRejected, list[2].Status)
}

// Test: mutating an out-of-range index reports not found.
func TestStatusMutations_IndexOutOfRange(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	_, err := svc.SubmitBooking(t.Context(), newRequest("Only Guest"), uuid.NewString())
	require.NoError(t, err)

	_, err = svc.ConfirmBooking(t.Context(), 5)
	assert.ErrorIs(t, err, service.ErrBookingNotFound)

	_, err = svc.DeleteBooking(t.Context(), 5)
	assert.ErrorIs(t, err, service.ErrBookingNotFound)
}

// Test: delete removes exactly the addressed booking and later entries
// shift down one position.
func TestDeleteBooking_ShiftsPositions(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	for i := 0; i < 3; i++ {
		_, err := svc.SubmitBooking(t.Context(), newRequest(fmt.Sprintf("Guest %d", i)), uuid.NewString())
		require.NoError(t, err)
	}

	deleted, err := svc.DeleteBooking(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Guest 1", deleted.Name)

	list, err := svc.ListBookings(t.Context())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Guest 0", list[0].Name)
	assert.Equal(t, "Guest 2", list[1].Name, "entries after the deleted one shift down")
}

// Test: clearing empties the table.
func TestClearAllBookings(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	for i := 0; i < 4; i++ {
		_, err := svc.SubmitBooking(t.Context(), newRequest(fmt.Sprintf("Guest %d", i)), uuid.NewString())
		require.NoError(t, err)
	}

	require.NoError(t, svc.ClearAllBookings(t.Context()))

	list, err := svc.ListBookings(t.Context())
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Test: a booking can be fetched back by its reference.
func TestGetByReference(t *testing.T) {
	cleanTables()
	svc := newBookingService()

	created, err := svc.SubmitBooking(t.Context(), newRequest("Ref Lookup"), uuid.NewString())
	require.NoError(t, err)

	found, err := svc.GetByReference(t.Context(), created.Reference)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByReference(t.Context(), "PP-ZZZZZZ")
	assert.ErrorIs(t, err, service.ErrBookingNotFound)
}
