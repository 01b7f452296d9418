//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tour-booking/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFields struct {
	TourID    uuid.UUID
	UserID    uuid.UUID
	Status    booking.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func fieldsOf(b *booking.Booking) bookingFields {
	return bookingFields{
		TourID:    b.TourID(),
		UserID:    b.UserID(),
		Status:    b.Status(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func TestNewBooking(t *testing.T) {
	tourID, userID := uuid.New(), uuid.New()
	now := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

	b := booking.NewBooking(tourID, userID, now)

	want := bookingFields{TourID: tourID, UserID: userID, Status: booking.StatusPending, CreatedAt: now, UpdatedAt: now}
	if diff := cmp.Diff(want, fieldsOf(b)); diff != "" {
		t.Errorf("Booking mismatch (-want +got):\n%s", diff)
	}
	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.True(t, b.IsOwnedBy(userID))
	assert.False(t, b.IsOwnedBy(tourID))
}

func TestNewStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled"} {
		status, err := booking.NewStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := booking.NewStatus("canceled")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestStatus_HoldsSeat(t *testing.T) {
	assert.True(t, booking.StatusPending.HoldsSeat())
	assert.True(t, booking.StatusConfirmed.HoldsSeat())
	assert.False(t, booking.StatusCancelled.HoldsSeat())
}
