package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is never deleted. Cancelling retires it by status.
type Booking struct {
	id        uuid.UUID
	tourID    uuid.UUID
	userID    uuid.UUID
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking is only called by the seat ledger after a seat was taken.
func NewBooking(tourID, userID uuid.UUID, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		tourID:    tourID,
		userID:    userID,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructBooking(id, tourID, userID uuid.UUID, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		tourID:    tourID,
		userID:    userID,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) TourID() uuid.UUID    { return b.tourID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}
