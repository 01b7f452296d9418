package commands

import (
	"context"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/infra"
	"tour-booking/internal/pkg/clock"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// InventoryLedger is the sole owner of a tour's available seat count.
// ReserveSeat and ReleaseSeat must run inside the caller's transaction so the
// seat movement commits or rolls back together with the booking row.
type InventoryLedger interface {
	ReserveSeat(ctx context.Context, tx shared.Tx, tourID, userID uuid.UUID) (*booking.Booking, error)
	ReleaseSeat(ctx context.Context, tx shared.Tx, tourID uuid.UUID) error
	GetTour(ctx context.Context, tourID uuid.UUID) (*shared.TourSnapshot, error)
}

type seatLedger struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSeatLedger(uow shared.UnitOfWork, clk clock.Clock) InventoryLedger {
	return &seatLedger{uow: uow, clock: clk}
}

// ReserveSeat takes one seat with a conditional decrement and records a
// pending booking for userID. When nothing was decremented the tour is either
// missing or sold out; a second lookup tells the two apart.
func (l *seatLedger) ReserveSeat(ctx context.Context, tx shared.Tx, tourID, userID uuid.UUID) (*booking.Booking, error) {
	if _, err := tx.Tours().ReserveSeat(ctx, tx.DB(), tourID); err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		exists, err := tx.Tours().Exists(ctx, tx.DB(), tourID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !exists {
			return nil, ErrTourNotFound
		}
		return nil, ErrSeatsExhausted
	}

	b := booking.NewBooking(tourID, userID, l.clock.Now())
	if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}

// ReleaseSeat gives one seat back. Callers only invoke it for a booking that
// just left a seat-holding status.
func (l *seatLedger) ReleaseSeat(ctx context.Context, tx shared.Tx, tourID uuid.UUID) error {
	if _, err := tx.Tours().ReleaseSeat(ctx, tx.DB(), tourID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTourNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// GetTour returns a snapshot whose seat count may be stale. A missing tour
// keeps its repository not-found kind and is marked ErrTourNotFound.
func (l *seatLedger) GetTour(ctx context.Context, tourID uuid.UUID) (*shared.TourSnapshot, error) {
	t, err := l.uow.CommandReads().TourByID(ctx, tourID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrTourNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return t, nil
}
