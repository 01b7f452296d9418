package commands

import (
	"context"
	"log/slog"
	"time"

	"tour-booking/internal/domain/access"
	"tour-booking/internal/domain/booking"
	"tour-booking/internal/infra"
	"tour-booking/internal/pkg/clock"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingResult struct {
	ID        uuid.UUID
	TourID    uuid.UUID
	UserID    uuid.UUID
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, actor access.Principal, tourID uuid.UUID) (*BookingResult, error)
	UpdateStatus(ctx context.Context, actor access.Principal, bookingID uuid.UUID, status string) (*BookingResult, error)
	Cancel(ctx context.Context, actor access.Principal, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	ledger InventoryLedger
	cache  shared.TourCacheInvalidator
	clock  clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	ledger InventoryLedger,
	cache shared.TourCacheInvalidator,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		ledger: ledger,
		cache:  cache,
		clock:  clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, actor access.Principal, tourID uuid.UUID) (*BookingResult, error) {
	if err := actor.Authorize(access.OpCreateBooking); err != nil {
		return nil, err
	}

	var created *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.ledger.ReserveSeat(ctx, tx, tourID, actor.UserID)
		if err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.cache.Invalidate(ctx, tourID)
	slog.Info("booking created",
		slog.String("booking_id", created.ID().String()),
		slog.String("tour_id", tourID.String()),
		slog.String("user_id", actor.UserID.String()))

	return toBookingResult(created), nil
}

// UpdateStatus is the administrative path. A move into cancelled releases the
// seat exactly as Cancel does.
func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, actor access.Principal, bookingID uuid.UUID, status string) (*BookingResult, error) {
	if err := actor.Authorize(access.OpChangeBookingStatus); err != nil {
		return nil, err
	}

	to, err := booking.NewStatus(status)
	if err != nil {
		return nil, err
	}

	return c.transition(ctx, actor, bookingID, to)
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, actor access.Principal, bookingID uuid.UUID) error {
	if err := actor.Authorize(access.OpCancelBooking); err != nil {
		return err
	}

	_, err := c.transition(ctx, actor, bookingID, booking.StatusCancelled)
	return err
}

// transition locks the booking row before reading its status, so two
// concurrent cancellations of the same booking see each other's result and
// the second one fails with ErrInvalidTransition.
func (c *bookingCommandsImpl) transition(ctx context.Context, actor access.Principal, bookingID uuid.UUID, to booking.Status) (*BookingResult, error) {
	var (
		updated *booking.Booking
		effect  booking.Effect
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		effect, err = b.TransitionTo(to, actor.Actor(), c.clock.Now())
		if err != nil {
			return err
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if effect == booking.EffectReleaseSeat {
			if err := c.ledger.ReleaseSeat(ctx, tx, b.TourID()); err != nil {
				return err
			}
		}

		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	if effect == booking.EffectReleaseSeat {
		c.cache.Invalidate(ctx, updated.TourID())
	}
	slog.Info("booking status changed",
		slog.String("booking_id", bookingID.String()),
		slog.String("status", updated.Status().String()),
		slog.String("effect", effect.String()),
		slog.String("actor_id", actor.UserID.String()))

	return toBookingResult(updated), nil
}

func toBookingResult(b *booking.Booking) *BookingResult {
	return &BookingResult{
		ID:        b.ID(),
		TourID:    b.TourID(),
		UserID:    b.UserID(),
		Status:    b.Status().String(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}
