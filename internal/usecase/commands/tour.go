package commands

import (
	"context"
	"log/slog"

	"tour-booking/internal/domain/access"
	"tour-booking/internal/domain/tour"
	"tour-booking/internal/infra"
	"tour-booking/internal/pkg/clock"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/pkg/patch"
	"tour-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateTourInput struct {
	Title          string
	Description    string
	PriceCents     int64
	Duration       string
	Location       string
	Images         []string
	AvailableSeats int32
}

// UpdateTourInput is a partial update; nil fields keep their stored value.
// There is no seat field: inventory only moves through the ledger.
type UpdateTourInput struct {
	Title       *string
	Description *string
	PriceCents  *int64
	Duration    *string
	Location    *string
	Images      *[]string
}

type TourCommands interface {
	Create(ctx context.Context, actor access.Principal, in CreateTourInput) (uuid.UUID, error)
	Update(ctx context.Context, actor access.Principal, id uuid.UUID, in UpdateTourInput) error
	Delete(ctx context.Context, actor access.Principal, id uuid.UUID) error
}

type tourCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.TourCacheInvalidator
	clock clock.Clock
}

func NewTourCommands(uow shared.UnitOfWork, cache shared.TourCacheInvalidator, clk clock.Clock) TourCommands {
	return &tourCommandsImpl{uow: uow, cache: cache, clock: clk}
}

func (c *tourCommandsImpl) Create(ctx context.Context, actor access.Principal, in CreateTourInput) (uuid.UUID, error) {
	if err := actor.Authorize(access.OpManageTours); err != nil {
		return uuid.Nil, err
	}

	details, err := buildDetails(in.Title, in.Description, in.PriceCents, in.Duration, in.Location, in.Images)
	if err != nil {
		return uuid.Nil, err
	}
	seats, err := tour.NewSeats(in.AvailableSeats)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	t, err := tour.NewTour(details, seats, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Tours().Create(ctx, tx.DB(), t); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("tour created", slog.String("tour_id", t.ID().String()), slog.Int("seats", int(seats.Value())))
	return t.ID(), nil
}

func (c *tourCommandsImpl) Update(ctx context.Context, actor access.Principal, id uuid.UUID, in UpdateTourInput) error {
	if err := actor.Authorize(access.OpManageTours); err != nil {
		return err
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Tours().FindByID(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTourNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		current := t.Details()
		details, err := buildDetails(
			patch.Or(in.Title, current.Title.Value()),
			patch.Or(in.Description, current.Description),
			patch.Or(in.PriceCents, current.Price.Cents()),
			patch.Or(in.Duration, current.Duration),
			patch.Or(in.Location, current.Location),
			patch.SliceOr(in.Images, current.Images),
		)
		if err != nil {
			return err
		}
		if err := t.Revise(details, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrDomainValidationFailed)
		}

		if err := tx.Tours().UpdateDetails(ctx, tx.DB(), t); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTourNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.cache.Invalidate(ctx, id)
	return nil
}

// Delete refuses tours that still have bookings in any status; the foreign
// key keeps booking history intact.
func (c *tourCommandsImpl) Delete(ctx context.Context, actor access.Principal, id uuid.UUID) error {
	if err := actor.Authorize(access.OpManageTours); err != nil {
		return err
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Tours().Delete(ctx, tx.DB(), id); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return ErrTourNotFound
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return ErrTourHasBookings
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.cache.Invalidate(ctx, id)
	slog.Info("tour deleted", slog.String("tour_id", id.String()))
	return nil
}

func buildDetails(title, description string, priceCents int64, duration, location string, images []string) (tour.Details, error) {
	t, err := tour.NewTitle(title)
	if err != nil {
		return tour.Details{}, errs.Mark(err, ErrDomainValidationFailed)
	}
	p, err := tour.NewPrice(priceCents)
	if err != nil {
		return tour.Details{}, errs.Mark(err, ErrDomainValidationFailed)
	}
	return tour.Details{
		Title:       t,
		Description: description,
		Price:       p,
		Duration:    duration,
		Location:    location,
		Images:      images,
	}, nil
}
