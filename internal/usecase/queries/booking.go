package queries

import (
	"context"

	"tour-booking/internal/domain/access"
	"tour-booking/internal/infra"
	"tour-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
}

type BookingQueries interface {
	// GetByID is used after a write to render the result; the caller has
	// already been authorized for the write.
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, actor access.Principal) ([]*BookingView, error)
	ListAll(ctx context.Context, actor access.Principal) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return v, nil
}

// ListMine returns the caller's bookings, newest first, with a tour summary.
func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor access.Principal) ([]*BookingView, error) {
	if err := actor.Authorize(access.OpListOwnBookings); err != nil {
		return nil, err
	}
	return q.store.ListByUser(ctx, actor.UserID)
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, actor access.Principal) ([]*BookingView, error) {
	if err := actor.Authorize(access.OpListAllBookings); err != nil {
		return nil, err
	}
	return q.store.ListAll(ctx)
}
