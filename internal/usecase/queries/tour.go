package queries

import (
	"context"

	"tour-booking/internal/infra"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrTourNotFound = errs.New("tour not found")

type TourReadStore interface {
	List(ctx context.Context) ([]*TourView, error)
}

// TourSource is the inventory ledger's non-linearized tour read.
type TourSource interface {
	GetTour(ctx context.Context, id uuid.UUID) (*shared.TourSnapshot, error)
}

// TourCache is the read side of the tour snapshot cache.
type TourCache interface {
	Get(ctx context.Context, id uuid.UUID) (*TourView, bool)
	Set(ctx context.Context, view *TourView)
}

type TourQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TourView, error)
	List(ctx context.Context) ([]*TourView, error)
}

type tourQueriesImpl struct {
	source TourSource
	store  TourReadStore
	cache  TourCache
}

func NewTourQueries(source TourSource, store TourReadStore, cache TourCache) TourQueries {
	return &tourQueriesImpl{source: source, store: store, cache: cache}
}

// GetByID serves the display path from the ledger's snapshot. Its seat count
// is not linearized with reservations. A reservation that invalidates between
// the read and the Set leaves an old count cached, so TOUR_CACHE_TTL is the
// upper bound on how stale a displayed count can be.
func (q *tourQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TourView, error) {
	if v, ok := q.cache.Get(ctx, id); ok {
		return v, nil
	}

	snap, err := q.source.GetTour(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}

	v := TourView(*snap)
	q.cache.Set(ctx, &v)
	return &v, nil
}

func (q *tourQueriesImpl) List(ctx context.Context) ([]*TourView, error) {
	return q.store.List(ctx)
}
