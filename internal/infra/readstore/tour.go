package readstore

import (
	"context"

	"tour-booking/internal/infra"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/pgconv"
	"tour-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TourReadQueries interface {
	GetTourByID(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (sqlc.Tour, error)
	ListTours(ctx context.Context, db sqlc.DBTX) ([]sqlc.Tour, error)
}

type TourReadStore struct {
	queries TourReadQueries
	db      sqlc.DBTX
}

func NewTourReadStore(queries TourReadQueries, db sqlc.DBTX) *TourReadStore {
	return &TourReadStore{queries: queries, db: db}
}

func (r *TourReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TourView, error) {
	row, err := r.queries.GetTourByID(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tour by ID", err)
	}
	return toTourView(row), nil
}

func (r *TourReadStore) List(ctx context.Context) ([]*queries.TourView, error) {
	rows, err := r.queries.ListTours(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tours", err)
	}
	views := make([]*queries.TourView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toTourView(row))
	}
	return views, nil
}

func toTourView(row sqlc.Tour) *queries.TourView {
	images := row.Images
	if images == nil {
		images = []string{}
	}
	return &queries.TourView{
		ID:             pgconv.UUIDFromPgtype(row.ID),
		Title:          row.Title,
		Description:    row.Description,
		PriceCents:     row.PriceCents,
		Duration:       row.Duration,
		Location:       row.Location,
		Images:         images,
		AvailableSeats: row.AvailableSeats,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
