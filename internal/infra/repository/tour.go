package repository

import (
	"context"

	"tour-booking/internal/domain/tour"
	"tour-booking/internal/infra"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TourQueries interface {
	CreateTour(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTourParams) error
	GetTourByID(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (sqlc.Tour, error)
	UpdateTourDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTourDetailsParams) (int64, error)
	DeleteTour(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (int64, error)
	TourExists(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (bool, error)
	ReserveTourSeat(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (int32, error)
	ReleaseTourSeat(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (int32, error)
}

type TourRepository struct {
	queries TourQueries
}

func NewTourRepository(queries TourQueries) *TourRepository {
	return &TourRepository{queries: queries}
}

func (r *TourRepository) Create(ctx context.Context, tx sqlc.DBTX, t *tour.Tour) error {
	err := r.queries.CreateTour(ctx, tx, sqlc.CreateTourParams{
		ID:             pgconv.UUIDToPgtype(t.ID()),
		Title:          t.Title().Value(),
		Description:    t.Description(),
		PriceCents:     t.Price().Cents(),
		Duration:       t.Duration(),
		Location:       t.Location(),
		Images:         nonNil(t.Images()),
		AvailableSeats: t.AvailableSeats().Value(),
		CreatedAt:      pgconv.TimeToPgtype(t.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(t.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create tour", err)
	}
	return nil
}

func (r *TourRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*tour.Tour, error) {
	row, err := r.queries.GetTourByID(ctx, tx, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tour", err)
	}
	return toTourDomain(row)
}

func (r *TourRepository) UpdateDetails(ctx context.Context, tx sqlc.DBTX, t *tour.Tour) error {
	n, err := r.queries.UpdateTourDetails(ctx, tx, sqlc.UpdateTourDetailsParams{
		ID:          pgconv.UUIDToPgtype(t.ID()),
		Title:       t.Title().Value(),
		Description: t.Description(),
		PriceCents:  t.Price().Cents(),
		Duration:    t.Duration(),
		Location:    t.Location(),
		Images:      nonNil(t.Images()),
		UpdatedAt:   pgconv.TimeToPgtype(t.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update tour", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("tour not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TourRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteTour(ctx, tx, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete tour", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("tour not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TourRepository) Exists(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	ok, err := r.queries.TourExists(ctx, tx, pgconv.UUIDToPgtype(id))
	if err != nil {
		return false, infra.WrapRepoErr("failed to check tour existence", err)
	}
	return ok, nil
}

// ReserveSeat returns the remaining seats. No row comes back when the tour is
// missing or sold out; both surface as KindNotFound and the caller tells them apart.
func (r *TourRepository) ReserveSeat(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int32, error) {
	remaining, err := r.queries.ReserveTourSeat(ctx, tx, pgconv.UUIDToPgtype(id))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reserve seat", err)
	}
	return remaining, nil
}

func (r *TourRepository) ReleaseSeat(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int32, error) {
	remaining, err := r.queries.ReleaseTourSeat(ctx, tx, pgconv.UUIDToPgtype(id))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release seat", err)
	}
	return remaining, nil
}

func toTourDomain(row sqlc.Tour) (*tour.Tour, error) {
	title, err := tour.NewTitle(row.Title)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid tour title in storage", err, infra.KindDBFailure)
	}
	price, err := tour.NewPrice(row.PriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid tour price in storage", err, infra.KindDBFailure)
	}
	seats, err := tour.NewSeats(row.AvailableSeats)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid seat count in storage", err, infra.KindDBFailure)
	}
	details := tour.Details{
		Title:       title,
		Description: row.Description,
		Price:       price,
		Duration:    row.Duration,
		Location:    row.Location,
		Images:      row.Images,
	}
	return tour.ReconstructTour(
		pgconv.UUIDFromPgtype(row.ID),
		details,
		seats,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
