package repository

import (
	"context"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/infra"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (sqlc.Booking, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingQueries
}

func NewBookingRepository(queries BookingQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	err := r.queries.CreateBooking(ctx, tx, sqlc.CreateBookingParams{
		ID:        pgconv.UUIDToPgtype(b.ID()),
		TourID:    pgconv.UUIDToPgtype(b.TourID()),
		UserID:    pgconv.UUIDToPgtype(b.UserID()),
		Status:    b.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("unexpected booking status in storage", err, infra.KindDBFailure)
	}

	return booking.ReconstructBooking(
		pgconv.UUIDFromPgtype(row.ID),
		pgconv.UUIDFromPgtype(row.TourID),
		pgconv.UUIDFromPgtype(row.UserID),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ID:        pgconv.UUIDToPgtype(b.ID()),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
