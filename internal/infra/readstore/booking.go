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

type BookingReadQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (sqlc.GetBookingViewRow, error)
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, userID pgtype.UUID) ([]sqlc.ListBookingsByUserRow, error)
	ListAllBookings(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListAllBookingsRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{queries: queries, db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &queries.BookingView{
		ID:     pgconv.UUIDFromPgtype(row.ID),
		UserID: pgconv.UUIDFromPgtype(row.UserID),
		Status: row.Status,
		Tour: queries.TourSummary{
			ID:         pgconv.UUIDFromPgtype(row.TourID),
			Title:      row.TourTitle,
			Location:   row.TourLocation,
			PriceCents: row.TourPriceCents,
		},
		User: &queries.BookingUserSummary{
			ID:       pgconv.UUIDFromPgtype(row.UserID),
			Username: row.UserUsername,
			Email:    row.UserEmail,
			Phone:    pgconv.StringPtrFromPgtype(row.UserPhone),
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.BookingView{
			ID:     pgconv.UUIDFromPgtype(row.ID),
			UserID: pgconv.UUIDFromPgtype(row.UserID),
			Status: row.Status,
			Tour: queries.TourSummary{
				ID:         pgconv.UUIDFromPgtype(row.TourID),
				Title:      row.TourTitle,
				Location:   row.TourLocation,
				PriceCents: row.TourPriceCents,
			},
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}

func (r *BookingReadStore) ListAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListAllBookings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.BookingView{
			ID:     pgconv.UUIDFromPgtype(row.ID),
			UserID: pgconv.UUIDFromPgtype(row.UserID),
			Status: row.Status,
			Tour: queries.TourSummary{
				ID:    pgconv.UUIDFromPgtype(row.TourID),
				Title: row.TourTitle,
			},
			User: &queries.BookingUserSummary{
				ID:       pgconv.UUIDFromPgtype(row.UserID),
				Username: row.UserUsername,
				Email:    row.UserEmail,
				Phone:    pgconv.StringPtrFromPgtype(row.UserPhone),
			},
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}
