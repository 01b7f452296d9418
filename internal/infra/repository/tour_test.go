//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"tour-booking/internal/domain/tour"
	"tour-booking/internal/infra"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTour(t *testing.T) *tour.Tour {
	t.Helper()
	title, _ := tour.NewTitle("Sapporo Snow Festival")
	price, _ := tour.NewPrice(30000)
	seats, _ := tour.NewSeats(3)
	tr, err := tour.NewTour(tour.Details{
		Title:    title,
		Price:    price,
		Duration: "2 days",
		Location: "Sapporo",
	}, seats, time.Now())
	require.NoError(t, err)
	return tr
}

func TestTourRepository_Create_SendsEmptyImages(t *testing.T) {
	q := new(MockTourQueries)
	tr := newTestTour(t)

	q.On("CreateTour", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateTourParams) bool {
		return p.Images != nil && len(p.Images) == 0 &&
			p.AvailableSeats == 3 &&
			pgconv.UUIDFromPgtype(p.ID) == tr.ID()
	})).Return(nil)

	err := NewTourRepository(q).Create(context.Background(), nil, tr)
	assert.NoError(t, err)
	q.AssertExpectations(t)
}

func TestTourRepository_ReserveSeat(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		remaining int32
		mockErr   error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "seat taken", remaining: 4},
		{name: "sold out or missing", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "check constraint", mockErr: &pgconn.PgError{Code: pgconv.CodeCheckViolation}, wantKind: infra.KindCheckViolated},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockTourQueries)
			q.On("ReserveTourSeat", mock.Anything, mock.Anything, pgconv.UUIDToPgtype(id)).Return(tt.remaining, tt.mockErr)

			remaining, err := NewTourRepository(q).ReserveSeat(context.Background(), nil, id)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.remaining, remaining)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestTourRepository_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("not found when nothing deleted", func(t *testing.T) {
		q := new(MockTourQueries)
		q.On("DeleteTour", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		err := NewTourRepository(q).Delete(context.Background(), nil, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("referenced by bookings", func(t *testing.T) {
		q := new(MockTourQueries)
		q.On("DeleteTour", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), &pgconn.PgError{Code: pgconv.CodeForeignKeyViolation})

		err := NewTourRepository(q).Delete(context.Background(), nil, id)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestTourRepository_FindByID(t *testing.T) {
	id := uuid.New()
	now := time.Now()
	q := new(MockTourQueries)
	q.On("GetTourByID", mock.Anything, mock.Anything, pgconv.UUIDToPgtype(id)).Return(sqlc.Tour{
		ID:             pgconv.UUIDToPgtype(id),
		Title:          "Osaka Food Crawl",
		PriceCents:     8000,
		Duration:       "3 hours",
		Location:       "Osaka",
		Images:         []string{"a.jpg"},
		AvailableSeats: 12,
		CreatedAt:      pgconv.TimeToPgtype(now),
		UpdatedAt:      pgconv.TimeToPgtype(now),
	}, nil)

	got, err := NewTourRepository(q).FindByID(context.Background(), nil, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID())
	assert.Equal(t, "Osaka Food Crawl", got.Title().Value())
	assert.Equal(t, int32(12), got.AvailableSeats().Value())
	assert.Equal(t, []string{"a.jpg"}, got.Images())
}
