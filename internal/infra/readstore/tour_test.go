//go:build unit

package readstore

import (
	"context"
	"testing"

	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTourReadQueries struct {
	mock.Mock
}

func (m *MockTourReadQueries) GetTourByID(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (sqlc.Tour, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Tour), args.Error(1)
}

func (m *MockTourReadQueries) ListTours(ctx context.Context, db sqlc.DBTX) ([]sqlc.Tour, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Tour), args.Error(1)
}

func TestTourReadStore_FindByID(t *testing.T) {
	id := uuid.New()
	q := new(MockTourReadQueries)
	q.On("GetTourByID", mock.Anything, mock.Anything, pgconv.UUIDToPgtype(id)).Return(sqlc.Tour{
		ID:             pgconv.UUIDToPgtype(id),
		Title:          "Okinawa Snorkel",
		PriceCents:     9900,
		Duration:       "1 day",
		Location:       "Naha",
		AvailableSeats: 2,
	}, nil)

	v, err := NewTourReadStore(q, nil).FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, v.ID)
	assert.Equal(t, int32(2), v.AvailableSeats)
	assert.NotNil(t, v.Images, "images serialize as [] rather than null")
}

func TestTourReadStore_List_DBError(t *testing.T) {
	q := new(MockTourReadQueries)
	q.On("ListTours", mock.Anything, mock.Anything).Return([]sqlc.Tour(nil), assert.AnError)

	_, err := NewTourReadStore(q, nil).List(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
