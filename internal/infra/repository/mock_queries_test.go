//go:build unit

package repository

import (
	"context"

	sqlc "tour-booking/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
)

type MockTourQueries struct {
	mock.Mock
}

func (m *MockTourQueries) CreateTour(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTourParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockTourQueries) GetTourByID(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (sqlc.Tour, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Tour), args.Error(1)
}

func (m *MockTourQueries) UpdateTourDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTourDetailsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTourQueries) DeleteTour(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTourQueries) TourExists(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTourQueries) ReserveTourSeat(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (int32, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockTourQueries) ReleaseTourSeat(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (int32, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int32), args.Error(1)
}

type MockBookingQueries struct {
	mock.Mock
}

func (m *MockBookingQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockBookingQueries) GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (sqlc.Booking, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Booking), args.Error(1)
}

func (m *MockBookingQueries) UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockUserQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id pgtype.UUID) (sqlc.User, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.User), args.Error(1)
}

func (m *MockUserQueries) GetFirstAdmin(ctx context.Context, db sqlc.DBTX) (sqlc.User, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(sqlc.User), args.Error(1)
}

func (m *MockUserQueries) UpdateUserRole(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserRoleParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserQueries) UpdateUserCredentials(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserCredentialsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}
