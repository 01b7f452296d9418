package shared

import (
	"context"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/domain/tour"
	"tour-booking/internal/domain/user"
	sqlc "tour-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Tours() TourRepository
	Bookings() BookingRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	TourByID(ctx context.Context, id uuid.UUID) (*TourSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

// TourRepository owns the tours table. ReserveSeat and ReleaseSeat are the
// only statements that move available_seats.
type TourRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *tour.Tour) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*tour.Tour, error)
	UpdateDetails(ctx context.Context, tx sqlc.DBTX, t *tour.Tour) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	Exists(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
	// ReserveSeat decrements only when a seat is left; KindNotFound otherwise.
	ReserveSeat(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int32, error)
	ReleaseSeat(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int32, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// FindForUpdate locks the row until the surrounding transaction ends.
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	FindFirstAdmin(ctx context.Context, tx sqlc.DBTX) (*user.User, error)
	UpdateRole(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateCredentials(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}

// TourCacheInvalidator drops cached tour snapshots after their seats or
// details changed. Failures are swallowed by implementations.
type TourCacheInvalidator interface {
	Invalidate(ctx context.Context, ids ...uuid.UUID)
}
