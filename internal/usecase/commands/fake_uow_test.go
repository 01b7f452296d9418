//go:build unit

package commands

import (
	"context"
	"maps"
	"sync"
	"time"

	"tour-booking/internal/domain/booking"
	"tour-booking/internal/domain/tour"
	"tour-booking/internal/domain/user"
	"tour-booking/internal/infra"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// memUoW is a serializable in-memory unit of work: Within holds one mutex for
// the whole callback and restores the previous state when it fails.
type memUoW struct {
	mu       sync.Mutex
	tours    map[uuid.UUID]tourRow
	bookings map[uuid.UUID]bookingRow
	users    map[uuid.UUID]userRow

	// failBookingInsert makes the next booking insert fail after the seat
	// was already decremented.
	failBookingInsert bool
}

type tourRow struct {
	details   tour.Details
	seats     int32
	createdAt time.Time
	updatedAt time.Time
}

type bookingRow struct {
	tourID    uuid.UUID
	userID    uuid.UUID
	status    booking.Status
	createdAt time.Time
	updatedAt time.Time
}

type userRow struct {
	username  string
	email     string
	phone     *string
	hash      string
	role      user.Role
	createdAt time.Time
	updatedAt time.Time
}

func newMemUoW() *memUoW {
	return &memUoW{
		tours:    map[uuid.UUID]tourRow{},
		bookings: map[uuid.UUID]bookingRow{},
		users:    map[uuid.UUID]userRow{},
	}
}

func (m *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tours, bookings, users := maps.Clone(m.tours), maps.Clone(m.bookings), maps.Clone(m.users)
	if err := fn(ctx, &memTx{m: m}); err != nil {
		m.tours, m.bookings, m.users = tours, bookings, users
		return err
	}
	return nil
}

func (m *memUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, nil)
}

func (m *memUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, nil)
}

func (m *memUoW) CommandReads() shared.CommandReads {
	return &memReads{m: m, lock: true}
}

// test helpers, called outside Within

func (m *memUoW) addTour(seats int32) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	title, _ := tour.NewTitle("Kyoto Walk")
	price, _ := tour.NewPrice(12000)
	id := uuid.New()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.tours[id] = tourRow{
		details:   tour.Details{Title: title, Price: price, Duration: "1 day", Location: "Kyoto"},
		seats:     seats,
		createdAt: now,
		updatedAt: now,
	}
	return id
}

func (m *memUoW) addUser(role user.Role, email, hash string) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.users[id] = userRow{username: "member", email: email, hash: hash, role: role}
	return id
}

func (m *memUoW) seats(id uuid.UUID) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tours[id].seats
}

func (m *memUoW) status(id uuid.UUID) booking.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookings[id].status
}

func (m *memUoW) bookingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

func (m *memUoW) setStatus(id uuid.UUID, s booking.Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := m.bookings[id]
	row.status = s
	m.bookings[id] = row
}

type memTx struct{ m *memUoW }

func (t *memTx) Tours() shared.TourRepository       { return &memTours{m: t.m} }
func (t *memTx) Bookings() shared.BookingRepository { return &memBookings{m: t.m} }
func (t *memTx) Users() shared.UserRepository       { return &memUsers{m: t.m} }
func (t *memTx) Reads() shared.CommandReads         { return &memReads{m: t.m} }
func (t *memTx) DB() sqlc.DBTX                      { return nil }

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

type memTours struct{ m *memUoW }

func (r *memTours) Create(_ context.Context, _ sqlc.DBTX, t *tour.Tour) error {
	r.m.tours[t.ID()] = tourRow{details: t.Details(), seats: t.AvailableSeats().Value(), createdAt: t.CreatedAt(), updatedAt: t.UpdatedAt()}
	return nil
}

func (r *memTours) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*tour.Tour, error) {
	row, ok := r.m.tours[id]
	if !ok {
		return nil, notFound()
	}
	seats, _ := tour.NewSeats(row.seats)
	return tour.ReconstructTour(id, row.details, seats, row.createdAt, row.updatedAt), nil
}

func (r *memTours) UpdateDetails(_ context.Context, _ sqlc.DBTX, t *tour.Tour) error {
	row, ok := r.m.tours[t.ID()]
	if !ok {
		return notFound()
	}
	row.details = t.Details()
	row.updatedAt = t.UpdatedAt()
	r.m.tours[t.ID()] = row
	return nil
}

func (r *memTours) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.m.tours[id]; !ok {
		return notFound()
	}
	for _, b := range r.m.bookings {
		if b.tourID == id {
			return infra.WrapRepoErr("fk", nil, infra.KindForeignKeyViolated)
		}
	}
	delete(r.m.tours, id)
	return nil
}

func (r *memTours) Exists(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (bool, error) {
	_, ok := r.m.tours[id]
	return ok, nil
}

func (r *memTours) ReserveSeat(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (int32, error) {
	row, ok := r.m.tours[id]
	if !ok || row.seats <= 0 {
		return 0, notFound()
	}
	row.seats--
	r.m.tours[id] = row
	return row.seats, nil
}

func (r *memTours) ReleaseSeat(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (int32, error) {
	row, ok := r.m.tours[id]
	if !ok {
		return 0, notFound()
	}
	row.seats++
	r.m.tours[id] = row
	return row.seats, nil
}

type memBookings struct{ m *memUoW }

func (r *memBookings) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if r.m.failBookingInsert {
		r.m.failBookingInsert = false
		return infra.WrapRepoErr("insert failed", nil, infra.KindDBFailure)
	}
	if _, ok := r.m.users[b.UserID()]; !ok && len(r.m.users) > 0 {
		return infra.WrapRepoErr("fk", nil, infra.KindForeignKeyViolated)
	}
	r.m.bookings[b.ID()] = bookingRow{tourID: b.TourID(), userID: b.UserID(), status: b.Status(), createdAt: b.CreatedAt(), updatedAt: b.UpdatedAt()}
	return nil
}

func (r *memBookings) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, ok := r.m.bookings[id]
	if !ok {
		return nil, notFound()
	}
	return booking.ReconstructBooking(id, row.tourID, row.userID, row.status, row.createdAt, row.updatedAt), nil
}

func (r *memBookings) UpdateStatus(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	row, ok := r.m.bookings[b.ID()]
	if !ok {
		return notFound()
	}
	row.status = b.Status()
	row.updatedAt = b.UpdatedAt()
	r.m.bookings[b.ID()] = row
	return nil
}

type memUsers struct{ m *memUoW }

func (r *memUsers) Create(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	for _, row := range r.m.users {
		if row.email == u.Email().Value() {
			return infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)
		}
	}
	r.m.users[u.ID()] = userRow{
		username: u.Username().Value(), email: u.Email().Value(), phone: u.Phone(),
		hash: u.PasswordHash(), role: u.Role(), createdAt: u.CreatedAt(), updatedAt: u.UpdatedAt(),
	}
	return nil
}

func (r *memUsers) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, ok := r.m.users[id]
	if !ok {
		return nil, notFound()
	}
	return row.toDomain(id), nil
}

func (r *memUsers) FindFirstAdmin(_ context.Context, _ sqlc.DBTX) (*user.User, error) {
	for id, row := range r.m.users {
		if row.role == user.RoleAdmin {
			return row.toDomain(id), nil
		}
	}
	return nil, notFound()
}

func (r *memUsers) UpdateRole(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	row, ok := r.m.users[u.ID()]
	if !ok {
		return notFound()
	}
	row.role = u.Role()
	row.updatedAt = u.UpdatedAt()
	r.m.users[u.ID()] = row
	return nil
}

func (r *memUsers) UpdateCredentials(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	row, ok := r.m.users[u.ID()]
	if !ok {
		return notFound()
	}
	row.username = u.Username().Value()
	row.hash = u.PasswordHash()
	row.updatedAt = u.UpdatedAt()
	r.m.users[u.ID()] = row
	return nil
}

func (row userRow) toDomain(id uuid.UUID) *user.User {
	username, _ := user.NewUsername(row.username)
	email, _ := user.NewEmail(row.email)
	return user.ReconstructUser(id, username, email, row.phone, row.hash, row.role, row.createdAt, row.updatedAt)
}

// memReads locks only when used outside Within.
type memReads struct {
	m    *memUoW
	lock bool
}

func (r *memReads) guard() func() {
	if !r.lock {
		return func() {}
	}
	r.m.mu.Lock()
	return r.m.mu.Unlock
}

func (r *memReads) TourByID(_ context.Context, id uuid.UUID) (*shared.TourSnapshot, error) {
	defer r.guard()()
	row, ok := r.m.tours[id]
	if !ok {
		return nil, notFound()
	}
	return &shared.TourSnapshot{
		ID:             id,
		Title:          row.details.Title.Value(),
		PriceCents:     row.details.Price.Cents(),
		Duration:       row.details.Duration,
		Location:       row.details.Location,
		AvailableSeats: row.seats,
	}, nil
}

func (r *memReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	defer r.guard()()
	for id, row := range r.m.users {
		if row.email == email {
			return row.snapshot(id), nil
		}
	}
	return nil, notFound()
}

func (r *memReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	defer r.guard()()
	row, ok := r.m.users[id]
	if !ok {
		return nil, notFound()
	}
	return row.snapshot(id), nil
}

func (row userRow) snapshot(id uuid.UUID) *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           id,
		Username:     row.username,
		Email:        row.email,
		Phone:        row.phone,
		PasswordHash: row.hash,
		Role:         row.role.String(),
	}
}

// recordingCache collects invalidated tour ids.
type recordingCache struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (c *recordingCache) Invalidate(_ context.Context, ids ...uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = append(c.ids, ids...)
}

func (c *recordingCache) invalidated() []uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]uuid.UUID(nil), c.ids...)
}
