//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is the plain password of every user created by CreateTestUser.
const DefaultPassword = "password123"

var (
	hashOnce   sync.Once
	cachedHash string
)

func defaultHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.Hash(DefaultPassword)
		require.NoError(t, err)
		cachedHash = h
	})
	return cachedHash
}

func CreateTestUser(t *testing.T, db Conn, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	username := strings.SplitN(email, "@", 2)[0]
	if len(username) < 3 {
		username += "___"
	}

	ctx := context.Background()
	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now(), now())
		 ON CONFLICT (email) DO NOTHING`,
		userID, username, email, defaultHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

func CreateTestTour(t *testing.T, db Conn, title string, seats int32) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO tours (id, title, description, price_cents, duration, location, images, available_seats, created_at, updated_at)
		 VALUES ($1, $2, '', 10000, '1 day', 'Kyoto', '{}', $3, now(), now())`,
		id, title, seats)
	require.NoError(t, err)
	return id
}

func TourSeats(t *testing.T, db Conn, id uuid.UUID) int32 {
	t.Helper()

	var seats int32
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT available_seats FROM tours WHERE id = $1", id).Scan(&seats))
	return seats
}

func BookingStatus(t *testing.T, db Conn, id uuid.UUID) string {
	t.Helper()

	var status string
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT status FROM bookings WHERE id = $1", id).Scan(&status))
	return status
}

func CountBookings(t *testing.T, db Conn, tourID uuid.UUID) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE tour_id = $1", tourID).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       string
	truncateErr       error
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateErr = err
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateErr = err
				return
			}
			tables = append(tables, t)
		}
		if err := rows.Err(); err != nil {
			truncateErr = err
			return
		}
		if len(tables) == 0 {
			truncateSQL = "SELECT 1"
			return
		}
		truncateSQL = "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;"
	})
	if truncateErr != nil {
		return errs.Wrap(truncateErr, "failed to build TRUNCATE SQL")
	}

	_, err := pool.Exec(ctx, truncateSQL)
	return err
}
