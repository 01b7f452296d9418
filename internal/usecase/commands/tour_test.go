//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"tour-booking/internal/domain/access"
	"tour-booking/internal/infra"
	"tour-booking/internal/pkg/clock"
	"tour-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTourCommands() (*memUoW, *recordingCache, TourCommands) {
	uow := newMemUoW()
	cache := &recordingCache{}
	clk := clock.NewFixedClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	return uow, cache, NewTourCommands(uow, cache, clk)
}

func TestTourCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("admin creates", func(t *testing.T) {
		uow, _, cmds := newTourCommands()

		id, err := cmds.Create(ctx, admin(), CreateTourInput{
			Title:          "Mount Fuji Sunrise",
			PriceCents:     45000,
			Duration:       "2 days",
			Location:       "Shizuoka",
			Images:         []string{"fuji.jpg"},
			AvailableSeats: 12,
		})

		require.NoError(t, err)
		assert.Equal(t, int32(12), uow.seats(id))
	})

	t.Run("user denied", func(t *testing.T) {
		uow, _, cmds := newTourCommands()

		_, err := cmds.Create(ctx, member(), CreateTourInput{Title: "x", Duration: "1 day", Location: "Nara"})

		assert.ErrorIs(t, err, access.ErrAuthorizationDenied)
		assert.Empty(t, uow.tours)
	})

	invalid := []struct {
		name string
		in   CreateTourInput
	}{
		{name: "empty title", in: CreateTourInput{Duration: "1 day", Location: "Nara", AvailableSeats: 1}},
		{name: "negative price", in: CreateTourInput{Title: "Nara", PriceCents: -1, Duration: "1 day", Location: "Nara"}},
		{name: "negative seats", in: CreateTourInput{Title: "Nara", Duration: "1 day", Location: "Nara", AvailableSeats: -1}},
		{name: "missing location", in: CreateTourInput{Title: "Nara", Duration: "1 day"}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, _, cmds := newTourCommands()

			_, err := cmds.Create(ctx, admin(), tt.in)

			assert.True(t, errs.Is(err, ErrDomainValidationFailed), "got %v", err)
		})
	}
}

func TestTourCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps seats", func(t *testing.T) {
		uow, cache, cmds := newTourCommands()
		id := uow.addTour(7)
		title := "Kyoto by Night"

		require.NoError(t, cmds.Update(ctx, admin(), id, UpdateTourInput{Title: &title}))

		row := uow.tours[id]
		assert.Equal(t, "Kyoto by Night", row.details.Title.Value())
		assert.Equal(t, "Kyoto", row.details.Location)
		assert.Equal(t, int32(7), row.seats)
		assert.Equal(t, []uuid.UUID{id}, cache.invalidated())
	})

	t.Run("missing tour", func(t *testing.T) {
		_, _, cmds := newTourCommands()

		err := cmds.Update(ctx, admin(), uuid.New(), UpdateTourInput{})

		assert.ErrorIs(t, err, ErrTourNotFound)
	})
}

func TestTourCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("tour without bookings", func(t *testing.T) {
		uow, cache, cmds := newTourCommands()
		id := uow.addTour(3)

		require.NoError(t, cmds.Delete(ctx, admin(), id))
		assert.NotContains(t, uow.tours, id)
		assert.Equal(t, []uuid.UUID{id}, cache.invalidated())
	})

	t.Run("tour with bookings", func(t *testing.T) {
		uow, _, cmds := newTourCommands()
		id := uow.addTour(3)
		clk := clock.NewFixedClock(time.Now())
		_, err := NewBookingCommands(uow, NewSeatLedger(uow, clk), &recordingCache{}, clk).Create(ctx, member(), id)
		require.NoError(t, err)

		err = cmds.Delete(ctx, admin(), id)

		assert.ErrorIs(t, err, ErrTourHasBookings)
		assert.Contains(t, uow.tours, id)
	})

	t.Run("missing tour", func(t *testing.T) {
		_, _, cmds := newTourCommands()

		assert.ErrorIs(t, cmds.Delete(ctx, admin(), uuid.New()), ErrTourNotFound)
	})
}

func TestSeatLedger_GetTour(t *testing.T) {
	uow := newMemUoW()
	ledger := NewSeatLedger(uow, clock.NewRealClock())
	id := uow.addTour(4)

	snap, err := ledger.GetTour(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int32(4), snap.AvailableSeats)

	_, err = ledger.GetTour(context.Background(), uuid.New())
	assert.True(t, errs.Is(err, ErrTourNotFound))
	assert.True(t, infra.IsKind(err, infra.KindNotFound), "display reads map the repository kind")
}
