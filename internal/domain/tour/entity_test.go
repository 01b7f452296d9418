//go:build unit

package tour_test

import (
	"testing"
	"time"

	"tour-booking/internal/domain/tour"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails(t *testing.T) tour.Details {
	t.Helper()
	title, err := tour.NewTitle("  Kyoto Temples Walk ")
	require.NoError(t, err)
	price, err := tour.NewPrice(12000)
	require.NoError(t, err)
	return tour.Details{
		Title:       title,
		Description: "Half-day walking tour",
		Price:       price,
		Duration:    "4 hours",
		Location:    "Kyoto",
		Images:      []string{"https://img.example.com/kyoto.jpg"},
	}
}

func TestNewTour(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	seats, err := tour.NewSeats(20)
	require.NoError(t, err)

	got, err := tour.NewTour(validDetails(t), seats, now)
	require.NoError(t, err)

	assert.Equal(t, "Kyoto Temples Walk", got.Title().Value())
	assert.Equal(t, int32(20), got.AvailableSeats().Value())
	assert.Equal(t, now, got.CreatedAt())
	if diff := cmp.Diff(validDetails(t), got.Details(), cmp.AllowUnexported(tour.Title{}, tour.Price{})); diff != "" {
		t.Errorf("Details mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTour_Validation(t *testing.T) {
	seats, _ := tour.NewSeats(1)

	t.Run("missing location", func(t *testing.T) {
		d := validDetails(t)
		d.Location = " "
		_, err := tour.NewTour(d, seats, time.Now())
		assert.ErrorIs(t, err, tour.ErrInvalidLocation)
	})

	t.Run("missing duration", func(t *testing.T) {
		d := validDetails(t)
		d.Duration = ""
		_, err := tour.NewTour(d, seats, time.Now())
		assert.ErrorIs(t, err, tour.ErrInvalidDuration)
	})
}

func TestValueObjects(t *testing.T) {
	_, err := tour.NewSeats(-1)
	assert.ErrorIs(t, err, tour.ErrNegativeSeats)

	_, err = tour.NewPrice(-1)
	assert.ErrorIs(t, err, tour.ErrNegativePrice)

	_, err = tour.NewTitle("")
	assert.ErrorIs(t, err, tour.ErrInvalidTitle)

	zero, err := tour.NewSeats(0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), zero.Value())
}

func TestRevise_KeepsSeats(t *testing.T) {
	seats, _ := tour.NewSeats(7)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tr, err := tour.NewTour(validDetails(t), seats, created)
	require.NoError(t, err)

	d := validDetails(t)
	d.Location = "Nara"
	revised := created.Add(time.Hour)
	require.NoError(t, tr.Revise(d, revised))

	assert.Equal(t, "Nara", tr.Location())
	assert.Equal(t, int32(7), tr.AvailableSeats().Value())
	assert.Equal(t, revised, tr.UpdatedAt())
	assert.Equal(t, created, tr.CreatedAt())
}
