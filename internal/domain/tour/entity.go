package tour

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tour is the catalog record. availableSeats is fixed at creation; after
// that only the seat ledger moves it, so Details carries no seat field.
type Tour struct {
	id             uuid.UUID
	title          Title
	description    string
	price          Price
	duration       string
	location       string
	images         []string
	availableSeats Seats
	createdAt      time.Time
	updatedAt      time.Time
}

type Details struct {
	Title       Title
	Description string
	Price       Price
	Duration    string
	Location    string
	Images      []string
}

func (d Details) validate() error {
	if strings.TrimSpace(d.Location) == "" {
		return ErrInvalidLocation
	}
	if strings.TrimSpace(d.Duration) == "" {
		return ErrInvalidDuration
	}
	return nil
}

func NewTour(details Details, seats Seats, now time.Time) (*Tour, error) {
	if err := details.validate(); err != nil {
		return nil, err
	}
	t := &Tour{
		id:             uuid.New(),
		availableSeats: seats,
		createdAt:      now,
	}
	t.apply(details, now)
	return t, nil
}

func ReconstructTour(id uuid.UUID, details Details, seats Seats, createdAt, updatedAt time.Time) *Tour {
	t := &Tour{
		id:             id,
		availableSeats: seats,
		createdAt:      createdAt,
	}
	t.apply(details, updatedAt)
	return t
}

// Revise replaces the descriptive fields. Seat inventory is untouched.
func (t *Tour) Revise(details Details, now time.Time) error {
	if err := details.validate(); err != nil {
		return err
	}
	t.apply(details, now)
	return nil
}

func (t *Tour) apply(d Details, now time.Time) {
	t.title = d.Title
	t.description = strings.TrimSpace(d.Description)
	t.price = d.Price
	t.duration = strings.TrimSpace(d.Duration)
	t.location = strings.TrimSpace(d.Location)
	t.images = append([]string(nil), d.Images...)
	t.updatedAt = now
}

func (t *Tour) ID() uuid.UUID         { return t.id }
func (t *Tour) Title() Title          { return t.title }
func (t *Tour) Description() string   { return t.description }
func (t *Tour) Price() Price          { return t.price }
func (t *Tour) Duration() string      { return t.duration }
func (t *Tour) Location() string      { return t.location }
func (t *Tour) Images() []string      { return append([]string(nil), t.images...) }
func (t *Tour) AvailableSeats() Seats { return t.availableSeats }
func (t *Tour) CreatedAt() time.Time  { return t.createdAt }
func (t *Tour) UpdatedAt() time.Time  { return t.updatedAt }

func (t *Tour) Details() Details {
	return Details{
		Title:       t.title,
		Description: t.description,
		Price:       t.price,
		Duration:    t.duration,
		Location:    t.location,
		Images:      t.Images(),
	}
}
