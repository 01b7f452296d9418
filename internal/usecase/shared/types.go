package shared

import (
	"time"

	"github.com/google/uuid"
)

// TourSnapshot is a point-in-time copy of a tour. AvailableSeats may be
// outdated by the time the caller looks at it.
type TourSnapshot struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PriceCents     int64     `json:"priceCents"`
	Duration       string    `json:"duration"`
	Location       string    `json:"location"`
	Images         []string  `json:"images"`
	AvailableSeats int32     `json:"availableSeats"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UserSnapshot carries the password hash and must never leave the use case layer.
type UserSnapshot struct {
	ID           uuid.UUID
	Username     string
	Email        string
	Phone        *string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
