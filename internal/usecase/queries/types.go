package queries

import (
	"time"

	"github.com/google/uuid"
)

// TourView is what the catalog shows. AvailableSeats is a display value and
// may lag behind the ledger when served from cache.
type TourView struct {
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

type TourSummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Location   string    `json:"location,omitempty"`
	PriceCents int64     `json:"priceCents,omitempty"`
}

type BookingUserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Phone    *string   `json:"phone,omitempty"`
}

type BookingView struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"userId"`
	Status    string              `json:"status"`
	Tour      TourSummary         `json:"tour"`
	User      *BookingUserSummary `json:"user,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
