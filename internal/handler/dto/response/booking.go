package response

import (
	"time"

	"tour-booking/internal/usecase/commands"
	"tour-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingTourResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Location   string    `json:"location,omitempty"`
	PriceCents int64     `json:"priceCents,omitempty"`
}

type BookingUserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Phone    *string   `json:"phone,omitempty"`
}

type BookingResponse struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"userId"`
	Status    string               `json:"status"`
	Tour      BookingTourResponse  `json:"tour"`
	User      *BookingUserResponse `json:"user,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	return mapInto[BookingResponse](v)
}

func FromBookingList(views []*queries.BookingView) ([]*BookingResponse, error) {
	return mapEach[BookingResponse](views)
}

// BookingCreatedResponse is returned right after a write, before any join
// with tour or user data.
type BookingCreatedResponse struct {
	ID        uuid.UUID `json:"id"`
	TourID    uuid.UUID `json:"tourId"`
	UserID    uuid.UUID `json:"userId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromBookingResult(r *commands.BookingResult) (*BookingCreatedResponse, error) {
	return mapInto[BookingCreatedResponse](r)
}
