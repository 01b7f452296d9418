package request

import "github.com/google/uuid"

type CreateBookingRequest struct {
	TourID uuid.UUID `json:"tourId" binding:"required"`
}

// Status is validated by the booking state machine, not by the binder, so an
// unknown value surfaces as the domain error.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
