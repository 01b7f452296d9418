package request

import "tour-booking/internal/usecase/commands"

type CreateTourRequest struct {
	Title          string   `json:"title" binding:"required,max=200"`
	Description    string   `json:"description"`
	PriceCents     int64    `json:"priceCents" binding:"min=0"`
	Duration       string   `json:"duration" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	Images         []string `json:"images"`
	AvailableSeats *int32   `json:"availableSeats" binding:"required,min=0"`
}

func (r *CreateTourRequest) ToInput() commands.CreateTourInput {
	return commands.CreateTourInput{
		Title:          r.Title,
		Description:    r.Description,
		PriceCents:     r.PriceCents,
		Duration:       r.Duration,
		Location:       r.Location,
		Images:         r.Images,
		AvailableSeats: *r.AvailableSeats,
	}
}

// UpdateTourRequest has no seat field. The server decodes JSON with unknown
// fields disallowed, so a body carrying availableSeats is rejected.
type UpdateTourRequest struct {
	Title       *string   `json:"title" binding:"omitempty,max=200"`
	Description *string   `json:"description"`
	PriceCents  *int64    `json:"priceCents" binding:"omitempty,min=0"`
	Duration    *string   `json:"duration"`
	Location    *string   `json:"location"`
	Images      *[]string `json:"images"`
}

func (r *UpdateTourRequest) ToInput() commands.UpdateTourInput {
	return commands.UpdateTourInput{
		Title:       r.Title,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		Duration:    r.Duration,
		Location:    r.Location,
		Images:      r.Images,
	}
}
