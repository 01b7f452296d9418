//go:build unit || e2e

package builder

import (
	"time"

	"tour-booking/internal/usecase/commands"
	"tour-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	TourID    uuid.UUID
	UserID    uuid.UUID
	Status    string
	TourTitle string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		TourID:    uuid.New(),
		UserID:    uuid.New(),
		Status:    "pending",
		TourTitle: "Kyoto Temples",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildResult() *commands.BookingResult {
	now := time.Now()
	return &commands.BookingResult{
		ID:        b.ID,
		TourID:    b.TourID,
		UserID:    b.UserID,
		Status:    b.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:     b.ID,
		UserID: b.UserID,
		Status: b.Status,
		Tour: queries.TourSummary{
			ID:    b.TourID,
			Title: b.TourTitle,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
