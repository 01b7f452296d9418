//go:build unit || e2e

package builder

import (
	"time"

	reqdto "tour-booking/internal/handler/dto/request"
	"tour-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type TourBuilder struct {
	ID             uuid.UUID
	Title          string
	Description    string
	PriceCents     int64
	Duration       string
	Location       string
	Images         []string
	AvailableSeats int32
}

func NewTourBuilder() *TourBuilder {
	return &TourBuilder{
		ID:             uuid.New(),
		Title:          "Kyoto Temples",
		Description:    "A guided walk through the eastern hills",
		PriceCents:     15000,
		Duration:       "1 day",
		Location:       "Kyoto",
		Images:         []string{"https://img.example.com/kyoto.jpg"},
		AvailableSeats: 10,
	}
}

func (b *TourBuilder) With(mutate func(*TourBuilder)) *TourBuilder {
	mutate(b)
	return b
}

func (b *TourBuilder) WithSeats(n int32) *TourBuilder {
	b.AvailableSeats = n
	return b
}

func (b *TourBuilder) WithTitle(title string) *TourBuilder {
	b.Title = title
	return b
}

func (b *TourBuilder) BuildCreateRequest() reqdto.CreateTourRequest {
	seats := b.AvailableSeats
	return reqdto.CreateTourRequest{
		Title:          b.Title,
		Description:    b.Description,
		PriceCents:     b.PriceCents,
		Duration:       b.Duration,
		Location:       b.Location,
		Images:         b.Images,
		AvailableSeats: &seats,
	}
}

func (b *TourBuilder) BuildView() *queries.TourView {
	now := time.Now()
	return &queries.TourView{
		ID:             b.ID,
		Title:          b.Title,
		Description:    b.Description,
		PriceCents:     b.PriceCents,
		Duration:       b.Duration,
		Location:       b.Location,
		Images:         b.Images,
		AvailableSeats: b.AvailableSeats,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
