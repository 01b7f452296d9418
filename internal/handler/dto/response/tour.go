package response

import (
	"time"

	"tour-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type TourResponse struct {
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

func FromTourView(v *queries.TourView) (*TourResponse, error) {
	res, err := mapInto[TourResponse](v)
	if err != nil {
		return nil, err
	}
	if res.Images == nil {
		res.Images = []string{}
	}
	return res, nil
}

func FromTourList(views []*queries.TourView) ([]*TourResponse, error) {
	out := make([]*TourResponse, 0, len(views))
	for _, v := range views {
		res, err := FromTourView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

type MessageResponse struct {
	Message string `json:"message"`
}
