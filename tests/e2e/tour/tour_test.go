//go:build e2e

package tour_test

import (
	"net/http"
	"testing"

	"tour-booking/internal/domain/user"
	resdto "tour-booking/internal/handler/dto/response"
	"tour-booking/tests/common/authtest"
	"tour-booking/tests/common/builder"
	"tour-booking/tests/common/dbtest"
	"tour-booking/tests/common/httptest"
	"tour-booking/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const toursURL = "/api/tours"

type tourSuite struct {
	e2e.SharedSuite
}

func TestTourSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(tourSuite))
}

func (s *tourSuite) TestCatalogue() {
	s.Run("admin creates, anyone reads, members cannot write", func() {
		admin := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		member := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "member@example.com", string(user.RoleUser))
		req := builder.NewTourBuilder().WithSeats(4).BuildCreateRequest()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, toursURL, req, member)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, toursURL, req, admin)
		var created resdto.TourResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal(int32(4), created.AvailableSeats)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, toursURL+"/"+created.ID.String(), nil, "")
		var got resdto.TourResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal(req.Title, got.Title)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, toursURL, nil, "")
		var list []resdto.TourResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Len(list, 1)
	})

	s.Run("update keeps the seat counter", func() {
		admin := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		id := dbtest.CreateTestTour(s.T(), s.DB, "Old title", 7)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, toursURL+"/"+id.String(), map[string]any{"title": "New title"}, admin)
		var res resdto.TourResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("New title", res.Title)
		s.Equal(int32(7), res.AvailableSeats)
	})

	s.Run("tours with bookings cannot be deleted", func() {
		admin := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		member := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "member@example.com", string(user.RoleUser))
		id := dbtest.CreateTestTour(s.T(), s.DB, "Busy tour", 2)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", map[string]any{"tourId": id}, member)
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, toursURL+"/"+id.String(), nil, admin)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "has bookings")

		empty := dbtest.CreateTestTour(s.T(), s.DB, "Quiet tour", 2)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, toursURL+"/"+empty.String(), nil, admin)
		s.Equal(http.StatusOK, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, toursURL+"/"+empty.String(), nil, "")
		s.Equal(http.StatusNotFound, w.Code)
	})
}
