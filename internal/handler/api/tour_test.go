//go:build unit

package api_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"tour-booking/internal/domain/access"
	"tour-booking/internal/domain/user"
	"tour-booking/internal/handler/api"
	resdto "tour-booking/internal/handler/dto/response"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/usecase/commands"
	"tour-booking/internal/usecase/queries"
	"tour-booking/tests/common/builder"
	"tour-booking/tests/common/httptest"
	"tour-booking/tests/common/testutil"
	commandsmock "tour-booking/tests/mock/commands"
	queriesmock "tour-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TourHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTourCommands
	mockQueries  *queriesmock.MockTourQueries
	handler      *api.TourHandler
	userID       uuid.UUID
}

func (s *TourHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTourCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTourQueries(s.mockCtrl)
	s.handler = api.NewTourHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()
}

func (s *TourHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTourHandlerSuite(t *testing.T) {
	suite.Run(t, new(TourHandlerTestSuite))
}

func (s *TourHandlerTestSuite) router(role user.Role) *gin.Engine {
	r := gin.New()
	auth := fakeAuth(s.userID, role)
	r.GET("/tours", s.handler.List)
	r.GET("/tours/:id", s.handler.Get)
	r.POST("/tours", auth, s.handler.Create)
	r.PUT("/tours/:id", auth, s.handler.Update)
	r.DELETE("/tours/:id", auth, s.handler.Delete)
	return r
}

func (s *TourHandlerTestSuite) do(method, path string, body any, role user.Role, token string) *nethttptest.ResponseRecorder {
	s.T().Helper()
	return httptest.PerformRequest(s.T(), s.router(role), method, path, body, token)
}

func (s *TourHandlerTestSuite) TestList() {
	s.Run("public: no token needed", func() {
		views := []*queries.TourView{
			builder.NewTourBuilder().BuildView(),
			builder.NewTourBuilder().WithTitle("Nara Deer Park").With(func(b *builder.TourBuilder) { b.Images = nil }).BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil)

		rec := s.do(http.MethodGet, "/tours", nil, user.RoleUser, "")

		var res []resdto.TourResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.Equal("Kyoto Temples", res[0].Title)
		s.Equal(int32(10), res[0].AvailableSeats)
		s.NotNil(res[1].Images)
		s.Empty(res[1].Images)
	})

	s.Run("store failure is a 500", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errs.New("boom"))

		rec := s.do(http.MethodGet, "/tours", nil, user.RoleUser, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *TourHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewTourBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := s.do(http.MethodGet, "/tours/"+view.ID.String(), nil, user.RoleUser, "")

		var res resdto.TourResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.ID, res.ID)
		s.Equal(view.PriceCents, res.PriceCents)
	})

	s.Run("unknown id is a 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrTourNotFound)

		rec := s.do(http.MethodGet, "/tours/"+id.String(), nil, user.RoleUser, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Tour not found")
	})

	s.Run("malformed id is a 400", func() {
		rec := s.do(http.MethodGet, "/tours/xyz", nil, user.RoleUser, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid tour id")
	})

	s.Run("unmappable view is a 500, not a panic", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

		rec := s.do(http.MethodGet, "/tours/"+id.String(), nil, user.RoleUser, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *TourHandlerTestSuite) TestCreate() {
	req := builder.NewTourBuilder().BuildCreateRequest()

	s.Run("admin: 201 with the stored tour", func() {
		view := builder.NewTourBuilder().BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), principal(s.userID, user.RoleAdmin), req.ToInput()).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := s.do(http.MethodPost, "/tours", req, user.RoleAdmin, "token")

		var res resdto.TourResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(view.ID, res.ID)
	})

	s.Run("user: 403 from the gate", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), principal(s.userID, user.RoleUser), gomock.Any()).
			Return(uuid.Nil, access.ErrAuthorizationDenied)

		rec := s.do(http.MethodPost, "/tours", req, user.RoleUser, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("no token: 401", func() {
		rec := s.do(http.MethodPost, "/tours", req, user.RoleAdmin, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("binding failures: 400", func() {
		cases := map[string]func(map[string]any){
			"missing title":    testutil.Field("title", nil),
			"missing seats":    testutil.Field("availableSeats", nil),
			"negative seats":   testutil.Field("availableSeats", -1),
			"negative price":   testutil.Field("priceCents", -100),
			"missing location": testutil.Field("location", nil),
		}
		for name, mutate := range cases {
			s.Run(name, func() {
				rec := s.do(http.MethodPost, "/tours", testutil.DtoMap(s.T(), req, mutate), user.RoleAdmin, "token")

				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("zero seats is accepted", func() {
		body := testutil.DtoMap(s.T(), req, testutil.Field("availableSeats", 0))
		view := builder.NewTourBuilder().WithSeats(0).BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ access.Principal, in commands.CreateTourInput) (uuid.UUID, error) {
				s.Equal(int32(0), in.AvailableSeats)
				return view.ID, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := s.do(http.MethodPost, "/tours", body, user.RoleAdmin, "token")

		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("domain validation: 400 with detail", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("title is too long"), commands.ErrDomainValidationFailed))

		rec := s.do(http.MethodPost, "/tours", req, user.RoleAdmin, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
		s.Contains(rec.Body.String(), "title is too long")
	})
}

func (s *TourHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	path := "/tours/" + id.String()

	s.Run("partial update passes only the sent fields", func() {
		view := builder.NewTourBuilder().With(func(b *builder.TourBuilder) { b.ID = id }).WithTitle("Renamed").BuildView()
		s.mockCommands.EXPECT().Update(gomock.Any(), principal(s.userID, user.RoleAdmin), id, gomock.Any()).
			DoAndReturn(func(_ any, _ access.Principal, _ uuid.UUID, in commands.UpdateTourInput) error {
				s.Require().NotNil(in.Title)
				s.Equal("Renamed", *in.Title)
				s.Nil(in.Description)
				s.Nil(in.PriceCents)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil)

		rec := s.do(http.MethodPut, path, map[string]any{"title": "Renamed"}, user.RoleAdmin, "token")

		var res resdto.TourResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("Renamed", res.Title)
		s.Equal(view.AvailableSeats, res.AvailableSeats)
	})

	s.Run("missing tour: 404", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(commands.ErrTourNotFound)

		rec := s.do(http.MethodPut, path, map[string]any{"title": "x"}, user.RoleAdmin, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Tour not found")
	})
}

func (s *TourHandlerTestSuite) TestDelete() {
	id := uuid.New()
	path := "/tours/" + id.String()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), principal(s.userID, user.RoleAdmin), id).Return(nil)

		rec := s.do(http.MethodDelete, path, nil, user.RoleAdmin, "token")

		var res resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("Tour deleted successfully", res.Message)
	})

	s.Run("tour with bookings: 409", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(commands.ErrTourHasBookings)

		rec := s.do(http.MethodDelete, path, nil, user.RoleAdmin, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "has bookings")
	})

	s.Run("user: 403", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(access.ErrAuthorizationDenied)

		rec := s.do(http.MethodDelete, path, nil, user.RoleUser, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
