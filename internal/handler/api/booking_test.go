//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotelcore/internal/domain/user"
	"hotelcore/internal/handler/api"
	reqdto "hotelcore/internal/handler/dto/request"
	resdto "hotelcore/internal/handler/dto/response"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/usecase/queries"
	"hotelcore/tests/common/builder"
	"hotelcore/tests/common/httptest"
	"hotelcore/tests/common/testutil"
	commandsmock "hotelcore/tests/mock/commands"
	queriesmock "hotelcore/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: an auth header puts actor info in context
	s.router.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
			c.Set("user_role", user.RoleGuest)
		}
		c.Next()
	})

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings", s.handler.ListMine)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.GET("/bookings/code/:code", s.handler.GetByCode)
	s.router.POST("/bookings/code/:code/rebook", s.handler.Rebook)
	s.router.DELETE("/bookings/code/:code", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) actor() queries.Actor {
	return queries.Actor{UserID: s.userID, Role: user.RoleGuest}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.userID })
	reqBody := bb.BuildCreateRequestDTO()
	returnView := bb.BuildView()

	s.Run("success: returns 201 Created with the booking view", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.userID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ReservationCode, response.ReservationCode)
		s.Equal(returnView.TotalPriceCents, response.TotalPriceCents)
		s.Equal(returnView.RoomNumbers, response.RoomNumbers)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing category_id", mutate: testutil.Field("category_id", nil)},
			{name: "missing check_in", mutate: testutil.Field("check_in", nil)},
			{name: "missing check_out", mutate: testutil.Field("check_out", nil)},
			{name: "zero rooms", mutate: testutil.Field("rooms_booked", 0)},
			{name: "malformed date", mutate: testutil.Field("check_in", "not-a-date")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid stay",
				commandsError:  errs.ErrInvalidStay,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Check-out date must be after check-in date",
			},
			{
				name:           "category not found",
				commandsError:  errs.ErrCategoryNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room category not found",
			},
			{
				name:           "no vacancy",
				commandsError:  errs.ErrNoVacancy,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Not enough rooms available",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestRebook() {
	b := builder.NewBookingBuilder()
	returnView := b.BuildView()
	reqBody := reqdto.RebookRequest{
		CheckIn:  b.CheckIn.AddDate(0, 0, 7),
		CheckOut: b.CheckOut.AddDate(0, 0, 7),
	}
	url := "/bookings/code/" + returnView.ReservationCode + "/rebook"

	s.Run("success: returns 201 Created with the new booking", func() {
		s.mockCommands.EXPECT().Rebook(gomock.Any(), returnView.ReservationCode, reqBody, s.actor()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ReservationCode, response.ReservationCode)
	})

	s.Run("error: 400 when the new dates are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 for an unknown code", func() {
		s.mockCommands.EXPECT().Rebook(gomock.Any(), returnView.ReservationCode, reqBody, s.actor()).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 409 when the category is fully booked", func() {
		s.mockCommands.EXPECT().Rebook(gomock.Any(), returnView.ReservationCode, reqBody, s.actor()).
			Return(nil, errs.ErrNoVacancy).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Not enough rooms available")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	returnView := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) { b.Status = "cancelled" }).
		BuildView()
	url := "/bookings/code/" + returnView.ReservationCode

	s.Run("success: returns 200 OK with the cancelled booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), returnView.ReservationCode, s.actor()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 409 when already cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), returnView.ReservationCode, s.actor()).
			Return(nil, errs.ErrAlreadyCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cancelled")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+returnView.ID.String(), nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 when booking belongs to someone else", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), returnView.ID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+returnView.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("success: returns the user's bookings", func() {
		items := []*queries.BookingListItem{
			{ID: uuid.New(), ReservationCode: "RES-AAAA1111", CategoryName: "Standard", Status: "confirmed", TotalPriceCents: 30000},
			{ID: uuid.New(), ReservationCode: "RES-BBBB2222", CategoryName: "Deluxe", Status: "cancelled", TotalPriceCents: 45000},
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("RES-AAAA1111", response[0].ReservationCode)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
