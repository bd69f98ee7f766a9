package api

import (
	"errors"
	"net/http"

	reqdto "hotelcore/internal/handler/dto/request"
	resdto "hotelcore/internal/handler/dto/response"
	"hotelcore/internal/handler/httperr"
	"hotelcore/internal/handler/middleware"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/usecase/commands"
	"hotelcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book rooms of a category for a date range
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrInvalidCredentials, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req, userID)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Rebook
// @Description Book the same category and room count as an existing booking on new dates
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Reservation code"
// @Param request body reqdto.RebookRequest true "New stay dates"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{code}/rebook [post]
func (h *BookingHandler) Rebook(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrInvalidCredentials, "Unauthorized", nil)
		return
	}

	var req reqdto.RebookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Rebook(c.Request.Context(), c.Param("code"), req, actor)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking and release its rooms
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param code path string true "Reservation code"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{code} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrInvalidCredentials, "Unauthorized", nil)
		return
	}

	view, err := h.cmds.Cancel(c.Request.Context(), c.Param("code"), actor)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrInvalidCredentials, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking by code
// @Description Get a booking by reservation code
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param code path string true "Reservation code"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/code/{code} [get]
func (h *BookingHandler) GetByCode(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrInvalidCredentials, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetByCode(c.Request.Context(), actor, c.Param("code"))
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List the current user's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrInvalidCredentials, "Unauthorized", nil)
		return
	}

	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

func currentActor(c *gin.Context) (queries.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return queries.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return queries.Actor{}, false
	}
	return queries.Actor{UserID: userID, Role: role}, true
}

func abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidStay):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out date must be after check-in date", nil)
	case errors.Is(err, errs.ErrInvalidRoomCount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Must book at least one room", nil)
	case errors.Is(err, errs.ErrCategoryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room category not found", nil)
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrNoVacancy):
		httperr.AbortWithError(c, http.StatusConflict, err, "Not enough rooms available for the requested dates", nil)
	case errors.Is(err, errs.ErrAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already cancelled", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
