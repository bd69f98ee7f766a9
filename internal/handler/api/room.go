package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	resdto "hotelcore/internal/handler/dto/response"
	"hotelcore/internal/handler/httperr"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	catalog      queries.CatalogQueries
	availability queries.AvailabilityQueries
}

func NewRoomHandler(catalog queries.CatalogQueries, availability queries.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{catalog: catalog, availability: availability}
}

// @Summary List room categories
// @Description List every room category with rates and amenities
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list room categories", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryViews(views))
}

// @Summary Get room category
// @Description Get one room category by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category ID format", nil)
		return
	}

	view, err := h.catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrCategoryNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room category not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room category", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryView(view))
}

// @Summary Search room categories by price
// @Description List categories whose nightly rate falls in [min, max] cents
// @Tags rooms
// @Produce json
// @Param min_cents query int true "Minimum nightly rate in cents"
// @Param max_cents query int true "Maximum nightly rate in cents"
// @Success 200 {array} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/search [get]
func (h *RoomHandler) Search(c *gin.Context) {
	minCents, err := strconv.ParseInt(c.Query("min_cents"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid min_cents", nil)
		return
	}
	maxCents, err := strconv.ParseInt(c.Query("max_cents"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid max_cents", nil)
		return
	}

	views, err := h.catalog.SearchByPriceRange(c.Request.Context(), minCents, maxCents)
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price range", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to search room categories", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryViews(views))
}

// @Summary Check availability
// @Description Report per-night availability of a category for a date range
// @Tags rooms
// @Produce json
// @Param id path string true "Category ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param rooms query int false "Rooms wanted (default 1)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category ID format", nil)
		return
	}

	checkIn, err := time.Parse(time.DateOnly, c.Query("check_in"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid check_in date", nil)
		return
	}
	checkOut, err := time.Parse(time.DateOnly, c.Query("check_out"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid check_out date", nil)
		return
	}

	rooms := int64(1)
	if raw := c.Query("rooms"); raw != "" {
		rooms, err = strconv.ParseInt(raw, 10, 32)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rooms count", nil)
			return
		}
	}

	view, err := h.availability.Check(c.Request.Context(), id, checkIn, checkOut, int32(rooms))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidStay):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out date must be after check-in date", nil)
		case errors.Is(err, errs.ErrInvalidRoomCount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Must request at least one room", nil)
		case errors.Is(err, errs.ErrCategoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room category not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to check availability", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
