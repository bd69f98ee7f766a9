package api

import (
	"net/http"
	"time"

	resdto "hotelcore/internal/handler/dto/response"
	"hotelcore/internal/handler/httperr"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// DeskHandler serves the reception views. Routes are mounted behind
// RequireRoleAtLeast(reception).
type DeskHandler struct {
	q     queries.DeskQueries
	clock clock.Clock
}

func NewDeskHandler(q queries.DeskQueries, clk clock.Clock) *DeskHandler {
	return &DeskHandler{q: q, clock: clk}
}

// @Summary List all bookings
// @Description List every booking in the hotel, newest first
// @Tags desk
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DeskBookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /desk/bookings [get]
func (h *DeskHandler) ListBookings(c *gin.Context) {
	rows, err := h.q.ListAllBookings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeskBookingRows(rows))
}

// @Summary Today's occupancy
// @Description Per-category free and occupied unit counts for tonight
// @Tags desk
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OccupancyResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /desk/occupancy [get]
func (h *DeskHandler) Occupancy(c *gin.Context) {
	rows, err := h.q.TodayOccupancy(c.Request.Context(), h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to read occupancy", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOccupancyRows(rows))
}

// @Summary Daily revenue
// @Description Confirmed-booking revenue grouped by check-in date
// @Tags desk
// @Produce json
// @Security BearerAuth
// @Param from query string true "Start date inclusive (YYYY-MM-DD)"
// @Param to query string true "End date exclusive (YYYY-MM-DD)"
// @Success 200 {array} resdto.RevenueResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /desk/revenue [get]
func (h *DeskHandler) Revenue(c *gin.Context) {
	from, err := time.Parse(time.DateOnly, c.Query("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from date", nil)
		return
	}
	to, err := time.Parse(time.DateOnly, c.Query("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid to date", nil)
		return
	}

	rows, err := h.q.DailyRevenue(c.Request.Context(), from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to read revenue", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRevenueRows(rows))
}

// @Summary Desk statistics
// @Description Booking totals, today's check-ins/outs and lifetime revenue
// @Tags desk
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DeskStatsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /desk/stats [get]
func (h *DeskHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context(), h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to read stats", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeskStats(stats))
}
