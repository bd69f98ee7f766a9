package api

import (
	"net/http"

	reqdto "hotelcore/internal/handler/dto/request"
	resdto "hotelcore/internal/handler/dto/response"
	"hotelcore/internal/handler/httperr"
	"hotelcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	q queries.PromotionQueries
}

func NewPromotionHandler(q queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{q: q}
}

// @Summary Validate promotion code
// @Description Check whether a promotion code is currently redeemable
// @Tags promotions
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromotionRequest true "Promotion code"
// @Success 200 {object} resdto.PromotionValidationResponse
// @Failure 400 {object} map[string]string
// @Router /promotions/validate [post]
func (h *PromotionHandler) Validate(c *gin.Context) {
	var req reqdto.ValidatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.q.Validate(c.Request.Context(), req.Code)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to validate promotion", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionValidation(view))
}
