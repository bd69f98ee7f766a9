package request

import (
	"strings"
	"time"

	"hotelcore/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CategoryID    uuid.UUID `json:"category_id" binding:"required"`
	CheckIn       time.Time `json:"check_in" binding:"required"`
	CheckOut      time.Time `json:"check_out" binding:"required"`
	RoomsBooked   int       `json:"rooms_booked" binding:"required,min=1"`
	PromotionCode *string   `json:"promotion_code,omitempty"`
}

func (r CreateBookingRequest) GetPromotionCode() *string {
	if r.PromotionCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PromotionCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateBookingRequest) ToDomain() (booking.Stay, error) {
	return booking.NewStay(r.CheckIn, r.CheckOut)
}

type RebookRequest struct {
	CheckIn  time.Time `json:"check_in" binding:"required"`
	CheckOut time.Time `json:"check_out" binding:"required"`
}

func (r RebookRequest) ToDomain() (booking.Stay, error) {
	return booking.NewStay(r.CheckIn, r.CheckOut)
}

type ValidatePromotionRequest struct {
	Code string `json:"code" binding:"required"`
}
