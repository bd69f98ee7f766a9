package response

import (
	"time"

	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CategoryResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	PricePerNightCents int64     `json:"pricePerNightCents"`
	TotalRooms         int32     `json:"totalRooms"`
	Amenities          string    `json:"amenities"`
	ImageURLs          []string  `json:"imageUrls"`
}

type AvailabilityDayResponse struct {
	Date           time.Time `json:"date"`
	AvailableRooms int32     `json:"availableRooms"`
}

type AvailabilityResponse struct {
	CategoryID  uuid.UUID                 `json:"categoryId"`
	CheckIn     time.Time                 `json:"checkIn"`
	CheckOut    time.Time                 `json:"checkOut"`
	RoomsWanted int32                     `json:"roomsWanted"`
	Available   bool                      `json:"available"`
	Days        []AvailabilityDayResponse `json:"days"`
}

func FromCategoryView(view *queries.CategoryView) *CategoryResponse {
	var resp CategoryResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromCategoryViews(views []*queries.CategoryView) []*CategoryResponse {
	result := make([]*CategoryResponse, len(views))
	for i, v := range views {
		result[i] = FromCategoryView(v)
	}
	return result
}

func FromAvailabilityView(view *queries.AvailabilityView) *AvailabilityResponse {
	var resp AvailabilityResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
