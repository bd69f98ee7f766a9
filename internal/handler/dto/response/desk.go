package response

import (
	"time"

	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DeskBookingResponse struct {
	ID              uuid.UUID `json:"id"`
	ReservationCode string    `json:"reservationCode"`
	GuestName       string    `json:"guestName"`
	GuestEmail      string    `json:"guestEmail"`
	CategoryName    string    `json:"categoryName"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	RoomsBooked     int32     `json:"roomsBooked"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	CreatedAt       time.Time `json:"createdAt"`
}

type OccupancyResponse struct {
	CategoryID         uuid.UUID `json:"categoryId"`
	CategoryName       string    `json:"categoryName"`
	TotalRooms         int32     `json:"totalRooms"`
	AvailableToday     int32     `json:"availableToday"`
	OccupiedToday      int32     `json:"occupiedToday"`
	PricePerNightCents int64     `json:"pricePerNightCents"`
}

type RevenueResponse struct {
	Date         time.Time `json:"date"`
	Bookings     int64     `json:"bookings"`
	RevenueCents int64     `json:"revenueCents"`
}

type DeskStatsResponse struct {
	TotalBookings     int64 `json:"totalBookings"`
	ConfirmedBookings int64 `json:"confirmedBookings"`
	TodayCheckIns     int64 `json:"todayCheckIns"`
	TodayCheckOuts    int64 `json:"todayCheckOuts"`
	TotalRevenueCents int64 `json:"totalRevenueCents"`
}

func FromDeskBookingRows(rows []*queries.DeskBookingRow) []*DeskBookingResponse {
	result := make([]*DeskBookingResponse, len(rows))
	for i, row := range rows {
		resp := &DeskBookingResponse{}
		_ = copier.Copy(resp, row)
		result[i] = resp
	}
	return result
}

func FromOccupancyRows(rows []*queries.OccupancyRow) []*OccupancyResponse {
	result := make([]*OccupancyResponse, len(rows))
	for i, row := range rows {
		resp := &OccupancyResponse{}
		_ = copier.Copy(resp, row)
		result[i] = resp
	}
	return result
}

func FromRevenueRows(rows []*queries.RevenueRow) []*RevenueResponse {
	result := make([]*RevenueResponse, len(rows))
	for i, row := range rows {
		resp := &RevenueResponse{}
		_ = copier.Copy(resp, row)
		result[i] = resp
	}
	return result
}

func FromDeskStats(stats *queries.DeskStats) *DeskStatsResponse {
	resp := &DeskStatsResponse{}
	_ = copier.Copy(resp, stats)
	return resp
}
