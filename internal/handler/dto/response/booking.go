package response

import (
	"time"

	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                 uuid.UUID `json:"id"`
	ReservationCode    string    `json:"reservationCode"`
	UserID             uuid.UUID `json:"userId"`
	UserEmail          string    `json:"userEmail"`
	GuestName          string    `json:"guestName"`
	CategoryID         uuid.UUID `json:"categoryId"`
	CategoryName       string    `json:"categoryName"`
	CheckIn            time.Time `json:"checkIn"`
	CheckOut           time.Time `json:"checkOut"`
	RoomsBooked        int32     `json:"roomsBooked"`
	Status             string    `json:"status"`
	OriginalPriceCents int64     `json:"originalPriceCents"`
	DiscountCents      int64     `json:"discountCents"`
	TotalPriceCents    int64     `json:"totalPriceCents"`
	RoomNumbers        []string  `json:"roomNumbers"`
	CreatedAt          time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	ReservationCode string    `json:"reservationCode"`
	CategoryName    string    `json:"categoryName"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	RoomsBooked     int32     `json:"roomsBooked"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, item)
	return &resp
}
