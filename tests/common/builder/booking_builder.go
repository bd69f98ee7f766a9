//go:build unit || e2e

package builder

import (
	"time"

	dombooking "hotelcore/internal/domain/booking"
	reqdto "hotelcore/internal/handler/dto/request"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID             uuid.UUID
	UserEmail          string
	GuestName          string
	CategoryID         uuid.UUID
	CategoryName       string
	CheckIn            time.Time
	CheckOut           time.Time
	RoomsBooked        int
	PromotionCode      *string
	NightlyRateCents   int64
	OriginalPriceCents int64
	DiscountCents      int64
	TotalPriceCents    int64
	Status             string
	CreatedAt          time.Time
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		UserID:             uuid.New(),
		UserEmail:          "guest@example.com",
		GuestName:          "Test Guest",
		CategoryID:         uuid.New(),
		CategoryName:       "Standard",
		CheckIn:            checkIn,
		CheckOut:           checkIn.AddDate(0, 0, 3),
		RoomsBooked:        1,
		NightlyRateCents:   10000,
		OriginalPriceCents: 30000,
		DiscountCents:      0,
		TotalPriceCents:    30000,
		Status:             "confirmed",
		CreatedAt:          time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildStay() (dombooking.Stay, error) {
	return dombooking.NewStay(b.CheckIn, b.CheckOut)
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	stay, err := b.BuildStay()
	if err != nil {
		return nil, err
	}

	original, err := dombooking.NewMoney(b.OriginalPriceCents)
	if err != nil {
		return nil, err
	}
	discount, err := dombooking.NewMoney(b.DiscountCents)
	if err != nil {
		return nil, err
	}
	total, err := dombooking.NewMoney(b.TotalPriceCents)
	if err != nil {
		return nil, err
	}
	quote := dombooking.Quote{
		Original:      original,
		Discount:      discount,
		Total:         total,
		LoyaltyPoints: total.Cents() / 10,
	}

	assigned := make([]uuid.UUID, b.RoomsBooked)
	for i := range assigned {
		assigned[i] = uuid.New()
	}

	return dombooking.NewBooking(b.UserID, b.CategoryID, stay, b.RoomsBooked, quote, assigned)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CategoryID:    b.CategoryID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		RoomsBooked:   b.RoomsBooked,
		PromotionCode: b.PromotionCode,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:                 uuid.New(),
		ReservationCode:    dombooking.NewReservationCode().String(),
		UserID:             b.UserID,
		UserEmail:          b.UserEmail,
		GuestName:          b.GuestName,
		CategoryID:         b.CategoryID,
		CategoryName:       b.CategoryName,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		RoomsBooked:        int32(b.RoomsBooked),
		Status:             b.Status,
		OriginalPriceCents: b.OriginalPriceCents,
		DiscountCents:      b.DiscountCents,
		TotalPriceCents:    b.TotalPriceCents,
		RoomNumbers:        []string{"101"},
		CreatedAt:          b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:                 uuid.New(),
		Code:               dombooking.NewReservationCode().String(),
		UserID:             b.UserID,
		CategoryID:         b.CategoryID,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		RoomsBooked:        int32(b.RoomsBooked),
		Status:             b.Status,
		OriginalPriceCents: b.OriginalPriceCents,
		DiscountCents:      b.DiscountCents,
		TotalPriceCents:    b.TotalPriceCents,
		AssignedRoomIDs:    []uuid.UUID{uuid.New()},
		CreatedAt:          b.CreatedAt,
	}
}
