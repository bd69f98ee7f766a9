package booking

import (
	"hotelcore/internal/domain/category"
	"hotelcore/internal/domain/promotion"
	"hotelcore/internal/domain/room"
	"hotelcore/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateBooking assembles a Confirmed booking from an already-allocated set
// of units. Conflict scanning and allocation happen in the usecase layer,
// inside the transaction that also reserves the ledger nights. The quote is
// returned alongside the booking so callers can credit loyalty points.
func (f *Factory) CreateBooking(
	cat *category.Category,
	userID uuid.UUID,
	stay Stay,
	roomsBooked int,
	promo *promotion.Promotion,
	assigned []room.Room,
) (*Booking, Quote, error) {
	quote, err := f.PriceCalculator.Quote(cat.PricePerNightCents(), stay, roomsBooked, promo, f.Clock.Now())
	if err != nil {
		return nil, Quote{}, err
	}

	roomIDs := make([]uuid.UUID, len(assigned))
	for i, r := range assigned {
		roomIDs[i] = r.ID()
	}

	b, err := NewBooking(userID, cat.ID(), stay, roomsBooked, quote, roomIDs)
	if err != nil {
		return nil, Quote{}, err
	}
	return b, quote, nil
}
