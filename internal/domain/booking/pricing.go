package booking

import (
	"time"

	"hotelcore/internal/domain/promotion"
)

// Quote is the price breakdown for one booking attempt. All amounts are
// integer cents; loyalty points accrue at 10% of the total, floored.
type Quote struct {
	Original      Money
	Discount      Money
	Total         Money
	LoyaltyPoints int64
}

type PriceCalculator interface {
	Quote(nightlyRateCents int64, stay Stay, roomCount int, promo *promotion.Promotion, asOf time.Time) (Quote, error)
}

type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (pc *NightlyPriceCalculator) Quote(
	nightlyRateCents int64,
	stay Stay,
	roomCount int,
	promo *promotion.Promotion,
	asOf time.Time,
) (Quote, error) {
	if roomCount < 1 {
		return Quote{}, ErrInvalidRoomCount
	}

	original, err := NewMoney(int64(stay.Nights()) * nightlyRateCents * int64(roomCount))
	if err != nil {
		return Quote{}, err
	}

	// An unknown, inactive, or expired promotion is not an error: the
	// booking proceeds at full price and the caller sees a zero discount.
	discount := Money{}
	if promo != nil && promo.IsRedeemableAt(asOf) {
		discount, err = NewMoney(original.Cents() * int64(promo.DiscountPercentage()) / 100)
		if err != nil {
			return Quote{}, err
		}
	}

	total, err := original.Sub(discount)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Original:      original,
		Discount:      discount,
		Total:         total,
		LoyaltyPoints: total.Cents() / 10,
	}, nil
}
