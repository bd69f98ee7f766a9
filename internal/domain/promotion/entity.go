package promotion

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")

// Promotion is an administrator-managed discount code. The booking flow
// only ever reads it.
type Promotion struct {
	id                 uuid.UUID
	code               string
	discountPercentage int
	expiryDate         time.Time
	active             bool
	description        string
}

func NewPromotion(id uuid.UUID, code string, discountPercentage int, expiryDate time.Time, active bool, description string) (*Promotion, error) {
	if discountPercentage < 0 || discountPercentage > 100 {
		return nil, ErrInvalidDiscount
	}
	return &Promotion{
		id:                 id,
		code:               code,
		discountPercentage: discountPercentage,
		expiryDate:         expiryDate,
		active:             active,
		description:        description,
	}, nil
}

// IsRedeemableAt reports whether the code applies on the given evaluation
// date: it must be active and its expiry date strictly after that date.
func (p *Promotion) IsRedeemableAt(t time.Time) bool {
	return p.active && p.expiryDate.After(t)
}

func (p *Promotion) ID() uuid.UUID          { return p.id }
func (p *Promotion) Code() string           { return p.code }
func (p *Promotion) DiscountPercentage() int { return p.discountPercentage }
func (p *Promotion) ExpiryDate() time.Time  { return p.expiryDate }
func (p *Promotion) IsActive() bool         { return p.active }
func (p *Promotion) Description() string    { return p.description }
