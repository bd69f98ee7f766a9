//go:build unit || e2e

package builder

import (
	"time"

	dompromotion "hotelcore/internal/domain/promotion"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
)

type PromotionBuilder struct {
	Code               string
	DiscountPercentage int
	ExpiryDate         time.Time
	IsActive           bool
	Description        string
}

func NewPromotionBuilder() *PromotionBuilder {
	return &PromotionBuilder{
		Code:               "SUMMER10",
		DiscountPercentage: 10,
		ExpiryDate:         time.Now().AddDate(1, 0, 0),
		IsActive:           true,
		Description:        "Summer discount",
	}
}

func (p *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(p)
	return p
}

func (p *PromotionBuilder) BuildDomain() (*dompromotion.Promotion, error) {
	return dompromotion.NewPromotion(uuid.New(), p.Code, p.DiscountPercentage, p.ExpiryDate, p.IsActive, p.Description)
}

func (p *PromotionBuilder) BuildSnapshot() *shared.PromotionSnapshot {
	desc := p.Description
	return &shared.PromotionSnapshot{
		ID:                 uuid.New(),
		Code:               p.Code,
		DiscountPercentage: int32(p.DiscountPercentage),
		ExpiryDate:         p.ExpiryDate,
		IsActive:           p.IsActive,
		Description:        &desc,
	}
}
