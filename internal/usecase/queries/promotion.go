package queries

import (
	"context"
	"time"

	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/usecase/shared"
)

type PromotionValidationView struct {
	Valid              bool    `json:"valid"`
	Code               string  `json:"code"`
	DiscountPercentage int32   `json:"discount_percentage"`
	Description        *string `json:"description,omitempty"`
}

type PromotionQueries interface {
	// Validate never fails on an unknown or expired code; it reports
	// Valid=false instead.
	Validate(ctx context.Context, code string) (*PromotionValidationView, error)
}

type PromotionViewRepo interface {
	ActivePromotionByCode(ctx context.Context, code string, asOf time.Time) (*shared.PromotionSnapshot, error)
}

type promotionQueriesImpl struct {
	repo  PromotionViewRepo
	clock clock.Clock
}

func NewPromotionQueries(repo PromotionViewRepo, clk clock.Clock) PromotionQueries {
	return &promotionQueriesImpl{repo: repo, clock: clk}
}

func (q *promotionQueriesImpl) Validate(ctx context.Context, code string) (*PromotionValidationView, error) {
	promo, err := q.repo.ActivePromotionByCode(ctx, code, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &PromotionValidationView{Valid: false, Code: code}, nil
		}
		return nil, err
	}
	return &PromotionValidationView{
		Valid:              true,
		Code:               promo.Code,
		DiscountPercentage: promo.DiscountPercentage,
		Description:        promo.Description,
	}, nil
}
