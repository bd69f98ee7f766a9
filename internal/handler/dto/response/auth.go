package response

import "hotelcore/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type PromotionValidationResponse struct {
	Valid              bool    `json:"valid"`
	Code               string  `json:"code"`
	DiscountPercentage int32   `json:"discountPercentage"`
	Description        *string `json:"description,omitempty"`
}

func FromPromotionValidation(view *queries.PromotionValidationView) *PromotionValidationResponse {
	return &PromotionValidationResponse{
		Valid:              view.Valid,
		Code:               view.Code,
		DiscountPercentage: view.DiscountPercentage,
		Description:        view.Description,
	}
}
