package response

import (
	"loyalty-console/internal/usecase/queries"
)

type EarnPreviewResponse struct {
	Points   int64            `json:"points"`
	Tier     *TierRefResponse `json:"tier,omitempty"`
	Untiered bool             `json:"untiered"`
}

type RedeemPreviewResponse struct {
	MaxRedemptions int64  `json:"max_redemptions"`
	Discount       string `json:"discount"`
	DiscountType   string `json:"discount_type"`
}

type TierResolutionResponse struct {
	Tier     *TierResponse `json:"tier,omitempty"`
	Untiered bool          `json:"untiered"`
}

func FromEarnPreview(v *queries.EarnPreview) *EarnPreviewResponse {
	resp := &EarnPreviewResponse{Points: v.Points, Untiered: v.Untiered}
	if v.Tier != nil {
		resp.Tier = &TierRefResponse{ID: v.Tier.ID.String(), Name: v.Tier.Name}
	}
	return resp
}

func FromRedeemPreview(v *queries.RedeemPreview) *RedeemPreviewResponse {
	return &RedeemPreviewResponse{
		MaxRedemptions: v.MaxRedemptions,
		Discount:       v.Discount.String(),
		DiscountType:   v.DiscountType,
	}
}

func FromTierResolution(v *queries.TierResolution) *TierResolutionResponse {
	resp := &TierResolutionResponse{Untiered: v.Untiered}
	if v.Tier != nil {
		tier := FromTierView(*v.Tier)
		resp.Tier = &tier
	}
	return resp
}
