package response

import (
	"loyalty-console/internal/usecase/queries"
)

const bonusDayLayout = "2006-01-02"

type TierResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	SpendMin         int64    `json:"spend_min"`
	SpendMax         int64    `json:"spend_max"`
	PointsMultiplier string   `json:"points_multiplier"`
	BirthdayReward   string   `json:"birthday_reward"`
	ReferralPoints   int64    `json:"referral_points"`
	Perks            []string `json:"perks"`
	SpendPeriodDays  int      `json:"required_spend_period"`
	IsActive         bool     `json:"is_active"`
}

type BonusDayResponse struct {
	Name       string `json:"name"`
	Date       string `json:"date"`
	Multiplier string `json:"multiplier"`
}

type EarningResponse struct {
	Spend             string             `json:"spend"`
	SignUpBonus       int64              `json:"sign_up_bonus"`
	ReviewPoints      int64              `json:"review_points"`
	SocialSharePoints int64              `json:"social_share_points"`
	BonusDays         []BonusDayResponse `json:"bonus_days"`
}

type RedeemingResponse struct {
	PointsPerDiscount int64  `json:"points_per_discount"`
	DiscountValue     string `json:"discount_value"`
	DiscountType      string `json:"discount_type"`
}

type PointsSystemResponse struct {
	Earning   EarningResponse   `json:"earning_points"`
	Redeeming RedeemingResponse `json:"redeeming_points"`
}

type ProgramResponse struct {
	ProgramName     string               `json:"program_name"`
	Currency        string               `json:"currency"`
	PointsSystem    PointsSystemResponse `json:"points_system"`
	MembershipTiers []TierResponse       `json:"membership_tiers"`
}

func FromTierView(v queries.TierView) TierResponse {
	return TierResponse{
		ID:               v.ID.String(),
		Name:             v.Name,
		SpendMin:         v.SpendMin,
		SpendMax:         v.SpendMax,
		PointsMultiplier: v.PointsMultiplier.String(),
		BirthdayReward:   v.BirthdayReward.String(),
		ReferralPoints:   v.ReferralPoints,
		Perks:            v.Perks,
		SpendPeriodDays:  v.SpendPeriodDays,
		IsActive:         v.IsActive,
	}
}

func FromProgramView(v *queries.ProgramView) *ProgramResponse {
	bonusDays := make([]BonusDayResponse, len(v.PointsSystem.Earning.BonusDays))
	for i, day := range v.PointsSystem.Earning.BonusDays {
		bonusDays[i] = BonusDayResponse{
			Name:       day.Name,
			Date:       day.Date.Format(bonusDayLayout),
			Multiplier: day.Multiplier.String(),
		}
	}

	tiers := make([]TierResponse, len(v.MembershipTiers))
	for i, tier := range v.MembershipTiers {
		tiers[i] = FromTierView(tier)
	}

	return &ProgramResponse{
		ProgramName: v.ProgramName,
		Currency:    v.Currency,
		PointsSystem: PointsSystemResponse{
			Earning: EarningResponse{
				Spend:             v.PointsSystem.Earning.Spend.String(),
				SignUpBonus:       v.PointsSystem.Earning.SignUpBonus,
				ReviewPoints:      v.PointsSystem.Earning.ReviewPoints,
				SocialSharePoints: v.PointsSystem.Earning.SocialSharePoints,
				BonusDays:         bonusDays,
			},
			Redeeming: RedeemingResponse{
				PointsPerDiscount: v.PointsSystem.Redeeming.PointsPerDiscount,
				DiscountValue:     v.PointsSystem.Redeeming.DiscountValue.String(),
				DiscountType:      v.PointsSystem.Redeeming.DiscountType,
			},
		},
		MembershipTiers: tiers,
	}
}
