package request

import (
	"loyalty-console/internal/domain/program"

	"github.com/shopspring/decimal"
)

type TierRequest struct {
	Name             string          `json:"name" binding:"required"`
	SpendMin         int64           `json:"spend_min"`
	SpendMax         int64           `json:"spend_max" binding:"required"`
	PointsMultiplier decimal.Decimal `json:"points_multiplier" binding:"required"`
	BirthdayReward   decimal.Decimal `json:"birthday_reward"`
	ReferralPoints   int64           `json:"referral_points"`
	Perks            []string        `json:"perks"`
	SpendPeriodDays  int             `json:"required_spend_period"`
	IsActive         *bool           `json:"is_active"`
}

func (r TierRequest) ToDomain() program.TierInput {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return program.TierInput{
		Name:             r.Name,
		SpendMin:         r.SpendMin,
		SpendMax:         r.SpendMax,
		PointsMultiplier: r.PointsMultiplier,
		BirthdayReward:   r.BirthdayReward,
		ReferralPoints:   r.ReferralPoints,
		Perks:            r.Perks,
		SpendPeriodDays:  r.SpendPeriodDays,
		IsActive:         isActive,
	}
}
