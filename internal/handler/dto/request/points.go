package request

import (
	"time"

	"loyalty-console/internal/domain/program"
	"loyalty-console/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const bonusDayLayout = "2006-01-02"

type BonusDayRequest struct {
	Name       string          `json:"name" binding:"required"`
	Date       string          `json:"date" binding:"required"`
	Multiplier decimal.Decimal `json:"multiplier" binding:"required"`
}

type EarningRequest struct {
	Spend             decimal.Decimal   `json:"spend"`
	SignUpBonus       int64             `json:"sign_up_bonus"`
	ReviewPoints      int64             `json:"review_points"`
	SocialSharePoints int64             `json:"social_share_points"`
	BonusDays         []BonusDayRequest `json:"bonus_days"`
}

type RedeemingRequest struct {
	PointsPerDiscount int64           `json:"points_per_discount" binding:"required"`
	DiscountValue     decimal.Decimal `json:"discount_value" binding:"required"`
	DiscountType      string          `json:"discount_type" binding:"required"`
}

type PointsSystemRequest struct {
	Earning   EarningRequest   `json:"earning_points" binding:"required"`
	Redeeming RedeemingRequest `json:"redeeming_points" binding:"required"`
}

func (r PointsSystemRequest) ToDomain() (program.PointsSystem, error) {
	bonusDays := make([]program.BonusDay, len(r.Earning.BonusDays))
	for i, day := range r.Earning.BonusDays {
		date, err := time.Parse(bonusDayLayout, day.Date)
		if err != nil {
			return program.PointsSystem{}, errs.Wrapf(err, "invalid bonus day date %q", day.Date)
		}
		bonusDays[i] = program.BonusDay{
			Name:       day.Name,
			Date:       date,
			Multiplier: day.Multiplier,
		}
	}

	return program.PointsSystem{
		Earning: program.EarningRules{
			SpendRate:         r.Earning.Spend,
			SignUpBonus:       r.Earning.SignUpBonus,
			ReviewPoints:      r.Earning.ReviewPoints,
			SocialSharePoints: r.Earning.SocialSharePoints,
			BonusDays:         bonusDays,
		},
		Redeeming: program.RedeemRules{
			PointsPerDiscount: r.Redeeming.PointsPerDiscount,
			DiscountValue:     r.Redeeming.DiscountValue,
			DiscountType:      program.DiscountType(r.Redeeming.DiscountType),
		},
	}, nil
}
