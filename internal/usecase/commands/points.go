package commands

import (
	"context"
	"strings"

	"loyalty-console/internal/domain/program"
	"loyalty-console/internal/pkg/errs"
	"loyalty-console/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// PointsCommands edits the program's earning and redemption configuration,
// including the bonus-day calendar.
type PointsCommands interface {
	UpdatePointsSystem(ctx context.Context, tenantID string, ps program.PointsSystem) (*program.LoyaltyProgram, error)
}

type pointsCommandsImpl struct {
	gateway shared.ProgramGateway
}

func NewPointsCommands(gateway shared.ProgramGateway) PointsCommands {
	return &pointsCommandsImpl{gateway: gateway}
}

func (uc *pointsCommandsImpl) UpdatePointsSystem(ctx context.Context, tenantID string, ps program.PointsSystem) (*program.LoyaltyProgram, error) {
	if err := validatePointsSystem(ps); err != nil {
		return nil, err
	}

	snapshot, err := uc.gateway.Program(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch program snapshot")
	}

	committed, err := uc.gateway.ReplaceProgram(ctx, tenantID, snapshot.WithPoints(ps))
	if err != nil {
		return nil, errs.Wrap(err, "persist points system update")
	}
	return committed, nil
}

var multiplierFloor = decimal.NewFromInt(1)

func validatePointsSystem(ps program.PointsSystem) error {
	var v errs.Violations

	if ps.Earning.SpendRate.IsNegative() {
		v.Add("earning.spend", "spend rate must not be negative")
	}
	if ps.Earning.SignUpBonus < 0 {
		v.Add("earning.sign_up_bonus", "sign-up bonus must not be negative")
	}
	if ps.Earning.ReviewPoints < 0 {
		v.Add("earning.review_points", "review points must not be negative")
	}
	if ps.Earning.SocialSharePoints < 0 {
		v.Add("earning.social_share_points", "social share points must not be negative")
	}

	for i, day := range ps.Earning.BonusDays {
		if strings.TrimSpace(day.Name) == "" {
			v.Add("earning.bonus_days", "bonus day %d must be named", i)
		}
		if day.Date.IsZero() {
			v.Add("earning.bonus_days", "bonus day %q must have a date", day.Name)
		}
		if day.Multiplier.LessThan(multiplierFloor) {
			v.Add("earning.bonus_days", "bonus day %q multiplier must be at least 1", day.Name)
		}
	}

	if ps.Redeeming.PointsPerDiscount <= 0 {
		v.Add("redeeming.points_per_discount", "points per discount must be greater than 0")
	}
	if ps.Redeeming.DiscountValue.Sign() <= 0 {
		v.Add("redeeming.discount_value", "discount value must be greater than 0")
	}
	if !ps.Redeeming.DiscountType.Valid() {
		v.Add("redeeming.discount_type", "discount type must be %q or %q", program.DiscountPercentage, program.DiscountFixed)
	}

	return v.Err()
}
