package queries

import (
	"context"
	"errors"
	"time"

	"loyalty-console/internal/domain/program"
	"loyalty-console/internal/pkg/errs"
	"loyalty-console/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// ProgramQueries serves the console's read side: the program document and
// the earn/redeem/placement previews backed by the points calculator.
type ProgramQueries interface {
	GetProgram(ctx context.Context, tenantID string) (*ProgramView, error)
	PreviewEarn(ctx context.Context, tenantID string, amount decimal.Decimal, date time.Time, cumulativeSpend decimal.Decimal) (*EarnPreview, error)
	PreviewRedeem(ctx context.Context, tenantID string, balance int64) (*RedeemPreview, error)
	ResolvePlacement(ctx context.Context, tenantID string, cumulativeSpend decimal.Decimal) (*TierResolution, error)
}

type programQueriesImpl struct {
	gateway    shared.ProgramGateway
	calculator program.PointsCalculator
}

func NewProgramQueries(gateway shared.ProgramGateway, calculator program.PointsCalculator) ProgramQueries {
	return &programQueriesImpl{gateway: gateway, calculator: calculator}
}

func (q *programQueriesImpl) GetProgram(ctx context.Context, tenantID string) (*ProgramView, error) {
	p, err := q.gateway.Program(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch program")
	}
	return FromProgram(p), nil
}

// PreviewEarn places the customer by cumulative spend first, then computes
// points for the hypothetical transaction. An untiered customer earns at 1x;
// the preview says so instead of failing.
func (q *programQueriesImpl) PreviewEarn(ctx context.Context, tenantID string, amount decimal.Decimal, date time.Time, cumulativeSpend decimal.Decimal) (*EarnPreview, error) {
	p, err := q.gateway.Program(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch program")
	}

	tier, err := program.ResolveTier(cumulativeSpend, p.Tiers())
	if err != nil && !errors.Is(err, errs.ErrNoTierForSpend) {
		return nil, err
	}

	preview := &EarnPreview{
		Points:   q.calculator.Earn(program.Transaction{Amount: amount, Date: date}, tier, p.Points()),
		Untiered: tier == nil,
	}
	if tier != nil {
		preview.Tier = &TierRef{ID: tier.ID(), Name: tier.Name()}
	}
	return preview, nil
}

func (q *programQueriesImpl) PreviewRedeem(ctx context.Context, tenantID string, balance int64) (*RedeemPreview, error) {
	p, err := q.gateway.Program(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch program")
	}

	redemption := q.calculator.Redeem(balance, p.Points())
	return &RedeemPreview{
		MaxRedemptions: redemption.MaxRedemptions,
		Discount:       redemption.Discount,
		DiscountType:   string(redemption.DiscountType),
	}, nil
}

func (q *programQueriesImpl) ResolvePlacement(ctx context.Context, tenantID string, cumulativeSpend decimal.Decimal) (*TierResolution, error) {
	p, err := q.gateway.Program(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch program")
	}

	tier, err := program.ResolveTier(cumulativeSpend, p.Tiers())
	if err != nil {
		if errors.Is(err, errs.ErrNoTierForSpend) {
			return &TierResolution{Untiered: true}, nil
		}
		return nil, err
	}

	view := FromTier(tier)
	return &TierResolution{Tier: &view}, nil
}
