package program

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the earning input: an amount in program currency and the
// calendar date it occurred on.
type Transaction struct {
	Amount decimal.Decimal
	Date   time.Time
}

// Redemption is the result of converting a point balance into a discount.
// For percentage discounts the percent is capped at 100 in aggregate here;
// checkout logic downstream never re-caps.
type Redemption struct {
	MaxRedemptions int64
	Discount       decimal.Decimal
	DiscountType   DiscountType
}

// BonusEvent is a one-time, event-triggered flat award. Flat bonuses are
// additive and bypass Earn entirely: no multiplier ever applies to them.
type BonusEvent string

const (
	BonusSignUp      BonusEvent = "sign_up"
	BonusReview      BonusEvent = "review"
	BonusSocialShare BonusEvent = "social_share"
	BonusReferral    BonusEvent = "referral"
)

// PointsCalculator computes points earned for a transaction and the
// redemption value of a balance. Implementations must be pure.
type PointsCalculator interface {
	Earn(tx Transaction, tier *MembershipTier, ps PointsSystem) int64
	Redeem(balance int64, ps PointsSystem) Redemption
	FlatBonus(event BonusEvent, ps PointsSystem, tier *MembershipTier) int64
}

type StandardPointsCalculator struct{}

func NewStandardPointsCalculator() *StandardPointsCalculator {
	return &StandardPointsCalculator{}
}

var percentCap = decimal.NewFromInt(100)

// Earn computes floor(floor(amount * spendRate) * tierMult * bonusDayMult).
// A customer without a tier earns at 1x. When several bonus days land on the
// transaction date, only the single highest multiplier applies; bonus days
// never stack with each other, only with the tier multiplier.
func (c *StandardPointsCalculator) Earn(tx Transaction, tier *MembershipTier, ps PointsSystem) int64 {
	if tx.Amount.Sign() <= 0 {
		return 0
	}

	base := tx.Amount.Mul(ps.Earning.SpendRate).Floor()
	if base.Sign() <= 0 {
		return 0
	}

	tierMultiplier := BaseMultiplier()
	if tier != nil {
		tierMultiplier = tier.PointsMultiplier()
	}

	bonusMultiplier := bonusDayMultiplier(ps.Earning.BonusDays, tx.Date)

	return bonusMultiplier.Apply(tierMultiplier.Apply(base)).Floor().IntPart()
}

func bonusDayMultiplier(days []BonusDay, date time.Time) Multiplier {
	best := multiplierOne
	for _, day := range days {
		if !day.SameDate(date) {
			continue
		}
		if day.Multiplier.GreaterThan(best) {
			best = day.Multiplier
		}
	}
	m, err := NewMultiplier(best)
	if err != nil {
		return BaseMultiplier()
	}
	return m
}

// Redeem converts a balance into the maximum number of whole redemptions and
// the resulting discount.
func (c *StandardPointsCalculator) Redeem(balance int64, ps PointsSystem) Redemption {
	rules := ps.Redeeming
	if balance <= 0 || rules.PointsPerDiscount <= 0 {
		return Redemption{DiscountType: rules.DiscountType, Discount: decimal.Zero}
	}

	maxRedemptions := balance / rules.PointsPerDiscount
	discount := rules.DiscountValue.Mul(decimal.NewFromInt(maxRedemptions))

	if rules.DiscountType == DiscountPercentage && discount.GreaterThan(percentCap) {
		discount = percentCap
	}

	return Redemption{
		MaxRedemptions: maxRedemptions,
		Discount:       discount,
		DiscountType:   rules.DiscountType,
	}
}

// FlatBonus returns the one-time award for an event. Referral points come
// from the assigned tier; an untiered customer earns no referral bonus.
func (c *StandardPointsCalculator) FlatBonus(event BonusEvent, ps PointsSystem, tier *MembershipTier) int64 {
	switch event {
	case BonusSignUp:
		return ps.Earning.SignUpBonus
	case BonusReview:
		return ps.Earning.ReviewPoints
	case BonusSocialShare:
		return ps.Earning.SocialSharePoints
	case BonusReferral:
		if tier == nil {
			return 0
		}
		return tier.ReferralPoints()
	default:
		return 0
	}
}
