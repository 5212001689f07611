package queries

import (
	"time"

	"loyalty-console/internal/domain/benefit"
	"loyalty-console/internal/domain/program"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TierView represents read-optimized tier data
type TierView struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	SpendMin         int64           `json:"spend_min"`
	SpendMax         int64           `json:"spend_max"`
	PointsMultiplier decimal.Decimal `json:"points_multiplier"`
	BirthdayReward   decimal.Decimal `json:"birthday_reward"`
	ReferralPoints   int64           `json:"referral_points"`
	Perks            []string        `json:"perks"`
	SpendPeriodDays  int             `json:"required_spend_period"`
	IsActive         bool            `json:"is_active"`
}

type BonusDayView struct {
	Name       string          `json:"name"`
	Date       time.Time       `json:"date"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

type EarningView struct {
	Spend             decimal.Decimal `json:"spend"`
	SignUpBonus       int64           `json:"sign_up_bonus"`
	ReviewPoints      int64           `json:"review_points"`
	SocialSharePoints int64           `json:"social_share_points"`
	BonusDays         []BonusDayView  `json:"bonus_days"`
}

type RedeemingView struct {
	PointsPerDiscount int64           `json:"points_per_discount"`
	DiscountValue     decimal.Decimal `json:"discount_value"`
	DiscountType      string          `json:"discount_type"`
}

type PointsSystemView struct {
	Earning   EarningView   `json:"earning_points"`
	Redeeming RedeemingView `json:"redeeming_points"`
}

// ProgramView represents the whole loyalty program document for the console
type ProgramView struct {
	ProgramName     string           `json:"program_name"`
	Currency        string           `json:"currency"`
	PointsSystem    PointsSystemView `json:"points_system"`
	MembershipTiers []TierView       `json:"membership_tiers"`
}

// TierRef is a resolved reference to a tier: stable ID plus display name.
type TierRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BenefitView represents read-optimized benefit data with tier references
// resolved. Dangling references are dropped, never returned.
type BenefitView struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Type            string          `json:"type"`
	Value           decimal.Decimal `json:"value"`
	MinSpend        decimal.Decimal `json:"min_spend"`
	ApplicableTiers []TierRef       `json:"applicable_tiers"`
	IsActive        bool            `json:"is_active"`
}

// BenefitTypeView describes one offerable benefit type for the editor.
type BenefitTypeView struct {
	Type       string `json:"type"`
	Label      string `json:"label"`
	HelperText string `json:"helper_text"`
}

// EarnPreview is the management-UI preview of points earned for a
// hypothetical transaction.
type EarnPreview struct {
	Points   int64    `json:"points"`
	Tier     *TierRef `json:"tier,omitempty"`
	Untiered bool     `json:"untiered"`
}

// RedeemPreview is the redemption value of a point balance.
type RedeemPreview struct {
	MaxRedemptions int64           `json:"max_redemptions"`
	Discount       decimal.Decimal `json:"discount"`
	DiscountType   string          `json:"discount_type"`
}

// TierResolution reports which tier a cumulative spend places in, or that
// the customer is untiered.
type TierResolution struct {
	Tier     *TierView `json:"tier,omitempty"`
	Untiered bool      `json:"untiered"`
}

func FromTier(t *program.MembershipTier) TierView {
	return TierView{
		ID:               t.ID(),
		Name:             t.Name(),
		SpendMin:         t.SpendRange().Min(),
		SpendMax:         t.SpendRange().Max(),
		PointsMultiplier: t.PointsMultiplier().Value(),
		BirthdayReward:   t.BirthdayReward(),
		ReferralPoints:   t.ReferralPoints(),
		Perks:            t.Perks(),
		SpendPeriodDays:  t.SpendPeriodDays(),
		IsActive:         t.IsActive(),
	}
}

func FromProgram(p *program.LoyaltyProgram) *ProgramView {
	ps := p.Points()

	bonusDays := make([]BonusDayView, len(ps.Earning.BonusDays))
	for i, day := range ps.Earning.BonusDays {
		bonusDays[i] = BonusDayView{Name: day.Name, Date: day.Date, Multiplier: day.Multiplier}
	}

	tiers := p.Tiers()
	tierViews := make([]TierView, len(tiers))
	for i := range tiers {
		tierViews[i] = FromTier(&tiers[i])
	}

	return &ProgramView{
		ProgramName: p.Name(),
		Currency:    p.Currency(),
		PointsSystem: PointsSystemView{
			Earning: EarningView{
				Spend:             ps.Earning.SpendRate,
				SignUpBonus:       ps.Earning.SignUpBonus,
				ReviewPoints:      ps.Earning.ReviewPoints,
				SocialSharePoints: ps.Earning.SocialSharePoints,
				BonusDays:         bonusDays,
			},
			Redeeming: RedeemingView{
				PointsPerDiscount: ps.Redeeming.PointsPerDiscount,
				DiscountValue:     ps.Redeeming.DiscountValue,
				DiscountType:      string(ps.Redeeming.DiscountType),
			},
		},
		MembershipTiers: tierViews,
	}
}

// FromBenefit resolves tier references against the program's current tier
// sequence. Stale IDs (a tier removed after the benefit was scoped to it)
// are silently excluded from the view; the caller logs them.
func FromBenefit(b *benefit.Benefit, p *program.LoyaltyProgram) (BenefitView, []uuid.UUID) {
	var dangling []uuid.UUID
	refs := make([]TierRef, 0, len(b.ApplicableTiers()))
	for _, tierID := range b.ApplicableTiers() {
		tier, ok := p.TierByID(tierID)
		if !ok {
			dangling = append(dangling, tierID)
			continue
		}
		refs = append(refs, TierRef{ID: tier.ID(), Name: tier.Name()})
	}

	return BenefitView{
		ID:              b.ID(),
		Name:            b.Name(),
		Description:     b.Description(),
		Type:            string(b.Type()),
		Value:           b.Value(),
		MinSpend:        b.MinSpend(),
		ApplicableTiers: refs,
		IsActive:        b.IsActive(),
	}, dangling
}
