package gateway

import (
	"time"

	"loyalty-console/internal/domain/benefit"
	"loyalty-console/internal/domain/program"
	"loyalty-console/internal/pkg/errs"
	"loyalty-console/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wire shapes of the gateway's loyalty-program document. Field names follow
// the document schema, not Go conventions.

const bonusDateLayout = "2006-01-02"

type spendRangeDoc struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type tierDoc struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	SpendRange          spendRangeDoc   `json:"spendRange"`
	PointsMultiplier    decimal.Decimal `json:"pointsMultiplier"`
	BirthdayReward      decimal.Decimal `json:"birthdayReward"`
	ReferralPoints      int64           `json:"referralPoints"`
	Perks               []string        `json:"perks"`
	RequiredSpendPeriod int             `json:"requiredSpendPeriod"`
	IsActive            bool            `json:"isActive"`
}

type bonusDayDoc struct {
	Name       string          `json:"name"`
	Date       string          `json:"date"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

type earningPointsDoc struct {
	Spend             decimal.Decimal `json:"spend"`
	SignUpBonus       int64           `json:"signUpBonus"`
	ReviewPoints      int64           `json:"reviewPoints"`
	SocialSharePoints int64           `json:"socialSharePoints"`
	BonusDays         []bonusDayDoc   `json:"bonusDays"`
}

type redeemingPointsDoc struct {
	PointsPerDiscount int64           `json:"pointsPerDiscount"`
	DiscountValue     decimal.Decimal `json:"discountValue"`
	DiscountType      string          `json:"discountType"`
}

type pointsSystemDoc struct {
	EarningPoints   earningPointsDoc   `json:"earningPoints"`
	RedeemingPoints redeemingPointsDoc `json:"redeemingPoints"`
}

type programDoc struct {
	ProgramName     string          `json:"programName"`
	Currency        string          `json:"currency"`
	PointsSystem    pointsSystemDoc `json:"pointsSystem"`
	MembershipTiers []tierDoc       `json:"membershipTiers"`
}

type benefitDoc struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Type            string          `json:"type"`
	Value           decimal.Decimal `json:"value"`
	MinSpend        decimal.Decimal `json:"minSpend"`
	ApplicableTiers []uuid.UUID     `json:"applicableTiers"`
	IsActive        bool            `json:"isActive"`
}

type tenantProfileDoc struct {
	TenantID    string `json:"tenantId"`
	DisplayName string `json:"displayName"`
	Vertical    string `json:"vertical"`
}

func programToDomain(doc *programDoc) (*program.LoyaltyProgram, error) {
	tiers := make([]program.MembershipTier, 0, len(doc.MembershipTiers))
	for _, td := range doc.MembershipTiers {
		spendRange, err := program.NewSpendRange(td.SpendRange.Min, td.SpendRange.Max)
		if err != nil {
			return nil, errs.Wrapf(err, "tier %q spend range", td.Name)
		}
		multiplier, err := program.NewMultiplier(td.PointsMultiplier)
		if err != nil {
			return nil, errs.Wrapf(err, "tier %q multiplier", td.Name)
		}
		tiers = append(tiers, program.ReconstructTier(
			td.ID, td.Name, spendRange, multiplier,
			td.BirthdayReward, td.ReferralPoints, td.Perks,
			td.RequiredSpendPeriod, td.IsActive,
		))
	}

	bonusDays := make([]program.BonusDay, 0, len(doc.PointsSystem.EarningPoints.BonusDays))
	for _, bd := range doc.PointsSystem.EarningPoints.BonusDays {
		date, err := time.Parse(bonusDateLayout, bd.Date)
		if err != nil {
			return nil, errs.Wrapf(err, "bonus day %q date", bd.Name)
		}
		bonusDays = append(bonusDays, program.BonusDay{
			Name:       bd.Name,
			Date:       date,
			Multiplier: bd.Multiplier,
		})
	}

	ps := program.PointsSystem{
		Earning: program.EarningRules{
			SpendRate:         doc.PointsSystem.EarningPoints.Spend,
			SignUpBonus:       doc.PointsSystem.EarningPoints.SignUpBonus,
			ReviewPoints:      doc.PointsSystem.EarningPoints.ReviewPoints,
			SocialSharePoints: doc.PointsSystem.EarningPoints.SocialSharePoints,
			BonusDays:         bonusDays,
		},
		Redeeming: program.RedeemRules{
			PointsPerDiscount: doc.PointsSystem.RedeemingPoints.PointsPerDiscount,
			DiscountValue:     doc.PointsSystem.RedeemingPoints.DiscountValue,
			DiscountType:      program.DiscountType(doc.PointsSystem.RedeemingPoints.DiscountType),
		},
	}

	return program.NewLoyaltyProgram(doc.ProgramName, doc.Currency, ps, tiers), nil
}

func programFromDomain(p *program.LoyaltyProgram) *programDoc {
	ps := p.Points()

	bonusDays := make([]bonusDayDoc, len(ps.Earning.BonusDays))
	for i, bd := range ps.Earning.BonusDays {
		bonusDays[i] = bonusDayDoc{
			Name:       bd.Name,
			Date:       bd.Date.Format(bonusDateLayout),
			Multiplier: bd.Multiplier,
		}
	}

	tiers := p.Tiers()
	tierDocs := make([]tierDoc, len(tiers))
	for i := range tiers {
		t := &tiers[i]
		tierDocs[i] = tierDoc{
			ID:                  t.ID(),
			Name:                t.Name(),
			SpendRange:          spendRangeDoc{Min: t.SpendRange().Min(), Max: t.SpendRange().Max()},
			PointsMultiplier:    t.PointsMultiplier().Value(),
			BirthdayReward:      t.BirthdayReward(),
			ReferralPoints:      t.ReferralPoints(),
			Perks:               t.Perks(),
			RequiredSpendPeriod: t.SpendPeriodDays(),
			IsActive:            t.IsActive(),
		}
	}

	return &programDoc{
		ProgramName: p.Name(),
		Currency:    p.Currency(),
		PointsSystem: pointsSystemDoc{
			EarningPoints: earningPointsDoc{
				Spend:             ps.Earning.SpendRate,
				SignUpBonus:       ps.Earning.SignUpBonus,
				ReviewPoints:      ps.Earning.ReviewPoints,
				SocialSharePoints: ps.Earning.SocialSharePoints,
				BonusDays:         bonusDays,
			},
			RedeemingPoints: redeemingPointsDoc{
				PointsPerDiscount: ps.Redeeming.PointsPerDiscount,
				DiscountValue:     ps.Redeeming.DiscountValue,
				DiscountType:      string(ps.Redeeming.DiscountType),
			},
		},
		MembershipTiers: tierDocs,
	}
}

func benefitToDomain(doc *benefitDoc) (*benefit.Benefit, error) {
	// Gateway documents are trusted enough to reconstruct without vertical
	// gating: the vertical was checked when the benefit was written and a
	// tenant's vertical does not change.
	b, err := benefit.NewBenefit(doc.ID, benefit.BenefitInput{
		Name:            doc.Name,
		Description:     doc.Description,
		Type:            benefit.BenefitType(doc.Type),
		Value:           doc.Value,
		MinSpend:        doc.MinSpend,
		ApplicableTiers: doc.ApplicableTiers,
		IsActive:        doc.IsActive,
	}, verticalForType(benefit.BenefitType(doc.Type)))
	if err != nil {
		return nil, errs.Wrapf(err, "benefit %q", doc.Name)
	}
	return b, nil
}

// verticalForType picks any vertical whose catalogue carries the type, so a
// stored document round-trips regardless of which vertical wrote it.
func verticalForType(t benefit.BenefitType) benefit.Vertical {
	if benefit.Offerable(t, benefit.VerticalHospitality) {
		return benefit.VerticalHospitality
	}
	return benefit.VerticalRetail
}

func benefitFromDomain(b *benefit.Benefit) *benefitDoc {
	return &benefitDoc{
		ID:              b.ID(),
		Name:            b.Name(),
		Description:     b.Description(),
		Type:            string(b.Type()),
		Value:           b.Value(),
		MinSpend:        b.MinSpend(),
		ApplicableTiers: b.ApplicableTiers(),
		IsActive:        b.IsActive(),
	}
}

func profileToDomain(doc *tenantProfileDoc) *shared.TenantProfile {
	return &shared.TenantProfile{
		TenantID:    doc.TenantID,
		DisplayName: doc.DisplayName,
		Vertical:    benefit.Vertical(doc.Vertical),
	}
}
