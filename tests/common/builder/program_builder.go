//go:build unit

package builder

import (
	"time"

	"loyalty-console/internal/domain/program"

	"github.com/shopspring/decimal"
)

// ProgramBuilder assembles the Bronze/Silver/Gold fixture used across the
// domain and usecase tests: Bronze [0,999] 1x, Silver [1000,4999] 2x,
// Gold [5000,19999] 3x, base rate 1 point per currency unit.
type ProgramBuilder struct {
	Name      string
	Currency  string
	SpendRate decimal.Decimal
	Points    program.PointsSystem
	Tiers     []program.MembershipTier
}

func NewProgramBuilder() *ProgramBuilder {
	bronze := NewTierBuilder().With(func(b *TierBuilder) {
		b.Name = "Bronze"
		b.SpendMin = 0
		b.SpendMax = 999
		b.PointsMultiplier = decimal.NewFromInt(1)
		b.ReferralPoints = 100
	}).MustBuild()
	silver := NewTierBuilder().With(func(b *TierBuilder) {
		b.Name = "Silver"
		b.SpendMin = 1000
		b.SpendMax = 4999
		b.PointsMultiplier = decimal.NewFromInt(2)
	}).MustBuild(bronze)
	gold := NewTierBuilder().With(func(b *TierBuilder) {
		b.Name = "Gold"
		b.SpendMin = 5000
		b.SpendMax = 19999
		b.PointsMultiplier = decimal.NewFromInt(3)
		b.ReferralPoints = 500
	}).MustBuild(bronze, silver)

	return &ProgramBuilder{
		Name:     "Guest Rewards",
		Currency: "USD",
		Points: program.PointsSystem{
			Earning: program.EarningRules{
				SpendRate:         decimal.NewFromInt(1),
				SignUpBonus:       100,
				ReviewPoints:      25,
				SocialSharePoints: 10,
				BonusDays: []program.BonusDay{
					{
						Name:       "Christmas",
						Date:       time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
						Multiplier: decimal.NewFromInt(3),
					},
				},
			},
			Redeeming: program.RedeemRules{
				PointsPerDiscount: 100,
				DiscountValue:     decimal.NewFromInt(5),
				DiscountType:      program.DiscountFixed,
			},
		},
		Tiers: []program.MembershipTier{bronze, silver, gold},
	}
}

func (b *ProgramBuilder) With(mutate func(*ProgramBuilder)) *ProgramBuilder {
	mutate(b)
	return b
}

func (b *ProgramBuilder) Build() *program.LoyaltyProgram {
	return program.NewLoyaltyProgram(b.Name, b.Currency, b.Points, b.Tiers)
}

// Tier returns the fixture tier with the given name.
func (b *ProgramBuilder) Tier(name string) *program.MembershipTier {
	for i := range b.Tiers {
		if b.Tiers[i].Name() == name {
			return &b.Tiers[i]
		}
	}
	return nil
}
