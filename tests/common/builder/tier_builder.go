//go:build unit

package builder

import (
	"loyalty-console/internal/domain/program"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TierBuilder struct {
	ID               uuid.UUID
	Name             string
	SpendMin         int64
	SpendMax         int64
	PointsMultiplier decimal.Decimal
	BirthdayReward   decimal.Decimal
	ReferralPoints   int64
	Perks            []string
	SpendPeriodDays  int
	IsActive         bool
}

func NewTierBuilder() *TierBuilder {
	return &TierBuilder{
		ID:               uuid.New(),
		Name:             "Silver",
		SpendMin:         1000,
		SpendMax:         4999,
		PointsMultiplier: decimal.NewFromInt(2),
		BirthdayReward:   decimal.NewFromInt(20),
		ReferralPoints:   200,
		Perks:            []string{"Priority support", "Member rates"},
		SpendPeriodDays:  30,
		IsActive:         true,
	}
}

func (b *TierBuilder) With(mutate func(*TierBuilder)) *TierBuilder {
	mutate(b)
	return b
}

func (b *TierBuilder) BuildInput() program.TierInput {
	return program.TierInput{
		Name:             b.Name,
		SpendMin:         b.SpendMin,
		SpendMax:         b.SpendMax,
		PointsMultiplier: b.PointsMultiplier,
		BirthdayReward:   b.BirthdayReward,
		ReferralPoints:   b.ReferralPoints,
		Perks:            b.Perks,
		SpendPeriodDays:  b.SpendPeriodDays,
		IsActive:         b.IsActive,
	}
}

func (b *TierBuilder) BuildDomain(siblings ...program.MembershipTier) (*program.MembershipTier, error) {
	return program.NewTier(b.ID, b.BuildInput(), siblings)
}

// MustBuild panics on validation failure; for fixtures known to be valid.
func (b *TierBuilder) MustBuild(siblings ...program.MembershipTier) program.MembershipTier {
	t, err := b.BuildDomain(siblings...)
	if err != nil {
		panic(err)
	}
	return *t
}
