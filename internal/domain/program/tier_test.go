//go:build unit

package program_test

import (
	"testing"

	"loyalty-console/internal/domain/program"
	"loyalty-console/internal/pkg/errs"
	"loyalty-console/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tierCase struct {
	name       string
	mutate     func(*builder.TierBuilder)
	wantFields []string
}

func runTierCases(t *testing.T, siblings []program.MembershipTier, cases []tierCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewTierBuilder()
			if c.mutate != nil {
				c.mutate(b)
			}
			_, err := b.BuildDomain(siblings...)
			if len(c.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			ve, ok := errs.AsValidation(err)
			require.True(t, ok, "expected ValidationError, got %v", err)
			var fields []string
			for _, violation := range ve.Violations {
				fields = append(fields, violation.Field)
			}
			assert.ElementsMatch(t, c.wantFields, fields)
		})
	}
}

func TestNewTier(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		tier, err := builder.NewTierBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, tier)

		assert.Equal(t, "Silver", tier.Name())
		assert.Equal(t, int64(1000), tier.SpendRange().Min())
		assert.Equal(t, int64(4999), tier.SpendRange().Max())
		assert.Equal(t, 30, tier.SpendPeriodDays())
		assert.True(t, tier.IsActive())
	})

	t.Run("field validation", func(t *testing.T) {
		runTierCases(t, nil, []tierCase{
			{
				name:       "empty name",
				mutate:     func(b *builder.TierBuilder) { b.Name = "   " },
				wantFields: []string{"name"},
			},
			{
				name:       "multiplier below 1",
				mutate:     func(b *builder.TierBuilder) { b.PointsMultiplier = decimal.RequireFromString("0.5") },
				wantFields: []string{"points_multiplier"},
			},
			{
				name:   "multiplier of exactly 1",
				mutate: func(b *builder.TierBuilder) { b.PointsMultiplier = decimal.NewFromInt(1) },
			},
			{
				name:       "negative birthday reward",
				mutate:     func(b *builder.TierBuilder) { b.BirthdayReward = decimal.NewFromInt(-5) },
				wantFields: []string{"birthday_reward"},
			},
			{
				name:       "negative referral points",
				mutate:     func(b *builder.TierBuilder) { b.ReferralPoints = -1 },
				wantFields: []string{"referral_points"},
			},
			{
				name:       "inverted spend range",
				mutate:     func(b *builder.TierBuilder) { b.SpendMin, b.SpendMax = 5000, 1000 },
				wantFields: []string{"spend_range"},
			},
			{
				name: "every violation is reported at once",
				mutate: func(b *builder.TierBuilder) {
					b.Name = ""
					b.PointsMultiplier = decimal.Zero
					b.BirthdayReward = decimal.NewFromInt(-1)
					b.ReferralPoints = -10
					b.SpendMin, b.SpendMax = 100, 100
				},
				wantFields: []string{"name", "points_multiplier", "birthday_reward", "referral_points", "spend_range"},
			},
		})
	})

	t.Run("sibling validation", func(t *testing.T) {
		siblings := bronzeSilverGold(t)
		runTierCases(t, siblings, []tierCase{
			{
				name: "overlapping range and duplicate name",
				mutate: func(b *builder.TierBuilder) {
					b.Name = "bronze" // case-insensitive clash
					b.SpendMin, b.SpendMax = 500, 1500
				},
				wantFields: []string{"name", "spend_range"},
			},
			{
				name: "disjoint range with fresh name",
				mutate: func(b *builder.TierBuilder) {
					b.Name = "Platinum"
					b.SpendMin, b.SpendMax = 20000, 49999
				},
			},
		})
	})

	t.Run("overlap violation names the conflicting tiers", func(t *testing.T) {
		b := builder.NewTierBuilder()
		b.Name = "Platinum"
		b.SpendMin, b.SpendMax = 500, 1500
		_, err := b.BuildDomain(bronzeSilverGold(t)...)

		ve, ok := errs.AsValidation(err)
		require.True(t, ok)
		require.Len(t, ve.Violations, 1)
		assert.Equal(t, []string{"Bronze", "Silver"}, ve.Violations[0].Conflicts)
	})

	t.Run("perks are trimmed and blanks dropped", func(t *testing.T) {
		b := builder.NewTierBuilder()
		b.Perks = []string{"  Late checkout  ", "", "   ", "Welcome drink"}
		tier, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff([]string{"Late checkout", "Welcome drink"}, tier.Perks()))
	})

	t.Run("spend period defaults to 30 days", func(t *testing.T) {
		b := builder.NewTierBuilder()
		b.SpendPeriodDays = 0
		tier, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, program.DefaultSpendPeriodDays, tier.SpendPeriodDays())
	})
}

func TestReplaceTier(t *testing.T) {
	t.Run("replaying a tier's own data succeeds", func(t *testing.T) {
		siblings := bronzeSilverGold(t)
		silver := siblings[1]

		replaced, err := silver.Replace(program.TierInput{
			Name:             silver.Name(),
			SpendMin:         silver.SpendRange().Min(),
			SpendMax:         silver.SpendRange().Max(),
			PointsMultiplier: silver.PointsMultiplier().Value(),
			BirthdayReward:   silver.BirthdayReward(),
			ReferralPoints:   silver.ReferralPoints(),
			Perks:            silver.Perks(),
			SpendPeriodDays:  silver.SpendPeriodDays(),
			IsActive:         silver.IsActive(),
		}, siblings)

		require.NoError(t, err)
		assert.Equal(t, silver.ID(), replaced.ID())
		assert.Equal(t, silver.Name(), replaced.Name())
	})

	t.Run("replace still validates against other siblings", func(t *testing.T) {
		siblings := bronzeSilverGold(t)
		silver := siblings[1]

		_, err := silver.Replace(program.TierInput{
			Name:             silver.Name(),
			SpendMin:         0,
			SpendMax:         6000,
			PointsMultiplier: decimal.NewFromInt(2),
		}, siblings)

		ve, ok := errs.AsValidation(err)
		require.True(t, ok)
		require.Len(t, ve.Violations, 1)
		assert.Equal(t, []string{"Bronze", "Gold"}, ve.Violations[0].Conflicts)
	})
}
