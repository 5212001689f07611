//go:build unit

package program_test

import (
	"errors"
	"testing"

	"loyalty-console/internal/domain/program"
	"loyalty-console/internal/pkg/errs"
	"loyalty-console/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTier(t *testing.T) {
	tiers := bronzeSilverGold(t)

	cases := []struct {
		name     string
		spend    decimal.Decimal
		wantTier string
		wantNone bool
	}{
		{name: "lower boundary of Silver", spend: decimal.NewFromInt(1000), wantTier: "Silver"},
		{name: "fractional spend floors into Bronze", spend: decimal.RequireFromString("999.99"), wantTier: "Bronze"},
		{name: "upper boundary of Gold", spend: decimal.NewFromInt(19999), wantTier: "Gold"},
		{name: "fraction above top boundary still floors in", spend: decimal.RequireFromString("19999.50"), wantTier: "Gold"},
		{name: "zero spend lands in Bronze", spend: decimal.Zero, wantTier: "Bronze"},
		{name: "above the highest tier", spend: decimal.NewFromInt(20000), wantNone: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tier, err := program.ResolveTier(c.spend, tiers)
			if c.wantNone {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrNoTierForSpend)
				var noTier *program.NoTierError
				require.True(t, errors.As(err, &noTier))
				assert.True(t, noTier.Spend.Equal(c.spend))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.wantTier, tier.Name())
		})
	}

	t.Run("inactive tiers never match", func(t *testing.T) {
		pb := builder.NewProgramBuilder()
		inactive := builder.NewTierBuilder().With(func(b *builder.TierBuilder) {
			b.Name = "Retired"
			b.SpendMin = 20000
			b.SpendMax = 49999
			b.IsActive = false
		}).MustBuild(pb.Tiers...)
		pb.Tiers = append(pb.Tiers, inactive)

		_, err := program.ResolveTier(decimal.NewFromInt(25000), pb.Tiers)
		assert.ErrorIs(t, err, errs.ErrNoTierForSpend)
	})

	t.Run("spend below the lowest tier is untiered", func(t *testing.T) {
		// Lowest tier starts at 1000 once Bronze is removed
		_, err := program.ResolveTier(decimal.NewFromInt(500), tiers[1:])
		assert.ErrorIs(t, err, errs.ErrNoTierForSpend)
	})
}
