//go:build unit

package program_test

import (
	"testing"

	"loyalty-console/internal/domain/program"
	"loyalty-console/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bronzeSilverGold(t *testing.T) []program.MembershipTier {
	t.Helper()
	return builder.NewProgramBuilder().Tiers
}

func mustRange(t *testing.T, min, max int64) program.SpendRange {
	t.Helper()
	r, err := program.NewSpendRange(min, max)
	require.NoError(t, err)
	return r
}

func TestNewSpendRange(t *testing.T) {
	cases := []struct {
		name    string
		min     int64
		max     int64
		wantErr error
	}{
		{name: "valid range", min: 0, max: 999},
		{name: "zero width is invalid", min: 100, max: 100, wantErr: program.ErrInvalidSpendRange},
		{name: "inverted bounds", min: 200, max: 100, wantErr: program.ErrInvalidSpendRange},
		{name: "negative min", min: -1, max: 100, wantErr: program.ErrNegativeSpend},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := program.NewSpendRange(c.min, c.max)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateSpendRange(t *testing.T) {
	tiers := bronzeSilverGold(t)

	t.Run("range strictly between existing ranges is accepted", func(t *testing.T) {
		// Gap between Gold's 19999 and nothing above it
		err := program.ValidateSpendRange(mustRange(t, 20000, 29999), tiers, uuid.Nil)
		assert.Nil(t, err)
	})

	t.Run("closed intervals sharing a boundary overlap", func(t *testing.T) {
		a := mustRange(t, 100, 200)
		b := mustRange(t, 200, 300)
		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
	})

	t.Run("one unit past a boundary conflicts", func(t *testing.T) {
		// Bronze is [0,999]; a candidate starting at 999 still overlaps
		err := program.ValidateSpendRange(mustRange(t, 999, 1500), tiers, uuid.Nil)
		require.NotNil(t, err)
		assert.Contains(t, err.TierNames, "Bronze")
	})

	t.Run("overlap names every conflicting tier", func(t *testing.T) {
		err := program.ValidateSpendRange(mustRange(t, 500, 1500), tiers, uuid.Nil)
		require.NotNil(t, err)
		assert.Equal(t, []string{"Bronze", "Silver"}, err.TierNames)
	})

	t.Run("editing a tier excludes its own range", func(t *testing.T) {
		silver := tiers[1]
		err := program.ValidateSpendRange(silver.SpendRange(), tiers, silver.ID())
		assert.Nil(t, err)
	})

	t.Run("excluding one tier does not hide other conflicts", func(t *testing.T) {
		silver := tiers[1]
		err := program.ValidateSpendRange(mustRange(t, 500, 6000), tiers, silver.ID())
		require.NotNil(t, err)
		assert.Equal(t, []string{"Bronze", "Gold"}, err.TierNames)
	})
}

func TestProgramValidate(t *testing.T) {
	t.Run("disjoint tier sequence passes", func(t *testing.T) {
		assert.NoError(t, builder.NewProgramBuilder().Build().Validate())
	})

	t.Run("gateway document with overlapping tiers is rejected", func(t *testing.T) {
		tampered := program.ReconstructTier(
			uuid.New(), "Rogue", mustRange(t, 500, 1500),
			program.BaseMultiplier(), decimal.Zero, 0, nil, 30, true,
		)
		pb := builder.NewProgramBuilder()
		pb.Tiers = append(pb.Tiers, tampered)
		err := pb.Build().Validate()
		require.Error(t, err)
	})
}
