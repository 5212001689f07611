//go:build unit

package program_test

import (
	"testing"
	"time"

	"loyalty-console/internal/domain/program"
	"loyalty-console/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var christmas = time.Date(2024, 12, 25, 14, 30, 0, 0, time.UTC)

func TestEarn(t *testing.T) {
	pb := builder.NewProgramBuilder()
	calc := program.NewStandardPointsCalculator()
	ps := pb.Points
	silver := pb.Tier("Silver")
	require.NotNil(t, silver)

	t.Run("bonus day multiplies the already-tiered base", func(t *testing.T) {
		// 100 spend at 1 pt/unit, Silver 2x, Christmas 3x: 100 * 2 * 3
		got := calc.Earn(program.Transaction{Amount: decimal.NewFromInt(100), Date: christmas}, silver, ps)
		assert.Equal(t, int64(600), got)
	})

	t.Run("plain weekday earns base times tier", func(t *testing.T) {
		weekday := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
		got := calc.Earn(program.Transaction{Amount: decimal.NewFromInt(100), Date: weekday}, silver, ps)
		assert.Equal(t, int64(200), got)
	})

	t.Run("untiered customer earns at 1x", func(t *testing.T) {
		got := calc.Earn(program.Transaction{Amount: decimal.NewFromInt(100), Date: christmas}, nil, ps)
		assert.Equal(t, int64(300), got)
	})

	t.Run("base is floored before multipliers", func(t *testing.T) {
		halfRate := ps
		halfRate.Earning.SpendRate = decimal.RequireFromString("0.5")
		got := calc.Earn(program.Transaction{Amount: decimal.RequireFromString("99.99"), Date: christmas}, silver, halfRate)
		// floor(99.99 * 0.5) = 49, then * 2 * 3
		assert.Equal(t, int64(294), got)
	})

	t.Run("overlapping bonus days take the max, not the sum", func(t *testing.T) {
		stacked := ps
		stacked.Earning.BonusDays = append([]program.BonusDay{
			{Name: "Flash sale", Date: christmas, Multiplier: decimal.NewFromInt(2)},
		}, stacked.Earning.BonusDays...)

		got := calc.Earn(program.Transaction{Amount: decimal.NewFromInt(100), Date: christmas}, silver, stacked)
		// max(2,3) = 3; additive stacking would give 100*2*5
		assert.Equal(t, int64(600), got)
	})

	t.Run("pure function returns identical output for identical input", func(t *testing.T) {
		tx := program.Transaction{Amount: decimal.NewFromInt(250), Date: christmas}
		first := calc.Earn(tx, silver, ps)
		second := calc.Earn(tx, silver, ps)
		assert.Equal(t, first, second)
	})

	t.Run("monotonic in amount and multipliers", func(t *testing.T) {
		weekday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
		small := calc.Earn(program.Transaction{Amount: decimal.NewFromInt(100), Date: weekday}, silver, ps)
		large := calc.Earn(program.Transaction{Amount: decimal.NewFromInt(200), Date: weekday}, silver, ps)
		assert.Greater(t, large, small)

		gold := pb.Tier("Gold")
		higherTier := calc.Earn(program.Transaction{Amount: decimal.NewFromInt(100), Date: weekday}, gold, ps)
		assert.Greater(t, higherTier, small)

		onBonusDay := calc.Earn(program.Transaction{Amount: decimal.NewFromInt(100), Date: christmas}, silver, ps)
		assert.Greater(t, onBonusDay, small)
	})

	t.Run("non-positive amounts earn nothing", func(t *testing.T) {
		assert.Zero(t, calc.Earn(program.Transaction{Amount: decimal.Zero, Date: christmas}, silver, ps))
		assert.Zero(t, calc.Earn(program.Transaction{Amount: decimal.NewFromInt(-10), Date: christmas}, silver, ps))
	})
}

func TestRedeem(t *testing.T) {
	calc := program.NewStandardPointsCalculator()

	t.Run("fixed discount scales with whole redemptions", func(t *testing.T) {
		ps := builder.NewProgramBuilder().Points
		got := calc.Redeem(550, ps)
		assert.Equal(t, int64(5), got.MaxRedemptions)
		assert.True(t, got.Discount.Equal(decimal.NewFromInt(25)), "got %s", got.Discount)
		assert.Equal(t, program.DiscountFixed, got.DiscountType)
	})

	t.Run("percentage discount is capped at 100 in aggregate", func(t *testing.T) {
		ps := builder.NewProgramBuilder().Points
		ps.Redeeming.DiscountType = program.DiscountPercentage
		ps.Redeeming.DiscountValue = decimal.NewFromInt(10)

		got := calc.Redeem(5000, ps)
		assert.Equal(t, int64(50), got.MaxRedemptions)
		assert.True(t, got.Discount.Equal(decimal.NewFromInt(100)), "got %s", got.Discount)
	})

	t.Run("balance below one redemption yields nothing", func(t *testing.T) {
		ps := builder.NewProgramBuilder().Points
		got := calc.Redeem(99, ps)
		assert.Zero(t, got.MaxRedemptions)
		assert.True(t, got.Discount.IsZero())
	})

	t.Run("zero points-per-discount never divides", func(t *testing.T) {
		ps := builder.NewProgramBuilder().Points
		ps.Redeeming.PointsPerDiscount = 0
		got := calc.Redeem(1000, ps)
		assert.Zero(t, got.MaxRedemptions)
	})
}

func TestFlatBonus(t *testing.T) {
	pb := builder.NewProgramBuilder()
	calc := program.NewStandardPointsCalculator()
	ps := pb.Points
	gold := pb.Tier("Gold")

	cases := []struct {
		name  string
		event program.BonusEvent
		tier  *program.MembershipTier
		want  int64
	}{
		{name: "sign-up bonus", event: program.BonusSignUp, want: 100},
		{name: "review bonus", event: program.BonusReview, want: 25},
		{name: "social share bonus", event: program.BonusSocialShare, want: 10},
		{name: "referral uses the assigned tier", event: program.BonusReferral, tier: gold, want: 500},
		{name: "untiered referral earns nothing", event: program.BonusReferral, want: 0},
		{name: "unknown event earns nothing", event: program.BonusEvent("unknown"), want: 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, calc.FlatBonus(c.event, ps, c.tier))
		})
	}
}
