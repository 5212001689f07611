//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"loyalty-console/internal/domain/program"
	"loyalty-console/internal/pkg/errs"
	"loyalty-console/internal/usecase/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPointsSystem() program.PointsSystem {
	return program.PointsSystem{
		Earning: program.EarningRules{
			SpendRate:         decimal.NewFromInt(2),
			SignUpBonus:       250,
			ReviewPoints:      50,
			SocialSharePoints: 20,
			BonusDays: []program.BonusDay{
				{
					Name:       "Anniversary",
					Date:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
					Multiplier: decimal.NewFromInt(2),
				},
			},
		},
		Redeeming: program.RedeemRules{
			PointsPerDiscount: 200,
			DiscountValue:     decimal.NewFromInt(10),
			DiscountType:      program.DiscountPercentage,
		},
	}
}

func TestPointsCommands_UpdatePointsSystem(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the points system and keeps the tiers", func(t *testing.T) {
		gw, _ := seedGateway(t)
		uc := commands.NewPointsCommands(gw)

		updated, err := uc.UpdatePointsSystem(ctx, testTenantID, validPointsSystem())
		require.NoError(t, err)

		assert.True(t, updated.Points().Earning.SpendRate.Equal(decimal.NewFromInt(2)))
		assert.Equal(t, int64(250), updated.Points().Earning.SignUpBonus)
		assert.Len(t, updated.Tiers(), 3)
	})

	t.Run("accumulates every violation", func(t *testing.T) {
		gw, _ := seedGateway(t)
		uc := commands.NewPointsCommands(gw)

		ps := validPointsSystem()
		ps.Earning.SpendRate = decimal.NewFromInt(-1)
		ps.Earning.BonusDays[0].Multiplier = decimal.NewFromFloat(0.5)
		ps.Redeeming.PointsPerDiscount = 0
		ps.Redeeming.DiscountType = "coupon"

		_, err := uc.UpdatePointsSystem(ctx, testTenantID, ps)
		require.Error(t, err)

		vErr, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.Len(t, vErr.Violations, 4)
	})

	t.Run("validation failure does not touch the document", func(t *testing.T) {
		gw, pb := seedGateway(t)
		uc := commands.NewPointsCommands(gw)

		ps := validPointsSystem()
		ps.Redeeming.DiscountValue = decimal.Zero

		_, err := uc.UpdatePointsSystem(ctx, testTenantID, ps)
		require.ErrorIs(t, err, errs.ErrDomainValidation)

		persisted, gwErr := gw.Program(ctx, testTenantID)
		require.NoError(t, gwErr)
		assert.True(t, persisted.Points().Earning.SpendRate.Equal(pb.Points.Earning.SpendRate))
	})
}
