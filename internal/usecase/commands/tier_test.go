//go:build unit

package commands_test

import (
	"context"
	"testing"

	"loyalty-console/internal/domain/benefit"
	"loyalty-console/internal/domain/program"
	"loyalty-console/internal/infra/gateway"
	"loyalty-console/internal/pkg/errs"
	"loyalty-console/internal/usecase/commands"
	"loyalty-console/internal/usecase/shared"
	"loyalty-console/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenantID = "tenant-001"

func seedGateway(t *testing.T) (*gateway.MemoryGateway, *builder.ProgramBuilder) {
	t.Helper()
	pb := builder.NewProgramBuilder()
	gw := gateway.NewMemoryGateway()
	gw.SeedTenant(shared.TenantProfile{
		TenantID:    testTenantID,
		DisplayName: "Harbor View Hotel",
		Vertical:    benefit.VerticalHospitality,
	}, pb.Build())
	return gw, pb
}

func TestTierCommands_CreateTier(t *testing.T) {
	ctx := context.Background()

	t.Run("appends a non-overlapping tier and persists the draft", func(t *testing.T) {
		gw, _ := seedGateway(t)
		uc := commands.NewTierCommands(gw)

		in := builder.NewTierBuilder().With(func(b *builder.TierBuilder) {
			b.Name = "Platinum"
			b.SpendMin = 20000
			b.SpendMax = 49999
			b.PointsMultiplier = decimal.NewFromInt(4)
		}).BuildInput()

		updated, err := uc.CreateTier(ctx, testTenantID, in)
		require.NoError(t, err)
		require.Len(t, updated.Tiers(), 4)
		assert.Equal(t, "Platinum", updated.Tiers()[3].Name())

		// The committed document is what subsequent reads observe.
		persisted, err := gw.Program(ctx, testTenantID)
		require.NoError(t, err)
		assert.Len(t, persisted.Tiers(), 4)
	})

	t.Run("rejects an overlapping range and leaves the document untouched", func(t *testing.T) {
		gw, _ := seedGateway(t)
		uc := commands.NewTierCommands(gw)

		in := builder.NewTierBuilder().With(func(b *builder.TierBuilder) {
			b.Name = "Platinum"
			b.SpendMin = 4999 // collides with Silver's upper bound
			b.SpendMax = 19999
		}).BuildInput()

		_, err := uc.CreateTier(ctx, testTenantID, in)
		require.Error(t, err)

		vErr, ok := errs.AsValidation(err)
		require.True(t, ok)
		var conflicts []string
		for _, violation := range vErr.Violations {
			conflicts = append(conflicts, violation.Conflicts...)
		}
		assert.Contains(t, conflicts, "Silver")
		assert.Contains(t, conflicts, "Gold")

		persisted, err := gw.Program(ctx, testTenantID)
		require.NoError(t, err)
		assert.Len(t, persisted.Tiers(), 3)
	})

	t.Run("rejects a duplicate name case-insensitively", func(t *testing.T) {
		gw, _ := seedGateway(t)
		uc := commands.NewTierCommands(gw)

		in := builder.NewTierBuilder().With(func(b *builder.TierBuilder) {
			b.Name = "silver"
			b.SpendMin = 20000
			b.SpendMax = 49999
		}).BuildInput()

		_, err := uc.CreateTier(ctx, testTenantID, in)
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("propagates a missing program document", func(t *testing.T) {
		gw := gateway.NewMemoryGateway()
		uc := commands.NewTierCommands(gw)

		_, err := uc.CreateTier(ctx, "unknown-tenant", builder.NewTierBuilder().BuildInput())
		require.ErrorIs(t, err, errs.ErrProgramNotFound)
	})
}

func TestTierCommands_UpdateTier(t *testing.T) {
	ctx := context.Background()

	t.Run("replaying the current data succeeds", func(t *testing.T) {
		gw, pb := seedGateway(t)
		uc := commands.NewTierCommands(gw)
		silver := pb.Tier("Silver")

		in := program.TierInput{
			Name:             silver.Name(),
			SpendMin:         silver.SpendRange().Min(),
			SpendMax:         silver.SpendRange().Max(),
			PointsMultiplier: silver.PointsMultiplier().Value(),
			BirthdayReward:   silver.BirthdayReward(),
			ReferralPoints:   silver.ReferralPoints(),
			Perks:            silver.Perks(),
			SpendPeriodDays:  silver.SpendPeriodDays(),
			IsActive:         silver.IsActive(),
		}

		updated, err := uc.UpdateTier(ctx, testTenantID, silver.ID(), in)
		require.NoError(t, err)

		got, ok := updated.TierByID(silver.ID())
		require.True(t, ok)
		assert.Equal(t, "Silver", got.Name())
	})

	t.Run("renaming keeps the identity and benefit associations stable", func(t *testing.T) {
		gw, pb := seedGateway(t)
		uc := commands.NewTierCommands(gw)
		silver := pb.Tier("Silver")

		in := builder.NewTierBuilder().With(func(b *builder.TierBuilder) {
			b.Name = "Sterling"
		}).BuildInput()

		updated, err := uc.UpdateTier(ctx, testTenantID, silver.ID(), in)
		require.NoError(t, err)

		got, ok := updated.TierByID(silver.ID())
		require.True(t, ok)
		assert.Equal(t, "Sterling", got.Name())
	})

	t.Run("widening into a sibling's range is rejected", func(t *testing.T) {
		gw, pb := seedGateway(t)
		uc := commands.NewTierCommands(gw)
		silver := pb.Tier("Silver")

		in := builder.NewTierBuilder().With(func(b *builder.TierBuilder) {
			b.SpendMin = 1000
			b.SpendMax = 5000 // touches Gold's lower bound
		}).BuildInput()

		_, err := uc.UpdateTier(ctx, testTenantID, silver.ID(), in)
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("unknown tier id", func(t *testing.T) {
		gw, _ := seedGateway(t)
		uc := commands.NewTierCommands(gw)

		_, err := uc.UpdateTier(ctx, testTenantID, uuid.New(), builder.NewTierBuilder().BuildInput())
		require.ErrorIs(t, err, errs.ErrTierNotFound)
	})
}

func TestTierCommands_RemoveTier(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the tier from the committed document", func(t *testing.T) {
		gw, pb := seedGateway(t)
		uc := commands.NewTierCommands(gw)
		silver := pb.Tier("Silver")

		updated, err := uc.RemoveTier(ctx, testTenantID, silver.ID())
		require.NoError(t, err)
		assert.Len(t, updated.Tiers(), 2)

		_, ok := updated.TierByID(silver.ID())
		assert.False(t, ok)
	})

	t.Run("unknown tier id", func(t *testing.T) {
		gw, _ := seedGateway(t)
		uc := commands.NewTierCommands(gw)

		_, err := uc.RemoveTier(ctx, testTenantID, uuid.New())
		require.ErrorIs(t, err, errs.ErrTierNotFound)
	})
}
