//go:build unit

package commands_test

import (
	"context"
	"testing"

	"loyalty-console/internal/domain/benefit"
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

func seedRetailGateway(t *testing.T) *gateway.MemoryGateway {
	t.Helper()
	gw := gateway.NewMemoryGateway()
	gw.SeedTenant(shared.TenantProfile{
		TenantID:    testTenantID,
		DisplayName: "Corner Bookshop",
		Vertical:    benefit.VerticalRetail,
	}, builder.NewProgramBuilder().Build())
	return gw
}

func TestBenefitCommands_CreateBenefit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a benefit valid for the tenant's vertical", func(t *testing.T) {
		gw, _ := seedGateway(t)
		uc := commands.NewBenefitCommands(gw)

		created, err := uc.CreateBenefit(ctx, testTenantID, builder.NewBenefitBuilder().BuildInput())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID())

		stored, err := gw.Benefits(ctx, testTenantID)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, created.ID(), stored[0].ID())
	})

	t.Run("rejects a type outside the tenant's vertical", func(t *testing.T) {
		gw := seedRetailGateway(t)
		uc := commands.NewBenefitCommands(gw)

		in := builder.NewBenefitBuilder().With(func(b *builder.BenefitBuilder) {
			b.Type = benefit.TypeRoomUpgrade
			b.Value = decimal.NewFromInt(1)
		}).BuildInput()

		_, err := uc.CreateBenefit(ctx, testTenantID, in)
		require.ErrorIs(t, err, errs.ErrDomainValidation)

		stored, gwErr := gw.Benefits(ctx, testTenantID)
		require.NoError(t, gwErr)
		assert.Empty(t, stored)
	})

	t.Run("rejects an out-of-range discount value", func(t *testing.T) {
		gw, _ := seedGateway(t)
		uc := commands.NewBenefitCommands(gw)

		in := builder.NewBenefitBuilder().With(func(b *builder.BenefitBuilder) {
			b.Value = decimal.NewFromInt(101)
		}).BuildInput()

		_, err := uc.CreateBenefit(ctx, testTenantID, in)
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestBenefitCommands_UpdateBenefit(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the stored benefit", func(t *testing.T) {
		gw, _ := seedGateway(t)
		uc := commands.NewBenefitCommands(gw)

		seeded, err := builder.NewBenefitBuilder().BuildDomain()
		require.NoError(t, err)
		gw.SeedBenefit(testTenantID, seeded)

		in := builder.NewBenefitBuilder().With(func(b *builder.BenefitBuilder) {
			b.Name = "VIP discount"
			b.Value = decimal.NewFromInt(25)
		}).BuildInput()

		updated, err := uc.UpdateBenefit(ctx, testTenantID, seeded.ID(), in)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID(), updated.ID())
		assert.Equal(t, "VIP discount", updated.Name())
	})

	t.Run("unknown benefit id", func(t *testing.T) {
		gw, _ := seedGateway(t)
		uc := commands.NewBenefitCommands(gw)

		_, err := uc.UpdateBenefit(ctx, testTenantID, uuid.New(), builder.NewBenefitBuilder().BuildInput())
		require.ErrorIs(t, err, errs.ErrBenefitNotFound)
	})
}

func TestBenefitCommands_RemoveBenefit(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the stored benefit", func(t *testing.T) {
		gw, _ := seedGateway(t)
		uc := commands.NewBenefitCommands(gw)

		seeded, err := builder.NewBenefitBuilder().BuildDomain()
		require.NoError(t, err)
		gw.SeedBenefit(testTenantID, seeded)

		require.NoError(t, uc.RemoveBenefit(ctx, testTenantID, seeded.ID()))

		stored, err := gw.Benefits(ctx, testTenantID)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("unknown benefit id", func(t *testing.T) {
		gw, _ := seedGateway(t)
		uc := commands.NewBenefitCommands(gw)

		err := uc.RemoveBenefit(ctx, testTenantID, uuid.New())
		require.ErrorIs(t, err, errs.ErrBenefitNotFound)
	})
}
