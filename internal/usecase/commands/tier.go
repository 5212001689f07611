package commands

import (
	"context"

	"loyalty-console/internal/domain/program"
	"loyalty-console/internal/pkg/errs"
	"loyalty-console/internal/usecase/shared"

	"github.com/google/uuid"
)

// TierCommands orchestrates tier edits: validate against a snapshot of the
// sibling tiers, build an immutable draft, and replace the program document
// through the gateway. Validation runs in full before any mutation is
// constructed; on failure the caller gets the whole error set and the
// canonical record is untouched.
type TierCommands interface {
	CreateTier(ctx context.Context, tenantID string, in program.TierInput) (*program.LoyaltyProgram, error)
	UpdateTier(ctx context.Context, tenantID string, tierID uuid.UUID, in program.TierInput) (*program.LoyaltyProgram, error)
	RemoveTier(ctx context.Context, tenantID string, tierID uuid.UUID) (*program.LoyaltyProgram, error)
}

type tierCommandsImpl struct {
	gateway shared.ProgramGateway
}

func NewTierCommands(gateway shared.ProgramGateway) TierCommands {
	return &tierCommandsImpl{gateway: gateway}
}

func (uc *tierCommandsImpl) CreateTier(ctx context.Context, tenantID string, in program.TierInput) (*program.LoyaltyProgram, error) {
	snapshot, err := uc.gateway.Program(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch program snapshot")
	}

	tier, err := program.NewTier(uuid.Nil, in, snapshot.Tiers())
	if err != nil {
		return nil, err
	}

	draft := snapshot.WithTierAdded(*tier)

	committed, err := uc.gateway.ReplaceProgram(ctx, tenantID, draft)
	if err != nil {
		return nil, errs.Wrap(err, "persist tier create")
	}
	return committed, nil
}

func (uc *tierCommandsImpl) UpdateTier(ctx context.Context, tenantID string, tierID uuid.UUID, in program.TierInput) (*program.LoyaltyProgram, error) {
	snapshot, err := uc.gateway.Program(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch program snapshot")
	}

	current, ok := snapshot.TierByID(tierID)
	if !ok {
		return nil, errs.ErrTierNotFound
	}

	replaced, err := current.Replace(in, snapshot.Tiers())
	if err != nil {
		return nil, err
	}

	draft, err := snapshot.WithTierReplaced(*replaced)
	if err != nil {
		return nil, err
	}

	committed, err := uc.gateway.ReplaceProgram(ctx, tenantID, draft)
	if err != nil {
		return nil, errs.Wrap(err, "persist tier update")
	}
	return committed, nil
}

func (uc *tierCommandsImpl) RemoveTier(ctx context.Context, tenantID string, tierID uuid.UUID) (*program.LoyaltyProgram, error) {
	snapshot, err := uc.gateway.Program(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch program snapshot")
	}

	if _, ok := snapshot.TierByID(tierID); !ok {
		return nil, errs.ErrTierNotFound
	}

	draft, err := snapshot.WithTierRemoved(tierID)
	if err != nil {
		return nil, err
	}

	committed, err := uc.gateway.ReplaceProgram(ctx, tenantID, draft)
	if err != nil {
		return nil, errs.Wrap(err, "persist tier removal")
	}
	return committed, nil
}
