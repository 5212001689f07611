package commands

import (
	"context"

	"loyalty-console/internal/domain/benefit"
	"loyalty-console/internal/pkg/errs"
	"loyalty-console/internal/usecase/shared"

	"github.com/google/uuid"
)

// BenefitCommands orchestrates standalone benefit edits. The tenant's
// vertical is fetched from the gateway so the type catalogue check always
// runs against current tenant state, never a client-supplied claim.
type BenefitCommands interface {
	CreateBenefit(ctx context.Context, tenantID string, in benefit.BenefitInput) (*benefit.Benefit, error)
	UpdateBenefit(ctx context.Context, tenantID string, id uuid.UUID, in benefit.BenefitInput) (*benefit.Benefit, error)
	RemoveBenefit(ctx context.Context, tenantID string, id uuid.UUID) error
}

type benefitCommandsImpl struct {
	gateway shared.ProgramGateway
}

func NewBenefitCommands(gateway shared.ProgramGateway) BenefitCommands {
	return &benefitCommandsImpl{gateway: gateway}
}

func (uc *benefitCommandsImpl) CreateBenefit(ctx context.Context, tenantID string, in benefit.BenefitInput) (*benefit.Benefit, error) {
	profile, err := uc.gateway.TenantProfile(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch tenant profile")
	}

	created, err := benefit.NewBenefit(uuid.Nil, in, profile.Vertical)
	if err != nil {
		return nil, err
	}

	committed, err := uc.gateway.SaveBenefit(ctx, tenantID, created)
	if err != nil {
		return nil, errs.Wrap(err, "persist benefit create")
	}
	return committed, nil
}

func (uc *benefitCommandsImpl) UpdateBenefit(ctx context.Context, tenantID string, id uuid.UUID, in benefit.BenefitInput) (*benefit.Benefit, error) {
	profile, err := uc.gateway.TenantProfile(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch tenant profile")
	}

	existing, err := uc.findBenefit(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	replaced, err := existing.Replace(in, profile.Vertical)
	if err != nil {
		return nil, err
	}

	committed, err := uc.gateway.SaveBenefit(ctx, tenantID, replaced)
	if err != nil {
		return nil, errs.Wrap(err, "persist benefit update")
	}
	return committed, nil
}

func (uc *benefitCommandsImpl) RemoveBenefit(ctx context.Context, tenantID string, id uuid.UUID) error {
	if _, err := uc.findBenefit(ctx, tenantID, id); err != nil {
		return err
	}
	if err := uc.gateway.DeleteBenefit(ctx, tenantID, id); err != nil {
		return errs.Wrap(err, "persist benefit removal")
	}
	return nil
}

func (uc *benefitCommandsImpl) findBenefit(ctx context.Context, tenantID string, id uuid.UUID) (*benefit.Benefit, error) {
	benefits, err := uc.gateway.Benefits(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch benefits")
	}
	for i := range benefits {
		if benefits[i].ID() == id {
			return &benefits[i], nil
		}
	}
	return nil, errs.ErrBenefitNotFound
}
