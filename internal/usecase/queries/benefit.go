package queries

import (
	"context"
	"log/slog"

	"loyalty-console/internal/domain/benefit"
	"loyalty-console/internal/pkg/errs"
	"loyalty-console/internal/usecase/shared"

	"github.com/google/uuid"
)

// BenefitQueries lists benefits with tier references resolved and exposes
// the per-vertical type catalogue for the editor.
type BenefitQueries interface {
	ListBenefits(ctx context.Context, tenantID string) ([]BenefitView, error)
	GetBenefit(ctx context.Context, tenantID string, id uuid.UUID) (*BenefitView, error)
	TypeCatalogue(ctx context.Context, tenantID string) ([]BenefitTypeView, error)
}

type benefitQueriesImpl struct {
	gateway shared.ProgramGateway
}

func NewBenefitQueries(gateway shared.ProgramGateway) BenefitQueries {
	return &benefitQueriesImpl{gateway: gateway}
}

func (q *benefitQueriesImpl) ListBenefits(ctx context.Context, tenantID string) ([]BenefitView, error) {
	benefits, err := q.gateway.Benefits(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch benefits")
	}
	p, err := q.gateway.Program(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch program")
	}

	views := make([]BenefitView, 0, len(benefits))
	for i := range benefits {
		view, dangling := FromBenefit(&benefits[i], p)
		if len(dangling) > 0 {
			slog.Warn("benefit references removed tiers",
				"tenant_id", tenantID,
				"benefit_id", view.ID,
				"dangling_tier_ids", dangling)
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *benefitQueriesImpl) GetBenefit(ctx context.Context, tenantID string, id uuid.UUID) (*BenefitView, error) {
	benefits, err := q.gateway.Benefits(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch benefits")
	}
	p, err := q.gateway.Program(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch program")
	}

	for i := range benefits {
		if benefits[i].ID() != id {
			continue
		}
		view, dangling := FromBenefit(&benefits[i], p)
		if len(dangling) > 0 {
			slog.Warn("benefit references removed tiers",
				"tenant_id", tenantID,
				"benefit_id", id,
				"dangling_tier_ids", dangling)
		}
		return &view, nil
	}
	return nil, errs.ErrBenefitNotFound
}

func (q *benefitQueriesImpl) TypeCatalogue(ctx context.Context, tenantID string) ([]BenefitTypeView, error) {
	profile, err := q.gateway.TenantProfile(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "fetch tenant profile")
	}

	specs := benefit.DescribeCatalogue(profile.Vertical)
	views := make([]BenefitTypeView, len(specs))
	for i, spec := range specs {
		views[i] = BenefitTypeView{
			Type:       string(spec.Type),
			Label:      spec.Label,
			HelperText: spec.HelperText,
		}
	}
	return views, nil
}
