package queries

import (
	"context"

	"loyalty-console/internal/domain/entitlement"
	"loyalty-console/internal/pkg/errs"
	"loyalty-console/internal/usecase/shared"
)

// PlanView is a tenant's resolved subscription tier with its projected
// entitlements. Limits use -1 as the unlimited sentinel; the UI must branch
// on the sentinel before rendering a cap.
type PlanView struct {
	Tier     entitlement.PlanTier           `json:"tier"`
	Features []entitlement.FeatureKey       `json:"features"`
	Limits   map[entitlement.LimitKey]int64 `json:"limits"`
}

// EntitlementQueries exposes the feature catalogue and the static plan
// projection tables, plus the tenant's currently resolved plan.
type EntitlementQueries interface {
	Features(ctx context.Context) (map[entitlement.FeatureKey]string, error)
	TierFeatures(ctx context.Context) (map[entitlement.PlanTier][]entitlement.FeatureKey, error)
	TierLimits(ctx context.Context) (map[entitlement.PlanTier]map[entitlement.LimitKey]int64, error)
	CurrentPlan(ctx context.Context, tenantID string) (*PlanView, error)
}

type entitlementQueriesImpl struct {
	gateway  shared.ProgramGateway
	resolver shared.SubscriptionResolver
}

func NewEntitlementQueries(gateway shared.ProgramGateway, resolver shared.SubscriptionResolver) EntitlementQueries {
	return &entitlementQueriesImpl{gateway: gateway, resolver: resolver}
}

// Features returns display labels from the gateway catalogue; the enabled
// sets and limits are projected locally from the static plan tables.
func (q *entitlementQueriesImpl) Features(ctx context.Context) (map[entitlement.FeatureKey]string, error) {
	features, err := q.gateway.Features(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "fetch feature catalogue")
	}
	return features, nil
}

func (q *entitlementQueriesImpl) TierFeatures(_ context.Context) (map[entitlement.PlanTier][]entitlement.FeatureKey, error) {
	out := make(map[entitlement.PlanTier][]entitlement.FeatureKey, len(allPlans))
	for _, plan := range allPlans {
		out[plan] = entitlement.FeaturesFor(plan)
	}
	return out, nil
}

func (q *entitlementQueriesImpl) TierLimits(_ context.Context) (map[entitlement.PlanTier]map[entitlement.LimitKey]int64, error) {
	out := make(map[entitlement.PlanTier]map[entitlement.LimitKey]int64, len(allPlans))
	for _, plan := range allPlans {
		out[plan] = entitlement.LimitsFor(plan)
	}
	return out, nil
}

func (q *entitlementQueriesImpl) CurrentPlan(ctx context.Context, tenantID string) (*PlanView, error) {
	tier, err := q.resolver.PlanFor(ctx, tenantID)
	if err != nil {
		return nil, errs.Wrap(err, "resolve subscription plan")
	}
	return &PlanView{
		Tier:     tier,
		Features: entitlement.FeaturesFor(tier),
		Limits:   entitlement.LimitsFor(tier),
	}, nil
}

var allPlans = []entitlement.PlanTier{
	entitlement.PlanBasic,
	entitlement.PlanProfessional,
	entitlement.PlanEnterprise,
	entitlement.PlanTrialing,
}
