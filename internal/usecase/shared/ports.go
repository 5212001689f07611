package shared

import (
	"context"

	"loyalty-console/internal/domain/benefit"
	"loyalty-console/internal/domain/entitlement"
	"loyalty-console/internal/domain/program"

	"github.com/google/uuid"
)

// TenantProfile is the slice of tenant state the console needs from the
// gateway: the business vertical gates the benefit catalogue.
type TenantProfile struct {
	TenantID    string
	DisplayName string
	Vertical    benefit.Vertical
}

// ProgramGateway is the persistence collaborator. The canonical loyalty
// program document lives behind the external gateway service; the console
// only ever reads a snapshot and replaces the document wholesale after
// validation. Two editors racing on stale snapshots is a last-write-wins
// hazard the gateway resolves server-side, not here.
type ProgramGateway interface {
	Program(ctx context.Context, tenantID string) (*program.LoyaltyProgram, error)
	ReplaceProgram(ctx context.Context, tenantID string, p *program.LoyaltyProgram) (*program.LoyaltyProgram, error)

	TenantProfile(ctx context.Context, tenantID string) (*TenantProfile, error)

	Benefits(ctx context.Context, tenantID string) ([]benefit.Benefit, error)
	SaveBenefit(ctx context.Context, tenantID string, b *benefit.Benefit) (*benefit.Benefit, error)
	DeleteBenefit(ctx context.Context, tenantID string, id uuid.UUID) error

	// Features returns the platform feature catalogue: key to display label.
	Features(ctx context.Context) (map[entitlement.FeatureKey]string, error)
}

// SubscriptionResolver maps a tenant to its current subscription plan tier.
type SubscriptionResolver interface {
	PlanFor(ctx context.Context, tenantID string) (entitlement.PlanTier, error)
}
