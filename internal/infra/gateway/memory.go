package gateway

import (
	"context"
	"sync"

	"loyalty-console/internal/domain/benefit"
	"loyalty-console/internal/domain/entitlement"
	"loyalty-console/internal/domain/program"
	"loyalty-console/internal/pkg/errs"
	"loyalty-console/internal/usecase/shared"

	"github.com/google/uuid"
)

// MemoryGateway is a process-local ProgramGateway used by tests and by
// local development when no gateway service is reachable.
type MemoryGateway struct {
	mu       sync.RWMutex
	programs map[string]*program.LoyaltyProgram
	profiles map[string]shared.TenantProfile
	benefits map[string]map[uuid.UUID]benefit.Benefit
	features map[entitlement.FeatureKey]string
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		programs: make(map[string]*program.LoyaltyProgram),
		profiles: make(map[string]shared.TenantProfile),
		benefits: make(map[string]map[uuid.UUID]benefit.Benefit),
		features: map[entitlement.FeatureKey]string{
			entitlement.FeatureLoyaltyProgram: "Loyalty Program",
		},
	}
}

// SeedTenant installs a tenant profile and its program document.
func (m *MemoryGateway) SeedTenant(profile shared.TenantProfile, p *program.LoyaltyProgram) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[profile.TenantID] = profile
	if p != nil {
		m.programs[profile.TenantID] = p
	}
}

func (m *MemoryGateway) SeedBenefit(tenantID string, b *benefit.Benefit) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.benefits[tenantID] == nil {
		m.benefits[tenantID] = make(map[uuid.UUID]benefit.Benefit)
	}
	m.benefits[tenantID][b.ID()] = *b
}

func (m *MemoryGateway) SeedFeatures(features map[entitlement.FeatureKey]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.features = features
}

func (m *MemoryGateway) Program(_ context.Context, tenantID string) (*program.LoyaltyProgram, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.programs[tenantID]
	if !ok {
		return nil, errs.ErrProgramNotFound
	}
	return p, nil
}

func (m *MemoryGateway) ReplaceProgram(_ context.Context, tenantID string, p *program.LoyaltyProgram) (*program.LoyaltyProgram, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[tenantID]; !ok {
		return nil, errs.ErrProgramNotFound
	}
	m.programs[tenantID] = p
	return p, nil
}

func (m *MemoryGateway) TenantProfile(_ context.Context, tenantID string) (*shared.TenantProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	profile, ok := m.profiles[tenantID]
	if !ok {
		return nil, errs.ErrProgramNotFound
	}
	return &profile, nil
}

func (m *MemoryGateway) Benefits(_ context.Context, tenantID string) ([]benefit.Benefit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]benefit.Benefit, 0, len(m.benefits[tenantID]))
	for _, b := range m.benefits[tenantID] {
		out = append(out, b)
	}
	return out, nil
}

func (m *MemoryGateway) SaveBenefit(_ context.Context, tenantID string, b *benefit.Benefit) (*benefit.Benefit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.benefits[tenantID] == nil {
		m.benefits[tenantID] = make(map[uuid.UUID]benefit.Benefit)
	}
	m.benefits[tenantID][b.ID()] = *b
	return b, nil
}

func (m *MemoryGateway) DeleteBenefit(_ context.Context, tenantID string, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.benefits[tenantID][id]; !ok {
		return errs.ErrBenefitNotFound
	}
	delete(m.benefits[tenantID], id)
	return nil
}

func (m *MemoryGateway) Features(_ context.Context) (map[entitlement.FeatureKey]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[entitlement.FeatureKey]string, len(m.features))
	for k, v := range m.features {
		out[k] = v
	}
	return out, nil
}
