package gateway

import (
	"context"
	"fmt"
	"net/http"

	"loyalty-console/internal/domain/benefit"
	"loyalty-console/internal/domain/entitlement"
	"loyalty-console/internal/domain/program"
	"loyalty-console/internal/pkg/errs"
	"loyalty-console/internal/usecase/shared"

	"github.com/google/uuid"
)

func (c *Client) Program(ctx context.Context, tenantID string) (*program.LoyaltyProgram, error) {
	var doc programDoc
	if err := c.get(ctx, c.cfg.ProgramURL(tenantID), &doc); err != nil {
		return nil, err
	}
	return programToDomain(&doc)
}

// ReplaceProgram PUTs the full document; the gateway re-validates against
// its latest committed state and returns the canonical record.
func (c *Client) ReplaceProgram(ctx context.Context, tenantID string, p *program.LoyaltyProgram) (*program.LoyaltyProgram, error) {
	var doc programDoc
	if err := c.do(ctx, http.MethodPut, c.cfg.ProgramURL(tenantID), programFromDomain(p), &doc); err != nil {
		return nil, err
	}
	return programToDomain(&doc)
}

func (c *Client) TenantProfile(ctx context.Context, tenantID string) (*shared.TenantProfile, error) {
	var doc tenantProfileDoc
	url := fmt.Sprintf("%s/v1/tenants/%s", c.cfg.BaseURL, tenantID)
	if err := c.get(ctx, url, &doc); err != nil {
		return nil, err
	}
	profile := profileToDomain(&doc)
	if !profile.Vertical.Valid() {
		return nil, errs.Newf("tenant %s has unknown vertical %q", tenantID, doc.Vertical)
	}
	return profile, nil
}

func (c *Client) Benefits(ctx context.Context, tenantID string) ([]benefit.Benefit, error) {
	var docs []benefitDoc
	url := fmt.Sprintf("%s/v1/tenants/%s/benefits", c.cfg.BaseURL, tenantID)
	if err := c.get(ctx, url, &docs); err != nil {
		return nil, err
	}

	benefits := make([]benefit.Benefit, 0, len(docs))
	for i := range docs {
		b, err := benefitToDomain(&docs[i])
		if err != nil {
			return nil, err
		}
		benefits = append(benefits, *b)
	}
	return benefits, nil
}

func (c *Client) SaveBenefit(ctx context.Context, tenantID string, b *benefit.Benefit) (*benefit.Benefit, error) {
	var doc benefitDoc
	url := fmt.Sprintf("%s/v1/tenants/%s/benefits/%s", c.cfg.BaseURL, tenantID, b.ID())
	if err := c.do(ctx, http.MethodPut, url, benefitFromDomain(b), &doc); err != nil {
		return nil, err
	}
	return benefitToDomain(&doc)
}

func (c *Client) DeleteBenefit(ctx context.Context, tenantID string, id uuid.UUID) error {
	url := fmt.Sprintf("%s/v1/tenants/%s/benefits/%s", c.cfg.BaseURL, tenantID, id)
	return c.do(ctx, http.MethodDelete, url, nil, nil)
}

func (c *Client) Features(ctx context.Context) (map[entitlement.FeatureKey]string, error) {
	return c.catalogue.features(ctx)
}
