package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"loyalty-console/internal/domain/entitlement"
	"loyalty-console/internal/pkg/config"
	"loyalty-console/internal/pkg/errs"

	stripe "github.com/stripe/stripe-go/v82"
)

const stripeAPIBase = "https://api.stripe.com"

// lookupKeyToPlan maps Stripe price lookup keys to plan tiers. Lookup keys
// are stable across price rotations, unlike price IDs.
var lookupKeyToPlan = map[string]entitlement.PlanTier{
	"loyalty_basic":        entitlement.PlanBasic,
	"loyalty_professional": entitlement.PlanProfessional,
	"loyalty_enterprise":   entitlement.PlanEnterprise,
}

// StripeResolver resolves a tenant's subscription plan by querying the
// Stripe REST API directly. Tenants are linked to Stripe customers through
// the customer's tenant_id metadata field.
type StripeResolver struct {
	httpClient *http.Client
	secretKey  string
	baseURL    string
}

func NewStripeResolver(cfg config.StripeConfig) *StripeResolver {
	return &StripeResolver{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		secretKey:  cfg.APIKey,
		baseURL:    stripeAPIBase,
	}
}

// PlanFor returns the tenant's current plan tier. Tenants without a Stripe
// customer or without an active subscription fall back to the basic plan.
// A subscription in Stripe's trialing status maps to the trialing plan tier
// regardless of which price it carries.
func (s *StripeResolver) PlanFor(ctx context.Context, tenantID string) (entitlement.PlanTier, error) {
	customerID, err := s.findCustomer(ctx, tenantID)
	if err != nil {
		return "", err
	}
	if customerID == "" {
		return entitlement.PlanBasic, nil
	}

	params := url.Values{}
	params.Set("customer", customerID)
	params.Set("limit", "1")

	var list stripeSubscriptionList
	if err := s.get(ctx, "/v1/subscriptions", params, &list); err != nil {
		return "", err
	}
	if len(list.Data) == 0 {
		return entitlement.PlanBasic, nil
	}

	return mapSubscription(list.Data[0]), nil
}

func (s *StripeResolver) findCustomer(ctx context.Context, tenantID string) (string, error) {
	params := url.Values{}
	params.Set("query", `metadata["tenant_id"]:"`+tenantID+`"`)
	params.Set("limit", "1")

	var result stripeCustomerSearch
	if err := s.get(ctx, "/v1/customers/search", params, &result); err != nil {
		return "", err
	}
	if len(result.Data) == 0 {
		return "", nil
	}
	return result.Data[0].ID, nil
}

func (s *StripeResolver) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := s.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return errs.Wrap(err, "billing: build stripe request")
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Stripe-Version", stripe.APIVersion)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "billing: stripe request failed"), errs.ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return errs.Mark(errs.Newf("billing: stripe returned %d", resp.StatusCode), errs.ErrGatewayUnavailable)
	default:
		return errs.Mark(errs.Newf("billing: stripe returned %d", resp.StatusCode), errs.ErrGatewayRejected)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "billing: decode stripe response")
	}
	return nil
}

func mapSubscription(sub stripeSubscription) entitlement.PlanTier {
	if sub.Status == "trialing" {
		return entitlement.PlanTrialing
	}
	if len(sub.Items.Data) > 0 {
		if plan, ok := lookupKeyToPlan[sub.Items.Data[0].Price.LookupKey]; ok {
			return plan
		}
	}
	return entitlement.PlanBasic
}

type stripeCustomerSearch struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

type stripeSubscriptionList struct {
	Data []stripeSubscription `json:"data"`
}

type stripeSubscription struct {
	Status string `json:"status"`
	Items  struct {
		Data []struct {
			Price struct {
				LookupKey string `json:"lookup_key"`
			} `json:"price"`
		} `json:"data"`
	} `json:"items"`
}
