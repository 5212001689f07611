package response

import (
	"loyalty-console/internal/usecase/queries"
)

type TierRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BenefitResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Type            string            `json:"type"`
	Value           string            `json:"value"`
	MinSpend        string            `json:"min_spend"`
	ApplicableTiers []TierRefResponse `json:"applicable_tiers"`
	IsActive        bool              `json:"is_active"`
}

type BenefitTypeResponse struct {
	Type       string `json:"type"`
	Label      string `json:"label"`
	HelperText string `json:"helper_text"`
}

func FromBenefitView(v *queries.BenefitView) *BenefitResponse {
	refs := make([]TierRefResponse, len(v.ApplicableTiers))
	for i, ref := range v.ApplicableTiers {
		refs[i] = TierRefResponse{ID: ref.ID.String(), Name: ref.Name}
	}
	return &BenefitResponse{
		ID:              v.ID.String(),
		Name:            v.Name,
		Description:     v.Description,
		Type:            v.Type,
		Value:           v.Value.String(),
		MinSpend:        v.MinSpend.String(),
		ApplicableTiers: refs,
		IsActive:        v.IsActive,
	}
}

func FromBenefitList(items []queries.BenefitView) []*BenefitResponse {
	res := make([]*BenefitResponse, len(items))
	for i := range items {
		res[i] = FromBenefitView(&items[i])
	}
	return res
}

func FromTypeCatalogue(items []queries.BenefitTypeView) []BenefitTypeResponse {
	res := make([]BenefitTypeResponse, len(items))
	for i, it := range items {
		res[i] = BenefitTypeResponse{Type: it.Type, Label: it.Label, HelperText: it.HelperText}
	}
	return res
}
