package response

import (
	"loyalty-console/internal/domain/entitlement"
	"loyalty-console/internal/usecase/queries"
)

type PlanResponse struct {
	Tier     string           `json:"tier"`
	Features []string         `json:"features"`
	Limits   map[string]int64 `json:"limits"`
}

func FromPlanView(v *queries.PlanView) *PlanResponse {
	features := make([]string, len(v.Features))
	for i, f := range v.Features {
		features[i] = string(f)
	}
	limits := make(map[string]int64, len(v.Limits))
	for k, limit := range v.Limits {
		limits[string(k)] = limit
	}
	return &PlanResponse{
		Tier:     string(v.Tier),
		Features: features,
		Limits:   limits,
	}
}

type FeatureCatalogueResponse struct {
	Features map[string]string `json:"features"`
}

func FromFeatureCatalogue(features map[entitlement.FeatureKey]string) *FeatureCatalogueResponse {
	out := make(map[string]string, len(features))
	for k, label := range features {
		out[string(k)] = label
	}
	return &FeatureCatalogueResponse{Features: out}
}

type PlanTableResponse struct {
	Features map[string][]string         `json:"features"`
	Limits   map[string]map[string]int64 `json:"limits"`
}

func FromPlanTables(
	features map[entitlement.PlanTier][]entitlement.FeatureKey,
	limits map[entitlement.PlanTier]map[entitlement.LimitKey]int64,
) *PlanTableResponse {
	featureTable := make(map[string][]string, len(features))
	for plan, keys := range features {
		row := make([]string, len(keys))
		for i, k := range keys {
			row[i] = string(k)
		}
		featureTable[string(plan)] = row
	}

	limitTable := make(map[string]map[string]int64, len(limits))
	for plan, row := range limits {
		cells := make(map[string]int64, len(row))
		for k, limit := range row {
			cells[string(k)] = limit
		}
		limitTable[string(plan)] = cells
	}

	return &PlanTableResponse{Features: featureTable, Limits: limitTable}
}
