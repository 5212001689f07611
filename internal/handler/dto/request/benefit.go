package request

import (
	"loyalty-console/internal/domain/benefit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BenefitRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Type            string          `json:"type" binding:"required"`
	Value           decimal.Decimal `json:"value" binding:"required"`
	MinSpend        decimal.Decimal `json:"min_spend"`
	ApplicableTiers []uuid.UUID     `json:"applicable_tiers"`
	IsActive        *bool           `json:"is_active"`
}

func (r BenefitRequest) ToDomain() benefit.BenefitInput {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return benefit.BenefitInput{
		Name:            r.Name,
		Description:     r.Description,
		Type:            benefit.BenefitType(r.Type),
		Value:           r.Value,
		MinSpend:        r.MinSpend,
		ApplicableTiers: r.ApplicableTiers,
		IsActive:        isActive,
	}
}
