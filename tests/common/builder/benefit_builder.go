//go:build unit

package builder

import (
	"loyalty-console/internal/domain/benefit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BenefitBuilder struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Type            benefit.BenefitType
	Value           decimal.Decimal
	MinSpend        decimal.Decimal
	ApplicableTiers []uuid.UUID
	IsActive        bool
	Vertical        benefit.Vertical
}

func NewBenefitBuilder() *BenefitBuilder {
	return &BenefitBuilder{
		ID:          uuid.New(),
		Name:        "Member discount",
		Description: "Percent off for members",
		Type:        benefit.TypeDiscount,
		Value:       decimal.NewFromInt(10),
		MinSpend:    decimal.Zero,
		IsActive:    true,
		Vertical:    benefit.VerticalHospitality,
	}
}

func (b *BenefitBuilder) With(mutate func(*BenefitBuilder)) *BenefitBuilder {
	mutate(b)
	return b
}

func (b *BenefitBuilder) BuildInput() benefit.BenefitInput {
	return benefit.BenefitInput{
		Name:            b.Name,
		Description:     b.Description,
		Type:            b.Type,
		Value:           b.Value,
		MinSpend:        b.MinSpend,
		ApplicableTiers: b.ApplicableTiers,
		IsActive:        b.IsActive,
	}
}

func (b *BenefitBuilder) BuildDomain() (*benefit.Benefit, error) {
	return benefit.NewBenefit(b.ID, b.BuildInput(), b.Vertical)
}
