package benefit

import (
	"strings"

	"loyalty-console/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Benefit is a named, typed reward rule defined independently of the tier
// sequence. It references tiers by stable ID; an empty set means the benefit
// applies to no tier until scoped explicitly.
type Benefit struct {
	id              uuid.UUID
	name            string
	description     string
	benefitType     BenefitType
	value           decimal.Decimal
	minSpend        decimal.Decimal
	applicableTiers []uuid.UUID
	isActive        bool
}

// BenefitInput carries the editable fields of a benefit.
type BenefitInput struct {
	Name            string
	Description     string
	Type            BenefitType
	Value           decimal.Decimal
	MinSpend        decimal.Decimal
	ApplicableTiers []uuid.UUID
	IsActive        bool
}

// NewBenefit validates the input for the tenant's vertical, accumulating
// every violation. ApplicableTiers passes through unvalidated: stale tier
// references are tolerated here and resolved defensively at read time.
func NewBenefit(id uuid.UUID, in BenefitInput, vertical Vertical) (*Benefit, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}

	var v errs.Violations

	name := strings.TrimSpace(in.Name)
	if name == "" {
		v.Add("name", "benefit name must not be empty")
	}

	spec, err := Describe(in.Type)
	switch {
	case err != nil:
		v.AddErr("type", err)
	case !Offerable(in.Type, vertical):
		v.Add("type", "benefit type %s is not offered for %s tenants", in.Type, vertical)
	default:
		if valueErr := spec.Validate(in.Value); valueErr != nil {
			v.AddErr("value", valueErr)
		}
	}

	if in.MinSpend.IsNegative() {
		v.Add("min_spend", "minimum spend must not be negative")
	}

	if !v.Empty() {
		return nil, v.Err()
	}

	tiers := make([]uuid.UUID, len(in.ApplicableTiers))
	copy(tiers, in.ApplicableTiers)

	return &Benefit{
		id:              id,
		name:            name,
		description:     strings.TrimSpace(in.Description),
		benefitType:     in.Type,
		value:           in.Value,
		minSpend:        in.MinSpend,
		applicableTiers: tiers,
		isActive:        in.IsActive,
	}, nil
}

// Replace returns a new benefit with the same identity and the given fields.
func (b *Benefit) Replace(in BenefitInput, vertical Vertical) (*Benefit, error) {
	return NewBenefit(b.id, in, vertical)
}

// AppliesAt reports whether the transaction amount clears the benefit's
// minimum spend threshold.
func (b *Benefit) AppliesAt(amount decimal.Decimal) bool {
	return b.isActive && amount.GreaterThanOrEqual(b.minSpend)
}

// AppliesToTier reports whether the benefit is scoped to the tier. A benefit
// with an empty tier set applies to none, never silently to all.
func (b *Benefit) AppliesToTier(tierID uuid.UUID) bool {
	for _, id := range b.applicableTiers {
		if id == tierID {
			return true
		}
	}
	return false
}

func (b *Benefit) ID() uuid.UUID             { return b.id }
func (b *Benefit) Name() string              { return b.name }
func (b *Benefit) Description() string       { return b.description }
func (b *Benefit) Type() BenefitType         { return b.benefitType }
func (b *Benefit) Value() decimal.Decimal    { return b.value }
func (b *Benefit) MinSpend() decimal.Decimal { return b.minSpend }
func (b *Benefit) IsActive() bool            { return b.isActive }

func (b *Benefit) ApplicableTiers() []uuid.UUID {
	out := make([]uuid.UUID, len(b.applicableTiers))
	copy(out, b.applicableTiers)
	return out
}
