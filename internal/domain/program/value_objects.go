package program

import (
	"fmt"
	"strings"

	"loyalty-console/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSpendRange = errs.New("spend range min must be less than max")
	ErrNegativeSpend     = errs.New("spend cannot be negative")
)

// SpendRange is a closed interval [min, max] of qualifying cumulative spend,
// in whole currency units. Zero-width ranges are invalid.
type SpendRange struct {
	min int64
	max int64
}

func NewSpendRange(min, max int64) (SpendRange, error) {
	if min < 0 {
		return SpendRange{}, ErrNegativeSpend
	}
	if min >= max {
		return SpendRange{}, ErrInvalidSpendRange
	}
	return SpendRange{min: min, max: max}, nil
}

func (r SpendRange) Min() int64 { return r.min }
func (r SpendRange) Max() int64 { return r.max }

// Contains reports whether the whole-unit spend value falls inside the
// closed interval. Fractional spend is floored by the caller before the
// comparison.
func (r SpendRange) Contains(spend int64) bool {
	return spend >= r.min && spend <= r.max
}

// Overlaps uses closed-interval semantics: [100,200] and [200,300] overlap
// because both claim 200.
func (r SpendRange) Overlaps(other SpendRange) bool {
	return r.min <= other.max && r.max >= other.min
}

func (r SpendRange) String() string {
	return fmt.Sprintf("[%d,%d]", r.min, r.max)
}

// Multiplier scales base points earned per unit spend. Tier multipliers must
// be at least 1; a customer without a tier earns at exactly 1x.
type Multiplier struct {
	value decimal.Decimal
}

var multiplierOne = decimal.NewFromInt(1)

func NewMultiplier(value decimal.Decimal) (Multiplier, error) {
	if value.LessThan(multiplierOne) {
		return Multiplier{}, errs.New("points multiplier must be at least 1")
	}
	return Multiplier{value: value}, nil
}

// BaseMultiplier is the neutral 1x multiplier applied when no tier is assigned.
func BaseMultiplier() Multiplier {
	return Multiplier{value: multiplierOne}
}

func (m Multiplier) Value() decimal.Decimal {
	if m.value.IsZero() {
		return multiplierOne
	}
	return m.value
}

func (m Multiplier) Apply(points decimal.Decimal) decimal.Decimal {
	return points.Mul(m.Value())
}

// NormalizePerks drops blank entries and trims the rest, preserving order.
// Perks are display-only free text; they carry no computed effect.
func NormalizePerks(perks []string) []string {
	out := make([]string, 0, len(perks))
	for _, p := range perks {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
