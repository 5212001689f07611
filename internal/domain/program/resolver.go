package program

import (
	"fmt"

	"loyalty-console/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// NoTierError signals that a cumulative spend falls outside every active
// tier's range. There is no implicit default tier and no clamping to the top
// tier: callers treat the customer as untiered (1x multiplier, no perks).
type NoTierError struct {
	Spend decimal.Decimal
}

func (e *NoTierError) Error() string {
	return fmt.Sprintf("no tier matches cumulative spend %s", e.Spend)
}

func (e *NoTierError) Is(target error) bool {
	return target == errs.ErrNoTierForSpend
}

// ResolveTier selects the single tier whose closed spend range contains the
// cumulative qualifying spend. Fractional spend is floor-compared against
// the whole-unit range bounds, so 999.99 still places in [0,999]. Inactive
// tiers never match. The non-overlap invariant guarantees at most one hit.
func ResolveTier(cumulativeSpend decimal.Decimal, tiers []MembershipTier) (*MembershipTier, error) {
	floored := cumulativeSpend.Floor().IntPart()
	for i := range tiers {
		t := &tiers[i]
		if !t.IsActive() {
			continue
		}
		if t.SpendRange().Contains(floored) {
			return t, nil
		}
	}
	return nil, &NoTierError{Spend: cumulativeSpend}
}
