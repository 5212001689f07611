package program

import (
	"strings"

	"loyalty-console/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultSpendPeriodDays is the evaluation window applied when a tier does
// not specify one.
const DefaultSpendPeriodDays = 30

// MembershipTier is a named spend-based membership bracket. Tiers are
// identified by a stable surrogate ID; the name is a display string that may
// be renamed without orphaning benefit associations.
type MembershipTier struct {
	id               uuid.UUID
	name             string
	spendRange       SpendRange
	pointsMultiplier Multiplier
	birthdayReward   decimal.Decimal
	referralPoints   int64
	perks            []string
	spendPeriodDays  int
	isActive         bool
}

// TierInput carries the editable fields of a tier. Commands build one from
// the request DTO; a full replace on update uses the same shape.
type TierInput struct {
	Name             string
	SpendMin         int64
	SpendMax         int64
	PointsMultiplier decimal.Decimal
	BirthdayReward   decimal.Decimal
	ReferralPoints   int64
	Perks            []string
	SpendPeriodDays  int
	IsActive         bool
}

// NewTier validates the input against the field rules and the sibling tiers'
// spend ranges, accumulating every violation before returning. Nothing is
// constructed on failure.
func NewTier(id uuid.UUID, in TierInput, siblings []MembershipTier) (*MembershipTier, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return buildTier(id, in, siblings, uuid.Nil)
}

// Replace returns a new tier with the same identity and the given fields,
// validated against the siblings excluding this tier's own prior range.
// Replaying a tier's current data must succeed.
func (t *MembershipTier) Replace(in TierInput, siblings []MembershipTier) (*MembershipTier, error) {
	return buildTier(t.id, in, siblings, t.id)
}

func buildTier(id uuid.UUID, in TierInput, siblings []MembershipTier, excludeID uuid.UUID) (*MembershipTier, error) {
	var v errs.Violations

	name := strings.TrimSpace(in.Name)
	if name == "" {
		v.Add("name", "tier name must not be empty")
	}
	if in.PointsMultiplier.LessThan(multiplierOne) {
		v.Add("points_multiplier", "points multiplier must be at least 1")
	}
	if in.BirthdayReward.IsNegative() {
		v.Add("birthday_reward", "birthday reward must not be negative")
	}
	if in.ReferralPoints < 0 {
		v.Add("referral_points", "referral points must not be negative")
	}

	spendRange, err := NewSpendRange(in.SpendMin, in.SpendMax)
	if err != nil {
		v.AddErr("spend_range", err)
	} else if overlapErr := ValidateSpendRange(spendRange, siblings, excludeID); overlapErr != nil {
		v.AddConflict("spend_range", overlapErr.Error(), overlapErr.TierNames)
	}

	for _, sib := range siblings {
		if sib.id == excludeID {
			continue
		}
		if strings.EqualFold(sib.name, name) {
			v.Add("name", "tier name %q already exists in this program", name)
			break
		}
	}

	if !v.Empty() {
		return nil, v.Err()
	}

	days := in.SpendPeriodDays
	if days <= 0 {
		days = DefaultSpendPeriodDays
	}

	multiplier, _ := NewMultiplier(in.PointsMultiplier)

	return &MembershipTier{
		id:               id,
		name:             name,
		spendRange:       spendRange,
		pointsMultiplier: multiplier,
		birthdayReward:   in.BirthdayReward,
		referralPoints:   in.ReferralPoints,
		perks:            NormalizePerks(in.Perks),
		spendPeriodDays:  days,
		isActive:         in.IsActive,
	}, nil
}

// ReconstructTier rebuilds a tier from a persisted gateway document without
// re-running sibling validation. The gateway holds the canonical record.
func ReconstructTier(
	id uuid.UUID,
	name string,
	spendRange SpendRange,
	multiplier Multiplier,
	birthdayReward decimal.Decimal,
	referralPoints int64,
	perks []string,
	spendPeriodDays int,
	isActive bool,
) MembershipTier {
	if spendPeriodDays <= 0 {
		spendPeriodDays = DefaultSpendPeriodDays
	}
	return MembershipTier{
		id:               id,
		name:             name,
		spendRange:       spendRange,
		pointsMultiplier: multiplier,
		birthdayReward:   birthdayReward,
		referralPoints:   referralPoints,
		perks:            NormalizePerks(perks),
		spendPeriodDays:  spendPeriodDays,
		isActive:         isActive,
	}
}

func (t *MembershipTier) ID() uuid.UUID                   { return t.id }
func (t *MembershipTier) Name() string                    { return t.name }
func (t *MembershipTier) SpendRange() SpendRange          { return t.spendRange }
func (t *MembershipTier) PointsMultiplier() Multiplier    { return t.pointsMultiplier }
func (t *MembershipTier) BirthdayReward() decimal.Decimal { return t.birthdayReward }
func (t *MembershipTier) ReferralPoints() int64           { return t.referralPoints }
func (t *MembershipTier) SpendPeriodDays() int            { return t.spendPeriodDays }
func (t *MembershipTier) IsActive() bool                  { return t.isActive }

func (t *MembershipTier) Perks() []string {
	out := make([]string, len(t.perks))
	copy(out, t.perks)
	return out
}
