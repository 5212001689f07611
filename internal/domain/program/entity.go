package program

import (
	"time"

	"loyalty-console/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTierNotInProgram = errs.New("tier does not belong to this program")
)

// DiscountType selects how redeemed points convert into a discount.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (d DiscountType) Valid() bool {
	return d == DiscountPercentage || d == DiscountFixed
}

// BonusDay grants a temporary points multiplier on a single calendar date.
// When several bonus days share a date, only the highest multiplier applies.
type BonusDay struct {
	Name       string
	Date       time.Time
	Multiplier decimal.Decimal
}

// SameDate compares calendar dates, ignoring the time of day.
func (b BonusDay) SameDate(t time.Time) bool {
	by, bm, bd := b.Date.Date()
	ty, tm, td := t.Date()
	return by == ty && bm == tm && bd == td
}

// EarningRules configures how points are earned, before tier multipliers.
type EarningRules struct {
	SpendRate         decimal.Decimal // points per unit of currency spent
	SignUpBonus       int64
	ReviewPoints      int64
	SocialSharePoints int64
	BonusDays         []BonusDay
}

// RedeemRules configures how a point balance converts back into discounts.
type RedeemRules struct {
	PointsPerDiscount int64
	DiscountValue     decimal.Decimal
	DiscountType      DiscountType
}

// PointsSystem is the earning and redemption configuration of a program.
type PointsSystem struct {
	Earning   EarningRules
	Redeeming RedeemRules
}

// LoyaltyProgram is the per-tenant aggregate: the points system plus the
// ordered tier sequence. Insertion order is display order, not spend order.
// The canonical record lives behind the gateway; in-memory copies are
// immutable drafts that are only replaced wholesale.
type LoyaltyProgram struct {
	programName string
	currency    string
	points      PointsSystem
	tiers       []MembershipTier
}

func NewLoyaltyProgram(name, currency string, points PointsSystem, tiers []MembershipTier) *LoyaltyProgram {
	return &LoyaltyProgram{
		programName: name,
		currency:    currency,
		points:      points,
		tiers:       tiers,
	}
}

func (p *LoyaltyProgram) Name() string         { return p.programName }
func (p *LoyaltyProgram) Currency() string     { return p.currency }
func (p *LoyaltyProgram) Points() PointsSystem { return p.points }

func (p *LoyaltyProgram) Tiers() []MembershipTier {
	out := make([]MembershipTier, len(p.tiers))
	copy(out, p.tiers)
	return out
}

func (p *LoyaltyProgram) TierByID(id uuid.UUID) (*MembershipTier, bool) {
	for i := range p.tiers {
		if p.tiers[i].ID() == id {
			return &p.tiers[i], true
		}
	}
	return nil, false
}

// WithTierAdded returns a draft with the tier appended at display-order end.
func (p *LoyaltyProgram) WithTierAdded(t MembershipTier) *LoyaltyProgram {
	next := p.Tiers()
	next = append(next, t)
	return p.withTiers(next)
}

// WithTierReplaced returns a draft with the tier of the same ID swapped in
// place, preserving display order.
func (p *LoyaltyProgram) WithTierReplaced(t MembershipTier) (*LoyaltyProgram, error) {
	next := p.Tiers()
	for i := range next {
		if next[i].ID() == t.ID() {
			next[i] = t
			return p.withTiers(next), nil
		}
	}
	return nil, ErrTierNotInProgram
}

// WithTierRemoved returns a draft with the tier excluded from the sequence.
// Removal is exclusion; soft-delete, if any, belongs to the gateway.
func (p *LoyaltyProgram) WithTierRemoved(id uuid.UUID) (*LoyaltyProgram, error) {
	next := make([]MembershipTier, 0, len(p.tiers))
	found := false
	for _, t := range p.tiers {
		if t.ID() == id {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		return nil, ErrTierNotInProgram
	}
	return p.withTiers(next), nil
}

// WithPoints returns a draft with the points system replaced.
func (p *LoyaltyProgram) WithPoints(ps PointsSystem) *LoyaltyProgram {
	return &LoyaltyProgram{
		programName: p.programName,
		currency:    p.currency,
		points:      ps,
		tiers:       p.Tiers(),
	}
}

func (p *LoyaltyProgram) withTiers(tiers []MembershipTier) *LoyaltyProgram {
	return &LoyaltyProgram{
		programName: p.programName,
		currency:    p.currency,
		points:      p.points,
		tiers:       tiers,
	}
}

// Validate re-checks the program-wide invariant that no two tiers claim the
// same spend value. Commands validate before building a draft; this exists
// for defensive re-validation of gateway documents.
func (p *LoyaltyProgram) Validate() error {
	for i := range p.tiers {
		if overlap := ValidateSpendRange(p.tiers[i].SpendRange(), p.tiers[i+1:], uuid.Nil); overlap != nil {
			return overlap
		}
	}
	return nil
}
