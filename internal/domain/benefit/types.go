package benefit

// BenefitType is a closed tagged union of reward rule kinds. The numeric
// value of a benefit means something different per type; see Describe.
type BenefitType string

const (
	TypeDiscount      BenefitType = "DISCOUNT"
	TypePoints        BenefitType = "POINTS"
	TypeCashback      BenefitType = "CASHBACK"
	TypeFreeShipping  BenefitType = "FREE_SHIPPING"
	TypeRoomUpgrade   BenefitType = "ROOM_UPGRADE"
	TypeLateCheckout  BenefitType = "LATE_CHECKOUT"
	TypeEarlyCheckin  BenefitType = "EARLY_CHECKIN"
	TypeFreeBreakfast BenefitType = "FREE_BREAKFAST"
)

// Vertical identifies the tenant's business category. It gates which benefit
// types the tenant may offer.
type Vertical string

const (
	VerticalHospitality Vertical = "hospitality"
	VerticalRetail      Vertical = "retail"
)

func (v Vertical) Valid() bool {
	return v == VerticalHospitality || v == VerticalRetail
}

// catalogues is the per-vertical allow-list of offerable benefit types,
// in display order.
var catalogues = map[Vertical][]BenefitType{
	VerticalHospitality: {
		TypeDiscount,
		TypePoints,
		TypeRoomUpgrade,
		TypeLateCheckout,
		TypeEarlyCheckin,
		TypeFreeBreakfast,
	},
	VerticalRetail: {
		TypeDiscount,
		TypeCashback,
		TypePoints,
		TypeFreeShipping,
	},
}

// CatalogueFor returns the benefit types a tenant of the given vertical may
// offer. Unknown verticals get an empty catalogue rather than a guess.
func CatalogueFor(v Vertical) []BenefitType {
	types, ok := catalogues[v]
	if !ok {
		return nil
	}
	out := make([]BenefitType, len(types))
	copy(out, types)
	return out
}

// Offerable reports whether the type belongs to the vertical's catalogue.
func Offerable(t BenefitType, v Vertical) bool {
	for _, candidate := range catalogues[v] {
		if candidate == t {
			return true
		}
	}
	return false
}
