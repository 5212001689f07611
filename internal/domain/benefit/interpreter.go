package benefit

import (
	"loyalty-console/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownBenefitType = errs.New("unknown benefit type")
	ErrValueOutOfRange    = errs.New("benefit value out of range")
)

// TypeSpec describes what a benefit type's numeric value means and how to
// bound-check it. Label and HelperText feed the editor UI directly.
type TypeSpec struct {
	Type       BenefitType
	Label      string
	HelperText string
	Validate   func(value decimal.Decimal) error
}

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

func rangeErr(msg string) error {
	return errs.Mark(errs.New(msg), ErrValueOutOfRange)
}

func positive(unit string) func(decimal.Decimal) error {
	return func(v decimal.Decimal) error {
		if v.Sign() <= 0 {
			return rangeErr(unit + " must be greater than 0")
		}
		return nil
	}
}

func positiveInteger(unit string) func(decimal.Decimal) error {
	return func(v decimal.Decimal) error {
		if v.Sign() <= 0 {
			return rangeErr(unit + " must be greater than 0")
		}
		if !v.Equal(v.Truncate(0)) {
			return rangeErr(unit + " must be a whole number")
		}
		return nil
	}
}

var typeSpecs = map[BenefitType]TypeSpec{
	TypeDiscount: {
		Type:       TypeDiscount,
		Label:      "Discount",
		HelperText: "Percent off the transaction, between 1 and 100",
		Validate: func(v decimal.Decimal) error {
			if v.LessThan(decimalOne) || v.GreaterThan(decimalHundred) {
				return rangeErr("discount percent must be between 1 and 100")
			}
			return nil
		},
	},
	TypePoints: {
		Type:       TypePoints,
		Label:      "Bonus points",
		HelperText: "Number of points awarded",
		Validate:   positive("point count"),
	},
	TypeCashback: {
		Type:       TypeCashback,
		Label:      "Cashback",
		HelperText: "Currency amount returned to the customer",
		Validate:   positive("cashback amount"),
	},
	TypeFreeShipping: {
		Type:       TypeFreeShipping,
		Label:      "Free shipping",
		HelperText: "Flag benefit; the value is always 1",
		Validate: func(v decimal.Decimal) error {
			if !v.Equal(decimalOne) {
				return rangeErr("free shipping is a flag and must have value 1")
			}
			return nil
		},
	},
	TypeRoomUpgrade: {
		Type:       TypeRoomUpgrade,
		Label:      "Room upgrade",
		HelperText: "Number of room category levels upgraded",
		Validate:   positiveInteger("upgrade levels"),
	},
	TypeLateCheckout: {
		Type:       TypeLateCheckout,
		Label:      "Late checkout",
		HelperText: "Extra hours past standard checkout",
		Validate:   positive("hours"),
	},
	TypeEarlyCheckin: {
		Type:       TypeEarlyCheckin,
		Label:      "Early check-in",
		HelperText: "Hours before standard check-in",
		Validate:   positive("hours"),
	},
	TypeFreeBreakfast: {
		Type:       TypeFreeBreakfast,
		Label:      "Free breakfast",
		HelperText: "Count of complimentary meals per stay",
		Validate:   positiveInteger("meal count"),
	},
}

// Describe returns the semantic interpretation of a benefit type's value.
func Describe(t BenefitType) (TypeSpec, error) {
	spec, ok := typeSpecs[t]
	if !ok {
		return TypeSpec{}, errs.Mark(errs.Newf("unknown benefit type %q", t), ErrUnknownBenefitType)
	}
	return spec, nil
}

// DescribeCatalogue returns the specs for every type offerable by the
// vertical, in catalogue order.
func DescribeCatalogue(v Vertical) []TypeSpec {
	types := CatalogueFor(v)
	specs := make([]TypeSpec, 0, len(types))
	for _, t := range types {
		specs = append(specs, typeSpecs[t])
	}
	return specs
}
