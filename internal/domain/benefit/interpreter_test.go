//go:build unit

package benefit_test

import (
	"testing"

	"loyalty-console/internal/domain/benefit"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		_, err := benefit.Describe(benefit.BenefitType("TELEPORT"))
		assert.ErrorIs(t, err, benefit.ErrUnknownBenefitType)
	})

	t.Run("every catalogued type has a spec", func(t *testing.T) {
		for _, vertical := range []benefit.Vertical{benefit.VerticalHospitality, benefit.VerticalRetail} {
			for _, typ := range benefit.CatalogueFor(vertical) {
				spec, err := benefit.Describe(typ)
				require.NoError(t, err, "type %s", typ)
				assert.NotEmpty(t, spec.Label)
				assert.NotEmpty(t, spec.HelperText)
				require.NotNil(t, spec.Validate)
			}
		}
	})

	t.Run("bound checks", func(t *testing.T) {
		cases := []struct {
			name    string
			typ     benefit.BenefitType
			value   string
			wantErr bool
		}{
			{name: "discount 100 accepted", typ: benefit.TypeDiscount, value: "100"},
			{name: "discount 101 rejected", typ: benefit.TypeDiscount, value: "101", wantErr: true},
			{name: "discount 1 accepted", typ: benefit.TypeDiscount, value: "1"},
			{name: "points 0 rejected", typ: benefit.TypePoints, value: "0", wantErr: true},
			{name: "points 500 accepted", typ: benefit.TypePoints, value: "500"},
			{name: "cashback must be positive", typ: benefit.TypeCashback, value: "-5", wantErr: true},
			{name: "free shipping flag is 1", typ: benefit.TypeFreeShipping, value: "1"},
			{name: "free shipping rejects other values", typ: benefit.TypeFreeShipping, value: "2", wantErr: true},
			{name: "room upgrade whole levels", typ: benefit.TypeRoomUpgrade, value: "2"},
			{name: "room upgrade rejects fractions", typ: benefit.TypeRoomUpgrade, value: "1.5", wantErr: true},
			{name: "late checkout fractional hours allowed", typ: benefit.TypeLateCheckout, value: "1.5"},
			{name: "early checkin zero rejected", typ: benefit.TypeEarlyCheckin, value: "0", wantErr: true},
			{name: "free breakfast whole meals", typ: benefit.TypeFreeBreakfast, value: "2"},
			{name: "free breakfast rejects fractions", typ: benefit.TypeFreeBreakfast, value: "0.5", wantErr: true},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				spec, err := benefit.Describe(c.typ)
				require.NoError(t, err)
				err = spec.Validate(decimal.RequireFromString(c.value))
				if c.wantErr {
					assert.ErrorIs(t, err, benefit.ErrValueOutOfRange)
					return
				}
				assert.NoError(t, err)
			})
		}
	})
}

func TestCatalogueFor(t *testing.T) {
	t.Run("hospitality catalogue", func(t *testing.T) {
		assert.Equal(t, []benefit.BenefitType{
			benefit.TypeDiscount,
			benefit.TypePoints,
			benefit.TypeRoomUpgrade,
			benefit.TypeLateCheckout,
			benefit.TypeEarlyCheckin,
			benefit.TypeFreeBreakfast,
		}, benefit.CatalogueFor(benefit.VerticalHospitality))
	})

	t.Run("retail catalogue", func(t *testing.T) {
		assert.Equal(t, []benefit.BenefitType{
			benefit.TypeDiscount,
			benefit.TypeCashback,
			benefit.TypePoints,
			benefit.TypeFreeShipping,
		}, benefit.CatalogueFor(benefit.VerticalRetail))
	})

	t.Run("unknown vertical gets no catalogue", func(t *testing.T) {
		assert.Empty(t, benefit.CatalogueFor(benefit.Vertical("wholesale")))
	})

	t.Run("DescribeCatalogue preserves order", func(t *testing.T) {
		specs := benefit.DescribeCatalogue(benefit.VerticalRetail)
		require.Len(t, specs, 4)
		assert.Equal(t, benefit.TypeDiscount, specs[0].Type)
		assert.Equal(t, benefit.TypeFreeShipping, specs[3].Type)
	})
}
