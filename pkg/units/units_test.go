package units_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshxona/kitchen-erp-api/pkg/units"
)

func TestToBaseUnit_KgAGramos(t *testing.T) {
	got := units.ToBaseUnit(decimal.NewFromFloat(2.5), units.UnitKg)
	assert.Equal(t, int64(2500), got, "2.5 kg deben ser 2500 g")
}

func TestToBaseUnit_LitrosAMililitros(t *testing.T) {
	got := units.ToBaseUnit(decimal.NewFromInt(100), units.UnitLiter)
	assert.Equal(t, int64(100000), got)
}

func TestToBaseUnit_PiezaEsIdentidad(t *testing.T) {
	got := units.ToBaseUnit(decimal.NewFromInt(7), units.UnitPiece)
	assert.Equal(t, int64(7), got)
}

func TestFromBaseUnit_GramosAKg(t *testing.T) {
	got := units.FromBaseUnit(2500, units.UnitKg)
	assert.True(t, got.Equal(decimal.NewFromFloat(2.5)), "2500 g deben ser 2.5 kg, fue %s", got)
}

func TestToBasePrice_PrecioPorKgAPrecioPorGramo(t *testing.T) {
	// 82.000 UZS/kg equivalen a 82 UZS/g.
	got := units.ToBasePrice(decimal.NewFromInt(82000), units.UnitKg)
	assert.Equal(t, int64(82), got)
}

func TestFromBasePrice_PrecioPorGramoAPrecioPorKg(t *testing.T) {
	got := units.FromBasePrice(82, units.UnitKg)
	assert.True(t, got.Equal(decimal.NewFromInt(82000)), "82 UZS/g deben ser 82000 UZS/kg")
}

// El round-trip display→base→display solo es exacto hasta el redondeo a entero
// de la unidad base; para entradas fraccionarias se tolera medio gramo/mililitro.
func TestRoundTrip_ToleranciaDeRedondeo(t *testing.T) {
	cases := []struct {
		name string
		qty  decimal.Decimal
		unit string
	}{
		{"kg exacto", decimal.NewFromFloat(2.5), units.UnitKg},
		{"kg fraccional", decimal.NewFromFloat(0.0015), units.UnitKg},
		{"litros fraccional", decimal.NewFromFloat(13.3337), units.UnitLiter},
		{"gramos", decimal.NewFromInt(250), units.UnitG},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base := units.ToBaseUnit(tc.qty, tc.unit)
			back := units.FromBaseUnit(base, tc.unit)

			// |back - qty| <= 0.5 / factor
			tolerance := decimal.NewFromFloat(0.5).Div(decimal.NewFromInt(units.Factor(tc.unit)))
			diff := back.Sub(tc.qty).Abs()
			require.True(t, diff.LessThanOrEqual(tolerance),
				"diferencia %s excede la tolerancia %s", diff, tolerance)
		})
	}
}

func TestBaseUnit_Mapeo(t *testing.T) {
	assert.Equal(t, units.UnitG, units.BaseUnit(units.UnitKg))
	assert.Equal(t, units.UnitMl, units.BaseUnit(units.UnitLiter))
	assert.Equal(t, units.UnitPiece, units.BaseUnit(units.UnitPiece))
	assert.Empty(t, units.BaseUnit("lb"))
}

func TestIsValid(t *testing.T) {
	assert.True(t, units.IsValid(units.UnitMl))
	assert.False(t, units.IsValid("oz"))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "2.5 kg", units.FormatQuantity(2500, units.UnitKg))
	assert.Equal(t, "50 kg", units.FormatQuantity(50000, units.UnitKg))
	assert.Equal(t, "12 piece", units.FormatQuantity(12, units.UnitPiece))
}

func TestFormatCurrency_SeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "1,350,000 UZS", units.FormatCurrency(1350000))
	assert.Equal(t, "82 UZS", units.FormatCurrency(82))
}
