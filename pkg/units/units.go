package units

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shopspring/decimal"
)

// Unidades de presentación soportadas. Todo lo almacenado va en unidad base:
// gramos para peso, mililitros para volumen, conteo para piezas.
const (
	UnitKg    = "kg"
	UnitG     = "g"
	UnitLiter = "liter"
	UnitMl    = "ml"
	UnitPiece = "piece"
)

// factors factor de conversión de unidad de presentación a unidad base.
var factors = map[string]int64{
	UnitKg:    1000,
	UnitG:     1,
	UnitLiter: 1000,
	UnitMl:    1,
	UnitPiece: 1,
}

// baseOf unidad base correspondiente a cada unidad de presentación.
var baseOf = map[string]string{
	UnitKg:    UnitG,
	UnitG:     UnitG,
	UnitLiter: UnitMl,
	UnitMl:    UnitMl,
	UnitPiece: UnitPiece,
}

// printer con separador de miles para montos UZS.
var printer = message.NewPrinter(language.English)

// IsValid indica si la unidad de presentación es conocida.
func IsValid(unit string) bool {
	_, ok := factors[unit]
	return ok
}

// Factor devuelve el factor de conversión a unidad base (1 si la unidad es desconocida).
func Factor(unit string) int64 {
	if f, ok := factors[unit]; ok {
		return f
	}
	return 1
}

// BaseUnit devuelve la unidad base de una unidad de presentación ("" si es desconocida).
func BaseUnit(unit string) string {
	return baseOf[unit]
}

// ToBaseUnit convierte una cantidad en unidad de presentación a unidad base entera.
// Redondea al entero más cercano: el round-trip solo es exacto hasta ese redondeo.
func ToBaseUnit(qty decimal.Decimal, unit string) int64 {
	return qty.Mul(decimal.NewFromInt(Factor(unit))).Round(0).IntPart()
}

// FromBaseUnit convierte una cantidad en unidad base a unidad de presentación.
func FromBaseUnit(baseQty int64, unit string) decimal.Decimal {
	return decimal.NewFromInt(baseQty).Div(decimal.NewFromInt(Factor(unit)))
}

// ToBasePrice convierte un precio por unidad de presentación a precio por unidad base (UZS entero).
func ToBasePrice(pricePerUnit decimal.Decimal, unit string) int64 {
	return pricePerUnit.Div(decimal.NewFromInt(Factor(unit))).Round(0).IntPart()
}

// FromBasePrice convierte un precio por unidad base a precio por unidad de presentación.
func FromBasePrice(pricePerBase int64, unit string) decimal.Decimal {
	return decimal.NewFromInt(pricePerBase).Mul(decimal.NewFromInt(Factor(unit)))
}

// FormatQuantity formatea una cantidad en unidad base como texto en unidad de presentación.
func FormatQuantity(baseQty int64, unit string) string {
	display := FromBaseUnit(baseQty, unit)
	return display.String() + " " + unit
}

// FormatCurrency formatea un monto UZS con separador de miles.
func FormatCurrency(amount int64) string {
	return printer.Sprintf("%d UZS", amount)
}
