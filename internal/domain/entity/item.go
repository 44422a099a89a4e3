package entity

import "time"

// Categorías de insumo del catálogo.
const (
	ItemTypeIngredient = "INGREDIENT"
	ItemTypeSupply     = "SUPPLY"
	ItemTypeCleaning   = "CLEANING"
	ItemTypePackaging  = "PACKAGING"
	ItemTypeOther      = "OTHER"
)

// Tipos de medida de un insumo.
const (
	UnitTypeWeight = "WEIGHT"
	UnitTypeVolume = "VOLUME"
	UnitTypeCount  = "COUNT"
)

// Item representa un insumo del catálogo de la cocina.
// MinStock y DefaultUnitPrice se expresan en unidad base (gramos, mililitros o piezas).
type Item struct {
	ID               string
	Name             string
	ItemType         string // INGREDIENT, SUPPLY, CLEANING, PACKAGING, OTHER
	UnitType         string // WEIGHT, VOLUME, COUNT
	Unit             string // kg, g, liter, ml, piece (unidad de presentación)
	MinStock         *int64 // umbral de alerta en unidad base; nil = sin umbral
	DefaultUnitPrice *int64 // UZS por unidad base; nil = sin precio de referencia
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
