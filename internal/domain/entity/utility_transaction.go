package entity

import "time"

// Tipos de servicio (utilities) del local.
const (
	UtilityElectricity = "ELECTRICITY"
	UtilityGas         = "GAS"
	UtilityWater       = "WATER"
	UtilityInternet    = "INTERNET"
	UtilityRent        = "RENT"
	UtilityTrash       = "TRASH"
	UtilityMaintenance = "MAINTENANCE"
	UtilitySecurity    = "SECURITY"
	UtilityOther       = "OTHER"
)

// Unidades de facturación de servicios.
const (
	UtilityUnitKWh   = "kWh"
	UtilityUnitM3    = "m3"
	UtilityUnitLiter = "liter"
	UtilityUnitMonth = "month"
	UtilityUnitFixed = "fixed"
)

// UtilityTypeRule reglas de captura por tipo de servicio.
type UtilityTypeRule struct {
	AllowedUnits        []string
	DefaultUnit         string
	SupportsMeter       bool
	MeterRequired       bool
	SupportsConsumption bool
	RequiresCustomLabel bool
}

// UtilityRules reglas por tipo de servicio; valida unidad, medidor y etiqueta personalizada.
var UtilityRules = map[string]UtilityTypeRule{
	UtilityElectricity: {AllowedUnits: []string{UtilityUnitKWh}, DefaultUnit: UtilityUnitKWh, SupportsMeter: true, MeterRequired: true, SupportsConsumption: true},
	UtilityGas:         {AllowedUnits: []string{UtilityUnitM3}, DefaultUnit: UtilityUnitM3, SupportsMeter: true, SupportsConsumption: true},
	UtilityWater:       {AllowedUnits: []string{UtilityUnitM3, UtilityUnitLiter}, DefaultUnit: UtilityUnitM3, SupportsMeter: true, SupportsConsumption: true},
	UtilityInternet:    {AllowedUnits: []string{UtilityUnitMonth, UtilityUnitFixed}, DefaultUnit: UtilityUnitMonth},
	UtilityRent:        {AllowedUnits: []string{UtilityUnitFixed, UtilityUnitMonth}, DefaultUnit: UtilityUnitFixed},
	UtilityTrash:       {AllowedUnits: []string{UtilityUnitMonth, UtilityUnitFixed}, DefaultUnit: UtilityUnitMonth},
	UtilityMaintenance: {AllowedUnits: []string{UtilityUnitMonth, UtilityUnitFixed}, DefaultUnit: UtilityUnitMonth},
	UtilitySecurity:    {AllowedUnits: []string{UtilityUnitMonth, UtilityUnitFixed}, DefaultUnit: UtilityUnitMonth},
	UtilityOther:       {AllowedUnits: []string{UtilityUnitFixed, UtilityUnitMonth, UtilityUnitKWh, UtilityUnitM3, UtilityUnitLiter}, DefaultUnit: UtilityUnitFixed, SupportsConsumption: true, RequiresCustomLabel: true},
}

// UnitAllowed indica si la unidad está permitida para la regla.
func (r UtilityTypeRule) UnitAllowed(unit string) bool {
	for _, u := range r.AllowedUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// UtilityTransaction representa una factura de servicio pagada.
type UtilityTransaction struct {
	ID              string
	Date            time.Time
	UtilityType     string
	CustomTypeLabel *string // solo OTHER
	ProviderName    *string
	MeterStart      *int64
	MeterEnd        *int64
	Consumption     *int64 // MeterEnd - MeterStart cuando hay medidor
	Unit            string
	Amount          int64 // UZS
	Note            *string
	CreatedAt       time.Time
}
