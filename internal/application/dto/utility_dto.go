package dto

import "time"

// CreateUtilityRequest entrada para registrar una factura de servicio.
type CreateUtilityRequest struct {
	Date            string  `json:"date" validate:"required"`
	UtilityType     string  `json:"utility_type" validate:"required,oneof=ELECTRICITY GAS WATER INTERNET RENT TRASH MAINTENANCE SECURITY OTHER"`
	CustomTypeLabel *string `json:"custom_type_label" validate:"omitempty,max=100"`
	ProviderName    *string `json:"provider_name" validate:"omitempty,max=200"`
	MeterStart      *int64  `json:"meter_start" validate:"omitempty,gte=0"`
	MeterEnd        *int64  `json:"meter_end" validate:"omitempty,gte=0"`
	Consumption     *int64  `json:"consumption" validate:"omitempty,gte=0"`
	Unit            string  `json:"unit" validate:"required,oneof=kWh m3 liter month fixed"`
	Amount          int64   `json:"amount" validate:"required,gt=0"`
	Note            *string `json:"note" validate:"omitempty,max=500"`
}

// UpdateUtilityRequest entrada para corregir una factura de servicio.
type UpdateUtilityRequest struct {
	Date         *string `json:"date"`
	ProviderName *string `json:"provider_name" validate:"omitempty,max=200"`
	MeterStart   *int64  `json:"meter_start" validate:"omitempty,gte=0"`
	MeterEnd     *int64  `json:"meter_end" validate:"omitempty,gte=0"`
	Amount       *int64  `json:"amount" validate:"omitempty,gt=0"`
	Note         *string `json:"note" validate:"omitempty,max=500"`
}

// UtilityQuery criterios de listado de facturas de servicios.
type UtilityQuery struct {
	UtilityType string `query:"utility_type"`
	From        string `query:"from"`
	To          string `query:"to"`
}

// UtilityTransactionResponse salida de una factura de servicio.
type UtilityTransactionResponse struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	UtilityType     string    `json:"utility_type"`
	CustomTypeLabel *string   `json:"custom_type_label"`
	ProviderName    *string   `json:"provider_name"`
	MeterStart      *int64    `json:"meter_start"`
	MeterEnd        *int64    `json:"meter_end"`
	Consumption     *int64    `json:"consumption"`
	Unit            string    `json:"unit"`
	Amount          int64     `json:"amount"`
	Note            *string   `json:"note"`
	CreatedAt       time.Time `json:"created_at"`
}

// UtilityListResponse listado de facturas con monto agregado.
type UtilityListResponse struct {
	Data        []UtilityTransactionResponse `json:"data"`
	Total       int                          `json:"total"`
	TotalAmount int64                        `json:"total_amount"`
}
