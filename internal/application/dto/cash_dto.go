package dto

import "time"

// CreateCashRequest entrada para registrar un movimiento de caja.
type CreateCashRequest struct {
	Type     string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount   int64   `json:"amount" validate:"required,gt=0"`
	Date     string  `json:"date" validate:"required"`
	Category *string `json:"category" validate:"omitempty,max=100"`
	Note     *string `json:"note" validate:"omitempty,max=500"`
}

// UpdateCashRequest entrada para corregir un movimiento de caja.
type UpdateCashRequest struct {
	Type     *string `json:"type" validate:"omitempty,oneof=INCOME EXPENSE"`
	Amount   *int64  `json:"amount" validate:"omitempty,gt=0"`
	Date     *string `json:"date"`
	Category *string `json:"category" validate:"omitempty,max=100"`
	Note     *string `json:"note" validate:"omitempty,max=500"`
}

// CashQuery criterios de listado de caja.
type CashQuery struct {
	Type     string `query:"type"`
	Category string `query:"category"`
	From     string `query:"from"`
	To       string `query:"to"`
	Page     PageRequest
}

// CashTransactionResponse salida de un movimiento de caja.
type CashTransactionResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Amount     int64     `json:"amount"`
	Date       time.Time `json:"date"`
	Category   *string   `json:"category"`
	Note       *string   `json:"note"`
	RelatedRef *string   `json:"related_ref"`
	CreatedAt  time.Time `json:"created_at"`
}

// CashListResponse página del libro de caja.
type CashListResponse struct {
	Data []CashTransactionResponse `json:"data"`
	Pagination
}
