package dto

import "time"

// StockInRequest body para registrar una entrada de stock (compra).
// Quantity y UnitPrice van en unidad base (gramos/mililitros/piezas, UZS por unidad base).
type StockInRequest struct {
	ItemID    string  `json:"item_id" validate:"required"`
	Date      string  `json:"date" validate:"required"`
	Quantity  int64   `json:"quantity" validate:"required,gt=0"`
	UnitPrice *int64  `json:"unit_price" validate:"omitempty,gte=0"`
	Supplier  *string `json:"supplier" validate:"omitempty,max=200"`
	Note      *string `json:"note" validate:"omitempty,max=500"`
}

// StockOutRequest body para registrar una salida de stock (consumo).
type StockOutRequest struct {
	ItemID   string  `json:"item_id" validate:"required"`
	Date     string  `json:"date" validate:"required"`
	Quantity int64   `json:"quantity" validate:"required,gt=0"`
	Note     *string `json:"note" validate:"omitempty,max=500"`
}

// StockQuery criterios de listado del libro de stock.
type StockQuery struct {
	Type   string `query:"type"`
	ItemID string `query:"item_id"`
	From   string `query:"from"`
	To     string `query:"to"`
	Page   PageRequest
}

// ItemRefResponse copia desnormalizada del insumo dentro de un movimiento.
type ItemRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// StockTransactionResponse salida de un movimiento de stock.
type StockTransactionResponse struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Item       ItemRefResponse `json:"item"`
	Date       time.Time       `json:"date"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  *int64          `json:"unit_price"`
	TotalPrice *int64          `json:"total_price"`
	Supplier   *string         `json:"supplier"`
	Note       *string         `json:"note"`
	CreatedAt  time.Time       `json:"created_at"`
}

// StockTransactionListResponse página del libro de movimientos.
type StockTransactionListResponse struct {
	Data []StockTransactionResponse `json:"data"`
	Pagination
}

// ItemBalanceResponse saldo derivado de un insumo.
type ItemBalanceResponse struct {
	ItemID        string `json:"item_id"`
	ItemName      string `json:"item_name"`
	Unit          string `json:"unit"`
	Balance       int64  `json:"balance"`
	MinStock      *int64 `json:"min_stock"`
	BelowMinStock bool   `json:"below_min_stock"`
}
