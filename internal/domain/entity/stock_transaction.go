package entity

import "time"

// Tipos de movimiento de stock.
const (
	StockTypeIn  = "IN"  // entrada (compra)
	StockTypeOut = "OUT" // salida (consumo)
)

// ItemRef copia desnormalizada del insumo al momento de crear el movimiento.
// Conserva el histórico estable aunque el insumo se renombre después.
type ItemRef struct {
	ID   string
	Name string
	Unit string
}

// StockTransaction representa un movimiento inmutable del libro de stock.
// Quantity siempre es positiva y va en unidad base; el signo lo da Type.
// Date es la fecha de negocio del movimiento, distinta de CreatedAt.
type StockTransaction struct {
	ID         string
	Type       string // IN u OUT
	Item       ItemRef
	Date       time.Time
	Quantity   int64  // > 0, en unidad base
	UnitPrice  *int64 // UZS por unidad base; solo IN
	TotalPrice *int64 // UnitPrice * Quantity; solo IN
	Supplier   *string
	Note       *string
	CreatedAt  time.Time
}
