package entity

// ItemBalance representa el saldo actual de un insumo, en unidad base.
// Es una vista derivada: balance = Σ(entradas) − Σ(salidas) sobre los movimientos
// vivos del libro, nunca un acumulador almacenado por separado.
type ItemBalance struct {
	ItemID        string
	ItemName      string
	Unit          string
	Balance       int64
	MinStock      *int64
	BelowMinStock bool // derivado: MinStock != nil && Balance < *MinStock
}
