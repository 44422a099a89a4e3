package entity

import "time"

// Tipos de movimiento de caja.
const (
	CashTypeIncome  = "INCOME"
	CashTypeExpense = "EXPENSE"
)

// CashTransaction representa un movimiento de caja en UZS.
type CashTransaction struct {
	ID         string
	Type       string // INCOME o EXPENSE
	Amount     int64  // > 0, UZS
	Date       time.Time
	Category   *string
	Note       *string
	RelatedRef *string // referencia opcional a otro registro (compra, salario)
	CreatedAt  time.Time
}
