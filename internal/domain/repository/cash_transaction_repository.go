package repository

import (
	"time"

	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
)

// CashTransactionFilter criterios de listado de caja (AND entre los presentes).
type CashTransactionFilter struct {
	Type     string // INCOME, EXPENSE o vacío
	Category string
	From     *time.Time
	To       *time.Time
}

// CashTransactionRepository define el puerto del libro de caja (DIP).
type CashTransactionRepository interface {
	Create(tx *entity.CashTransaction) error
	GetByID(id string) (*entity.CashTransaction, error)
	Update(tx *entity.CashTransaction) error
	Delete(id string) error
	List(filter CashTransactionFilter) ([]*entity.CashTransaction, error)
}
