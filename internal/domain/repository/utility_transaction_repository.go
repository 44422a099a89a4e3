package repository

import (
	"time"

	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
)

// UtilityTransactionFilter criterios de listado de facturas de servicios.
type UtilityTransactionFilter struct {
	UtilityType string
	From        *time.Time
	To          *time.Time
}

// UtilityTransactionRepository define el puerto de persistencia para facturas de servicios (DIP).
type UtilityTransactionRepository interface {
	Create(tx *entity.UtilityTransaction) error
	GetByID(id string) (*entity.UtilityTransaction, error)
	Update(tx *entity.UtilityTransaction) error
	Delete(id string) error
	List(filter UtilityTransactionFilter) ([]*entity.UtilityTransaction, error)
}
