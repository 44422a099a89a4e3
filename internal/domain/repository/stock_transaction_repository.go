package repository

import (
	"time"

	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
)

// StockTransactionFilter criterios de listado del libro de stock (AND entre los presentes).
// From y To acotan la fecha de negocio con límites inclusivos, comparados como fecha calendario.
type StockTransactionFilter struct {
	Type   string // IN, OUT o vacío
	ItemID string
	From   *time.Time
	To     *time.Time
}

// StockTransactionRepository define el puerto del libro de movimientos de stock (DIP).
// List devuelve los movimientos ordenados por fecha descendente; los empates de fecha
// quedan del más recientemente creado al más antiguo (orden de inserción, estable).
// Delete devuelve domain.ErrNotFound si el id no existe.
type StockTransactionRepository interface {
	Create(tx *entity.StockTransaction) error
	GetByID(id string) (*entity.StockTransaction, error)
	Delete(id string) error
	List(filter StockTransactionFilter) ([]*entity.StockTransaction, error)
}
