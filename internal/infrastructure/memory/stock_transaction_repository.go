package memory

import (
	"sort"
	"sync"

	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo libro de movimientos de stock en memoria: mapa por id
// más un índice de inserción con el movimiento más reciente primero.
type StockTransactionRepo struct {
	mu   sync.RWMutex
	byID map[string]*entity.StockTransaction
	ids  []string // más reciente primero
}

// NewStockTransactionRepository construye el store vacío.
func NewStockTransactionRepository() *StockTransactionRepo {
	return &StockTransactionRepo{byID: make(map[string]*entity.StockTransaction)}
}

// Create inserta el movimiento a la cabeza del libro.
func (r *StockTransactionRepo) Create(tx *entity.StockTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[tx.ID]; ok {
		return domain.ErrDuplicate
	}
	r.byID[tx.ID] = tx
	r.ids = append([]string{tx.ID}, r.ids...)
	return nil
}

// GetByID devuelve el movimiento o (nil, nil) si no existe.
func (r *StockTransactionRepo) GetByID(id string) (*entity.StockTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// Delete elimina el movimiento; domain.ErrNotFound si el id no existe.
// No toca ningún saldo: los saldos son derivados y se recalculan al leer.
func (r *StockTransactionRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.ids {
		if v == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}

// List devuelve los movimientos que cumplen el filtro, ordenados por fecha de
// negocio descendente. El orden parte del índice de inserción y el sort es
// estable, así que los empates de fecha quedan del más recientemente creado
// al más antiguo.
func (r *StockTransactionRepo) List(filter repository.StockTransactionFilter) ([]*entity.StockTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.StockTransaction, 0, len(r.ids))
	for _, id := range r.ids {
		tx := r.byID[id]
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.ItemID != "" && tx.Item.ID != filter.ItemID {
			continue
		}
		if !inDateRange(tx.Date, filter.From, filter.To) {
			continue
		}
		out = append(out, tx)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}
