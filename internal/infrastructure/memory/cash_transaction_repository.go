package memory

import (
	"sort"
	"sync"

	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/domain/repository"
)

var _ repository.CashTransactionRepository = (*CashTransactionRepo)(nil)

// CashTransactionRepo libro de caja en memoria.
type CashTransactionRepo struct {
	mu   sync.RWMutex
	byID map[string]*entity.CashTransaction
	ids  []string
}

// NewCashTransactionRepository construye el store vacío.
func NewCashTransactionRepository() *CashTransactionRepo {
	return &CashTransactionRepo{byID: make(map[string]*entity.CashTransaction)}
}

// Create inserta el movimiento a la cabeza del libro.
func (r *CashTransactionRepo) Create(tx *entity.CashTransaction) error {
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
func (r *CashTransactionRepo) GetByID(id string) (*entity.CashTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// Update reemplaza el movimiento; domain.ErrNotFound si no existe.
func (r *CashTransactionRepo) Update(tx *entity.CashTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[tx.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[tx.ID] = tx
	return nil
}

// Delete elimina el movimiento; domain.ErrNotFound si no existe.
func (r *CashTransactionRepo) Delete(id string) error {
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

// List devuelve los movimientos filtrados, por fecha descendente (empates:
// el más recientemente creado primero).
func (r *CashTransactionRepo) List(filter repository.CashTransactionFilter) ([]*entity.CashTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.CashTransaction, 0, len(r.ids))
	for _, id := range r.ids {
		tx := r.byID[id]
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Category != "" && (tx.Category == nil || *tx.Category != filter.Category) {
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
