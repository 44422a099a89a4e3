package memory

import (
	"sort"
	"sync"

	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/domain/repository"
)

var _ repository.UtilityTransactionRepository = (*UtilityTransactionRepo)(nil)

// UtilityTransactionRepo registro de facturas de servicios en memoria.
type UtilityTransactionRepo struct {
	mu   sync.RWMutex
	byID map[string]*entity.UtilityTransaction
	ids  []string
}

// NewUtilityTransactionRepository construye el store vacío.
func NewUtilityTransactionRepository() *UtilityTransactionRepo {
	return &UtilityTransactionRepo{byID: make(map[string]*entity.UtilityTransaction)}
}

// Create inserta la factura a la cabeza del registro.
func (r *UtilityTransactionRepo) Create(tx *entity.UtilityTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[tx.ID]; ok {
		return domain.ErrDuplicate
	}
	r.byID[tx.ID] = tx
	r.ids = append([]string{tx.ID}, r.ids...)
	return nil
}

// GetByID devuelve la factura o (nil, nil) si no existe.
func (r *UtilityTransactionRepo) GetByID(id string) (*entity.UtilityTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// Update reemplaza la factura; domain.ErrNotFound si no existe.
func (r *UtilityTransactionRepo) Update(tx *entity.UtilityTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[tx.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[tx.ID] = tx
	return nil
}

// Delete elimina la factura; domain.ErrNotFound si no existe.
func (r *UtilityTransactionRepo) Delete(id string) error {
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

// List devuelve las facturas filtradas por fecha descendente.
func (r *UtilityTransactionRepo) List(filter repository.UtilityTransactionFilter) ([]*entity.UtilityTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.UtilityTransaction, 0, len(r.ids))
	for _, id := range r.ids {
		tx := r.byID[id]
		if filter.UtilityType != "" && tx.UtilityType != filter.UtilityType {
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
