package memory

import (
	"strings"
	"sync"

	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo catálogo de insumos en memoria. El orden de listado es el de
// inserción, con el insumo más reciente primero.
type ItemRepo struct {
	mu   sync.RWMutex
	byID map[string]*entity.Item
	ids  []string
}

// NewItemRepository construye el store vacío.
func NewItemRepository() *ItemRepo {
	return &ItemRepo{byID: make(map[string]*entity.Item)}
}

// Create inserta el insumo a la cabeza del catálogo.
func (r *ItemRepo) Create(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[item.ID]; ok {
		return domain.ErrDuplicate
	}
	r.byID[item.ID] = item
	r.ids = append([]string{item.ID}, r.ids...)
	return nil
}

// GetByID devuelve el insumo o (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// Update reemplaza el insumo; domain.ErrNotFound si no existe.
func (r *ItemRepo) Update(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[item.ID] = item
	return nil
}

// Delete elimina el insumo; domain.ErrNotFound si no existe.
func (r *ItemRepo) Delete(id string) error {
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

// List devuelve los insumos que cumplen el filtro en orden de inserción.
func (r *ItemRepo) List(filter repository.ItemFilter) ([]*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	out := make([]*entity.Item, 0, len(r.ids))
	for _, id := range r.ids {
		item := r.byID[id]
		if filter.ItemType != "" && item.ItemType != filter.ItemType {
			continue
		}
		if filter.IsActive != nil && item.IsActive != *filter.IsActive {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}
