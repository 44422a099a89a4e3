package memory

import (
	"strings"
	"sync"

	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo plantilla de empleados en memoria.
type EmployeeRepo struct {
	mu   sync.RWMutex
	byID map[string]*entity.Employee
	ids  []string
}

// NewEmployeeRepository construye el store vacío.
func NewEmployeeRepository() *EmployeeRepo {
	return &EmployeeRepo{byID: make(map[string]*entity.Employee)}
}

// Create inserta el empleado a la cabeza de la lista.
func (r *EmployeeRepo) Create(emp *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[emp.ID]; ok {
		return domain.ErrDuplicate
	}
	r.byID[emp.ID] = emp
	r.ids = append([]string{emp.ID}, r.ids...)
	return nil
}

// GetByID devuelve el empleado o (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// Update reemplaza el empleado; domain.ErrNotFound si no existe.
func (r *EmployeeRepo) Update(emp *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[emp.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[emp.ID] = emp
	return nil
}

// Delete elimina el empleado; domain.ErrNotFound si no existe.
func (r *EmployeeRepo) Delete(id string) error {
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

// List devuelve los empleados que cumplen el filtro en orden de inserción.
func (r *EmployeeRepo) List(filter repository.EmployeeFilter) ([]*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	out := make([]*entity.Employee, 0, len(r.ids))
	for _, id := range r.ids {
		emp := r.byID[id]
		if filter.IsActive != nil && emp.IsActive != *filter.IsActive {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(emp.FullName), search) {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}
