package memory

import (
	"sort"
	"sync"

	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/domain/repository"
)

var _ repository.SalaryPaymentRepository = (*SalaryPaymentRepo)(nil)

// SalaryPaymentRepo registro de pagos de salario en memoria.
type SalaryPaymentRepo struct {
	mu   sync.RWMutex
	byID map[string]*entity.SalaryPayment
	ids  []string
}

// NewSalaryPaymentRepository construye el store vacío.
func NewSalaryPaymentRepository() *SalaryPaymentRepo {
	return &SalaryPaymentRepo{byID: make(map[string]*entity.SalaryPayment)}
}

// Create inserta el pago a la cabeza del registro.
func (r *SalaryPaymentRepo) Create(payment *entity.SalaryPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[payment.ID]; ok {
		return domain.ErrDuplicate
	}
	r.byID[payment.ID] = payment
	r.ids = append([]string{payment.ID}, r.ids...)
	return nil
}

// GetByID devuelve el pago o (nil, nil) si no existe.
func (r *SalaryPaymentRepo) GetByID(id string) (*entity.SalaryPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// Delete elimina el pago; domain.ErrNotFound si no existe.
func (r *SalaryPaymentRepo) Delete(id string) error {
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

// List devuelve los pagos filtrados por fecha de pago descendente.
func (r *SalaryPaymentRepo) List(filter repository.SalaryPaymentFilter) ([]*entity.SalaryPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.SalaryPayment, 0, len(r.ids))
	for _, id := range r.ids {
		p := r.byID[id]
		if filter.EmployeeID != "" && p.Employee.ID != filter.EmployeeID {
			continue
		}
		if filter.Month != "" && p.Month != filter.Month {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DatePaid.After(out[j].DatePaid)
	})
	return out, nil
}
