package repository

import "github.com/oshxona/kitchen-erp-api/internal/domain/entity"

// SalaryPaymentFilter criterios de listado de pagos de salario.
type SalaryPaymentFilter struct {
	EmployeeID string
	Month      string // YYYY-MM
}

// SalaryPaymentRepository define el puerto de persistencia para pagos de salario (DIP).
type SalaryPaymentRepository interface {
	Create(payment *entity.SalaryPayment) error
	GetByID(id string) (*entity.SalaryPayment, error)
	Delete(id string) error
	List(filter SalaryPaymentFilter) ([]*entity.SalaryPayment, error)
}
