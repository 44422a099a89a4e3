package repository

import "github.com/oshxona/kitchen-erp-api/internal/domain/entity"

// EmployeeFilter criterios de listado de empleados.
type EmployeeFilter struct {
	IsActive *bool
	Search   string // subcadena del nombre completo
}

// EmployeeRepository define el puerto de persistencia para empleados (DIP).
type EmployeeRepository interface {
	Create(emp *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(emp *entity.Employee) error
	Delete(id string) error
	List(filter EmployeeFilter) ([]*entity.Employee, error)
}
