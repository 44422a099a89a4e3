package dto

import "time"

// CreateEmployeeRequest entrada para registrar un empleado.
type CreateEmployeeRequest struct {
	FullName          string `json:"full_name" validate:"required,min=1,max=200"`
	BaseMonthlySalary int64  `json:"base_monthly_salary" validate:"required,gt=0"`
	IsActive          *bool  `json:"is_active"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado.
type UpdateEmployeeRequest struct {
	FullName          *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	BaseMonthlySalary *int64  `json:"base_monthly_salary" validate:"omitempty,gt=0"`
	IsActive          *bool   `json:"is_active"`
}

// EmployeesQuery criterios de listado de empleados.
type EmployeesQuery struct {
	IsActive *bool  `query:"is_active"`
	Search   string `query:"search"`
	Page     PageRequest
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID                string    `json:"id"`
	FullName          string    `json:"full_name"`
	BaseMonthlySalary int64     `json:"base_monthly_salary"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

// EmployeeListResponse página de empleados.
type EmployeeListResponse struct {
	Data []EmployeeResponse `json:"data"`
	Pagination
}

// CreateSalaryRequest entrada para registrar un pago de salario.
type CreateSalaryRequest struct {
	EmployeeID string  `json:"employee_id" validate:"required"`
	Month      string  `json:"month" validate:"required"`
	DatePaid   string  `json:"date_paid" validate:"required"`
	AmountPaid int64   `json:"amount_paid" validate:"required,gt=0"`
	Bonus      int64   `json:"bonus" validate:"gte=0"`
	Penalty    int64   `json:"penalty" validate:"gte=0"`
	Note       *string `json:"note" validate:"omitempty,max=500"`
}

// SalariesQuery criterios de listado de pagos de salario.
type SalariesQuery struct {
	EmployeeID string `query:"employee_id"`
	Month      string `query:"month"`
	Page       PageRequest
}

// EmployeeRefResponse copia desnormalizada del empleado dentro de un pago.
type EmployeeRefResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// SalaryPaymentResponse salida de un pago de salario.
type SalaryPaymentResponse struct {
	ID         string              `json:"id"`
	Employee   EmployeeRefResponse `json:"employee"`
	Month      string              `json:"month"`
	DatePaid   time.Time           `json:"date_paid"`
	AmountPaid int64               `json:"amount_paid"`
	Bonus      int64               `json:"bonus"`
	Penalty    int64               `json:"penalty"`
	Note       *string             `json:"note"`
	CreatedAt  time.Time           `json:"created_at"`
}

// SalaryListResponse página de pagos de salario.
type SalaryListResponse struct {
	Data []SalaryPaymentResponse `json:"data"`
	Pagination
}
