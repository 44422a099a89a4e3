package entity

import "time"

// EmployeeRef copia desnormalizada del empleado al momento del pago.
type EmployeeRef struct {
	ID       string
	FullName string
}

// SalaryPayment representa un pago de salario de un mes concreto.
type SalaryPayment struct {
	ID         string
	Employee   EmployeeRef
	Month      string // YYYY-MM
	DatePaid   time.Time
	AmountPaid int64 // UZS
	Bonus      int64
	Penalty    int64
	Note       *string
	CreatedAt  time.Time
}
