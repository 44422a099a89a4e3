package entity

import "time"

// Employee representa un empleado de la cocina.
type Employee struct {
	ID                string
	FullName          string
	BaseMonthlySalary int64 // UZS
	IsActive          bool
	CreatedAt         time.Time
}
