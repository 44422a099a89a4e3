package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/oshxona/kitchen-erp-api/internal/application/dto"
	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/domain/repository"
	"github.com/oshxona/kitchen-erp-api/pkg/idgen"
)

// EmployeeUseCase casos de uso de empleados y pagos de salario.
type EmployeeUseCase struct {
	empRepo    repository.EmployeeRepository
	salaryRepo repository.SalaryPaymentRepository
	ids        *idgen.Generator
}

// NewEmployeeUseCase construye el caso de uso de empleados.
func NewEmployeeUseCase(
	empRepo repository.EmployeeRepository,
	salaryRepo repository.SalaryPaymentRepository,
	ids *idgen.Generator,
) *EmployeeUseCase {
	return &EmployeeUseCase{empRepo: empRepo, salaryRepo: salaryRepo, ids: ids}
}

// Create registra un empleado.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.FullName == "" || in.BaseMonthlySalary <= 0 {
		return nil, domain.ErrInvalidInput
	}
	emp := &entity.Employee{
		ID:                uuid.New().String(),
		FullName:          in.FullName,
		BaseMonthlySalary: in.BaseMonthlySalary,
		IsActive:          true,
		CreatedAt:         time.Now().UTC(),
	}
	if in.IsActive != nil {
		emp.IsActive = *in.IsActive
	}
	if err := uc.empRepo.Create(emp); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(emp)
	return &resp, nil
}

// GetByID devuelve un empleado; ErrNotFound si no existe.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.empRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	resp := toEmployeeResponse(emp)
	return &resp, nil
}

// Update modifica los campos presentes de un empleado.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.empRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	updated := *emp
	if in.FullName != nil {
		if *in.FullName == "" {
			return nil, domain.ErrInvalidInput
		}
		updated.FullName = *in.FullName
	}
	if in.BaseMonthlySalary != nil {
		if *in.BaseMonthlySalary <= 0 {
			return nil, domain.ErrInvalidInput
		}
		updated.BaseMonthlySalary = *in.BaseMonthlySalary
	}
	if in.IsActive != nil {
		updated.IsActive = *in.IsActive
	}
	if err := uc.empRepo.Update(&updated); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(&updated)
	return &resp, nil
}

// Delete elimina un empleado. Los pagos históricos conservan su copia
// desnormalizada del empleado.
func (uc *EmployeeUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.empRepo.Delete(id)
}

// List devuelve la página pedida de empleados.
func (uc *EmployeeUseCase) List(q dto.EmployeesQuery) (*dto.EmployeeListResponse, error) {
	emps, err := uc.empRepo.List(repository.EmployeeFilter{IsActive: q.IsActive, Search: q.Search})
	if err != nil {
		return nil, err
	}
	all := make([]dto.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		all = append(all, toEmployeeResponse(emp))
	}
	page, meta, err := dto.Paginate(all, q.Page)
	if err != nil {
		return nil, err
	}
	return &dto.EmployeeListResponse{Data: page, Pagination: meta}, nil
}

// PaySalary registra un pago de salario de un mes concreto, con copia
// desnormalizada del empleado al momento del pago.
func (uc *EmployeeUseCase) PaySalary(in dto.CreateSalaryRequest) (*dto.SalaryPaymentResponse, error) {
	if in.EmployeeID == "" || in.AmountPaid <= 0 || in.Bonus < 0 || in.Penalty < 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse(dto.MonthLayout, in.Month); err != nil {
		return nil, domain.ErrInvalidInput
	}
	datePaid, err := dto.ParseDate(in.DatePaid)
	if err != nil {
		return nil, err
	}
	emp, err := uc.empRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	payment := &entity.SalaryPayment{
		ID:         uc.ids.NextID(),
		Employee:   entity.EmployeeRef{ID: emp.ID, FullName: emp.FullName},
		Month:      in.Month,
		DatePaid:   datePaid,
		AmountPaid: in.AmountPaid,
		Bonus:      in.Bonus,
		Penalty:    in.Penalty,
		Note:       in.Note,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.salaryRepo.Create(payment); err != nil {
		return nil, err
	}
	resp := toSalaryResponse(payment)
	return &resp, nil
}

// DeleteSalary elimina un pago de salario; ErrNotFound si el id no existe.
func (uc *EmployeeUseCase) DeleteSalary(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.salaryRepo.Delete(id)
}

// ListSalaries devuelve la página pedida de pagos de salario.
func (uc *EmployeeUseCase) ListSalaries(q dto.SalariesQuery) (*dto.SalaryListResponse, error) {
	if q.Month != "" {
		if _, err := time.Parse(dto.MonthLayout, q.Month); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	payments, err := uc.salaryRepo.List(repository.SalaryPaymentFilter{
		EmployeeID: q.EmployeeID,
		Month:      q.Month,
	})
	if err != nil {
		return nil, err
	}
	all := make([]dto.SalaryPaymentResponse, 0, len(payments))
	for _, p := range payments {
		all = append(all, toSalaryResponse(p))
	}
	page, meta, err := dto.Paginate(all, q.Page)
	if err != nil {
		return nil, err
	}
	return &dto.SalaryListResponse{Data: page, Pagination: meta}, nil
}

func toEmployeeResponse(emp *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:                emp.ID,
		FullName:          emp.FullName,
		BaseMonthlySalary: emp.BaseMonthlySalary,
		IsActive:          emp.IsActive,
		CreatedAt:         emp.CreatedAt,
	}
}

func toSalaryResponse(p *entity.SalaryPayment) dto.SalaryPaymentResponse {
	return dto.SalaryPaymentResponse{
		ID:         p.ID,
		Employee:   dto.EmployeeRefResponse{ID: p.Employee.ID, FullName: p.Employee.FullName},
		Month:      p.Month,
		DatePaid:   p.DatePaid,
		AmountPaid: p.AmountPaid,
		Bonus:      p.Bonus,
		Penalty:    p.Penalty,
		Note:       p.Note,
		CreatedAt:  p.CreatedAt,
	}
}
