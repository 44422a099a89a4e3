// Package report agrega los libros de caja, stock, salarios y servicios en
// estadísticas financieras mensuales y anuales, y exporta la vista de saldos
// a una hoja de cálculo.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/oshxona/kitchen-erp-api/internal/application/dto"
	"github.com/oshxona/kitchen-erp-api/internal/application/stock"
	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/domain/repository"
)

// UseCase casos de uso de reportes financieros.
type UseCase struct {
	cashRepo    repository.CashTransactionRepository
	txRepo      repository.StockTransactionRepository
	salaryRepo  repository.SalaryPaymentRepository
	utilityRepo repository.UtilityTransactionRepository
	stockUC     *stock.UseCase
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	cashRepo repository.CashTransactionRepository,
	txRepo repository.StockTransactionRepository,
	salaryRepo repository.SalaryPaymentRepository,
	utilityRepo repository.UtilityTransactionRepository,
	stockUC *stock.UseCase,
) *UseCase {
	return &UseCase{
		cashRepo:    cashRepo,
		txRepo:      txRepo,
		salaryRepo:  salaryRepo,
		utilityRepo: utilityRepo,
		stockUC:     stockUC,
	}
}

// MonthlyStats totales del mes pedido (YYYY-MM) con desglose diario.
// Ingresos = caja INCOME; el neto descuenta egresos de caja, compras de stock,
// salarios del mes y facturas de servicios.
func (uc *UseCase) MonthlyStats(month string) (*dto.MonthlyStatsResponse, error) {
	start, err := time.Parse(dto.MonthLayout, month)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1) // último día del mes

	buckets := map[string]*dto.PeriodBreakdown{}
	dayOf := func(t time.Time) string { return t.UTC().Format(dto.DateLayout) }

	resp := &dto.MonthlyStatsResponse{Month: month}
	err = uc.aggregate(start, end, month, dayOf,
		buckets,
		&resp.IncomeTotal, &resp.ExpenseTotal, &resp.PurchasesTotal,
		&resp.SalaryTotal, &resp.UtilityTotal,
	)
	if err != nil {
		return nil, err
	}
	resp.Net = resp.IncomeTotal - (resp.ExpenseTotal + resp.PurchasesTotal + resp.SalaryTotal + resp.UtilityTotal)
	resp.DailyBreakdown = sortedBreakdown(buckets)
	return resp, nil
}

// YearlyStats totales del año pedido con desglose mensual.
func (uc *UseCase) YearlyStats(year int) (*dto.YearlyStatsResponse, error) {
	if year < 2000 || year > 2100 {
		return nil, domain.ErrInvalidInput
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	buckets := map[string]*dto.PeriodBreakdown{}
	monthOf := func(t time.Time) string { return t.UTC().Format(dto.MonthLayout) }

	resp := &dto.YearlyStatsResponse{Year: year}
	err := uc.aggregate(start, end, fmt.Sprintf("%04d", year), monthOf,
		buckets,
		&resp.IncomeTotal, &resp.ExpenseTotal, &resp.PurchasesTotal,
		&resp.SalaryTotal, &resp.UtilityTotal,
	)
	if err != nil {
		return nil, err
	}
	resp.Net = resp.IncomeTotal - (resp.ExpenseTotal + resp.PurchasesTotal + resp.SalaryTotal + resp.UtilityTotal)
	resp.MonthlyBreakdown = sortedBreakdown(buckets)
	return resp, nil
}

// Shortages devuelve los insumos cuyo saldo actual está por debajo de su
// stock mínimo.
func (uc *UseCase) Shortages() (*dto.ShortageResponse, error) {
	balances, err := uc.stockUC.ListBalances()
	if err != nil {
		return nil, err
	}
	out := &dto.ShortageResponse{Data: []dto.ItemBalanceResponse{}}
	for _, b := range balances {
		if b.BelowMinStock {
			out.Data = append(out.Data, b)
		}
	}
	out.Total = len(out.Data)
	return out, nil
}

// aggregate recorre los cuatro libros dentro de [start, end] y acumula los
// totales y el desglose por subperiodo. monthPrefix selecciona los pagos de
// salario por su campo Month (YYYY-MM exacto o prefijo YYYY- del año).
func (uc *UseCase) aggregate(
	start, end time.Time,
	monthPrefix string,
	bucketKey func(time.Time) string,
	buckets map[string]*dto.PeriodBreakdown,
	income, expense, purchases, salaries, utilities *int64,
) error {
	bucket := func(key string) *dto.PeriodBreakdown {
		b, ok := buckets[key]
		if !ok {
			b = &dto.PeriodBreakdown{Period: key}
			buckets[key] = b
		}
		return b
	}

	cash, err := uc.cashRepo.List(repository.CashTransactionFilter{From: &start, To: &end})
	if err != nil {
		return err
	}
	for _, tx := range cash {
		b := bucket(bucketKey(tx.Date))
		if tx.Type == entity.CashTypeIncome {
			*income += tx.Amount
			b.Income += tx.Amount
		} else {
			*expense += tx.Amount
			b.Expense += tx.Amount
		}
	}

	stockTxs, err := uc.txRepo.List(repository.StockTransactionFilter{
		Type: entity.StockTypeIn, From: &start, To: &end,
	})
	if err != nil {
		return err
	}
	for _, tx := range stockTxs {
		if tx.TotalPrice == nil {
			continue
		}
		*purchases += *tx.TotalPrice
		bucket(bucketKey(tx.Date)).Purchases += *tx.TotalPrice
	}

	payments, err := uc.salaryRepo.List(repository.SalaryPaymentFilter{})
	if err != nil {
		return err
	}
	for _, p := range payments {
		if !strings.HasPrefix(p.Month, monthPrefix) {
			continue
		}
		*salaries += p.AmountPaid
		// El desglose usa la fecha real del pago cuando cae en el periodo.
		if !p.DatePaid.Before(start) && !p.DatePaid.After(end) {
			bucket(bucketKey(p.DatePaid)).Salaries += p.AmountPaid
		}
	}

	utils, err := uc.utilityRepo.List(repository.UtilityTransactionFilter{From: &start, To: &end})
	if err != nil {
		return err
	}
	for _, tx := range utils {
		*utilities += tx.Amount
		bucket(bucketKey(tx.Date)).Utilities += tx.Amount
	}

	for _, b := range buckets {
		b.Net = b.Income - (b.Expense + b.Purchases + b.Salaries + b.Utilities)
	}
	return nil
}

func sortedBreakdown(buckets map[string]*dto.PeriodBreakdown) []dto.PeriodBreakdown {
	out := make([]dto.PeriodBreakdown, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}
