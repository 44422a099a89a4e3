package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshxona/kitchen-erp-api/internal/application/report"
	"github.com/oshxona/kitchen-erp-api/internal/application/stock"
	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/infrastructure/memory"
	"github.com/oshxona/kitchen-erp-api/pkg/idgen"
)

type fixture struct {
	uc     *report.UseCase
	stores *memory.Stores
	ids    *idgen.Generator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ids, err := idgen.New(1)
	require.NoError(t, err)
	stores := memory.NewStores()
	stockUC := stock.NewUseCase(stores.StockTransactions, stores.Items, ids)
	return &fixture{
		uc: report.NewUseCase(
			stores.Cash, stores.StockTransactions, stores.Salaries, stores.Utilities, stockUC,
		),
		stores: stores,
		ids:    ids,
	}
}

func pi(v int64) *int64 { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (f *fixture) addCash(t *testing.T, typ string, amount int64, d time.Time) {
	t.Helper()
	require.NoError(t, f.stores.Cash.Create(&entity.CashTransaction{
		ID: f.ids.NextID(), Type: typ, Amount: amount, Date: d, CreatedAt: d,
	}))
}

func (f *fixture) addPurchase(t *testing.T, total int64, d time.Time) {
	t.Helper()
	unitPrice := int64(1)
	require.NoError(t, f.stores.StockTransactions.Create(&entity.StockTransaction{
		ID:         f.ids.NextID(),
		Type:       entity.StockTypeIn,
		Item:       entity.ItemRef{ID: "x", Name: "X", Unit: "kg"},
		Date:       d,
		Quantity:   total,
		UnitPrice:  &unitPrice,
		TotalPrice: pi(total),
		CreatedAt:  d,
	}))
}

func TestMonthlyStats_AgregaLosCuatroLibros(t *testing.T) {
	f := newFixture(t)

	f.addCash(t, entity.CashTypeIncome, 2500000, date(2026, 8, 10))
	f.addCash(t, entity.CashTypeIncome, 1500000, date(2026, 8, 11))
	f.addCash(t, entity.CashTypeExpense, 300000, date(2026, 8, 11))
	f.addPurchase(t, 4100000, date(2026, 8, 12))

	require.NoError(t, f.stores.Salaries.Create(&entity.SalaryPayment{
		ID:       f.ids.NextID(),
		Employee: entity.EmployeeRef{ID: "e1", FullName: "Karim Usmonov"},
		Month:    "2026-08", DatePaid: date(2026, 8, 5), AmountPaid: 4000000,
		CreatedAt: date(2026, 8, 5),
	}))
	require.NoError(t, f.stores.Utilities.Create(&entity.UtilityTransaction{
		ID: f.ids.NextID(), Date: date(2026, 8, 7),
		UtilityType: entity.UtilityRent, Unit: entity.UtilityUnitFixed,
		Amount: 5000000, CreatedAt: date(2026, 8, 7),
	}))

	// Fuera del mes: no cuenta.
	f.addCash(t, entity.CashTypeIncome, 9999999, date(2026, 7, 31))

	out, err := f.uc.MonthlyStats("2026-08")
	require.NoError(t, err)
	assert.Equal(t, int64(4000000), out.IncomeTotal)
	assert.Equal(t, int64(300000), out.ExpenseTotal)
	assert.Equal(t, int64(4100000), out.PurchasesTotal)
	assert.Equal(t, int64(4000000), out.SalaryTotal)
	assert.Equal(t, int64(5000000), out.UtilityTotal)
	assert.Equal(t, int64(4000000-300000-4100000-4000000-5000000), out.Net)

	// Desglose diario: un bucket por día con actividad, ordenado ascendente.
	require.Len(t, out.DailyBreakdown, 5)
	for i := 1; i < len(out.DailyBreakdown); i++ {
		assert.Less(t, out.DailyBreakdown[i-1].Period, out.DailyBreakdown[i].Period)
	}
	var sum int64
	for _, b := range out.DailyBreakdown {
		assert.Equal(t, b.Income-(b.Expense+b.Purchases+b.Salaries+b.Utilities), b.Net)
		sum += b.Net
	}
	assert.Equal(t, out.Net, sum, "el neto del mes es la suma de los netos diarios")
}

func TestMonthlyStats_MesInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.MonthlyStats("08-2026")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestYearlyStats_DesglosaPorMes(t *testing.T) {
	f := newFixture(t)
	f.addCash(t, entity.CashTypeIncome, 1000000, date(2026, 1, 15))
	f.addCash(t, entity.CashTypeIncome, 2000000, date(2026, 3, 20))
	f.addCash(t, entity.CashTypeExpense, 500000, date(2026, 3, 21))
	f.addCash(t, entity.CashTypeIncome, 7777777, date(2025, 12, 31)) // otro año

	out, err := f.uc.YearlyStats(2026)
	require.NoError(t, err)
	assert.Equal(t, int64(3000000), out.IncomeTotal)
	assert.Equal(t, int64(500000), out.ExpenseTotal)
	require.Len(t, out.MonthlyBreakdown, 2)
	assert.Equal(t, "2026-01", out.MonthlyBreakdown[0].Period)
	assert.Equal(t, "2026-03", out.MonthlyBreakdown[1].Period)
	assert.Equal(t, int64(1500000), out.MonthlyBreakdown[1].Net)
}

func TestShortages_SoloInsumosBajoUmbral(t *testing.T) {
	f := newFixture(t)
	now := time.Now().UTC()
	items := []*entity.Item{
		{ID: "a", Name: "Sigir go'shti", ItemType: entity.ItemTypeIngredient, UnitType: entity.UnitTypeWeight, Unit: "kg", MinStock: pi(10000), IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "b", Name: "Guruch", ItemType: entity.ItemTypeIngredient, UnitType: entity.UnitTypeWeight, Unit: "kg", MinStock: pi(5000), IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "c", Name: "Piyoz", ItemType: entity.ItemTypeIngredient, UnitType: entity.UnitTypeWeight, Unit: "kg", IsActive: true, CreatedAt: now, UpdatedAt: now},
	}
	for _, it := range items {
		require.NoError(t, f.stores.Items.Create(it))
	}
	// a: 5000 < 10000 (falta). b: 5000 = 5000 (no falta). c: sin umbral.
	for _, seed := range []struct {
		item string
		qty  int64
	}{{"a", 5000}, {"b", 5000}} {
		require.NoError(t, f.stores.StockTransactions.Create(&entity.StockTransaction{
			ID:   f.ids.NextID(),
			Type: entity.StockTypeIn,
			Item: entity.ItemRef{ID: seed.item, Name: seed.item, Unit: "kg"},
			Date: now, Quantity: seed.qty, CreatedAt: now,
		}))
	}

	out, err := f.uc.Shortages()
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "a", out.Data[0].ItemID)
}

func TestBalanceWorkbook_UnaFilaPorInsumo(t *testing.T) {
	f := newFixture(t)
	now := time.Now().UTC()
	require.NoError(t, f.stores.Items.Create(&entity.Item{
		ID: "a", Name: "Guruch", ItemType: entity.ItemTypeIngredient,
		UnitType: entity.UnitTypeWeight, Unit: "kg", MinStock: pi(50000),
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, f.stores.StockTransactions.Create(&entity.StockTransaction{
		ID:   f.ids.NextID(),
		Type: entity.StockTypeIn,
		Item: entity.ItemRef{ID: "a", Name: "Guruch", Unit: "kg"},
		Date: now, Quantity: 60000, CreatedAt: now,
	}))

	file, err := f.uc.BalanceWorkbook()
	require.NoError(t, err)
	defer file.Close()

	name, err := file.GetCellValue("Saldos", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Guruch", name)

	below, err := file.GetCellValue("Saldos", "F2")
	require.NoError(t, err)
	assert.Equal(t, "No", below, "60 kg está por encima del umbral de 50 kg")
}
