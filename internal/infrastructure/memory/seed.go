package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/pkg/idgen"
)

// Stores agrupa todos los repositorios en memoria del proceso.
type Stores struct {
	Items             *ItemRepo
	StockTransactions *StockTransactionRepo
	Cash              *CashTransactionRepo
	Employees         *EmployeeRepo
	Salaries          *SalaryPaymentRepo
	Utilities         *UtilityTransactionRepo
}

// NewStores construye los stores vacíos.
func NewStores() *Stores {
	return &Stores{
		Items:             NewItemRepository(),
		StockTransactions: NewStockTransactionRepository(),
		Cash:              NewCashTransactionRepository(),
		Employees:         NewEmployeeRepository(),
		Salaries:          NewSalaryPaymentRepository(),
		Utilities:         NewUtilityTransactionRepository(),
	}
}

func ptrI64(v int64) *int64   { return &v }
func ptrStr(s string) *string { return &s }

// Seed carga datos de ejemplo de la cocina. Los saldos nunca se escriben
// directamente: se siembran movimientos y el saldo se deriva de ellos.
func (s *Stores) Seed(ids *idgen.Generator) error {
	now := time.Now().UTC()
	day := 24 * time.Hour

	type seedItem struct {
		name     string
		itemType string
		unitType string
		unit     string
		minStock *int64
		price    *int64 // UZS por unidad base
	}
	defs := []seedItem{
		{"Sigir go'shti (Laq)", entity.ItemTypeIngredient, entity.UnitTypeWeight, "kg", ptrI64(10000), ptrI64(85)},
		{"Guruch (Lazer)", entity.ItemTypeIngredient, entity.UnitTypeWeight, "kg", ptrI64(50000), ptrI64(18)},
		{"Piyoz", entity.ItemTypeIngredient, entity.UnitTypeWeight, "kg", ptrI64(20000), ptrI64(3)},
		{"Sabzi", entity.ItemTypeIngredient, entity.UnitTypeWeight, "kg", ptrI64(30000), ptrI64(3)},
		{"Paxta yog'i", entity.ItemTypeIngredient, entity.UnitTypeVolume, "liter", ptrI64(20000), ptrI64(14)},
		{"Konteyner (Katta)", entity.ItemTypePackaging, entity.UnitTypeCount, "piece", ptrI64(100), ptrI64(1200)},
	}

	itemIDs := make(map[string]string, len(defs)) // nombre -> id
	for _, d := range defs {
		item := &entity.Item{
			ID:               uuid.New().String(),
			Name:             d.name,
			ItemType:         d.itemType,
			UnitType:         d.unitType,
			Unit:             d.unit,
			MinStock:         d.minStock,
			DefaultUnitPrice: d.price,
			IsActive:         true,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := s.Items.Create(item); err != nil {
			return err
		}
		itemIDs[d.name] = item.ID
	}

	ref := func(name, unit string) entity.ItemRef {
		return entity.ItemRef{ID: itemIDs[name], Name: name, Unit: unit}
	}

	type seedTx struct {
		typ       string
		item      entity.ItemRef
		date      time.Time
		qty       int64
		unitPrice *int64
		supplier  *string
		note      *string
	}
	txs := []seedTx{
		{entity.StockTypeIn, ref("Guruch (Lazer)", "kg"), now.Add(-4 * day), 60000, ptrI64(18), ptrStr("Bozor"), nil},
		{entity.StockTypeIn, ref("Paxta yog'i", "liter"), now.Add(-3 * day), 100000, ptrI64(14), ptrStr("Bozor"), nil},
		{entity.StockTypeIn, ref("Sigir go'shti (Laq)", "kg"), now.Add(-2 * day), 50000, ptrI64(82), ptrStr("Ali aka"), ptrStr("Yangi partiya")},
		{entity.StockTypeOut, ref("Guruch (Lazer)", "kg"), now.Add(-1 * day), 10000, nil, nil, ptrStr("Osh uchun")},
		{entity.StockTypeOut, ref("Sigir go'shti (Laq)", "kg"), now, 45000, nil, nil, ptrStr("Kabob uchun")},
	}
	for _, t := range txs {
		var total *int64
		if t.unitPrice != nil {
			total = ptrI64(*t.unitPrice * t.qty)
		}
		err := s.StockTransactions.Create(&entity.StockTransaction{
			ID:         ids.NextID(),
			Type:       t.typ,
			Item:       t.item,
			Date:       t.date,
			Quantity:   t.qty,
			UnitPrice:  t.unitPrice,
			TotalPrice: total,
			Supplier:   t.supplier,
			Note:       t.note,
			CreatedAt:  now,
		})
		if err != nil {
			return err
		}
	}

	cash := []*entity.CashTransaction{
		{ID: ids.NextID(), Type: entity.CashTypeIncome, Amount: 2500000, Date: now, Category: ptrStr("SALES"), Note: ptrStr("Kunlik tushum"), CreatedAt: now},
		{ID: ids.NextID(), Type: entity.CashTypeExpense, Amount: 4100000, Date: now.Add(-2 * day), Category: ptrStr("PURCHASE"), Note: ptrStr("Go'sht xaridi"), CreatedAt: now},
		{ID: ids.NextID(), Type: entity.CashTypeExpense, Amount: 450000, Date: now.Add(-5 * day), Category: ptrStr("UTILITY"), CreatedAt: now},
	}
	for _, c := range cash {
		if err := s.Cash.Create(c); err != nil {
			return err
		}
	}

	employees := []*entity.Employee{
		{ID: uuid.New().String(), FullName: "Karim Usmonov", BaseMonthlySalary: 4000000, IsActive: true, CreatedAt: now},
		{ID: uuid.New().String(), FullName: "Dilnoza Rahimova", BaseMonthlySalary: 3500000, IsActive: true, CreatedAt: now},
	}
	for _, e := range employees {
		if err := s.Employees.Create(e); err != nil {
			return err
		}
	}

	lastMonth := now.AddDate(0, -1, 0)
	err := s.Salaries.Create(&entity.SalaryPayment{
		ID:         ids.NextID(),
		Employee:   entity.EmployeeRef{ID: employees[0].ID, FullName: employees[0].FullName},
		Month:      lastMonth.Format("2006-01"),
		DatePaid:   now.Add(-6 * day),
		AmountPaid: 4200000,
		Bonus:      200000,
		Penalty:    0,
		CreatedAt:  now,
	})
	if err != nil {
		return err
	}

	utilities := []*entity.UtilityTransaction{
		{
			ID: ids.NextID(), Date: now.Add(-5 * day),
			UtilityType:  entity.UtilityElectricity,
			ProviderName: ptrStr("Hududiy elektr tarmoqlari"),
			MeterStart:   ptrI64(1200), MeterEnd: ptrI64(1450), Consumption: ptrI64(250),
			Unit: entity.UtilityUnitKWh, Amount: 450000, CreatedAt: now,
		},
		{
			ID: ids.NextID(), Date: now.Add(-10 * day),
			UtilityType: entity.UtilityRent,
			Unit:        entity.UtilityUnitFixed, Amount: 5000000,
			Note: ptrStr("Oylik ijara"), CreatedAt: now,
		},
	}
	for _, u := range utilities {
		if err := s.Utilities.Create(u); err != nil {
			return err
		}
	}

	return nil
}
