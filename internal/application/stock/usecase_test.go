package stock_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshxona/kitchen-erp-api/internal/application/dto"
	appstock "github.com/oshxona/kitchen-erp-api/internal/application/stock"
	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/infrastructure/memory"
	"github.com/oshxona/kitchen-erp-api/pkg/idgen"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc    *appstock.UseCase
	items *memory.ItemRepo
	txs   *memory.StockTransactionRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ids, err := idgen.New(1)
	require.NoError(t, err)
	items := memory.NewItemRepository()
	txs := memory.NewStockTransactionRepository()
	return &fixture{
		uc:    appstock.NewUseCase(txs, items, ids),
		items: items,
		txs:   txs,
	}
}

// addItem registra un insumo directamente en el catálogo y devuelve su id.
func (f *fixture) addItem(t *testing.T, name, unit string, minStock *int64) string {
	t.Helper()
	now := time.Now().UTC()
	item := &entity.Item{
		ID:        uuid.New().String(),
		Name:      name,
		ItemType:  entity.ItemTypeIngredient,
		UnitType:  entity.UnitTypeWeight,
		Unit:      unit,
		MinStock:  minStock,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.items.Create(item))
	return item.ID
}

func (f *fixture) balanceOf(t *testing.T, itemID string) dto.ItemBalanceResponse {
	t.Helper()
	b, err := f.uc.GetBalance(itemID)
	require.NoError(t, err)
	return *b
}

func i64(v int64) *int64   { return &v }
func str(s string) *string { return &s }

func page(p, l int) dto.PageRequest { return dto.PageRequest{Page: p, Limit: l} }

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: entrada y salida con umbral de stock mínimo
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenario_EntradaYSalidaConUmbral(t *testing.T) {
	f := newFixture(t)
	// 10 kg de umbral, en gramos.
	itemID := f.addItem(t, "Sigir go'shti (Laq)", "kg", i64(10000))

	today := time.Now().UTC().Format(dto.DateLayout)

	// Entrada de 50 kg a 82 UZS/g.
	in, err := f.uc.RecordIn(dto.StockInRequest{
		ItemID:    itemID,
		Date:      today,
		Quantity:  50000,
		UnitPrice: i64(82),
		Supplier:  str("Ali aka"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StockTypeIn, in.Type)
	require.NotNil(t, in.TotalPrice)
	assert.Equal(t, int64(82*50000), *in.TotalPrice, "total = precio unitario × cantidad")

	b := f.balanceOf(t, itemID)
	assert.Equal(t, int64(50000), b.Balance)
	assert.False(t, b.BelowMinStock, "50 kg no está bajo el umbral de 10 kg")

	// Salida de 45 kg: quedan 5 kg, bajo el umbral.
	out, err := f.uc.RecordOut(dto.StockOutRequest{ItemID: itemID, Date: today, Quantity: 45000})
	require.NoError(t, err)
	assert.Equal(t, entity.StockTypeOut, out.Type)
	assert.Nil(t, out.UnitPrice, "las salidas no llevan precio")
	assert.Nil(t, out.TotalPrice)

	b = f.balanceOf(t, itemID)
	assert.Equal(t, int64(5000), b.Balance)
	assert.True(t, b.BelowMinStock, "5000 < 10000 debe alertar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante del saldo
// ──────────────────────────────────────────────────────────────────────────────

// Tras cualquier secuencia de entradas y salidas, el saldo es exactamente
// Σ(entradas) − Σ(salidas) de los movimientos vivos del insumo.
func TestInvariante_SaldoIgualASumaConSigno(t *testing.T) {
	f := newFixture(t)
	itemID := f.addItem(t, "Guruch (Lazer)", "kg", nil)
	today := time.Now().UTC().Format(dto.DateLayout)

	steps := []struct {
		typ string
		qty int64
	}{
		{entity.StockTypeIn, 60000},
		{entity.StockTypeOut, 10000},
		{entity.StockTypeIn, 5000},
		{entity.StockTypeOut, 25000},
		{entity.StockTypeIn, 1},
		{entity.StockTypeOut, 30001},
	}
	var want int64
	for i, s := range steps {
		var err error
		if s.typ == entity.StockTypeIn {
			_, err = f.uc.RecordIn(dto.StockInRequest{ItemID: itemID, Date: today, Quantity: s.qty})
			want += s.qty
		} else {
			_, err = f.uc.RecordOut(dto.StockOutRequest{ItemID: itemID, Date: today, Quantity: s.qty})
			want -= s.qty
		}
		require.NoError(t, err, "paso %d", i)
		assert.Equal(t, want, f.balanceOf(t, itemID).Balance, "paso %d", i)
	}
	assert.Equal(t, int64(0), want, "la secuencia termina en cero por construcción")
}

func TestDelete_ElSaldoDerivadoSeAjustaSolo(t *testing.T) {
	f := newFixture(t)
	itemID := f.addItem(t, "Piyoz", "kg", i64(20000))
	today := time.Now().UTC().Format(dto.DateLayout)

	first, err := f.uc.RecordIn(dto.StockInRequest{ItemID: itemID, Date: today, Quantity: 30000})
	require.NoError(t, err)
	second, err := f.uc.RecordIn(dto.StockInRequest{ItemID: itemID, Date: today, Quantity: 20000})
	require.NoError(t, err)
	assert.Equal(t, int64(50000), f.balanceOf(t, itemID).Balance)

	// Borrar la segunda entrada deja el saldo en 30000 sin ajuste manual.
	require.NoError(t, f.uc.Delete(second.ID))
	b := f.balanceOf(t, itemID)
	assert.Equal(t, int64(30000), b.Balance)
	assert.False(t, b.BelowMinStock)

	// Borrar también la primera baja el saldo a cero y dispara el umbral.
	require.NoError(t, f.uc.Delete(first.ID))
	b = f.balanceOf(t, itemID)
	assert.Equal(t, int64(0), b.Balance)
	assert.True(t, b.BelowMinStock)
}

func TestDelete_IdInexistenteEsNotFound(t *testing.T) {
	f := newFixture(t)
	err := f.uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound, "el borrado no es silencioso")
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardas de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordOut_RechazaSaldoInsuficiente(t *testing.T) {
	f := newFixture(t)
	itemID := f.addItem(t, "Sabzi", "kg", nil)
	today := time.Now().UTC().Format(dto.DateLayout)

	_, err := f.uc.RecordIn(dto.StockInRequest{ItemID: itemID, Date: today, Quantity: 10000})
	require.NoError(t, err)

	_, err = f.uc.RecordOut(dto.StockOutRequest{ItemID: itemID, Date: today, Quantity: 10001})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "el saldo nunca baja de cero")

	// El rechazo no deja rastro en el libro ni en el saldo.
	assert.Equal(t, int64(10000), f.balanceOf(t, itemID).Balance)
	list, err := f.uc.ListTransactions(dto.StockQuery{ItemID: itemID, Page: page(1, 50)})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	// Sacar exactamente el saldo sí se permite.
	_, err = f.uc.RecordOut(dto.StockOutRequest{ItemID: itemID, Date: today, Quantity: 10000})
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.balanceOf(t, itemID).Balance)
}

func TestRecord_ValidaCantidadFechaEInsumo(t *testing.T) {
	f := newFixture(t)
	itemID := f.addItem(t, "Paxta yog'i", "liter", nil)
	today := time.Now().UTC().Format(dto.DateLayout)

	_, err := f.uc.RecordIn(dto.StockInRequest{ItemID: itemID, Date: today, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = f.uc.RecordIn(dto.StockInRequest{ItemID: itemID, Date: today, Quantity: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")

	_, err = f.uc.RecordIn(dto.StockInRequest{ItemID: itemID, Date: "ayer", Quantity: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha no parseable")

	_, err = f.uc.RecordIn(dto.StockInRequest{ItemID: "fantasma", Date: today, Quantity: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound, "insumo inexistente")

	_, err = f.uc.RecordOut(dto.StockOutRequest{ItemID: "", Date: today, Quantity: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "item_id vacío")
}

// ──────────────────────────────────────────────────────────────────────────────
// Copia desnormalizada
// ──────────────────────────────────────────────────────────────────────────────

func TestSnapshot_EstableTrasRenombrarElInsumo(t *testing.T) {
	f := newFixture(t)
	itemID := f.addItem(t, "Konteyner", "piece", nil)
	today := time.Now().UTC().Format(dto.DateLayout)

	created, err := f.uc.RecordIn(dto.StockInRequest{ItemID: itemID, Date: today, Quantity: 100})
	require.NoError(t, err)
	assert.Equal(t, "Konteyner", created.Item.Name)

	item, err := f.items.GetByID(itemID)
	require.NoError(t, err)
	renamed := *item
	renamed.Name = "Konteyner (Katta)"
	require.NoError(t, f.items.Update(&renamed))

	// El histórico conserva el nombre al momento del movimiento.
	list, err := f.uc.ListTransactions(dto.StockQuery{ItemID: itemID, Page: page(1, 10)})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Konteyner", list.Data[0].Item.Name)

	// La vista de saldos sí refleja el nombre vigente.
	assert.Equal(t, "Konteyner (Katta)", f.balanceOf(t, itemID).ItemName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado: filtros, orden y paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestListTransactions_ComposicionDeFiltros(t *testing.T) {
	f := newFixture(t)
	a := f.addItem(t, "A", "kg", nil)
	b := f.addItem(t, "B", "kg", nil)

	day := func(n int) string {
		return time.Date(2026, 8, n, 0, 0, 0, 0, time.UTC).Format(dto.DateLayout)
	}
	mustIn := func(item, date string, qty int64) {
		_, err := f.uc.RecordIn(dto.StockInRequest{ItemID: item, Date: date, Quantity: qty})
		require.NoError(t, err)
	}
	mustOut := func(item, date string, qty int64) {
		_, err := f.uc.RecordOut(dto.StockOutRequest{ItemID: item, Date: date, Quantity: qty})
		require.NoError(t, err)
	}

	mustIn(a, day(1), 100)
	mustIn(b, day(2), 200)
	mustIn(a, day(3), 300)
	mustOut(a, day(4), 50)
	mustOut(b, day(5), 60)

	// type=IN AND item=A: solo las dos entradas de A, la más reciente primero.
	list, err := f.uc.ListTransactions(dto.StockQuery{
		Type: entity.StockTypeIn, ItemID: a, Page: page(1, 10),
	})
	require.NoError(t, err)
	require.Len(t, list.Data, 2)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, int64(300), list.Data[0].Quantity)
	assert.Equal(t, int64(100), list.Data[1].Quantity)

	// Rango de fechas con límites inclusivos: del 2 al 4 entran tres movimientos.
	list, err = f.uc.ListTransactions(dto.StockQuery{From: day(2), To: day(4), Page: page(1, 10)})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	for _, tx := range list.Data {
		assert.True(t, tx.Date.Day() >= 2 && tx.Date.Day() <= 4)
	}

	// Orden global: fecha descendente.
	list, err = f.uc.ListTransactions(dto.StockQuery{Page: page(1, 10)})
	require.NoError(t, err)
	require.Len(t, list.Data, 5)
	for i := 1; i < len(list.Data); i++ {
		assert.False(t, list.Data[i].Date.After(list.Data[i-1].Date))
	}
}

func TestListTransactions_EmpatesDeFechaMasRecienteCreadoPrimero(t *testing.T) {
	f := newFixture(t)
	a := f.addItem(t, "A", "kg", nil)
	today := time.Now().UTC().Format(dto.DateLayout)

	for _, qty := range []int64{1, 2, 3} {
		_, err := f.uc.RecordIn(dto.StockInRequest{ItemID: a, Date: today, Quantity: qty})
		require.NoError(t, err)
	}
	list, err := f.uc.ListTransactions(dto.StockQuery{Page: page(1, 10)})
	require.NoError(t, err)
	require.Len(t, list.Data, 3)
	assert.Equal(t, int64(3), list.Data[0].Quantity, "mismo día: el último creado va primero")
	assert.Equal(t, int64(1), list.Data[2].Quantity)
}

func TestListTransactions_PaginaFueraDeRango(t *testing.T) {
	f := newFixture(t)
	a := f.addItem(t, "A", "kg", nil)
	today := time.Now().UTC().Format(dto.DateLayout)
	for i := 0; i < 3; i++ {
		_, err := f.uc.RecordIn(dto.StockInRequest{ItemID: a, Date: today, Quantity: 10})
		require.NoError(t, err)
	}

	list, err := f.uc.ListTransactions(dto.StockQuery{Page: page(2, 10)})
	require.NoError(t, err)
	assert.Empty(t, list.Data)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, 1, list.TotalPages)
}

func TestListTransactions_EntradasInvalidas(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.ListTransactions(dto.StockQuery{Type: "TRANSFER", Page: page(1, 10)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido")

	_, err = f.uc.ListTransactions(dto.StockQuery{From: "2026-13-45", Page: page(1, 10)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha de rango no parseable")

	_, err = f.uc.ListTransactions(dto.StockQuery{Page: page(1, 0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "límite cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista de saldos
// ──────────────────────────────────────────────────────────────────────────────

func TestListBalances_UnaFilaPorInsumo(t *testing.T) {
	f := newFixture(t)
	a := f.addItem(t, "A", "kg", i64(5000))
	b := f.addItem(t, "B", "liter", nil)
	f.addItem(t, "C", "piece", i64(10))
	today := time.Now().UTC().Format(dto.DateLayout)

	_, err := f.uc.RecordIn(dto.StockInRequest{ItemID: a, Date: today, Quantity: 4000})
	require.NoError(t, err)
	_, err = f.uc.RecordIn(dto.StockInRequest{ItemID: b, Date: today, Quantity: 9000})
	require.NoError(t, err)

	balances, err := f.uc.ListBalances()
	require.NoError(t, err)
	require.Len(t, balances, 3, "una fila por insumo del catálogo, con o sin movimientos")

	byID := make(map[string]dto.ItemBalanceResponse, len(balances))
	for _, row := range balances {
		byID[row.ItemID] = row
	}
	assert.Equal(t, int64(4000), byID[a].Balance)
	assert.True(t, byID[a].BelowMinStock, "4000 < 5000")
	assert.Equal(t, int64(9000), byID[b].Balance)
	assert.False(t, byID[b].BelowMinStock, "sin umbral no hay alerta")
}

func TestGetBalance_InsumoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.GetBalance("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
