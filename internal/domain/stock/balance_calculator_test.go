package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/domain/stock"
)

func tx(id, itemID, typ string, qty int64) *entity.StockTransaction {
	return &entity.StockTransaction{
		ID:       id,
		Type:     typ,
		Item:     entity.ItemRef{ID: itemID},
		Quantity: qty,
	}
}

func TestComputeBalance_SumaConSigno(t *testing.T) {
	txs := []*entity.StockTransaction{
		tx("1", "a", entity.StockTypeIn, 50000),
		tx("2", "a", entity.StockTypeOut, 45000),
		tx("3", "b", entity.StockTypeIn, 300),
	}
	assert.Equal(t, int64(5000), stock.ComputeBalance("a", txs))
	assert.Equal(t, int64(300), stock.ComputeBalance("b", txs))
	assert.Equal(t, int64(0), stock.ComputeBalance("c", txs), "insumo sin movimientos tiene saldo cero")
}

func TestComputeBalances_UnaPasada(t *testing.T) {
	txs := []*entity.StockTransaction{
		tx("1", "a", entity.StockTypeIn, 10),
		tx("2", "b", entity.StockTypeOut, 4),
		tx("3", "a", entity.StockTypeOut, 3),
		tx("4", "b", entity.StockTypeIn, 9),
	}
	got := stock.ComputeBalances(txs)
	assert.Equal(t, int64(7), got["a"])
	assert.Equal(t, int64(5), got["b"])
}

func TestIsBelowMin_Derivacion(t *testing.T) {
	min := int64(10000)
	assert.True(t, stock.IsBelowMin(5000, &min), "5000 < 10000 debe alertar")
	assert.False(t, stock.IsBelowMin(10000, &min), "el umbral es estricto: igual no alerta")
	assert.False(t, stock.IsBelowMin(50000, &min))
	assert.False(t, stock.IsBelowMin(-1, nil), "sin umbral nunca alerta")
}
