package stock

import "github.com/oshxona/kitchen-erp-api/internal/domain/entity"

// SignedQuantity devuelve la cantidad con signo de un movimiento: positiva
// para entradas, negativa para salidas.
func SignedQuantity(tx *entity.StockTransaction) int64 {
	if tx.Type == entity.StockTypeOut {
		return -tx.Quantity
	}
	return tx.Quantity
}

// ComputeBalance calcula el saldo de un insumo plegando los movimientos vivos.
// Invariante del libro: saldo = Σ(entradas) − Σ(salidas).
func ComputeBalance(itemID string, txs []*entity.StockTransaction) int64 {
	var balance int64
	for _, tx := range txs {
		if tx.Item.ID == itemID {
			balance += SignedQuantity(tx)
		}
	}
	return balance
}

// ComputeBalances calcula el saldo de todos los insumos en una sola pasada.
func ComputeBalances(txs []*entity.StockTransaction) map[string]int64 {
	balances := make(map[string]int64)
	for _, tx := range txs {
		balances[tx.Item.ID] += SignedQuantity(tx)
	}
	return balances
}

// BuildBalance arma la vista de saldo de un insumo a partir de su saldo derivado.
func BuildBalance(item *entity.Item, balance int64) entity.ItemBalance {
	return entity.ItemBalance{
		ItemID:        item.ID,
		ItemName:      item.Name,
		Unit:          item.Unit,
		Balance:       balance,
		MinStock:      item.MinStock,
		BelowMinStock: IsBelowMin(balance, item.MinStock),
	}
}

// BuildBalances arma la vista de saldos del catálogo completo: una fila por
// insumo, con o sin movimientos.
func BuildBalances(items []*entity.Item, txs []*entity.StockTransaction) []entity.ItemBalance {
	balances := ComputeBalances(txs)
	out := make([]entity.ItemBalance, 0, len(items))
	for _, item := range items {
		out = append(out, BuildBalance(item, balances[item.ID]))
	}
	return out
}
