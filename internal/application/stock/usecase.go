// Package stock implementa el motor del libro de stock: registro de entradas
// y salidas, saldos derivados y vista paginada del histórico.
package stock

import (
	"time"

	"github.com/oshxona/kitchen-erp-api/internal/application/dto"
	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/domain/repository"
	domstock "github.com/oshxona/kitchen-erp-api/internal/domain/stock"
	"github.com/oshxona/kitchen-erp-api/pkg/idgen"
)

// UseCase casos de uso del libro de stock. Los saldos nunca se acumulan: se
// derivan del conjunto vivo de movimientos en cada lectura, así el borrado de
// un movimiento conserva el invariante saldo = Σ(entradas) − Σ(salidas).
type UseCase struct {
	txRepo   repository.StockTransactionRepository
	itemRepo repository.ItemRepository
	ids      *idgen.Generator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRepo repository.StockTransactionRepository,
	itemRepo repository.ItemRepository,
	ids *idgen.Generator,
) *UseCase {
	return &UseCase{txRepo: txRepo, itemRepo: itemRepo, ids: ids}
}

// ListTransactions devuelve la página pedida del libro, filtrada por tipo,
// insumo y rango de fechas (límites inclusivos de calendario), ordenada por
// fecha de negocio descendente.
func (uc *UseCase) ListTransactions(q dto.StockQuery) (*dto.StockTransactionListResponse, error) {
	filter, err := buildFilter(q)
	if err != nil {
		return nil, err
	}
	txs, err := uc.txRepo.List(filter)
	if err != nil {
		return nil, err
	}
	all := make([]dto.StockTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		all = append(all, toStockTransactionResponse(tx))
	}
	page, meta, err := dto.Paginate(all, q.Page)
	if err != nil {
		return nil, err
	}
	return &dto.StockTransactionListResponse{Data: page, Pagination: meta}, nil
}

// ListBalances deriva el saldo de cada insumo del catálogo en una pasada por
// el libro. BelowMinStock se recalcula aquí; nunca queda obsoleto tras una
// mutación porque no se almacena.
func (uc *UseCase) ListBalances() ([]dto.ItemBalanceResponse, error) {
	txs, err := uc.txRepo.List(repository.StockTransactionFilter{})
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.List(repository.ItemFilter{})
	if err != nil {
		return nil, err
	}
	rows := domstock.BuildBalances(items, txs)
	out := make([]dto.ItemBalanceResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toItemBalanceResponse(row))
	}
	return out, nil
}

// GetBalance deriva el saldo de un insumo concreto.
func (uc *UseCase) GetBalance(itemID string) (*dto.ItemBalanceResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	txs, err := uc.txRepo.List(repository.StockTransactionFilter{ItemID: itemID})
	if err != nil {
		return nil, err
	}
	row := domstock.BuildBalance(item, domstock.ComputeBalance(itemID, txs))
	resp := toItemBalanceResponse(row)
	return &resp, nil
}

// RecordIn registra una entrada de stock (compra) con copia desnormalizada
// del insumo. TotalPrice = UnitPrice * Quantity cuando hay precio.
func (uc *UseCase) RecordIn(in dto.StockInRequest) (*dto.StockTransactionResponse, error) {
	if in.Quantity <= 0 || in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice != nil && *in.UnitPrice < 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	var totalPrice *int64
	if in.UnitPrice != nil {
		t := *in.UnitPrice * in.Quantity
		totalPrice = &t
	}
	tx := &entity.StockTransaction{
		ID:         uc.ids.NextID(),
		Type:       entity.StockTypeIn,
		Item:       entity.ItemRef{ID: item.ID, Name: item.Name, Unit: item.Unit},
		Date:       date,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		TotalPrice: totalPrice,
		Supplier:   in.Supplier,
		Note:       in.Note,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.txRepo.Create(tx); err != nil {
		return nil, err
	}
	resp := toStockTransactionResponse(tx)
	return &resp, nil
}

// RecordOut registra una salida de stock (consumo). Una salida que dejaría el
// saldo negativo se rechaza con ErrInsufficientStock: el libro no admite
// saldos bajo cero.
func (uc *UseCase) RecordOut(in dto.StockOutRequest) (*dto.StockTransactionResponse, error) {
	if in.Quantity <= 0 || in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	txs, err := uc.txRepo.List(repository.StockTransactionFilter{ItemID: in.ItemID})
	if err != nil {
		return nil, err
	}
	if domstock.ComputeBalance(in.ItemID, txs) < in.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	tx := &entity.StockTransaction{
		ID:        uc.ids.NextID(),
		Type:      entity.StockTypeOut,
		Item:      entity.ItemRef{ID: item.ID, Name: item.Name, Unit: item.Unit},
		Date:      date,
		Quantity:  in.Quantity,
		Note:      in.Note,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.txRepo.Create(tx); err != nil {
		return nil, err
	}
	resp := toStockTransactionResponse(tx)
	return &resp, nil
}

// Delete elimina un movimiento del libro; ErrNotFound si el id no existe.
// Como los saldos son derivados, el borrado los ajusta por sí solo.
func (uc *UseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRepo.Delete(id)
}

func buildFilter(q dto.StockQuery) (repository.StockTransactionFilter, error) {
	var filter repository.StockTransactionFilter
	switch q.Type {
	case "", entity.StockTypeIn, entity.StockTypeOut:
		filter.Type = q.Type
	default:
		return filter, domain.ErrInvalidInput
	}
	filter.ItemID = q.ItemID
	if q.From != "" {
		from, err := dto.ParseDate(q.From)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := dto.ParseDate(q.To)
		if err != nil {
			return filter, err
		}
		filter.To = &to
	}
	return filter, nil
}

func toItemBalanceResponse(row entity.ItemBalance) dto.ItemBalanceResponse {
	return dto.ItemBalanceResponse{
		ItemID:        row.ItemID,
		ItemName:      row.ItemName,
		Unit:          row.Unit,
		Balance:       row.Balance,
		MinStock:      row.MinStock,
		BelowMinStock: row.BelowMinStock,
	}
}

func toStockTransactionResponse(tx *entity.StockTransaction) dto.StockTransactionResponse {
	return dto.StockTransactionResponse{
		ID:   tx.ID,
		Type: tx.Type,
		Item: dto.ItemRefResponse{
			ID:   tx.Item.ID,
			Name: tx.Item.Name,
			Unit: tx.Item.Unit,
		},
		Date:       tx.Date,
		Quantity:   tx.Quantity,
		UnitPrice:  tx.UnitPrice,
		TotalPrice: tx.TotalPrice,
		Supplier:   tx.Supplier,
		Note:       tx.Note,
		CreatedAt:  tx.CreatedAt,
	}
}
