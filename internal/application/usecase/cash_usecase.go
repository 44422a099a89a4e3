package usecase

import (
	"time"

	"github.com/oshxona/kitchen-erp-api/internal/application/dto"
	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/domain/repository"
	"github.com/oshxona/kitchen-erp-api/pkg/idgen"
)

// CashUseCase casos de uso del libro de caja (ingresos y egresos en UZS).
type CashUseCase struct {
	repo repository.CashTransactionRepository
	ids  *idgen.Generator
}

// NewCashUseCase construye el caso de uso de caja.
func NewCashUseCase(repo repository.CashTransactionRepository, ids *idgen.Generator) *CashUseCase {
	return &CashUseCase{repo: repo, ids: ids}
}

// Create registra un movimiento de caja.
func (uc *CashUseCase) Create(in dto.CreateCashRequest) (*dto.CashTransactionResponse, error) {
	if in.Amount <= 0 || !validCashType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	tx := &entity.CashTransaction{
		ID:        uc.ids.NextID(),
		Type:      in.Type,
		Amount:    in.Amount,
		Date:      date,
		Category:  in.Category,
		Note:      in.Note,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(tx); err != nil {
		return nil, err
	}
	resp := toCashResponse(tx)
	return &resp, nil
}

// Update corrige los campos presentes de un movimiento.
func (uc *CashUseCase) Update(id string, in dto.UpdateCashRequest) (*dto.CashTransactionResponse, error) {
	tx, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	updated := *tx
	if in.Type != nil {
		if !validCashType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		updated.Type = *in.Type
	}
	if in.Amount != nil {
		if *in.Amount <= 0 {
			return nil, domain.ErrInvalidInput
		}
		updated.Amount = *in.Amount
	}
	if in.Date != nil {
		date, err := dto.ParseDate(*in.Date)
		if err != nil {
			return nil, err
		}
		updated.Date = date
	}
	if in.Category != nil {
		updated.Category = in.Category
	}
	if in.Note != nil {
		updated.Note = in.Note
	}
	if err := uc.repo.Update(&updated); err != nil {
		return nil, err
	}
	resp := toCashResponse(&updated)
	return &resp, nil
}

// Delete elimina un movimiento de caja; ErrNotFound si el id no existe.
func (uc *CashUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(id)
}

// List devuelve la página pedida del libro de caja.
func (uc *CashUseCase) List(q dto.CashQuery) (*dto.CashListResponse, error) {
	if q.Type != "" && !validCashType(q.Type) {
		return nil, domain.ErrInvalidInput
	}
	filter := repository.CashTransactionFilter{Type: q.Type, Category: q.Category}
	if q.From != "" {
		from, err := dto.ParseDate(q.From)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := dto.ParseDate(q.To)
		if err != nil {
			return nil, err
		}
		filter.To = &to
	}
	txs, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	all := make([]dto.CashTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		all = append(all, toCashResponse(tx))
	}
	page, meta, err := dto.Paginate(all, q.Page)
	if err != nil {
		return nil, err
	}
	return &dto.CashListResponse{Data: page, Pagination: meta}, nil
}

func validCashType(t string) bool {
	return t == entity.CashTypeIncome || t == entity.CashTypeExpense
}

func toCashResponse(tx *entity.CashTransaction) dto.CashTransactionResponse {
	return dto.CashTransactionResponse{
		ID:         tx.ID,
		Type:       tx.Type,
		Amount:     tx.Amount,
		Date:       tx.Date,
		Category:   tx.Category,
		Note:       tx.Note,
		RelatedRef: tx.RelatedRef,
		CreatedAt:  tx.CreatedAt,
	}
}
