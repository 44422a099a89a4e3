package usecase

import (
	"time"

	"github.com/oshxona/kitchen-erp-api/internal/application/dto"
	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/domain/repository"
	"github.com/oshxona/kitchen-erp-api/pkg/idgen"
)

// UtilityUseCase casos de uso de facturas de servicios del local.
type UtilityUseCase struct {
	repo repository.UtilityTransactionRepository
	ids  *idgen.Generator
}

// NewUtilityUseCase construye el caso de uso de servicios.
func NewUtilityUseCase(repo repository.UtilityTransactionRepository, ids *idgen.Generator) *UtilityUseCase {
	return &UtilityUseCase{repo: repo, ids: ids}
}

// Create registra una factura de servicio aplicando las reglas del tipo:
// unidad permitida, medidor obligatorio u opcional, etiqueta personalizada
// para OTHER y consumo derivado de las lecturas del medidor.
func (uc *UtilityUseCase) Create(in dto.CreateUtilityRequest) (*dto.UtilityTransactionResponse, error) {
	rule, ok := entity.UtilityRules[in.UtilityType]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = rule.DefaultUnit
	}
	if !rule.UnitAllowed(unit) {
		return nil, domain.ErrInvalidInput
	}
	if rule.RequiresCustomLabel && (in.CustomTypeLabel == nil || *in.CustomTypeLabel == "") {
		return nil, domain.ErrInvalidInput
	}
	if !rule.RequiresCustomLabel && in.CustomTypeLabel != nil {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	meterStart, meterEnd := in.MeterStart, in.MeterEnd
	if !rule.SupportsMeter && (meterStart != nil || meterEnd != nil) {
		return nil, domain.ErrInvalidInput
	}
	if rule.MeterRequired && (meterStart == nil || meterEnd == nil) {
		return nil, domain.ErrInvalidInput
	}

	consumption := in.Consumption
	if meterStart != nil && meterEnd != nil {
		if *meterEnd < *meterStart {
			return nil, domain.ErrInvalidInput
		}
		// La lectura del medidor manda sobre el consumo declarado.
		c := *meterEnd - *meterStart
		consumption = &c
	}
	if consumption != nil && !rule.SupportsConsumption {
		return nil, domain.ErrInvalidInput
	}

	tx := &entity.UtilityTransaction{
		ID:              uc.ids.NextID(),
		Date:            date,
		UtilityType:     in.UtilityType,
		CustomTypeLabel: in.CustomTypeLabel,
		ProviderName:    in.ProviderName,
		MeterStart:      meterStart,
		MeterEnd:        meterEnd,
		Consumption:     consumption,
		Unit:            unit,
		Amount:          in.Amount,
		Note:            in.Note,
		CreatedAt:       time.Now().UTC(),
	}
	if err := uc.repo.Create(tx); err != nil {
		return nil, err
	}
	resp := toUtilityResponse(tx)
	return &resp, nil
}

// Update corrige los campos presentes de una factura. El tipo de servicio no
// cambia; si se tocan las lecturas del medidor, el consumo se rederiva.
func (uc *UtilityUseCase) Update(id string, in dto.UpdateUtilityRequest) (*dto.UtilityTransactionResponse, error) {
	tx, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	rule := entity.UtilityRules[tx.UtilityType]

	updated := *tx
	if in.Date != nil {
		date, err := dto.ParseDate(*in.Date)
		if err != nil {
			return nil, err
		}
		updated.Date = date
	}
	if in.ProviderName != nil {
		updated.ProviderName = in.ProviderName
	}
	if in.MeterStart != nil || in.MeterEnd != nil {
		if !rule.SupportsMeter {
			return nil, domain.ErrInvalidInput
		}
		if in.MeterStart != nil {
			updated.MeterStart = in.MeterStart
		}
		if in.MeterEnd != nil {
			updated.MeterEnd = in.MeterEnd
		}
		if updated.MeterStart == nil || updated.MeterEnd == nil {
			return nil, domain.ErrInvalidInput
		}
		if *updated.MeterEnd < *updated.MeterStart {
			return nil, domain.ErrInvalidInput
		}
		c := *updated.MeterEnd - *updated.MeterStart
		updated.Consumption = &c
	}
	if in.Amount != nil {
		if *in.Amount <= 0 {
			return nil, domain.ErrInvalidInput
		}
		updated.Amount = *in.Amount
	}
	if in.Note != nil {
		updated.Note = in.Note
	}
	if err := uc.repo.Update(&updated); err != nil {
		return nil, err
	}
	resp := toUtilityResponse(&updated)
	return &resp, nil
}

// Delete elimina una factura; ErrNotFound si el id no existe.
func (uc *UtilityUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(id)
}

// List devuelve las facturas filtradas con el monto agregado del conjunto.
func (uc *UtilityUseCase) List(q dto.UtilityQuery) (*dto.UtilityListResponse, error) {
	if q.UtilityType != "" {
		if _, ok := entity.UtilityRules[q.UtilityType]; !ok {
			return nil, domain.ErrInvalidInput
		}
	}
	filter := repository.UtilityTransactionFilter{UtilityType: q.UtilityType}
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
	out := &dto.UtilityListResponse{
		Data:  make([]dto.UtilityTransactionResponse, 0, len(txs)),
		Total: len(txs),
	}
	for _, tx := range txs {
		out.Data = append(out.Data, toUtilityResponse(tx))
		out.TotalAmount += tx.Amount
	}
	return out, nil
}

func toUtilityResponse(tx *entity.UtilityTransaction) dto.UtilityTransactionResponse {
	return dto.UtilityTransactionResponse{
		ID:              tx.ID,
		Date:            tx.Date,
		UtilityType:     tx.UtilityType,
		CustomTypeLabel: tx.CustomTypeLabel,
		ProviderName:    tx.ProviderName,
		MeterStart:      tx.MeterStart,
		MeterEnd:        tx.MeterEnd,
		Consumption:     tx.Consumption,
		Unit:            tx.Unit,
		Amount:          tx.Amount,
		Note:            tx.Note,
		CreatedAt:       tx.CreatedAt,
	}
}
