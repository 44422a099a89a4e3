// Package usecase contiene los casos de uso del catálogo, la caja, los
// empleados y los servicios del local.
package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/oshxona/kitchen-erp-api/internal/application/dto"
	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/domain/repository"
)

// Unidades válidas por tipo de medida. Un insumo WEIGHT se presenta en kg o g,
// VOLUME en liter o ml, COUNT solo en piezas.
var unitsByType = map[string][]string{
	entity.UnitTypeWeight: {"kg", "g"},
	entity.UnitTypeVolume: {"liter", "ml"},
	entity.UnitTypeCount:  {"piece"},
}

// ItemUseCase casos de uso del catálogo de insumos.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso del catálogo.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create registra un insumo nuevo. La unidad debe ser coherente con el tipo
// de medida; la combinación queda fija de por vida.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if !unitMatchesType(in.UnitType, in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	item := &entity.Item{
		ID:               uuid.New().String(),
		Name:             in.Name,
		ItemType:         in.ItemType,
		UnitType:         in.UnitType,
		Unit:             in.Unit,
		MinStock:         in.MinStock,
		DefaultUnitPrice: in.DefaultUnitPrice,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// GetByID devuelve un insumo; ErrNotFound si no existe.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Update modifica los campos presentes. Unit y UnitType no se tocan: el
// histórico de movimientos está expresado en la unidad base original.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	updated := *item
	if in.Name != nil {
		updated.Name = *in.Name
	}
	if in.ItemType != nil {
		updated.ItemType = *in.ItemType
	}
	if in.MinStock != nil {
		updated.MinStock = in.MinStock
	}
	if in.DefaultUnitPrice != nil {
		updated.DefaultUnitPrice = in.DefaultUnitPrice
	}
	if in.IsActive != nil {
		updated.IsActive = *in.IsActive
	}
	updated.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(&updated); err != nil {
		return nil, err
	}
	resp := toItemResponse(&updated)
	return &resp, nil
}

// Delete elimina un insumo del catálogo. Los movimientos históricos conservan
// su copia desnormalizada, así que siguen siendo legibles.
func (uc *ItemUseCase) Delete(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(id)
}

// List devuelve la página pedida del catálogo según los filtros.
func (uc *ItemUseCase) List(q dto.ItemsQuery) (*dto.ItemListResponse, error) {
	if q.ItemType != "" && !validItemType(q.ItemType) {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.repo.List(repository.ItemFilter{
		ItemType: q.ItemType,
		IsActive: q.IsActive,
		Search:   q.Search,
	})
	if err != nil {
		return nil, err
	}
	all := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		all = append(all, toItemResponse(item))
	}
	page, meta, err := dto.Paginate(all, q.Page)
	if err != nil {
		return nil, err
	}
	return &dto.ItemListResponse{Data: page, Pagination: meta}, nil
}

func validItemType(t string) bool {
	switch t {
	case entity.ItemTypeIngredient, entity.ItemTypeSupply, entity.ItemTypeCleaning,
		entity.ItemTypePackaging, entity.ItemTypeOther:
		return true
	}
	return false
}

func unitMatchesType(unitType, unit string) bool {
	for _, u := range unitsByType[unitType] {
		if u == unit {
			return true
		}
	}
	return false
}

func toItemResponse(item *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:               item.ID,
		Name:             item.Name,
		ItemType:         item.ItemType,
		UnitType:         item.UnitType,
		Unit:             item.Unit,
		MinStock:         item.MinStock,
		DefaultUnitPrice: item.DefaultUnitPrice,
		IsActive:         item.IsActive,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}
