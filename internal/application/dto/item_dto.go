package dto

import "time"

// CreateItemRequest entrada para crear un insumo del catálogo.
type CreateItemRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=200"`
	ItemType         string `json:"item_type" validate:"required,oneof=INGREDIENT SUPPLY CLEANING PACKAGING OTHER"`
	UnitType         string `json:"unit_type" validate:"required,oneof=WEIGHT VOLUME COUNT"`
	Unit             string `json:"unit" validate:"required,oneof=kg g liter ml piece"`
	MinStock         *int64 `json:"min_stock" validate:"omitempty,gte=0"`
	DefaultUnitPrice *int64 `json:"default_unit_price" validate:"omitempty,gte=0"`
	IsActive         *bool  `json:"is_active"`
}

// UpdateItemRequest entrada para actualizar un insumo (campos opcionales).
// Unit y UnitType no se modifican: cambiarían la semántica del histórico.
type UpdateItemRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=200"`
	ItemType         *string `json:"item_type" validate:"omitempty,oneof=INGREDIENT SUPPLY CLEANING PACKAGING OTHER"`
	MinStock         *int64  `json:"min_stock" validate:"omitempty,gte=0"`
	DefaultUnitPrice *int64  `json:"default_unit_price" validate:"omitempty,gte=0"`
	IsActive         *bool   `json:"is_active"`
}

// ItemsQuery criterios de listado del catálogo.
type ItemsQuery struct {
	ItemType string `query:"item_type"`
	IsActive *bool  `query:"is_active"`
	Search   string `query:"search"`
	Page     PageRequest
}

// ItemResponse salida de un insumo.
type ItemResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ItemType         string    `json:"item_type"`
	UnitType         string    `json:"unit_type"`
	Unit             string    `json:"unit"`
	MinStock         *int64    `json:"min_stock"`
	DefaultUnitPrice *int64    `json:"default_unit_price"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ItemListResponse página del catálogo.
type ItemListResponse struct {
	Data []ItemResponse `json:"data"`
	Pagination
}
