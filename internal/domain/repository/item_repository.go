package repository

import "github.com/oshxona/kitchen-erp-api/internal/domain/entity"

// ItemFilter criterios de listado del catálogo (AND entre los presentes).
type ItemFilter struct {
	ItemType string // vacío = todos
	IsActive *bool  // nil = todos
	Search   string // subcadena del nombre, sin distinguir mayúsculas
}

// ItemRepository define el puerto de persistencia para el catálogo de insumos (DIP).
// GetByID devuelve (nil, nil) cuando el insumo no existe.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
	List(filter ItemFilter) ([]*entity.Item, error)
}
