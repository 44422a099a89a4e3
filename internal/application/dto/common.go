package dto

import (
	"time"

	"github.com/oshxona/kitchen-erp-api/internal/domain"
)

// DateLayout formato de fecha de negocio aceptado en la API.
const DateLayout = "2006-01-02"

// MonthLayout formato de mes para salarios y reportes.
const MonthLayout = "2006-01"

// ParseDate interpreta una fecha de negocio (fecha calendario o RFC 3339).
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// PageRequest paginación 1-based para listados. El valor por defecto
// (página 1, límite 10) lo aplica la capa HTTP; aquí solo se valida.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Validate rechaza página o límite menores a 1. Un límite de 0 explícito es
// entrada inválida, nunca una división accidental.
func (p PageRequest) Validate() error {
	if p.Page < 1 || p.Limit < 1 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Pagination metadatos de página en respuestas de listado.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// Paginate transforma la secuencia filtrada completa en la página pedida:
// corte [ (page-1)*limit, page*limit ) con total y total_pages previos al corte.
// Una página fuera de rango devuelve corte vacío con los totales correctos.
func Paginate[T any](items []T, page PageRequest) ([]T, Pagination, error) {
	if err := page.Validate(); err != nil {
		return nil, Pagination{}, err
	}
	total := len(items)
	meta := Pagination{
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: (total + page.Limit - 1) / page.Limit,
	}
	start := (page.Page - 1) * page.Limit
	if start >= total {
		return []T{}, meta, nil
	}
	end := start + page.Limit
	if end > total {
		end = total
	}
	return items[start:end], meta, nil
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
