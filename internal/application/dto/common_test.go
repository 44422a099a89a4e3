package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshxona/kitchen-erp-api/internal/application/dto"
	"github.com/oshxona/kitchen-erp-api/internal/domain"
)

func TestPaginate_CortesYTotales(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	cases := []struct {
		name      string
		page      dto.PageRequest
		wantData  []int
		wantPages int
	}{
		{"primera página", dto.PageRequest{Page: 1, Limit: 3}, []int{1, 2, 3}, 3},
		{"página intermedia", dto.PageRequest{Page: 2, Limit: 3}, []int{4, 5, 6}, 3},
		{"última página parcial", dto.PageRequest{Page: 3, Limit: 3}, []int{7}, 3},
		{"fuera de rango", dto.PageRequest{Page: 9, Limit: 3}, []int{}, 3},
		{"límite mayor al total", dto.PageRequest{Page: 1, Limit: 50}, []int{1, 2, 3, 4, 5, 6, 7}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, meta, err := dto.Paginate(items, tc.page)
			require.NoError(t, err)
			assert.Equal(t, tc.wantData, data)
			assert.Equal(t, 7, meta.Total, "total siempre es el conteo pre-corte")
			assert.Equal(t, tc.wantPages, meta.TotalPages)
			assert.Equal(t, tc.page.Page, meta.Page)
			assert.Equal(t, tc.page.Limit, meta.Limit)
		})
	}
}

// Propiedad: len(data) == min(limit, max(0, total-(page-1)*limit)).
func TestPaginate_PropiedadDeLongitud(t *testing.T) {
	items := make([]int, 23)
	for page := 1; page <= 6; page++ {
		for limit := 1; limit <= 12; limit++ {
			data, meta, err := dto.Paginate(items, dto.PageRequest{Page: page, Limit: limit})
			require.NoError(t, err)

			want := 23 - (page-1)*limit
			if want < 0 {
				want = 0
			}
			if want > limit {
				want = limit
			}
			assert.Len(t, data, want, "page=%d limit=%d", page, limit)
			assert.Equal(t, (23+limit-1)/limit, meta.TotalPages)
		}
	}
}

func TestPaginate_LimiteCeroEsEntradaInvalida(t *testing.T) {
	_, _, err := dto.Paginate([]int{1}, dto.PageRequest{Page: 1, Limit: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = dto.Paginate([]int{1}, dto.PageRequest{Page: 0, Limit: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = dto.Paginate([]int{1}, dto.PageRequest{Page: -1, Limit: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPaginate_ListaVacia(t *testing.T) {
	data, meta, err := dto.Paginate([]string{}, dto.PageRequest{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Equal(t, 0, meta.Total)
	assert.Equal(t, 0, meta.TotalPages)
}

func TestParseDate(t *testing.T) {
	d, err := dto.ParseDate("2025-11-07")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())

	_, err = dto.ParseDate("07/11/2025")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
