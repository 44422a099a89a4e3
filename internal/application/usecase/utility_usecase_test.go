package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshxona/kitchen-erp-api/internal/application/dto"
	"github.com/oshxona/kitchen-erp-api/internal/application/usecase"
	"github.com/oshxona/kitchen-erp-api/internal/domain"
	"github.com/oshxona/kitchen-erp-api/internal/domain/entity"
	"github.com/oshxona/kitchen-erp-api/internal/infrastructure/memory"
	"github.com/oshxona/kitchen-erp-api/pkg/idgen"
)

func newUtilityUC(t *testing.T) *usecase.UtilityUseCase {
	t.Helper()
	ids, err := idgen.New(1)
	require.NoError(t, err)
	return usecase.NewUtilityUseCase(memory.NewUtilityTransactionRepository(), ids)
}

func pi(v int64) *int64   { return &v }
func ps(s string) *string { return &s }

func TestUtility_ElectricidadDerivaConsumoDelMedidor(t *testing.T) {
	uc := newUtilityUC(t)
	out, err := uc.Create(dto.CreateUtilityRequest{
		Date:        "2026-08-01",
		UtilityType: entity.UtilityElectricity,
		MeterStart:  pi(1200),
		MeterEnd:    pi(1450),
		Unit:        entity.UtilityUnitKWh,
		Amount:      450000,
	})
	require.NoError(t, err)
	require.NotNil(t, out.Consumption)
	assert.Equal(t, int64(250), *out.Consumption, "consumo = lectura final − inicial")
}

func TestUtility_ElectricidadExigeMedidor(t *testing.T) {
	uc := newUtilityUC(t)
	_, err := uc.Create(dto.CreateUtilityRequest{
		Date:        "2026-08-01",
		UtilityType: entity.UtilityElectricity,
		Unit:        entity.UtilityUnitKWh,
		Amount:      450000,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUtility_LecturaFinalMenorQueInicial(t *testing.T) {
	uc := newUtilityUC(t)
	_, err := uc.Create(dto.CreateUtilityRequest{
		Date:        "2026-08-01",
		UtilityType: entity.UtilityElectricity,
		MeterStart:  pi(1450),
		MeterEnd:    pi(1200),
		Unit:        entity.UtilityUnitKWh,
		Amount:      450000,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUtility_UnidadNoPermitidaParaElTipo(t *testing.T) {
	uc := newUtilityUC(t)
	_, err := uc.Create(dto.CreateUtilityRequest{
		Date:        "2026-08-01",
		UtilityType: entity.UtilityElectricity,
		MeterStart:  pi(0),
		MeterEnd:    pi(10),
		Unit:        entity.UtilityUnitM3, // la electricidad se mide en kWh
		Amount:      100000,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUtility_UnidadVaciaUsaLaPorDefecto(t *testing.T) {
	uc := newUtilityUC(t)
	out, err := uc.Create(dto.CreateUtilityRequest{
		Date:        "2026-08-01",
		UtilityType: entity.UtilityRent,
		Amount:      5000000,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.UtilityUnitFixed, out.Unit)
}

func TestUtility_RentaNoAdmiteMedidor(t *testing.T) {
	uc := newUtilityUC(t)
	_, err := uc.Create(dto.CreateUtilityRequest{
		Date:        "2026-08-01",
		UtilityType: entity.UtilityRent,
		MeterStart:  pi(0),
		MeterEnd:    pi(1),
		Unit:        entity.UtilityUnitFixed,
		Amount:      5000000,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUtility_OtherExigeEtiqueta(t *testing.T) {
	uc := newUtilityUC(t)
	_, err := uc.Create(dto.CreateUtilityRequest{
		Date:        "2026-08-01",
		UtilityType: entity.UtilityOther,
		Unit:        entity.UtilityUnitFixed,
		Amount:      100000,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "OTHER sin etiqueta")

	out, err := uc.Create(dto.CreateUtilityRequest{
		Date:            "2026-08-01",
		UtilityType:     entity.UtilityOther,
		CustomTypeLabel: ps("Fumigación"),
		Unit:            entity.UtilityUnitFixed,
		Amount:          100000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Fumigación", *out.CustomTypeLabel)
}

func TestUtility_EtiquetaSoloParaOther(t *testing.T) {
	uc := newUtilityUC(t)
	_, err := uc.Create(dto.CreateUtilityRequest{
		Date:            "2026-08-01",
		UtilityType:     entity.UtilityGas,
		CustomTypeLabel: ps("Gas natural"),
		Unit:            entity.UtilityUnitM3,
		Amount:          300000,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUtility_UpdateRederivaConsumo(t *testing.T) {
	uc := newUtilityUC(t)
	created, err := uc.Create(dto.CreateUtilityRequest{
		Date:        "2026-08-01",
		UtilityType: entity.UtilityElectricity,
		MeterStart:  pi(1200),
		MeterEnd:    pi(1450),
		Unit:        entity.UtilityUnitKWh,
		Amount:      450000,
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateUtilityRequest{MeterEnd: pi(1500)})
	require.NoError(t, err)
	require.NotNil(t, out.Consumption)
	assert.Equal(t, int64(300), *out.Consumption)
}

func TestUtility_ListAgregaMontos(t *testing.T) {
	uc := newUtilityUC(t)
	for _, amount := range []int64{450000, 300000} {
		_, err := uc.Create(dto.CreateUtilityRequest{
			Date:        "2026-08-01",
			UtilityType: entity.UtilityInternet,
			Unit:        entity.UtilityUnitMonth,
			Amount:      amount,
		})
		require.NoError(t, err)
	}
	out, err := uc.List(dto.UtilityQuery{UtilityType: entity.UtilityInternet})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, int64(750000), out.TotalAmount)
}
