// Package alerting vigila periódicamente los saldos del almacén y avisa por
// el log cuando un insumo cae por debajo de su stock mínimo.
package alerting

import (
	"github.com/robfig/cron/v3"

	"github.com/oshxona/kitchen-erp-api/internal/application/stock"
	"github.com/oshxona/kitchen-erp-api/pkg/logger"
	"github.com/oshxona/kitchen-erp-api/pkg/units"
)

// Monitor barrido periódico de saldos bajo stock mínimo.
type Monitor struct {
	stockUC *stock.UseCase
	log     *logger.Logger
	cron    *cron.Cron
	entryID cron.EntryID
}

// NewMonitor construye el monitor de faltantes.
func NewMonitor(stockUC *stock.UseCase, log *logger.Logger) *Monitor {
	return &Monitor{
		stockUC: stockUC,
		log:     log.Component("alerting"),
		cron:    cron.New(),
	}
}

// Start programa el barrido con la expresión cron dada y lanza el scheduler.
func (m *Monitor) Start(spec string) error {
	id, err := m.cron.AddFunc(spec, m.Sweep)
	if err != nil {
		return err
	}
	m.entryID = id
	m.cron.Start()
	m.log.Info().Str("cron", spec).Msg("monitor de stock mínimo iniciado")
	return nil
}

// Stop detiene el scheduler y espera a que termine un barrido en curso.
func (m *Monitor) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.log.Info().Msg("monitor de stock mínimo detenido")
}

// Sweep recorre la vista de saldos y registra una advertencia por cada insumo
// bajo su umbral. Es idempotente; se puede invocar fuera del scheduler.
func (m *Monitor) Sweep() {
	balances, err := m.stockUC.ListBalances()
	if err != nil {
		m.log.Error().Err(err).Msg("no se pudo derivar la vista de saldos")
		return
	}
	short := 0
	for _, b := range balances {
		if !b.BelowMinStock {
			continue
		}
		short++
		m.log.Warn().
			Str("item_id", b.ItemID).
			Str("item", b.ItemName).
			Str("saldo", units.FormatQuantity(b.Balance, b.Unit)).
			Str("minimo", units.FormatQuantity(*b.MinStock, b.Unit)).
			Msg("insumo por debajo del stock mínimo")
	}
	if short == 0 {
		m.log.Debug().Int("insumos", len(balances)).Msg("sin faltantes")
	}
}
