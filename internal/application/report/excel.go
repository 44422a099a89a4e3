package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/oshxona/kitchen-erp-api/pkg/units"
)

// BalanceWorkbook arma un libro de Excel con la vista de saldos del almacén,
// una fila por insumo, con cantidades en unidad de presentación.
func (uc *UseCase) BalanceWorkbook() (*excelize.File, error) {
	balances, err := uc.stockUC.ListBalances()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Saldos"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"No", "Insumo", "Unidad", "Saldo", "Stock mínimo", "Bajo mínimo"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, b := range balances {
		minStock := "-"
		if b.MinStock != nil {
			minStock = units.FormatQuantity(*b.MinStock, b.Unit)
		}
		belowMin := "No"
		if b.BelowMinStock {
			belowMin = "Sí"
		}
		values := []interface{}{
			row + 1,
			b.ItemName,
			b.Unit,
			units.FormatQuantity(b.Balance, b.Unit),
			minStock,
			belowMin,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "B", "B", 30); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "C", "F", 15); err != nil {
		return nil, err
	}
	return f, nil
}

// BalanceFileName nombre sugerido para la descarga del reporte de saldos.
func BalanceFileName(date string) string {
	return fmt.Sprintf("saldos_almacen_%s.xlsx", date)
}
