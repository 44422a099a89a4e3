package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/oshxona/kitchen-erp-api/internal/application/dto"
	"github.com/oshxona/kitchen-erp-api/internal/application/report"
)

// ReportHandler maneja las peticiones HTTP de reportes financieros.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// MonthlyStats godoc
// @Summary      Estadísticas financieras de un mes
// @Tags         reports
// @Produce      json
// @Param        month  query  string  true  "Mes YYYY-MM"
// @Success      200  {object}  dto.MonthlyStatsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) MonthlyStats(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		month = time.Now().UTC().Format(dto.MonthLayout)
	}
	out, err := h.uc.MonthlyStats(month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// YearlyStats godoc
// @Summary      Estadísticas financieras de un año
// @Tags         reports
// @Produce      json
// @Param        year  query  int  true  "Año"
// @Success      200  {object}  dto.YearlyStatsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/yearly [get]
func (h *ReportHandler) YearlyStats(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().UTC().Year())
	out, err := h.uc.YearlyStats(year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Shortages godoc
// @Summary      Insumos bajo stock mínimo
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ShortageResponse
// @Router       /api/reports/shortages [get]
func (h *ReportHandler) Shortages(c *fiber.Ctx) error {
	out, err := h.uc.Shortages()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportBalances godoc
// @Summary      Exportar la vista de saldos a Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/reports/balances/export [get]
func (h *ReportHandler) ExportBalances(c *fiber.Ctx) error {
	f, err := h.uc.BalanceWorkbook()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	name := report.BalanceFileName(time.Now().UTC().Format(dto.DateLayout))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return f.Write(c.Response().BodyWriter())
}
