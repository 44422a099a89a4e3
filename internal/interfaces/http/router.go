package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oshxona/kitchen-erp-api/internal/application/report"
	"github.com/oshxona/kitchen-erp-api/internal/application/stock"
	"github.com/oshxona/kitchen-erp-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC     *usecase.ItemUseCase
	StockUC    *stock.UseCase
	CashUC     *usecase.CashUseCase
	EmployeeUC *usecase.EmployeeUseCase
	UtilityUC  *usecase.UtilityUseCase
	ReportUC   *report.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de insumos
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Libro de stock y saldos derivados
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/transactions", stockHandler.List)
	stockGroup.Delete("/transactions/:id", stockHandler.Delete)
	stockGroup.Post("/in", stockHandler.RecordIn)
	stockGroup.Post("/out", stockHandler.RecordOut)
	stockGroup.Get("/balances", stockHandler.Balances)
	stockGroup.Get("/balances/:item_id", stockHandler.Balance)

	// Libro de caja
	cash := api.Group("/cash")
	cashHandler := NewCashHandler(deps.CashUC)
	cash.Post("/", cashHandler.Create)
	cash.Get("/", cashHandler.List)
	cash.Put("/:id", cashHandler.Update)
	cash.Delete("/:id", cashHandler.Delete)

	// Empleados y salarios
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees := api.Group("/employees")
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	salaries := api.Group("/salaries")
	salaries.Post("/", employeeHandler.PaySalary)
	salaries.Get("/", employeeHandler.ListSalaries)
	salaries.Delete("/:id", employeeHandler.DeleteSalary)

	// Servicios del local
	utilities := api.Group("/utilities")
	utilityHandler := NewUtilityHandler(deps.UtilityUC)
	utilities.Post("/", utilityHandler.Create)
	utilities.Get("/", utilityHandler.List)
	utilities.Put("/:id", utilityHandler.Update)
	utilities.Delete("/:id", utilityHandler.Delete)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/monthly", reportHandler.MonthlyStats)
	reports.Get("/yearly", reportHandler.YearlyStats)
	reports.Get("/shortages", reportHandler.Shortages)
	reports.Get("/balances/export", reportHandler.ExportBalances)
}
