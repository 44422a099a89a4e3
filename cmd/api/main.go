package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/oshxona/kitchen-erp-api/internal/application/alerting"
	"github.com/oshxona/kitchen-erp-api/internal/application/report"
	appstock "github.com/oshxona/kitchen-erp-api/internal/application/stock"
	"github.com/oshxona/kitchen-erp-api/internal/application/usecase"
	"github.com/oshxona/kitchen-erp-api/internal/infrastructure/memory"
	httpRouter "github.com/oshxona/kitchen-erp-api/internal/interfaces/http"
	"github.com/oshxona/kitchen-erp-api/pkg/config"
	"github.com/oshxona/kitchen-erp-api/pkg/idgen"
	"github.com/oshxona/kitchen-erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ids, err := idgen.New(1)
	if err != nil {
		log.Fatal().Err(err).Msg("generador de ids")
	}

	stores := memory.NewStores()
	if cfg.Seed.Enabled {
		if err := stores.Seed(ids); err != nil {
			log.Fatal().Err(err).Msg("carga de datos de ejemplo")
		}
		log.Info().Msg("datos de ejemplo cargados")
	}

	itemUC := usecase.NewItemUseCase(stores.Items)
	stockUC := appstock.NewUseCase(stores.StockTransactions, stores.Items, ids)
	cashUC := usecase.NewCashUseCase(stores.Cash, ids)
	employeeUC := usecase.NewEmployeeUseCase(stores.Employees, stores.Salaries, ids)
	utilityUC := usecase.NewUtilityUseCase(stores.Utilities, ids)
	reportUC := report.NewUseCase(
		stores.Cash, stores.StockTransactions, stores.Salaries, stores.Utilities, stockUC,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Oshxona ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:     itemUC,
		StockUC:    stockUC,
		CashUC:     cashUC,
		EmployeeUC: employeeUC,
		UtilityUC:  utilityUC,
		ReportUC:   reportUC,
	})

	monitor := alerting.NewMonitor(stockUC, log)
	if cfg.Alert.Enabled {
		if err := monitor.Start(cfg.Alert.Cron); err != nil {
			log.Fatal().Err(err).Str("cron", cfg.Alert.Cron).Msg("monitor de stock mínimo")
		}
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	if cfg.Alert.Enabled {
		monitor.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
