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
	"github.com/jhoicas/GestionStock-api/internal/application/scan"
	"github.com/jhoicas/GestionStock-api/internal/application/usecase"
	"github.com/jhoicas/GestionStock-api/internal/domain/stock"
	infrabarcode "github.com/jhoicas/GestionStock-api/internal/infrastructure/barcode"
	infrapdf "github.com/jhoicas/GestionStock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/GestionStock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/GestionStock-api/internal/interfaces/http"
	"github.com/jhoicas/GestionStock-api/pkg/config"
	"github.com/jhoicas/GestionStock-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	classifier := stock.NewClassifier(
		cfg.Stock.CriticalThreshold,
		cfg.Stock.LowThreshold,
	)

	productUC := usecase.NewProductUseCase(productRepo, classifier)
	statsUC := usecase.NewStatsUseCase(statsRepo, cfg.Stock.LowThreshold)
	movementUC := usecase.NewMovementUseCase(movementRepo)
	exportUC := usecase.NewExportUseCase(productRepo)

	labelGenerator := infrapdf.NewMarotoLabelGenerator()
	labelUC := usecase.NewLabelUseCase(productRepo, labelGenerator)

	renderer := infrabarcode.NewCode128Renderer(
		infrabarcode.DefaultWidth,
		infrabarcode.DefaultHeight,
	)

	lookup := scan.NewLookupService(
		productRepo, txRunner, classifier, cfg.Stock.ScanMaxAttempts,
	)
	log.Component("scan").Info().
		Int("max_attempts", cfg.Stock.ScanMaxAttempts).
		Int("umbral_critico", cfg.Stock.CriticalThreshold).
		Int("umbral_bajo", cfg.Stock.LowThreshold).
		Msg("servicio de escaneo listo")

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
		Title:    "GestionStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		StatsUC:    statsUC,
		MovementUC: movementUC,
		ExportUC:   exportUC,
		LabelUC:    labelUC,
		Lookup:     lookup,
		Renderer:   renderer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
