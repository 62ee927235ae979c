package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/GestionStock-api/internal/application/scan"
	"github.com/jhoicas/GestionStock-api/internal/application/usecase"
	"github.com/jhoicas/GestionStock-api/internal/infrastructure/barcode"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	StatsUC    *usecase.StatsUseCase
	MovementUC *usecase.MovementUseCase
	ExportUC   *usecase.ExportUseCase
	LabelUC    *usecase.LabelUseCase
	Lookup     *scan.LookupService
	Renderer   *barcode.Code128Renderer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Scanner
	scanHandler := NewScanHandler(deps.Lookup)
	api.Post("/scan", scanHandler.Scan)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	barcodeHandler := NewBarcodeHandler(deps.ProductUC, deps.Renderer)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/barcode.png", barcodeHandler.PNG)

	// Stats + diario de movimientos
	statsHandler := NewStatsHandler(deps.StatsUC)
	api.Get("/stats", statsHandler.Get)
	movementHandler := NewMovementHandler(deps.MovementUC)
	api.Get("/movements", movementHandler.List)

	// Exports (descargas directas, fuera de /api)
	exportHandler := NewExportHandler(deps.ExportUC, deps.LabelUC)
	app.Get("/export", exportHandler.CSV)
	app.Get("/export/labels.pdf", exportHandler.Labels)
}
