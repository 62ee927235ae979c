package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// InventorySummary agregados globales del inventario para el dashboard.
type InventorySummary struct {
	ProductCount int
	TotalUnits   int
	StockValue   decimal.Decimal // SUM(price * stock)
	Ruptures     int             // stock = 0
	LowStock     int             // 0 < stock <= umbral bajo
}

// CategoryStats agregados por categoría.
type CategoryStats struct {
	Category     string
	ProductCount int
	TotalUnits   int
	StockValue   decimal.Decimal
}

// StatsRepository consultas de solo lectura para estadísticas del inventario.
type StatsRepository interface {
	// GetInventorySummary calcula los agregados globales; lowThreshold define
	// el corte de "stock bajo" (mismo umbral que usa el clasificador).
	GetInventorySummary(ctx context.Context, lowThreshold int) (*InventorySummary, error)
	GetCategoryBreakdown(ctx context.Context) ([]CategoryStats, error)
}
