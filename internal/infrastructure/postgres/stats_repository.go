package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/GestionStock-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para las estadísticas del inventario.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// GetInventorySummary agregados globales en una sola pasada sobre products.
// lowThreshold es el corte de "stock bajo" (mismo umbral del clasificador).
func (r *StatsRepo) GetInventorySummary(ctx context.Context, lowThreshold int) (*repository.InventorySummary, error) {
	const query = `
	SELECT
	    COUNT(*)                                                        AS product_count,
	    COALESCE(SUM(stock), 0)                                         AS total_units,
	    COALESCE(SUM(price * stock), 0)                                 AS stock_value,
	    COUNT(*) FILTER (WHERE stock = 0)                               AS ruptures,
	    COUNT(*) FILTER (WHERE stock > 0 AND stock <= $1)               AS low_stock
	FROM products`

	var s repository.InventorySummary
	err := r.pool.QueryRow(ctx, query, lowThreshold).Scan(
		&s.ProductCount, &s.TotalUnits, &s.StockValue, &s.Ruptures, &s.LowStock,
	)
	if err != nil {
		return nil, fmt.Errorf("stats.GetInventorySummary: %w", err)
	}
	return &s, nil
}

// GetCategoryBreakdown agrupa productos, unidades y valor por categoría.
// Los productos sin categoría se consolidan en "Autre".
func (r *StatsRepo) GetCategoryBreakdown(ctx context.Context) ([]repository.CategoryStats, error) {
	const query = `
	SELECT
	    COALESCE(NULLIF(category, ''), 'Autre') AS category,
	    COUNT(*)                                AS product_count,
	    COALESCE(SUM(stock), 0)                 AS total_units,
	    COALESCE(SUM(price * stock), 0)         AS stock_value
	FROM products
	GROUP BY COALESCE(NULLIF(category, ''), 'Autre')
	ORDER BY product_count DESC, category`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.GetCategoryBreakdown: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryStats
	for rows.Next() {
		var row repository.CategoryStats
		if err := rows.Scan(&row.Category, &row.ProductCount, &row.TotalUnits, &row.StockValue); err != nil {
			return nil, fmt.Errorf("stats: scan category row: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
