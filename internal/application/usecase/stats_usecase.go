package usecase

import (
	"context"

	"github.com/jhoicas/GestionStock-api/internal/application/dto"
	"github.com/jhoicas/GestionStock-api/internal/domain/repository"
)

// StatsUseCase estadísticas agregadas del inventario (solo lectura).
type StatsUseCase struct {
	repo         repository.StatsRepository
	lowThreshold int
}

// NewStatsUseCase construye el caso de uso. lowThreshold es el mismo umbral
// que usa el clasificador para "stock bajo" (default 5).
func NewStatsUseCase(repo repository.StatsRepository, lowThreshold int) *StatsUseCase {
	if lowThreshold <= 0 {
		lowThreshold = 5
	}
	return &StatsUseCase{repo: repo, lowThreshold: lowThreshold}
}

// Get calcula los agregados globales y el desglose por categoría.
func (uc *StatsUseCase) Get(ctx context.Context) (*dto.StatsResponse, error) {
	summary, err := uc.repo.GetInventorySummary(ctx, uc.lowThreshold)
	if err != nil {
		return nil, err
	}
	byCategory, err := uc.repo.GetCategoryBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	categories := make([]dto.CategoryStats, 0, len(byCategory))
	for _, c := range byCategory {
		categories = append(categories, dto.CategoryStats{
			Categorie:     c.Category,
			TotalProduits: c.ProductCount,
			TotalUnites:   c.TotalUnits,
			ValeurStock:   c.StockValue,
		})
	}
	return &dto.StatsResponse{
		TotalProduits: summary.ProductCount,
		TotalUnites:   summary.TotalUnits,
		ValeurStock:   summary.StockValue,
		Ruptures:      summary.Ruptures,
		StockFaible:   summary.LowStock,
		Categories:    categories,
	}, nil
}
