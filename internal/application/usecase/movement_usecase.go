package usecase

import (
	"github.com/jhoicas/GestionStock-api/internal/application/dto"
	"github.com/jhoicas/GestionStock-api/internal/domain/repository"
)

// MovementUseCase consulta del diario de ajustes de stock.
type MovementUseCase struct {
	repo repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List lista los movimientos más recientes con paginación.
func (uc *MovementUseCase) List(limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:            m.ID,
			ProductID:     m.ProductID,
			Barcode:       m.Barcode,
			Action:        m.Action,
			Quantity:      m.Quantity,
			PreviousStock: m.PreviousStock,
			NewStock:      m.NewStock,
			Source:        m.Source,
			CreatedAt:     m.CreatedAt,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
