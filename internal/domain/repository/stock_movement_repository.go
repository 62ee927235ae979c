package repository

import "github.com/jhoicas/GestionStock-api/internal/domain/entity"

// StockMovementRepository define el puerto del diario de ajustes de stock.
// Usado dentro de la misma transacción que CommitStock para que el stock y su
// auditoría nunca diverjan.
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	List(limit, offset int) ([]*entity.StockMovement, error)
}
