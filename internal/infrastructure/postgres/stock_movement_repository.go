package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/GestionStock-api/internal/domain/entity"
	"github.com/jhoicas/GestionStock-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del diario de ajustes sobre PostgreSQL
// (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create guarda un asiento del diario.
func (r *StockMovementRepo) Create(mov *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, barcode, action, quantity, previous_stock, new_stock, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.ProductID, mov.Barcode, mov.Action, mov.Quantity,
		mov.PreviousStock, mov.NewStock, mov.Source, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List lista los movimientos más recientes con paginación.
func (r *StockMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, barcode, action, quantity, previous_stock, new_stock, source, created_at
		FROM stock_movements ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Barcode, &m.Action, &m.Quantity,
			&m.PreviousStock, &m.NewStock, &m.Source, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
