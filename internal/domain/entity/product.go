package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una pieza o accesorio del inventario del taller.
// Barcode es la llave de búsqueda del escáner (única); ID y Barcode son
// inmutables tras la creación. Stock nunca baja de cero: el único camino de
// escritura es CommitStock, vía el ledger de ajustes.
type Product struct {
	ID        string
	Barcode   string // código de barras EAN/Code128, único
	Name      string
	Price     decimal.Decimal // precio unitario de venta
	Stock     int
	Category  string // etiqueta opcional (Écran, Batterie, Coque, ...)
	CreatedAt time.Time
	UpdatedAt time.Time
}
