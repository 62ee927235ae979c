package entity

import "time"

// Orígenes de un movimiento de stock.
const (
	MovementSourceScan   = "scan"   // escáner de código de barras
	MovementSourceManual = "manual" // ajuste manual desde la UI
)

// StockMovement es el registro de auditoría de un ajuste de stock:
// qué acción se aplicó, cuánto, y el antes/después del contador.
type StockMovement struct {
	ID            string
	ProductID     string
	Barcode       string
	Action        string // add, remove, set
	Quantity      int
	PreviousStock int
	NewStock      int
	Source        string
	CreatedAt     time.Time
}
