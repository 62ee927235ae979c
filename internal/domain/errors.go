package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidAction     = errors.New("acción no válida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrStockConflict indica que el commit optimista de stock falló: otro
	// proceso modificó la fila entre la lectura y el UPDATE condicional.
	// El caller debe reintentar el ciclo completo (leer -> aplicar -> commit).
	ErrStockConflict = errors.New("conflicto de stock")
	ErrConflict      = errors.New("conflicto con el estado actual")
)
