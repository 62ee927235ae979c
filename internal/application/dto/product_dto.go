package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Barcode  string          `json:"barcode" validate:"required,min=1,max=64"`
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock" validate:"min=0"`
	Category string          `json:"category"`
}

// UpdateProductRequest entrada para actualizar un producto.
// ID y Barcode son inmutables; Stock no se toca por aquí (se maneja vía el
// ledger de ajustes).
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Barcode   string          `json:"barcode"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Statut    string          `json:"statut"` // rupture, critical, low, ok
	Category  string          `json:"category,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
