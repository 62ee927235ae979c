package dto

import "github.com/shopspring/decimal"

// StatsResponse estadísticas agregadas del inventario (dashboard).
type StatsResponse struct {
	TotalProduits int               `json:"total_produits"`
	TotalUnites   int               `json:"total_unites"`
	ValeurStock   decimal.Decimal   `json:"valeur_stock"`
	Ruptures      int               `json:"ruptures"`
	StockFaible   int               `json:"stock_faible"`
	Categories    []CategoryStats   `json:"categories"`
}

// CategoryStats desglose por categoría.
type CategoryStats struct {
	Categorie     string          `json:"categorie"`
	TotalProduits int             `json:"total_produits"`
	TotalUnites   int             `json:"total_unites"`
	ValeurStock   decimal.Decimal `json:"valeur_stock"`
}
