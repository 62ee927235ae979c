package dto

import "github.com/shopspring/decimal"

// ScanRequest entrada del endpoint de escaneo. Los nombres de campo son los
// que ya usa el front del escáner (script.js): code, action, quantite.
// Action vacío = solo consultar (el front pregunta la acción después).
// Quantite nil = 1, el default histórico del escáner.
type ScanRequest struct {
	Code     string `json:"code"`
	Action   string `json:"action"`
	Quantite *int   `json:"quantite"`
}

// ScanProductSnapshot foto del producto que el front usa para pedir la acción.
type ScanProductSnapshot struct {
	ID         string          `json:"id"`
	Nom        string          `json:"nom"`
	CodeBarres string          `json:"code_barres"`
	Prix       decimal.Decimal `json:"prix"`
	Stock      int             `json:"stock"`
	Categorie  string          `json:"categorie,omitempty"`
	Statut     string          `json:"statut"`
}

// ScanAskActionResponse respuesta cuando el código existe pero no se indicó
// acción: el front muestra el producto y pregunta qué hacer. Sin mutación.
type ScanAskActionResponse struct {
	Success   bool                `json:"success"`
	AskAction bool                `json:"ask_action"`
	Produit   ScanProductSnapshot `json:"produit"`
	Message   string              `json:"message"`
}

// ScanCommitResponse respuesta de un ajuste confirmado.
type ScanCommitResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	Produit        string `json:"produit"` // nombre, compat con el front
	Action         string `json:"action"`
	Quantite       int    `json:"quantite"`
	StockPrecedent int    `json:"stock_precedent"`
	NouveauStock   int    `json:"nouveau_stock"`
	Statut         string `json:"statut"`
}

// ScanFailureResponse rechazo de negocio (no encontrado, stock insuficiente,
// acción inválida). Nunca es un 5xx: el front lo muestra tal cual.
type ScanFailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
