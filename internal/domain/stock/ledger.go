// Package stock contiene la lógica de dominio del inventario: el ledger de
// ajustes (validación add/remove/set) y el clasificador de niveles de stock.
// Ambos son puros: no tocan la base de datos, lo que los hace testeables
// de forma aislada.
package stock

import (
	"github.com/jhoicas/GestionStock-api/internal/domain"
	"github.com/jhoicas/GestionStock-api/internal/domain/entity"
)

// Action es la enumeración cerrada de ajustes de stock.
type Action string

const (
	ActionAdd    Action = "add"    // suma unidades
	ActionRemove Action = "remove" // resta unidades (valida stock suficiente)
	ActionSet    Action = "set"    // fija el stock en un valor absoluto
)

// ParseAction convierte el string del request en una Action.
// Cualquier valor fuera de {add, remove, set} es ErrInvalidAction.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionAdd, ActionRemove, ActionSet:
		return Action(s), nil
	default:
		return "", domain.ErrInvalidAction
	}
}

// Adjustment es el resultado de un ajuste validado, listo para commitear.
type Adjustment struct {
	Action        Action
	Quantity      int
	PreviousStock int
	NewStock      int
}

// IsNoop indica que el ajuste no cambia el stock (cantidad cero en add/remove,
// o set al valor actual). El caller puede saltarse el commit.
func (a Adjustment) IsNoop() bool {
	return a.PreviousStock == a.NewStock
}

// Apply valida y calcula un ajuste de stock sin persistirlo ni mutar product.
//
//   - add:    NewStock = Stock + quantity (siempre válido)
//   - remove: NewStock = Stock - quantity; ErrInsufficientStock si quantity > Stock
//   - set:    NewStock = quantity
//
// quantity debe ser >= 0; cero es legal y produce un no-op exitoso.
func Apply(product *entity.Product, action Action, quantity int) (Adjustment, error) {
	if quantity < 0 {
		return Adjustment{}, domain.ErrInvalidInput
	}
	adj := Adjustment{
		Action:        action,
		Quantity:      quantity,
		PreviousStock: product.Stock,
	}
	switch action {
	case ActionAdd:
		adj.NewStock = product.Stock + quantity
	case ActionRemove:
		if quantity > product.Stock {
			return Adjustment{}, domain.ErrInsufficientStock
		}
		adj.NewStock = product.Stock - quantity
	case ActionSet:
		adj.NewStock = quantity
	default:
		return Adjustment{}, domain.ErrInvalidAction
	}
	return adj, nil
}
