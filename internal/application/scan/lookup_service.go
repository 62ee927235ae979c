// Package scan implementa el flujo del escáner: resolver un código de barras,
// aplicar (o no) un ajuste de stock y clasificar el resultado.
//
// Máquina de estados de una petición:
//
//	Resolving -> NotFound                       (código sin producto)
//	Resolving -> AwaitingAction                 (sin acción; devuelve snapshot)
//	Resolving -> Applying -> Rejected           (ledger rechaza; sin mutación)
//	Resolving -> Applying -> Committed          (CAS + diario en una tx)
//
// Todo estado terminal distinto de Committed deja la BD intacta.
package scan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/GestionStock-api/internal/domain"
	"github.com/jhoicas/GestionStock-api/internal/domain/entity"
	"github.com/jhoicas/GestionStock-api/internal/domain/repository"
	"github.com/jhoicas/GestionStock-api/internal/domain/stock"
)

// Outcome estado terminal de un escaneo.
type Outcome int

const (
	OutcomeNotFound Outcome = iota
	OutcomeAwaitingAction
	OutcomeRejected
	OutcomeCommitted
)

// Request un escaneo entrante. Action vacío = solo consultar.
// Quantity nil = 1 (default histórico del escáner).
type Request struct {
	Barcode  string
	Action   string
	Quantity *int
}

// Result resultado terminal de un escaneo. Reason lleva el sentinel de dominio
// cuando Outcome es Rejected (stock insuficiente, acción inválida, cantidad
// negativa); los fallos de almacenamiento NO llegan aquí, se devuelven como
// error del método Scan.
type Result struct {
	Outcome    Outcome
	Barcode    string
	Product    *entity.Product
	Adjustment stock.Adjustment
	// Requested cantidad solicitada (para el mensaje de rechazo).
	Requested int
	Tier      stock.Tier
	Reason    error
}

// LookupService orquesta ProductRepository + ledger + clasificador para el
// flujo de escaneo. El commit usa CAS (CommitStock con stock esperado) y
// reintenta el ciclo completo ante conflicto, hasta maxAttempts.
type LookupService struct {
	products    repository.ProductRepository
	tx          TxRunner
	classifier  stock.Classifier
	maxAttempts int
}

// NewLookupService construye el servicio. maxAttempts <= 0 cae a 3.
func NewLookupService(
	products repository.ProductRepository,
	tx TxRunner,
	classifier stock.Classifier,
	maxAttempts int,
) *LookupService {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &LookupService{
		products:    products,
		tx:          tx,
		classifier:  classifier,
		maxAttempts: maxAttempts,
	}
}

// Scan resuelve el código y, si hay acción, aplica y commitea el ajuste.
// Los rechazos de negocio viajan en Result; el error de retorno solo señala
// un fallo de almacenamiento o el agotamiento de reintentos de CAS.
func (s *LookupService) Scan(ctx context.Context, req Request) (*Result, error) {
	barcode := strings.TrimSpace(req.Barcode)
	if barcode == "" {
		return &Result{Outcome: OutcomeRejected, Reason: domain.ErrInvalidInput}, nil
	}

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		res, err := s.scanOnce(ctx, barcode, req)
		if err != nil {
			if errors.Is(err, domain.ErrStockConflict) {
				// Otro proceso movió el stock entre la lectura y el commit:
				// reintentar el ciclo completo con una lectura fresca.
				continue
			}
			return nil, err
		}
		return res, nil
	}
	return nil, fmt.Errorf("commit de stock tras %d intentos: %w", s.maxAttempts, domain.ErrConflict)
}

// scanOnce ejecuta un ciclo leer -> aplicar -> commitear. Devuelve
// ErrStockConflict (envuelto) cuando el CAS pierde la carrera.
func (s *LookupService) scanOnce(ctx context.Context, barcode string, req Request) (*Result, error) {
	product, err := s.products.GetByBarcode(barcode)
	if err != nil {
		return nil, fmt.Errorf("resolver código %s: %w", barcode, err)
	}
	if product == nil {
		return &Result{Outcome: OutcomeNotFound, Barcode: barcode}, nil
	}

	if strings.TrimSpace(req.Action) == "" {
		// Fase "pedir acción": el escaneo es idempotente hasta que llegue una.
		return &Result{
			Outcome: OutcomeAwaitingAction,
			Barcode: barcode,
			Product: product,
			Tier:    s.classifier.Classify(product.Stock),
		}, nil
	}

	action, err := stock.ParseAction(strings.TrimSpace(req.Action))
	if err != nil {
		return &Result{Outcome: OutcomeRejected, Barcode: barcode, Product: product, Reason: err}, nil
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	adjustment, err := stock.Apply(product, action, quantity)
	if err != nil {
		return &Result{Outcome: OutcomeRejected, Barcode: barcode, Product: product, Requested: quantity, Reason: err}, nil
	}

	if !adjustment.IsNoop() {
		if err := s.commit(ctx, product, adjustment); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Borrado concurrente entre la lectura y el commit.
				return &Result{Outcome: OutcomeNotFound, Barcode: barcode}, nil
			}
			return nil, err
		}
		product.Stock = adjustment.NewStock
	}

	return &Result{
		Outcome:    OutcomeCommitted,
		Barcode:    barcode,
		Product:    product,
		Adjustment: adjustment,
		Tier:       s.classifier.Classify(adjustment.NewStock),
	}, nil
}

// commit escribe el nuevo stock (CAS sobre el valor leído) y el asiento del
// diario en la misma transacción.
func (s *LookupService) commit(ctx context.Context, product *entity.Product, adj stock.Adjustment) error {
	return s.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := productRepo.CommitStock(product.ID, adj.PreviousStock, adj.NewStock); err != nil {
			return err
		}
		now := time.Now()
		return movementRepo.Create(&entity.StockMovement{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			Barcode:       product.Barcode,
			Action:        string(adj.Action),
			Quantity:      adj.Quantity,
			PreviousStock: adj.PreviousStock,
			NewStock:      adj.NewStock,
			Source:        entity.MovementSourceScan,
			CreatedAt:     now,
		})
	})
}
