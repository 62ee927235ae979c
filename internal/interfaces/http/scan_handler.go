package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/GestionStock-api/internal/application/dto"
	"github.com/jhoicas/GestionStock-api/internal/application/scan"
	"github.com/jhoicas/GestionStock-api/internal/domain"
	"github.com/jhoicas/GestionStock-api/internal/domain/stock"
)

// ScanHandler maneja el endpoint del escáner de códigos de barras.
type ScanHandler struct {
	lookup *scan.LookupService
}

// NewScanHandler construye el handler.
func NewScanHandler(lookup *scan.LookupService) *ScanHandler {
	return &ScanHandler{lookup: lookup}
}

// Scan godoc
// @Summary      Escanear un código de barras
// @Description  Sin action devuelve el producto y pregunta la acción; con action (add/remove/set) aplica el ajuste de stock.
// @Tags         scan
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "code, action (opcional), quantite (opcional, default 1)"
// @Success      200   {object}  dto.ScanCommitResponse
// @Failure      400   {object}  dto.ScanFailureResponse
// @Failure      404   {object}  dto.ScanFailureResponse
// @Failure      409   {object}  dto.ScanFailureResponse
// @Router       /api/scan [post]
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ScanFailureResponse{Message: "cuerpo inválido"})
	}

	res, err := h.lookup.Scan(c.Context(), scan.Request{
		Barcode:  in.Code,
		Action:   in.Action,
		Quantity: in.Quantite,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Reintentos de CAS agotados: demasiados escaneos concurrentes
			// sobre el mismo producto.
			return c.Status(fiber.StatusConflict).JSON(dto.ScanFailureResponse{
				Message: "Conflit : trop de scans simultanés, réessayez",
			})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "STORAGE", Message: err.Error(),
		})
	}

	switch res.Outcome {
	case scan.OutcomeNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ScanFailureResponse{
			Message: fmt.Sprintf("Produit non trouvé: %s", res.Barcode),
		})

	case scan.OutcomeAwaitingAction:
		p := res.Product
		return c.JSON(dto.ScanAskActionResponse{
			Success:   true,
			AskAction: true,
			Produit: dto.ScanProductSnapshot{
				ID:         p.ID,
				Nom:        p.Name,
				CodeBarres: p.Barcode,
				Prix:       p.Price,
				Stock:      p.Stock,
				Categorie:  p.Category,
				Statut:     string(res.Tier),
			},
			Message: fmt.Sprintf("Produit trouvé: %s", p.Name),
		})

	case scan.OutcomeRejected:
		return h.rejected(c, res)

	default: // OutcomeCommitted
		adj := res.Adjustment
		return c.JSON(dto.ScanCommitResponse{
			Success:        true,
			Message:        commitMessage(res),
			Produit:        res.Product.Name,
			Action:         string(adj.Action),
			Quantite:       adj.Quantity,
			StockPrecedent: adj.PreviousStock,
			NouveauStock:   adj.NewStock,
			Statut:         string(res.Tier),
		})
	}
}

func (h *ScanHandler) rejected(c *fiber.Ctx, res *scan.Result) error {
	switch {
	case errors.Is(res.Reason, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ScanFailureResponse{
			Message: fmt.Sprintf("Stock insuffisant ! %s : stock actuel %d, demandé %d",
				res.Product.Name, res.Product.Stock, res.Requested),
		})
	case errors.Is(res.Reason, domain.ErrInvalidAction):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ScanFailureResponse{
			Message: "Action non valide",
		})
	default: // domain.ErrInvalidInput: código vacío o cantidad negativa
		return c.Status(fiber.StatusBadRequest).JSON(dto.ScanFailureResponse{
			Message: "Requête invalide : code vide ou quantité négative",
		})
	}
}

func commitMessage(res *scan.Result) string {
	adj := res.Adjustment
	name := res.Product.Name
	switch adj.Action {
	case stock.ActionAdd:
		return fmt.Sprintf("%s : ajouté %d unité(s)", name, adj.Quantity)
	case stock.ActionRemove:
		if res.Tier == stock.TierRupture {
			return fmt.Sprintf("%s : retiré %d unité(s), RUPTURE DE STOCK !", name, adj.Quantity)
		}
		return fmt.Sprintf("%s : retiré %d unité(s)", name, adj.Quantity)
	default: // set
		return fmt.Sprintf("%s : stock défini à %d", name, adj.NewStock)
	}
}
