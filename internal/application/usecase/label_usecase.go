package usecase

import (
	"context"

	"github.com/jhoicas/GestionStock-api/internal/domain/entity"
	"github.com/jhoicas/GestionStock-api/internal/domain/repository"
)

// LabelPDFGenerator puerto hacia el generador de la hoja de etiquetas
// (implementado en infrastructure/pdf con Maroto).
type LabelPDFGenerator interface {
	GenerateLabelsPDF(ctx context.Context, products []*entity.Product) ([]byte, error)
}

// LabelUseCase genera la hoja imprimible de etiquetas con código de barras
// para todo el inventario.
type LabelUseCase struct {
	repo      repository.ProductRepository
	generator LabelPDFGenerator
}

// NewLabelUseCase construye el caso de uso.
func NewLabelUseCase(repo repository.ProductRepository, generator LabelPDFGenerator) *LabelUseCase {
	return &LabelUseCase{repo: repo, generator: generator}
}

// PDF genera la hoja de etiquetas de todos los productos.
func (uc *LabelUseCase) PDF(ctx context.Context) ([]byte, error) {
	products, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateLabelsPDF(ctx, products)
}
