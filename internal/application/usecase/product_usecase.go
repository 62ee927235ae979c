package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/GestionStock-api/internal/application/dto"
	"github.com/jhoicas/GestionStock-api/internal/domain"
	"github.com/jhoicas/GestionStock-api/internal/domain/entity"
	"github.com/jhoicas/GestionStock-api/internal/domain/repository"
	"github.com/jhoicas/GestionStock-api/internal/domain/stock"
)

// ProductUseCase casos de uso CRUD para productos. El campo Stock solo cambia
// por aquí en la creación (stock inicial); después, únicamente vía el ledger.
type ProductUseCase struct {
	repo       repository.ProductRepository
	classifier stock.Classifier
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, classifier stock.Classifier) *ProductUseCase {
	return &ProductUseCase{repo: repo, classifier: classifier}
}

// Create crea un nuevo producto con su stock inicial. El código de barras es
// único: un duplicado se rechaza con ErrDuplicate.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	barcode := strings.TrimSpace(in.Barcode)
	name := strings.TrimSpace(in.Name)
	if barcode == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Barcode:   barcode,
		Name:      name,
		Price:     in.Price,
		Stock:     in.Stock,
		Category:  strings.TrimSpace(in.Category),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product), nil
}

// Update actualiza nombre, precio y categoría. ID y Barcode son inmutables;
// Stock se maneja vía el ledger de ajustes, nunca por aquí.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *uc.toResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Barcode:   p.Barcode,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		Statut:    string(uc.classifier.Classify(p.Stock)),
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
