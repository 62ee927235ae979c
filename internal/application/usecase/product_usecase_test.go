package usecase_test

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/GestionStock-api/internal/application/dto"
	"github.com/jhoicas/GestionStock-api/internal/application/usecase"
	"github.com/jhoicas/GestionStock-api/internal/domain"
	"github.com/jhoicas/GestionStock-api/internal/domain/entity"
	"github.com/jhoicas/GestionStock-api/internal/domain/repository"
	"github.com/jhoicas/GestionStock-api/internal/domain/stock"
)

// fakeProductRepo repositorio de productos en memoria para los tests de usecase.
type fakeProductRepo struct {
	byID map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.byID {
		if existing.Barcode == p.Barcode {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	stored, ok := r.byID[p.ID]
	if !ok {
		return nil
	}
	// Update nunca toca Stock (contrato del puerto)
	stockActual := stored.Stock
	cp := *p
	cp.Stock = stockActual
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) CommitStock(id string, expectedStock, newStock int) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock != expectedStock {
		return domain.ErrStockConflict
	}
	p.Stock = newStock
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	all, _ := r.ListAll()
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	var all []*entity.Product
	for _, p := range r.byID {
		cp := *p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Category != all[j].Category {
			return all[i].Category < all[j].Category
		}
		return all[i].Name < all[j].Name
	})
	return all, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func newProductUC(repo repository.ProductRepository) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(repo, stock.NewClassifier(2, 5))
}

func TestProductCreate(t *testing.T) {
	repo := newFakeProductRepo()
	uc := newProductUC(repo)

	out, err := uc.Create(dto.CreateProductRequest{
		Barcode:  "3401020304056",
		Name:     "Écran iPhone 12",
		Price:    decimal.NewFromFloat(49.90),
		Stock:    8,
		Category: "Écran",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "3401020304056", out.Barcode)
	assert.Equal(t, 8, out.Stock)
	assert.Equal(t, "ok", out.Statut)
}

func TestProductCreate_BarcodeDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := newProductUC(repo)

	_, err := uc.Create(dto.CreateProductRequest{Barcode: "111", Name: "Coque A"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Barcode: "111", Name: "Coque B"})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_Invalido(t *testing.T) {
	uc := newProductUC(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Barcode: "", Name: "X"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Barcode: "222", Name: "X", Stock: -1})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Barcode: "222", Name: "X", Price: decimal.NewFromInt(-5)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_NoTocaStockNiBarcode(t *testing.T) {
	repo := newFakeProductRepo()
	uc := newProductUC(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Barcode: "333", Name: "Batterie", Price: decimal.NewFromInt(20), Stock: 4,
	})
	require.NoError(t, err)

	nuevoNombre := "Batterie Pro"
	nuevoPrecio := decimal.NewFromFloat(24.90)
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &nuevoNombre, Price: &nuevoPrecio})
	require.NoError(t, err)
	assert.Equal(t, "Batterie Pro", out.Name)
	assert.True(t, nuevoPrecio.Equal(out.Price))
	assert.Equal(t, "333", out.Barcode, "barcode inmutable")
	assert.Equal(t, 4, out.Stock, "update no toca el stock")
}

func TestProductUpdate_NoExiste(t *testing.T) {
	uc := newProductUC(newFakeProductRepo())

	nombre := "X"
	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductList_Statut(t *testing.T) {
	repo := newFakeProductRepo()
	uc := newProductUC(repo)

	_, err := uc.Create(dto.CreateProductRequest{Barcode: "a1", Name: "A", Stock: 0})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{Barcode: "a2", Name: "B", Stock: 2})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{Barcode: "a3", Name: "C", Stock: 9})
	require.NoError(t, err)

	out, err := uc.List(10, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 3)

	statuts := map[string]string{}
	for _, item := range out.Items {
		statuts[item.Name] = item.Statut
	}
	assert.Equal(t, "rupture", statuts["A"])
	assert.Equal(t, "critical", statuts["B"])
	assert.Equal(t, "ok", statuts["C"])
}
