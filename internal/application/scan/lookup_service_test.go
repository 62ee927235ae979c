package scan_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/GestionStock-api/internal/application/scan"
	"github.com/jhoicas/GestionStock-api/internal/domain"
	"github.com/jhoicas/GestionStock-api/internal/domain/entity"
	"github.com/jhoicas/GestionStock-api/internal/domain/repository"
	"github.com/jhoicas/GestionStock-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: mismo contrato que los adaptadores de Postgres, incluido
// el CAS de CommitStock.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products  map[string]*entity.Product // por ID
	movements []*entity.StockMovement

	// conflictsLeft fuerza ErrStockConflict en los próximos N CommitStock,
	// simulando un escáner concurrente.
	conflictsLeft int
	commitCalls   int
}

var _ repository.ProductRepository = (*fakeStore)(nil)
var _ scan.TxRunner = (*fakeStore)(nil)

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{products: map[string]*entity.Product{}}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *fakeStore) Create(p *entity.Product) error {
	for _, existing := range s.products {
		if existing.Barcode == p.Barcode {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	s.products[p.ID] = &cp
	return nil
}

func (s *fakeStore) GetByID(id string) (*entity.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *fakeStore) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range s.products {
		if p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) Update(p *entity.Product) error { return nil }

func (s *fakeStore) CommitStock(id string, expectedStock, newStock int) error {
	s.commitCalls++
	p, ok := s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if s.conflictsLeft > 0 {
		s.conflictsLeft--
		// Simula la carrera: otro proceso ya restó una unidad.
		if p.Stock > 0 {
			p.Stock--
		}
		return domain.ErrStockConflict
	}
	if p.Stock != expectedStock {
		return domain.ErrStockConflict
	}
	p.Stock = newStock
	return nil
}

func (s *fakeStore) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (s *fakeStore) ListAll() ([]*entity.Product, error)               { return nil, nil }
func (s *fakeStore) Delete(id string) error                            { return nil }

func (s *fakeStore) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return fn(s, movementRepoFunc{s})
}

// movementRepoFunc adapta fakeStore al puerto de movimientos sin chocar con
// los métodos Create/List de productos.
type movementRepoFunc struct{ s *fakeStore }

var _ repository.StockMovementRepository = movementRepoFunc{}

func (m movementRepoFunc) Create(mov *entity.StockMovement) error {
	m.s.movements = append(m.s.movements, mov)
	return nil
}

func (m movementRepoFunc) List(limit, offset int) ([]*entity.StockMovement, error) {
	return m.s.movements, nil
}

// ──────────────────────────────────────────────────────────────────────────────

func newService(store *fakeStore) *scan.LookupService {
	cl := stock.NewClassifier(stock.DefaultCriticalThreshold, stock.DefaultLowThreshold)
	return scan.NewLookupService(store, store, cl, 3)
}

func intPtr(n int) *int { return &n }

func seed(barcode string, stockInicial int) *entity.Product {
	return &entity.Product{
		ID:      "11111111-1111-1111-1111-111111111111",
		Barcode: barcode,
		Name:    "Batterie Samsung A52",
		Price:   decimal.NewFromFloat(19.90),
		Stock:   stockInicial,
	}
}

func TestScan_CodigoDesconocido(t *testing.T) {
	store := newFakeStore(seed("123", 5))
	svc := newService(store)

	res, err := svc.Scan(context.Background(), scan.Request{Barcode: "XYZ"})
	require.NoError(t, err)
	assert.Equal(t, scan.OutcomeNotFound, res.Outcome)
	assert.Equal(t, "XYZ", res.Barcode)
	// Sin mutación alguna
	p, _ := store.GetByBarcode("123")
	assert.Equal(t, 5, p.Stock)
	assert.Empty(t, store.movements)
}

func TestScan_SinAccionDevuelveSnapshot(t *testing.T) {
	store := newFakeStore(seed("123", 5))
	svc := newService(store)

	res, err := svc.Scan(context.Background(), scan.Request{Barcode: "123"})
	require.NoError(t, err)
	assert.Equal(t, scan.OutcomeAwaitingAction, res.Outcome)
	require.NotNil(t, res.Product)
	assert.Equal(t, "Batterie Samsung A52", res.Product.Name)
	assert.Equal(t, 5, res.Product.Stock)
	assert.Equal(t, stock.TierLow, res.Tier)
	// Idempotente: no escribe nada
	assert.Zero(t, store.commitCalls)
	assert.Empty(t, store.movements)
}

func TestScan_RemoveCommitea(t *testing.T) {
	store := newFakeStore(seed("123", 5))
	svc := newService(store)

	res, err := svc.Scan(context.Background(), scan.Request{
		Barcode: "123", Action: "remove", Quantity: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, scan.OutcomeCommitted, res.Outcome)
	assert.Equal(t, 5, res.Adjustment.PreviousStock)
	assert.Equal(t, 2, res.Adjustment.NewStock)
	assert.Equal(t, stock.TierCritical, res.Tier)

	p, _ := store.GetByBarcode("123")
	assert.Equal(t, 2, p.Stock)
	require.Len(t, store.movements, 1)
	assert.Equal(t, "remove", store.movements[0].Action)
	assert.Equal(t, entity.MovementSourceScan, store.movements[0].Source)
}

func TestScan_SegundoRemoveInsuficiente(t *testing.T) {
	// Tras bajar 5 -> 2, un segundo remove
	// de 3 no puede dejar el stock en -1: se rechaza con el stock actual.
	store := newFakeStore(seed("123", 5))
	svc := newService(store)

	_, err := svc.Scan(context.Background(), scan.Request{Barcode: "123", Action: "remove", Quantity: intPtr(3)})
	require.NoError(t, err)

	res, err := svc.Scan(context.Background(), scan.Request{Barcode: "123", Action: "remove", Quantity: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, scan.OutcomeRejected, res.Outcome)
	require.ErrorIs(t, res.Reason, domain.ErrInsufficientStock)
	assert.Equal(t, 2, res.Product.Stock)

	p, _ := store.GetByBarcode("123")
	assert.Equal(t, 2, p.Stock, "el rechazo no muta el stock")
	assert.Len(t, store.movements, 1, "solo el primer ajuste dejó asiento")
}

func TestScan_AccionInvalida(t *testing.T) {
	store := newFakeStore(seed("123", 5))
	svc := newService(store)

	res, err := svc.Scan(context.Background(), scan.Request{Barcode: "123", Action: "definir"})
	require.NoError(t, err)
	assert.Equal(t, scan.OutcomeRejected, res.Outcome)
	require.ErrorIs(t, res.Reason, domain.ErrInvalidAction)
	assert.Zero(t, store.commitCalls)
}

func TestScan_CantidadPorDefectoEsUno(t *testing.T) {
	store := newFakeStore(seed("123", 5))
	svc := newService(store)

	res, err := svc.Scan(context.Background(), scan.Request{Barcode: "123", Action: "remove"})
	require.NoError(t, err)
	assert.Equal(t, scan.OutcomeCommitted, res.Outcome)
	assert.Equal(t, 4, res.Adjustment.NewStock)
}

func TestScan_CantidadCeroNoEscribe(t *testing.T) {
	store := newFakeStore(seed("123", 5))
	svc := newService(store)

	res, err := svc.Scan(context.Background(), scan.Request{Barcode: "123", Action: "add", Quantity: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, scan.OutcomeCommitted, res.Outcome)
	assert.True(t, res.Adjustment.IsNoop())
	assert.Zero(t, store.commitCalls, "un no-op no toca la BD")
	assert.Empty(t, store.movements)
}

func TestScan_ConflictoCASReintentaConLecturaFresca(t *testing.T) {
	store := newFakeStore(seed("123", 5))
	store.conflictsLeft = 1 // el primer commit pierde la carrera
	svc := newService(store)

	res, err := svc.Scan(context.Background(), scan.Request{Barcode: "123", Action: "remove", Quantity: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, scan.OutcomeCommitted, res.Outcome)
	// El conflicto dejó el stock en 4; el reintento leyó fresco y restó 2.
	assert.Equal(t, 4, res.Adjustment.PreviousStock)
	assert.Equal(t, 2, res.Adjustment.NewStock)
	assert.Equal(t, 2, store.commitCalls)
}

func TestScan_ConflictoPersistenteAgotaReintentos(t *testing.T) {
	store := newFakeStore(seed("123", 50))
	store.conflictsLeft = 99
	svc := newService(store)

	_, err := svc.Scan(context.Background(), scan.Request{Barcode: "123", Action: "remove", Quantity: intPtr(1)})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 3, store.commitCalls, "respeta maxAttempts")
}

func TestScan_CodigoVacio(t *testing.T) {
	store := newFakeStore(seed("123", 5))
	svc := newService(store)

	res, err := svc.Scan(context.Background(), scan.Request{Barcode: "   "})
	require.NoError(t, err)
	assert.Equal(t, scan.OutcomeRejected, res.Outcome)
	require.ErrorIs(t, res.Reason, domain.ErrInvalidInput)
}

func TestScan_BorradoConcurrente(t *testing.T) {
	store := newFakeStore(seed("123", 5))

	// El producto desaparece después de la lectura pero antes del commit:
	// CommitStock devuelve ErrNotFound y el escaneo termina en NotFound.
	delegado := &deleteBetweenReadAndCommit{fakeStore: store}
	svc2 := scan.NewLookupService(delegado, delegado, stock.NewClassifier(2, 5), 3)

	res, err := svc2.Scan(context.Background(), scan.Request{Barcode: "123", Action: "remove", Quantity: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, scan.OutcomeNotFound, res.Outcome)
}

type deleteBetweenReadAndCommit struct{ *fakeStore }

func (d *deleteBetweenReadAndCommit) GetByBarcode(barcode string) (*entity.Product, error) {
	p, err := d.fakeStore.GetByBarcode(barcode)
	if p != nil {
		delete(d.fakeStore.products, p.ID)
	}
	return p, err
}

func (d *deleteBetweenReadAndCommit) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return fn(d, movementRepoFunc{d.fakeStore})
}
