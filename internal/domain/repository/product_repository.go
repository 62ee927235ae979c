package repository

import "github.com/jhoicas/GestionStock-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// CommitStock es el único camino de escritura del campo Stock; el resto de
// campos se actualizan por el CRUD (Update no toca Stock).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	// CommitStock sobrescribe Stock con un UPDATE condicional (CAS):
	// falla con ErrStockConflict si el valor almacenado ya no es expectedStock,
	// y con ErrNotFound si la fila desapareció (borrado concurrente).
	CommitStock(id string, expectedStock, newStock int) error
	List(limit, offset int) ([]*entity.Product, error)
	// ListAll devuelve el inventario completo ordenado por categoría y nombre
	// (export CSV y hoja de etiquetas).
	ListAll() ([]*entity.Product, error)
	Delete(id string) error
}
