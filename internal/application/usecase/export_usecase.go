package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/GestionStock-api/internal/domain/repository"
)

// ExportUseCase genera el export CSV del inventario completo.
// Las cabeceras y el nombre de archivo son los que el taller ya conoce
// (inventaire_YYYYMMDD.csv, columnas en francés).
type ExportUseCase struct {
	repo repository.ProductRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(repo repository.ProductRepository) *ExportUseCase {
	return &ExportUseCase{repo: repo}
}

// CSV devuelve el contenido del archivo y su nombre sugerido.
func (uc *ExportUseCase) CSV() ([]byte, string, error) {
	products, err := uc.repo.ListAll()
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Nom", "Code", "Prix", "Stock", "Catégorie"}); err != nil {
		return nil, "", fmt.Errorf("escribir cabecera CSV: %w", err)
	}
	for _, p := range products {
		record := []string{
			p.Name,
			p.Barcode,
			p.Price.StringFixed(2),
			strconv.Itoa(p.Stock),
			p.Category,
		}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("escribir fila CSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("volcar CSV: %w", err)
	}

	filename := fmt.Sprintf("inventaire_%s.csv", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
