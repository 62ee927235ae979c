package usecase_test

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/GestionStock-api/internal/application/dto"
	"github.com/jhoicas/GestionStock-api/internal/application/usecase"
)

func TestExportCSV(t *testing.T) {
	repo := newFakeProductRepo()
	productos := newProductUC(repo)

	_, err := productos.Create(dto.CreateProductRequest{
		Barcode: "3401", Name: "Écran iPhone 12", Price: decimal.NewFromFloat(49.9), Stock: 3, Category: "Écran",
	})
	require.NoError(t, err)
	_, err = productos.Create(dto.CreateProductRequest{
		Barcode: "3402", Name: "Coque Galaxy S21", Price: decimal.NewFromInt(12), Stock: 0, Category: "Coque",
	})
	require.NoError(t, err)

	uc := usecase.NewExportUseCase(repo)
	data, filename, err := uc.CSV()
	require.NoError(t, err)

	assert.Regexp(t, `^inventaire_\d{8}\.csv$`, filename)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "cabecera + 2 productos")
	assert.Equal(t, []string{"Nom", "Code", "Prix", "Stock", "Catégorie"}, records[0])
	// ListAll ordena por categoría y nombre: Coque antes que Écran
	assert.Equal(t, []string{"Coque Galaxy S21", "3402", "12.00", "0", "Coque"}, records[1])
	assert.Equal(t, []string{"Écran iPhone 12", "3401", "49.90", "3", "Écran"}, records[2])
}

func TestExportCSV_InventarioVacio(t *testing.T) {
	uc := usecase.NewExportUseCase(newFakeProductRepo())

	data, _, err := uc.CSV()
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "solo la cabecera")
}
