// Package pdf genera la hoja imprimible de etiquetas del inventario: una
// etiqueta por producto con nombre, categoría, precio y su código de barras
// Code 128, lista para pegar en los cajones del taller.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/GestionStock-api/internal/application/usecase"
	"github.com/jhoicas/GestionStock-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.LabelPDFGenerator = (*MarotoLabelGenerator)(nil)

// MarotoLabelGenerator implementa usecase.LabelPDFGenerator usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateLabelsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoLabelGenerator) GenerateLabelsPDF(_ context.Context, products []*entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Étiquettes inventaire", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, p := range products {
		m.AddRows(labelRow(p))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja de etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("ÉTIQUETTES INVENTAIRE", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
	)
}

// labelRow: nombre + categoría + precio (izq) y código de barras Code 128 (der).
func labelRow(p *entity.Product) core.Row {
	categoria := p.Category
	if categoria == "" {
		categoria = "Autre"
	}
	return row.New(22).Add(
		col.New(6).Add(
			text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
			text.New(categoria, props.Text{Size: 8, Top: 8, Color: colorGray}),
			text.New(p.Price.StringFixed(2)+" €", props.Text{Size: 9, Top: 13}),
		),
		col.New(6).Add(
			code.NewBar(p.Barcode, props.Barcode{
				Center:  true,
				Percent: 85,
				Proportion: props.Proportion{
					Width:  16,
					Height: 5,
				},
			}),
			text.New(p.Barcode, props.Text{Size: 7, Top: 18, Align: align.Center, Color: colorGray}),
		),
	)
}
