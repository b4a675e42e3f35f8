// Package pdf genera el informe de almacén del establo con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Informe de almacén + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Artículo | Tipo | kg | Precio/kg | kg/día | Días     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de artículos listados                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	appstable "github.com/jhoicas/Establo-api/internal/application/stable"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoStockReport implementa stable.StockReportGenerator usando Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockReport genera el PDF del informe y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(_ context.Context, lines []appstable.ReportLine) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de almacén", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, l := range lines {
		m.AddRows(tableLineRow(l))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(lines)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Informe de almacén", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Top: 4, Color: colorGray, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}
	boldRight := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right}
	return row.New(7).Add(
		col.New(3).Add(text.New("Artículo", bold)),
		col.New(2).Add(text.New("Tipo", bold)),
		col.New(2).Add(text.New("Existencia (kg)", boldRight)),
		col.New(2).Add(text.New("Precio/kg", boldRight)),
		col.New(2).Add(text.New("Consumo (kg/día)", boldRight)),
		col.New(1).Add(text.New("Días", boldRight)),
	)
}

func tableLineRow(l appstable.ReportLine) core.Row {
	days := "∞"
	if l.DaysRemaining != nil {
		days = fmt.Sprintf("%d", *l.DaysRemaining)
	}
	normal := props.Text{Size: 9, Top: 1}
	right := props.Text{Size: 9, Top: 1, Align: align.Right}
	return row.New(6).Add(
		col.New(3).Add(text.New(l.Item.Name, normal)),
		col.New(2).Add(text.New(l.Item.Type, normal)),
		col.New(2).Add(text.New(l.Item.AmountInStock.StringFixed(1), right)),
		col.New(2).Add(text.New(l.Item.PricePerKilo.StringFixed(2), right)),
		col.New(2).Add(text.New(l.AggregateDaily.StringFixed(1), right)),
		col.New(1).Add(text.New(days, right)),
	)
}

func footerRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d artículos en el almacén", count), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}
