// Package pdf dibuja los reportes de compras con Maroto v2.
//
// Reporte resumen (A4 horizontal), cada página:
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  TÍTULO                                                              │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  Filtros aplicados (solo página 1)                                   │
//	│  N° de control | Receptor | Emisor | Fecha de emisión | Total        │
//	│  filas con fondo alterno                                             │
//	│                                                                      │
//	│                          Página X de Y                               │
//	└──────────────────────────────────────────────────────────────────────┘
//
// Reporte por documento (A4 vertical): título, bloque emisor/receptor,
// metadatos, tabla de ítems y totales alineados a la derecha.
//
// La distribución de filas por página la decide report.Paginate; aquí solo se
// dibuja cada página con maroto.AddPages para que el pie lleve el total final.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/dte-compras/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 247}
)

// ── Medidas (mm) ──────────────────────────────────────────────────────────────

const (
	margin = 10.0
	// slack margen de seguridad para que maroto nunca parta una página planificada.
	slack = 5.0

	titleRowHeight  = 10.0
	ruleRowHeight   = 4.0
	footerRowHeight = 6.0

	tableHeaderHeight = 7.0
	tableRowHeight    = 6.0

	criteriaHeadingHeight = 6.0
	criteriaLineHeight    = 5.0
	criteriaGap           = 3.0

	partiesRowHeight  = 26.0
	metadataRowHeight = 16.0
	sectionGap        = 3.0
	totalsRowHeight   = 16.0
)

// Alto útil de A4 (297 × 210 mm) según orientación.
const (
	landscapeUsable = 210 - 2*margin - slack
	portraitUsable  = 297 - 2*margin - slack
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.Generator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

var _ report.Generator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador; author va a los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// Format PDF.
func (g *MarotoPDFGenerator) Format() report.Format { return report.FormatPDF }

// SummaryGeometry alturas del resumen en A4 horizontal.
func (g *MarotoPDFGenerator) SummaryGeometry(criteriaLines int) report.PageGeometry {
	return report.PageGeometry{
		UsableHeight:      landscapeUsable,
		HeaderHeight:      titleRowHeight + ruleRowHeight,
		FooterHeight:      footerRowHeight,
		TableHeaderHeight: tableHeaderHeight,
		RowHeight:         tableRowHeight,
		FirstPageExtra:    criteriaHeadingHeight + float64(criteriaLines)*criteriaLineHeight + criteriaGap,
	}
}

// InvoiceGeometry alturas del reporte por documento en A4 vertical.
func (g *MarotoPDFGenerator) InvoiceGeometry() report.PageGeometry {
	return report.PageGeometry{
		UsableHeight:      portraitUsable,
		HeaderHeight:      titleRowHeight + ruleRowHeight,
		FooterHeight:      footerRowHeight,
		TableHeaderHeight: tableHeaderHeight,
		RowHeight:         tableRowHeight,
		FirstPageExtra:    partiesRowHeight + metadataRowHeight + sectionGap,
		TrailerHeight:     ruleRowHeight + totalsRowHeight,
	}
}

// render segunda pasada común: una página de maroto por PageSpan, con título
// arriba y pie "Página X de Y" abajo. body agrega las filas propias de cada reporte.
func (g *MarotoPDFGenerator) render(
	ctx context.Context,
	o orientation.Type,
	title string,
	labels report.Labels,
	geo report.PageGeometry,
	plan report.Plan,
	body func(span report.PageSpan) []core.Row,
) ([]byte, error) {
	m := g.newMaroto(o, title)

	total := plan.TotalPages()
	for _, span := range plan.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows := headerRows(title)
		rows = append(rows, body(span)...)
		if gap := geo.Remaining(span); gap > 0 {
			rows = append(rows, row.New(gap))
		}
		rows = append(rows, footerRow(labels.PageOf(span.Number, total)))

		m.AddPages(page.New().Add(rows...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoPDFGenerator) newMaroto(o orientation.Type, title string) core.Maroto {
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(o).
		WithLeftMargin(margin).WithRightMargin(margin).
		WithTopMargin(margin).WithBottomMargin(margin).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true)
	if g.author != "" {
		b = b.WithAuthor(g.author, true)
	}
	return maroto.New(b.Build())
}

// ── Secciones comunes ─────────────────────────────────────────────────────────

// headerRows: título y regla, repetidos en todas las páginas.
func headerRows(title string) []core.Row {
	return []core.Row{
		row.New(titleRowHeight).Add(col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		)),
		line.NewRow(ruleRowHeight, props.Line{Color: colorPrimary, Thickness: 0.5}),
	}
}

// footerRow: "Página X de Y" centrado.
func footerRow(label string) core.Row {
	return row.New(footerRowHeight).Add(col.New(12).Add(
		text.New(label, props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 1,
		}),
	))
}

// tableHeaderRow: cabecera de tabla con fondo primario y texto blanco.
func tableHeaderRow(labels []string, sizes []int, aligns []align.Type) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, label := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: aligns[i],
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(tableHeaderHeight).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRow: una fila de datos; striped pinta el fondo alterno.
func tableRow(cells []string, sizes []int, aligns []align.Type, striped bool) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, c := range cells {
		cols = append(cols, col.New(sizes[i]).Add(text.New(c, props.Text{
			Size: 8, Align: aligns[i], Top: 1, Left: 1, Right: 1,
		})))
	}
	r := row.New(tableRowHeight).Add(cols...)
	if striped {
		r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
