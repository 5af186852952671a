package pdf

import (
	"context"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/dte-compras/internal/application/report"
)

// Columnas: N° de control | Receptor | Emisor | Fecha | Total
var (
	summarySizes  = []int{3, 3, 2, 2, 2}
	summaryAligns = []align.Type{align.Left, align.Left, align.Left, align.Center, align.Right}
)

// GenerateSummary dibuja el reporte resumen siguiendo el plan de páginas.
func (g *MarotoPDFGenerator) GenerateSummary(ctx context.Context, r report.SummaryReport, plan report.Plan) ([]byte, error) {
	geo := g.SummaryGeometry(len(r.Criteria))

	return g.render(ctx, orientation.Horizontal, r.Labels.SummaryTitle, r.Labels, geo, plan,
		func(span report.PageSpan) []core.Row {
			var rows []core.Row
			if span.Number == 1 {
				rows = append(rows, criteriaRows(r.Labels.CriteriaHeading, r.Criteria)...)
			}
			if span.Table {
				rows = append(rows, tableHeaderRow(r.Columns(), summarySizes, summaryAligns))
			}
			for i := span.Start; i < span.End; i++ {
				rows = append(rows, tableRow(r.Rows[i].Cells(), summarySizes, summaryAligns, r.Striped && i%2 == 1))
			}
			return rows
		})
}

// criteriaRows: "Filtros aplicados" y una línea por criterio.
func criteriaRows(heading string, lines []string) []core.Row {
	rows := make([]core.Row, 0, len(lines)+2)
	rows = append(rows, row.New(criteriaHeadingHeight).Add(col.New(12).Add(
		text.New(heading, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
	)))
	for _, l := range lines {
		rows = append(rows, row.New(criteriaLineHeight).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 8, Color: colorGray, Left: 2}),
		)))
	}
	return append(rows, row.New(criteriaGap))
}
