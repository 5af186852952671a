package xlsx

import (
	"context"

	"github.com/jhoicas/dte-compras/internal/application/report"
)

// GenerateSummary escribe el resumen en la hoja "Resumen" ("Summary" en inglés).
func (g *ExcelizeGenerator) GenerateSummary(ctx context.Context, r report.SummaryReport, plan report.Plan) ([]byte, error) {
	l := r.Labels
	sheet := "Resumen"
	if l.Lang == "en" {
		sheet = "Summary"
	}

	f, st, err := g.newWorkbook(sheet, l.SummaryTitle, l, true)
	if err != nil {
		return nil, err
	}
	w := newSheetWriter(f, sheet)
	w.widths(34, 34, 34, 16, 14)

	columns := make([]any, 0, 5)
	for _, c := range r.Columns() {
		columns = append(columns, c)
	}

	for _, span := range plan.Pages {
		if !checkContext(ctx, w) {
			break
		}
		if span.Number == 1 {
			w.put(st.title, l.SummaryTitle)
			w.skip()
			w.put(st.heading, l.CriteriaHeading)
			for _, c := range r.Criteria {
				w.put(st.muted, c)
			}
			w.skip()
		} else {
			w.pageBreak()
		}

		if span.Table {
			w.put(st.tableHeader, columns...)
		}
		for i := span.Start; i < span.End; i++ {
			row := r.Rows[i]
			style, totalStyle := 0, st.right
			if r.Striped && i%2 == 1 {
				style, totalStyle = st.stripe, st.stripeRight
			}
			w.put(style, row.ControlNumber, row.Receiver, row.Issuer, row.IssueDate, row.Total)
			w.styleCell(5, totalStyle)
		}
	}
	return finish(f, w)
}
