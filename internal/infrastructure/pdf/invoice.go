package pdf

import (
	"context"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/dte-compras/internal/application/report"
)

// Columnas: Descripción | Cantidad | Precio unitario | Subtotal
var (
	invoiceSizes  = []int{6, 2, 2, 2}
	invoiceAligns = []align.Type{align.Left, align.Center, align.Right, align.Right}
)

// GenerateInvoice dibuja el reporte de un documento siguiendo el plan de páginas.
func (g *MarotoPDFGenerator) GenerateInvoice(ctx context.Context, r report.InvoiceReport, plan report.Plan) ([]byte, error) {
	l := r.Labels
	columns := []string{l.ColDescription, l.ColQuantity, l.ColUnitPrice, l.ColSubtotal}

	return g.render(ctx, orientation.Vertical, l.InvoiceTitle, l, g.InvoiceGeometry(), plan,
		func(span report.PageSpan) []core.Row {
			var rows []core.Row
			if span.Number == 1 {
				rows = append(rows, partiesRow(l, r.Issuer, r.Receiver), metadataRow(r), row.New(sectionGap))
			}
			if span.Table {
				rows = append(rows, tableHeaderRow(columns, invoiceSizes, invoiceAligns))
			}
			for i := span.Start; i < span.End; i++ {
				ln := r.Lines[i]
				rows = append(rows, tableRow(
					[]string{ln.Description, ln.Quantity, ln.UnitPrice, ln.Subtotal},
					invoiceSizes, invoiceAligns, i%2 == 1,
				))
			}
			if span.Trailer {
				rows = append(rows,
					line.NewRow(ruleRowHeight, props.Line{Color: colorPrimary, Thickness: 0.3}),
					totalsRow(r),
				)
			}
			return rows
		})
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// partiesRow: emisor (izq) y receptor (der).
func partiesRow(l report.Labels, issuer, receiver report.PartyView) core.Row {
	return row.New(partiesRowHeight).Add(
		partyCol(l.Issuer, issuer),
		partyCol(l.Receiver, receiver),
	)
}

func partyCol(heading string, p report.PartyView) core.Col {
	return col.New(6).Add(
		text.New(heading, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
		text.New(nonEmpty(p.Name, "—"), props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 6, Right: 2,
		}),
		text.New(p.IDLabel+": "+nonEmpty(p.IDNumber, "—"), props.Text{
			Size: 8, Top: 13, Color: colorGray,
		}),
		text.New("NRC: "+nonEmpty(p.NRC, "—")+"   |   Email: "+nonEmpty(p.Email, "—"), props.Text{
			Size: 8, Top: 18, Color: colorGray,
		}),
	)
}

// metadataRow: número de control, código de generación, fecha y tipo.
func metadataRow(r report.InvoiceReport) core.Row {
	l := r.Labels
	field := func(label, value string, top float64) core.Component {
		return text.New(label+": "+nonEmpty(value, "—"), props.Text{Size: 8, Top: top})
	}
	return row.New(metadataRowHeight).Add(
		col.New(7).Add(
			field(l.ControlNumber, r.ControlNumber, 2),
			field(l.GenerationCode, r.GenerationCode, 8),
		),
		col.New(5).Add(
			field(l.IssueDate, r.IssueDate, 2),
			field(l.DocumentType, r.DocumentType, 8),
		),
	)
}

// totalsRow: total a pagar alineado a la derecha; a la izquierda el total en
// letras o el aviso de documento sin ítems.
func totalsRow(r report.InvoiceReport) core.Row {
	note := r.TotalInWords
	if len(r.Lines) == 0 {
		note = r.Labels.NoItems
	}
	return row.New(totalsRowHeight).Add(
		col.New(6).Add(text.New(note, props.Text{
			Size: 8, Color: colorGray, Top: 3,
		})),
		col.New(3).Add(text.New(r.Labels.TotalPayable+":", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 3, Right: 2,
		})),
		col.New(3).Add(text.New(r.Total, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 3, Right: 1,
		})),
	)
}
