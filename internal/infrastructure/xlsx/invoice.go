package xlsx

import (
	"context"

	"github.com/jhoicas/dte-compras/internal/application/report"
)

// GenerateInvoice escribe el documento en la hoja "Documento" ("Document" en inglés).
func (g *ExcelizeGenerator) GenerateInvoice(ctx context.Context, r report.InvoiceReport, plan report.Plan) ([]byte, error) {
	l := r.Labels
	sheet := "Documento"
	if l.Lang == "en" {
		sheet = "Document"
	}

	f, st, err := g.newWorkbook(sheet, l.InvoiceTitle, l, false)
	if err != nil {
		return nil, err
	}
	w := newSheetWriter(f, sheet)
	w.widths(48, 12, 18, 18)

	for _, span := range plan.Pages {
		if !checkContext(ctx, w) {
			break
		}
		if span.Number == 1 {
			w.put(st.title, l.InvoiceTitle)
			w.skip()
			// Emisor en A/B, receptor en C/D.
			w.put(st.heading, l.Issuer, "", l.Receiver)
			w.put(0, r.Issuer.Name, "", r.Receiver.Name)
			w.put(st.muted, r.Issuer.IDLabel, r.Issuer.IDNumber, r.Receiver.IDLabel, r.Receiver.IDNumber)
			w.put(st.muted, "NRC", r.Issuer.NRC, "NRC", r.Receiver.NRC)
			w.put(st.muted, "Email", r.Issuer.Email, "Email", r.Receiver.Email)
			w.skip()
			w.put(0, l.ControlNumber, r.ControlNumber, l.IssueDate, r.IssueDate)
			w.put(0, l.GenerationCode, r.GenerationCode, l.DocumentType, r.DocumentType)
			w.skip()
		} else {
			w.pageBreak()
		}

		if span.Table {
			w.put(st.tableHeader, l.ColDescription, l.ColQuantity, l.ColUnitPrice, l.ColSubtotal)
		}
		for i := span.Start; i < span.End; i++ {
			ln := r.Lines[i]
			w.put(0, ln.Description, ln.Quantity, ln.UnitPrice, ln.Subtotal)
			w.styleCell(3, st.right)
			w.styleCell(4, st.right)
		}

		if span.Trailer {
			note := r.TotalInWords
			if len(r.Lines) == 0 {
				note = l.NoItems
			}
			w.skip()
			w.put(0, note, "", l.TotalPayable+":", r.Total)
			w.styleCell(3, st.total)
			w.styleCell(4, st.total)
		}
	}
	return finish(f, w)
}
