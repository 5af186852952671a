// Package xlsx exporta los reportes de compras a Excel con excelize.
//
// Una hoja por reporte. El título y el pie "Página &P de &N" van en el
// encabezado y pie de impresión de Excel; los saltos de página manuales siguen
// el plan de report.Paginate, con la cabecera de tabla repetida en cada página.
// Las alturas de la geometría se miden en filas de la hoja.
package xlsx

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/dte-compras/internal/application/report"
)

const (
	// Filas imprimibles por página A4 con los márgenes por defecto de Excel.
	landscapeRows = 36
	portraitRows  = 50

	paperA4 = 9 // código de tamaño de papel en OOXML
)

// ExcelizeGenerator implementa report.Generator en formato XLSX.
type ExcelizeGenerator struct {
	author string
}

var _ report.Generator = (*ExcelizeGenerator)(nil)

// NewExcelizeGenerator construye el generador; author va a las propiedades del libro.
func NewExcelizeGenerator(author string) *ExcelizeGenerator {
	return &ExcelizeGenerator{author: author}
}

// Format XLSX.
func (g *ExcelizeGenerator) Format() report.Format { return report.FormatXLSX }

// SummaryGeometry filas del resumen: título + separador, criterios, tabla.
func (g *ExcelizeGenerator) SummaryGeometry(criteriaLines int) report.PageGeometry {
	return report.PageGeometry{
		UsableHeight:      landscapeRows,
		TableHeaderHeight: 1,
		RowHeight:         1,
		FirstPageExtra:    2 + 1 + float64(criteriaLines) + 1,
	}
}

// InvoiceGeometry filas del documento: título, emisor/receptor (5), metadatos (2).
func (g *ExcelizeGenerator) InvoiceGeometry() report.PageGeometry {
	return report.PageGeometry{
		UsableHeight:      portraitRows,
		TableHeaderHeight: 1,
		RowHeight:         1,
		FirstPageExtra:    2 + 5 + 1 + 2 + 1,
		TrailerHeight:     2,
	}
}

// ── Libro ─────────────────────────────────────────────────────────────────────

type styles struct {
	title, heading, muted, tableHeader, stripe, stripeRight, right, total int
}

// newWorkbook libro con una sola hoja, configurada para imprimir en A4.
func (g *ExcelizeGenerator) newWorkbook(sheet, title string, labels report.Labels, landscape bool) (*excelize.File, styles, error) {
	f := excelize.NewFile()
	fail := func(err error) (*excelize.File, styles, error) {
		_ = f.Close()
		return nil, styles{}, fmt.Errorf("xlsx: preparar libro: %w", err)
	}

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fail(err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{Title: title, Creator: g.author}); err != nil {
		return fail(err)
	}

	size, orient := paperA4, "portrait"
	if landscape {
		orient = "landscape"
	}
	if err := f.SetPageLayout(sheet, &excelize.PageLayoutOptions{Size: &size, Orientation: &orient}); err != nil {
		return fail(err)
	}
	if err := f.SetHeaderFooter(sheet, &excelize.HeaderFooterOptions{
		OddHeader: "&C&B" + escapeHeader(title),
		OddFooter: "&C" + fmt.Sprintf(labels.PageOfFormat, "&P", "&N"),
	}); err != nil {
		return fail(err)
	}

	st, err := newStyles(f)
	if err != nil {
		return fail(err)
	}
	return f, st, nil
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&st.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 14, Color: "00467F"}}},
		{&st.heading, &excelize.Style{Font: &excelize.Font{Bold: true, Color: "00467F"}}},
		{&st.muted, &excelize.Style{Font: &excelize.Font{Color: "646464"}}},
		{&st.tableHeader, &excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
		}},
		{&st.stripe, &excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{"EBF1F7"}, Pattern: 1},
		}},
		{&st.stripeRight, &excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"EBF1F7"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "right"},
		}},
		{&st.right, &excelize.Style{Alignment: &excelize.Alignment{Horizontal: "right"}}},
		{&st.total, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12, Color: "00467F"},
			Alignment: &excelize.Alignment{Horizontal: "right"},
		}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return styles{}, err
		}
		*d.dst = id
	}
	return st, nil
}

// finish serializa el libro y lo cierra.
func finish(f *excelize.File, w *sheetWriter) ([]byte, error) {
	defer f.Close()
	if w.err != nil {
		return nil, fmt.Errorf("xlsx: escribir hoja: %w", w.err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

// ── Escritura secuencial ──────────────────────────────────────────────────────

// sheetWriter escribe filas hacia abajo y guarda el primer error; las llamadas
// posteriores a un error no hacen nada.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int // próxima fila libre (base 1)
	err   error
}

func newSheetWriter(f *excelize.File, sheet string) *sheetWriter {
	return &sheetWriter{f: f, sheet: sheet, row: 1}
}

// put escribe values desde la columna A y aplica style (0 = sin estilo) a la fila escrita.
func (w *sheetWriter) put(style int, values ...any) {
	if w.err != nil {
		return
	}
	start, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(w.sheet, start, &values); err != nil {
		w.err = err
		return
	}
	if style != 0 && len(values) > 0 {
		end, err := excelize.CoordinatesToCellName(len(values), w.row)
		if err != nil {
			w.err = err
			return
		}
		w.err = w.f.SetCellStyle(w.sheet, start, end, style)
	}
	w.row++
}

// styleCell aplica un estilo a una celda de la última fila escrita (col base 1).
func (w *sheetWriter) styleCell(col, style int) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, w.row-1)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, cell, cell, style)
}

func (w *sheetWriter) skip() { w.row++ }

// pageBreak salto manual antes de la próxima fila.
func (w *sheetWriter) pageBreak() {
	if w.err != nil || w.row == 1 {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.InsertPageBreak(w.sheet, cell)
}

func (w *sheetWriter) widths(ws ...float64) {
	for i, width := range ws {
		if w.err != nil {
			return
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			w.err = err
			return
		}
		w.err = w.f.SetColWidth(w.sheet, name, name, width)
	}
}

// escapeHeader en los encabezados de Excel "&" inicia un código; el literal va doble.
func escapeHeader(s string) string {
	return strings.ReplaceAll(s, "&", "&&")
}

func checkContext(ctx context.Context, w *sheetWriter) bool {
	if err := ctx.Err(); err != nil {
		w.err = err
		return false
	}
	return true
}
