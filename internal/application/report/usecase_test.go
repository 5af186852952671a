package report_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dte-compras/internal/application/report"
	"github.com/jhoicas/dte-compras/internal/domain"
	"github.com/jhoicas/dte-compras/internal/domain/entity"
	"github.com/jhoicas/dte-compras/internal/domain/filter"
)

// fakeGenerator registra lo que recibe y devuelve contenido fijo.
type fakeGenerator struct {
	summary      *report.SummaryReport
	invoice      *report.InvoiceReport
	plan         report.Plan
	criteriaSeen int
	err          error
}

func (g *fakeGenerator) Format() report.Format { return report.FormatPDF }

func (g *fakeGenerator) SummaryGeometry(criteriaLines int) report.PageGeometry {
	g.criteriaSeen = criteriaLines
	return report.PageGeometry{UsableHeight: 50, HeaderHeight: 10, FooterHeight: 10, RowHeight: 10}
}

func (g *fakeGenerator) InvoiceGeometry() report.PageGeometry {
	return report.PageGeometry{UsableHeight: 50, HeaderHeight: 10, FooterHeight: 10, RowHeight: 10, TrailerHeight: 10}
}

func (g *fakeGenerator) GenerateSummary(_ context.Context, r report.SummaryReport, plan report.Plan) ([]byte, error) {
	g.summary, g.plan = &r, plan
	return []byte("%PDF-resumen"), g.err
}

func (g *fakeGenerator) GenerateInvoice(_ context.Context, r report.InvoiceReport, plan report.Plan) ([]byte, error) {
	g.invoice, g.plan = &r, plan
	return []byte("%PDF-documento"), g.err
}

var fixedNow = func() time.Time {
	// 03:00 UTC del 11 de enero = 21:00 del 10 de enero en El Salvador.
	return time.Date(2024, 1, 11, 3, 0, 0, 0, time.UTC)
}

func newRenderer(gen report.Generator, lang string) *report.Renderer {
	return report.NewRenderer(gen, report.Options{
		Language: lang,
		Location: time.FixedZone("CST", -6*60*60),
		Striped:  true,
		Now:      fixedNow,
	})
}

func record(control, client string, date civil.Date, total string, items ...entity.LineItem) entity.InvoiceRecord {
	return entity.InvoiceRecord{
		Identification: entity.Identification{
			ControlNumber:  control,
			GenerationCode: "5B2F3C4D-1A2B-4C3D-8E9F-0A1B2C3D4E5F",
			DocumentType:   "01",
			IssueDate:      date,
		},
		Issuer:    entity.Party{Name: "Distribuidora Acme", TaxID: "06141234561019", DocumentNumber: "06141234561019"},
		Receiver:  entity.Party{Name: client, DocumentType: "13", DocumentNumber: "01234567-8"},
		LineItems: items,
		Summary:   entity.Summary{TotalPayable: decimal.RequireFromString(total)},
	}
}

func sampleRecords() []entity.InvoiceRecord {
	return []entity.InvoiceRecord{
		record("DTE-001", "Acme Corp", civil.Date{Year: 2024, Month: 1, Day: 10}, "12.50"),
		record("DTE-002", "Beta LLC", civil.Date{Year: 2024, Month: 2, Day: 5}, "7"),
	}
}

// ── Resumen ──────────────────────────────────────────────────────────────────

// Escenario E: sin registros no se produce documento.
func TestRenderSummaryReport_SinRegistros_EmptyResultSet(t *testing.T) {
	gen := &fakeGenerator{}
	doc, err := newRenderer(gen, "es").RenderSummaryReport(context.Background(), nil, filter.Criteria{})

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domain.ErrEmptyResultSet)
	assert.Nil(t, gen.summary, "el generador no se invoca")
}

func TestRenderSummaryReport_FilasYColumnas(t *testing.T) {
	gen := &fakeGenerator{}
	doc, err := newRenderer(gen, "es").RenderSummaryReport(context.Background(), sampleRecords(),
		filter.Criteria{ClientNameContains: "acme"})
	require.NoError(t, err)

	require.NotNil(t, gen.summary)
	assert.Equal(t, []string{"N° de control", "Receptor", "Emisor", "Fecha de emisión", "Total"}, gen.summary.Columns())
	require.Len(t, gen.summary.Rows, 2)
	assert.Equal(t, []string{"DTE-001", "Acme Corp", "Distribuidora Acme", "10/01/2024", "$12.50"},
		gen.summary.Rows[0].Cells())
	assert.Equal(t, "$7.00", gen.summary.Rows[1].Total)
	assert.Equal(t, []string{"Cliente: acme"}, gen.summary.Criteria)
	assert.Equal(t, 1, gen.criteriaSeen)
	assert.True(t, gen.summary.Striped)

	assert.Equal(t, "Reporte_Compras_2024-01-10.pdf", doc.Filename, "fecha en la zona configurada")
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, []byte("%PDF-resumen"), doc.Content)
	assert.Empty(t, doc.Warnings)
}

func TestRenderSummaryReport_PaginasDelPlan(t *testing.T) {
	// 30 útiles por página → 3 filas por página; 7 registros → 3 páginas.
	records := make([]entity.InvoiceRecord, 0, 7)
	for i := 0; i < 7; i++ {
		records = append(records, sampleRecords()[0])
	}

	gen := &fakeGenerator{}
	doc, err := newRenderer(gen, "es").RenderSummaryReport(context.Background(), records, filter.Criteria{})
	require.NoError(t, err)

	assert.Equal(t, 3, doc.Pages)
	assert.Equal(t, 3, gen.plan.TotalPages())
	assert.Equal(t, []string{"Ninguno"}, gen.summary.Criteria)
}

func TestRenderSummaryReport_Ingles(t *testing.T) {
	gen := &fakeGenerator{}
	doc, err := newRenderer(gen, "en-US").RenderSummaryReport(context.Background(), sampleRecords(), filter.Criteria{})
	require.NoError(t, err)

	assert.Equal(t, "Report_Purchases_2024-01-10.pdf", doc.Filename)
	assert.Equal(t, []string{"None"}, gen.summary.Criteria)
	assert.Equal(t, "01/10/2024", gen.summary.Rows[0].IssueDate)
}

func TestRenderSummaryReport_AvisosDeCalidad(t *testing.T) {
	records := sampleRecords()
	records[1].Warnings = []entity.Warning{{Code: entity.WarnUnparsableTotal, Field: "resumen.totalPagar", Value: "N/A"}}

	doc, err := newRenderer(&fakeGenerator{}, "es").RenderSummaryReport(context.Background(), records, filter.Criteria{})
	require.NoError(t, err)

	require.Len(t, doc.Warnings, 1)
	assert.ErrorIs(t, doc.Warnings[0], domain.ErrDataQuality)
	assert.Contains(t, doc.Warnings[0].Error(), "DTE-002")
}

func TestRenderSummaryReport_ErrorDelGenerador(t *testing.T) {
	boom := errors.New("disco lleno")
	doc, err := newRenderer(&fakeGenerator{err: boom}, "es").
		RenderSummaryReport(context.Background(), sampleRecords(), filter.Criteria{})

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, boom)
}

func TestRenderSummaryReport_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRenderer(&fakeGenerator{}, "es").RenderSummaryReport(ctx, sampleRecords(), filter.Criteria{})
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Documento ────────────────────────────────────────────────────────────────

func TestRenderDocumentReport_ConItems(t *testing.T) {
	rec := record("DTE-01-M001P001-000000000000001", "Acme Corp", civil.Date{Year: 2024, Month: 1, Day: 10}, "12.50",
		entity.LineItem{ItemNumber: 1, Description: "Papel bond carta",
			Quantity: decimal.RequireFromString("2"), UnitPrice: decimal.RequireFromString("4.25"),
			TaxableAmount: decimal.RequireFromString("8.5")},
		entity.LineItem{ItemNumber: 2, Description: "Tóner negro",
			Quantity: decimal.RequireFromString("1.5"), UnitPrice: decimal.RequireFromString("2.666"),
			TaxableAmount: decimal.RequireFromString("4")},
	)

	gen := &fakeGenerator{}
	doc, err := newRenderer(gen, "es").RenderDocumentReport(context.Background(), rec)
	require.NoError(t, err)

	assert.Equal(t, "Factura_DTE-01-M001P001-000000000000001.pdf", doc.Filename)
	assert.Empty(t, doc.Warnings)

	v := gen.invoice
	require.NotNil(t, v)
	assert.Equal(t, "Distribuidora Acme", v.Issuer.Name)
	assert.Equal(t, "NIT", v.Issuer.IDLabel)
	assert.Equal(t, "06141234561019", v.Issuer.IDNumber)
	assert.Equal(t, "DUI", v.Receiver.IDLabel)
	assert.Equal(t, "01234567-8", v.Receiver.IDNumber)
	assert.Equal(t, "10/01/2024", v.IssueDate)
	assert.Equal(t, "Factura", v.DocumentType)
	assert.Equal(t, "$12.50", v.Total)

	require.Len(t, v.Lines, 2)
	assert.Equal(t, report.InvoiceLine{Description: "Papel bond carta", Quantity: "2", UnitPrice: "$4.25", Subtotal: "$8.50"}, v.Lines[0])
	assert.Equal(t, "1.5", v.Lines[1].Quantity, "la cantidad se muestra sin forzar decimales")
	assert.Equal(t, "$2.67", v.Lines[1].UnitPrice)
}

// Escenario F: documento sin ítems → se genera con tabla vacía y aviso, sin error.
func TestRenderDocumentReport_SinItems_AvisoSinError(t *testing.T) {
	rec := record("DTE-003", "Gamma SA", civil.Date{Year: 2024, Month: 3, Day: 1}, "0.00")

	gen := &fakeGenerator{}
	doc, err := newRenderer(gen, "es").RenderDocumentReport(context.Background(), rec)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, []byte("%PDF-documento"), doc.Content)
	assert.Equal(t, 1, doc.Pages)
	require.Len(t, doc.Warnings, 1)
	assert.ErrorIs(t, doc.Warnings[0], domain.ErrEmptyLineItems)

	require.NotNil(t, gen.invoice)
	assert.Empty(t, gen.invoice.Lines)
	assert.Equal(t, "$0.00", gen.invoice.Total)
	require.Equal(t, 1, gen.plan.TotalPages())
	assert.True(t, gen.plan.Pages[0].Table, "la tabla vacía conserva su cabecera")
	assert.True(t, gen.plan.Pages[0].Trailer, "el bloque de totales se dibuja")
}

func TestRenderDocumentReport_NombreDeArchivoSaneado(t *testing.T) {
	rec := record("DTE 01/M001:0001", "Acme", civil.Date{}, "1")
	doc, err := newRenderer(&fakeGenerator{}, "en").RenderDocumentReport(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, "Invoice_DTE_01_M001_0001.pdf", doc.Filename)
	assert.Equal(t, "—", report.LabelsFor("en").FormatDate(rec.IssueDate()))
}

func TestRenderDocumentReport_SinNumeroDeControl_UsaCodigoDeGeneracion(t *testing.T) {
	rec := record("", "Acme", civil.Date{}, "1")
	doc, err := newRenderer(&fakeGenerator{}, "es").RenderDocumentReport(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, "Factura_5B2F3C4D-1A2B-4C3D-8E9F-0A1B2C3D4E5F.pdf", doc.Filename)
}

func TestReportDocument_WriteTo(t *testing.T) {
	doc := &report.ReportDocument{Content: []byte("contenido")}
	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "contenido", buf.String())
}

func TestFormat_ContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", report.FormatPDF.ContentType())
	assert.Equal(t, "xlsx", report.FormatXLSX.Extension())
	assert.Contains(t, report.FormatXLSX.ContentType(), "spreadsheetml")
}
