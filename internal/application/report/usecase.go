package report

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/dte-compras/internal/domain"
	"github.com/jhoicas/dte-compras/internal/domain/entity"
	"github.com/jhoicas/dte-compras/internal/domain/filter"
	"github.com/jhoicas/dte-compras/pkg/dte"
	"github.com/jhoicas/dte-compras/pkg/logger"
	"github.com/jhoicas/dte-compras/pkg/money"
)

// Options parámetros de presentación del Renderer.
type Options struct {
	Language       string         // etiqueta BCP-47; por defecto español
	CurrencySymbol string         // por defecto "$"
	Location       *time.Location // zona para la fecha del nombre de archivo
	Striped        bool
	Now            func() time.Time // reloj inyectable para tests
}

// Renderer arma los modelos de vista, calcula la paginación y delega el dibujo
// al Generator configurado.
type Renderer struct {
	generator Generator
	labels    Labels
	symbol    string
	loc       *time.Location
	striped   bool
	now       func() time.Time
	log       zerolog.Logger
}

// NewRenderer construye el caso de uso inyectando el generador.
func NewRenderer(generator Generator, opts Options) *Renderer {
	r := &Renderer{
		generator: generator,
		labels:    LabelsFor(opts.Language),
		symbol:    opts.CurrencySymbol,
		loc:       opts.Location,
		striped:   opts.Striped,
		now:       opts.Now,
		log:       logger.WithComponent("report"),
	}
	if r.symbol == "" {
		r.symbol = "$"
	}
	if r.loc == nil {
		r.loc = time.FixedZone("CST", -6*60*60)
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// Labels textos en uso.
func (r *Renderer) Labels() Labels { return r.labels }

// RenderSummaryReport genera el reporte resumen de los registros ya filtrados.
//
// Retorna:
//   - domain.ErrEmptyResultSet si no hay registros (no se produce documento).
//   - error de paginación o del generador envuelto.
func (r *Renderer) RenderSummaryReport(
	ctx context.Context,
	records []entity.InvoiceRecord,
	criteria filter.Criteria,
) (*ReportDocument, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyResultSet
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// ── 1. Modelo de vista ───────────────────────────────────────────────────
	view := SummaryReport{
		Labels:   r.labels,
		Criteria: r.labels.CriteriaLines(criteria),
		Rows:     make([]SummaryRow, 0, len(records)),
		Striped:  r.striped,
	}
	var warnings []error
	for _, rec := range records {
		view.Rows = append(view.Rows, SummaryRow{
			ControlNumber: rec.ControlNumber(),
			Receiver:      rec.Receiver.Name,
			Issuer:        rec.Issuer.Name,
			IssueDate:     r.labels.FormatDate(rec.IssueDate()),
			Total:         money.Format(r.symbol, rec.TotalPayable()),
		})
		warnings = append(warnings, qualityWarnings(rec)...)
	}

	// ── 2. Primera pasada: plan de páginas ───────────────────────────────────
	plan, err := Paginate(len(view.Rows), r.generator.SummaryGeometry(len(view.Criteria)))
	if err != nil {
		return nil, fmt.Errorf("report: paginar resumen: %w", err)
	}

	// ── 3. Segunda pasada: dibujo con el total de páginas conocido ───────────
	content, err := r.generator.GenerateSummary(ctx, view, plan)
	if err != nil {
		return nil, fmt.Errorf("report: generar resumen: %w", err)
	}

	format := r.generator.Format()
	doc := &ReportDocument{
		Filename: fmt.Sprintf("%s_%s.%s",
			r.labels.SummaryPrefix, r.now().In(r.loc).Format("2006-01-02"), format.Extension()),
		ContentType: format.ContentType(),
		Pages:       plan.TotalPages(),
		Content:     content,
		Warnings:    warnings,
	}

	r.log.Info().
		Str("file", doc.Filename).
		Int("records", len(records)).
		Int("pages", doc.Pages).
		Int("warnings", len(warnings)).
		Msg("reporte resumen generado")
	return doc, nil
}

// RenderDocumentReport genera el reporte de un solo documento. Un documento sin
// ítems se genera igual con ErrEmptyLineItems en Warnings.
func (r *Renderer) RenderDocumentReport(ctx context.Context, rec entity.InvoiceRecord) (*ReportDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := r.invoiceView(rec)

	var warnings []error
	if len(rec.LineItems) == 0 {
		warnings = append(warnings, fmt.Errorf("%w: %s", domain.ErrEmptyLineItems, rec.ControlNumber()))
	}
	warnings = append(warnings, qualityWarnings(rec)...)

	plan, err := Paginate(len(view.Lines), r.generator.InvoiceGeometry())
	if err != nil {
		return nil, fmt.Errorf("report: paginar documento: %w", err)
	}

	content, err := r.generator.GenerateInvoice(ctx, view, plan)
	if err != nil {
		return nil, fmt.Errorf("report: generar documento: %w", err)
	}

	format := r.generator.Format()
	doc := &ReportDocument{
		Filename: fmt.Sprintf("%s_%s.%s",
			r.labels.InvoicePrefix, fileToken(rec), format.Extension()),
		ContentType: format.ContentType(),
		Pages:       plan.TotalPages(),
		Content:     content,
		Warnings:    warnings,
	}

	ev := r.log.Info()
	if len(warnings) > 0 {
		ev = r.log.Warn().Errs("warnings", warnings)
	}
	ev.Str("file", doc.Filename).
		Int("items", len(rec.LineItems)).
		Int("pages", doc.Pages).
		Msg("reporte de documento generado")
	return doc, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (r *Renderer) invoiceView(rec entity.InvoiceRecord) InvoiceReport {
	docType := dte.DocumentTypeName(rec.Identification.DocumentType)
	if docType == "" {
		docType = rec.Identification.DocumentType
	}

	lines := make([]InvoiceLine, 0, len(rec.LineItems))
	for _, it := range rec.LineItems {
		lines = append(lines, InvoiceLine{
			Description: it.Description,
			Quantity:    money.Quantity(it.Quantity),
			UnitPrice:   money.Format(r.symbol, it.UnitPrice),
			Subtotal:    money.Format(r.symbol, it.TaxableAmount),
		})
	}

	return InvoiceReport{
		Labels:         r.labels,
		Issuer:         partyView(rec.Issuer, dte.IdentificationNIT),
		Receiver:       partyView(rec.Receiver, rec.Receiver.DocumentType),
		ControlNumber:  rec.ControlNumber(),
		GenerationCode: rec.GenerationCode(),
		IssueDate:      r.labels.FormatDate(rec.IssueDate()),
		DocumentType:   docType,
		Lines:          lines,
		Total:          money.Format(r.symbol, rec.TotalPayable()),
		TotalInWords:   rec.Summary.TotalInWords,
	}
}

func partyView(p entity.Party, idType string) PartyView {
	label := dte.IdentificationName(idType)
	if label == "" {
		label = "Doc."
	}
	number := p.DocumentNumber
	if number == "" {
		number = p.TaxID
	}
	return PartyView{
		Name:     p.Name,
		IDLabel:  label,
		IDNumber: number,
		NRC:      p.NRC,
		Email:    p.Email,
	}
}

func qualityWarnings(rec entity.InvoiceRecord) []error {
	if len(rec.Warnings) == 0 {
		return nil
	}
	out := make([]error, 0, len(rec.Warnings))
	for _, w := range rec.Warnings {
		out = append(out, fmt.Errorf("%w: %s %s", domain.ErrDataQuality, rec.ControlNumber(), w))
	}
	return out
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// fileToken número de control apto para nombre de archivo; si falta, el código
// de generación.
func fileToken(rec entity.InvoiceRecord) string {
	for _, s := range []string{rec.ControlNumber(), rec.GenerationCode()} {
		if t := unsafeFileChars.ReplaceAllString(s, "_"); t != "" && t != "_" {
			return t
		}
	}
	return "SIN_NUMERO"
}
