package report

import "context"

// Generator dibuja los reportes en un formato concreto (PDF, XLSX).
// Cada llamada crea su propio documento; las implementaciones son seguras
// para uso concurrente.
type Generator interface {
	Format() Format
	// SummaryGeometry alturas del resumen con criteriaLines líneas de criterios.
	SummaryGeometry(criteriaLines int) PageGeometry
	InvoiceGeometry() PageGeometry
	GenerateSummary(ctx context.Context, r SummaryReport, plan Plan) ([]byte, error)
	GenerateInvoice(ctx context.Context, r InvoiceReport, plan Plan) ([]byte, error)
}
