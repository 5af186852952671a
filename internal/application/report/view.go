package report

// Modelos de vista: textos ya formateados. Los generadores solo dibujan.

// SummaryReport datos del reporte resumen.
type SummaryReport struct {
	Labels   Labels
	Criteria []string // líneas "Cliente: …" o solo "Ninguno"
	Rows     []SummaryRow
	Striped  bool
}

// SummaryRow una fila del resumen.
type SummaryRow struct {
	ControlNumber string
	Receiver      string
	Issuer        string
	IssueDate     string
	Total         string
}

// Cells celdas en el orden de las columnas.
func (r SummaryRow) Cells() []string {
	return []string{r.ControlNumber, r.Receiver, r.Issuer, r.IssueDate, r.Total}
}

// Columns títulos de columna del resumen, en el mismo orden que SummaryRow.Cells.
func (r SummaryReport) Columns() []string {
	l := r.Labels
	return []string{l.ColControlNumber, l.ColReceiver, l.ColIssuer, l.ColIssueDate, l.ColTotal}
}

// InvoiceReport datos del reporte de un documento.
type InvoiceReport struct {
	Labels         Labels
	Issuer         PartyView
	Receiver       PartyView
	ControlNumber  string
	GenerationCode string
	IssueDate      string
	DocumentType   string // nombre del catálogo, o el código si no se conoce
	Lines          []InvoiceLine
	Total          string
	TotalInWords   string
}

// InvoiceLine fila de la tabla de ítems.
type InvoiceLine struct {
	Description string
	Quantity    string // tal como viene, sin forzar decimales
	UnitPrice   string
	Subtotal    string
}

// PartyView emisor o receptor listo para imprimir.
type PartyView struct {
	Name     string
	IDLabel  string // "NIT", "DUI", ...
	IDNumber string
	NRC      string
	Email    string
}
