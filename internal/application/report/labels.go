package report

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/text/language"

	"github.com/jhoicas/dte-compras/internal/domain/filter"
)

// Labels textos de los reportes en un idioma.
type Labels struct {
	Lang string

	SummaryTitle  string
	InvoiceTitle  string
	SummaryPrefix string // prefijo del nombre de archivo del reporte resumen
	InvoicePrefix string // prefijo del nombre de archivo del reporte por documento

	// Bloque de criterios (primera página del resumen)
	CriteriaHeading string
	Client          string
	DTE             string
	Product         string
	From            string
	To              string
	None            string

	// Columnas del resumen
	ColControlNumber string
	ColReceiver      string
	ColIssuer        string
	ColIssueDate     string
	ColTotal         string

	// Reporte por documento
	Issuer         string
	Receiver       string
	ControlNumber  string
	GenerationCode string
	IssueDate      string
	DocumentType   string
	ColDescription string
	ColQuantity    string
	ColUnitPrice   string
	ColSubtotal    string
	TotalPayable   string
	NoItems        string

	// PageOfFormat recibe número de página y total ("Página %v de %v").
	PageOfFormat string
	DateLayout   string
}

var spanishLabels = Labels{
	Lang:             "es",
	SummaryTitle:     "Reporte de Compras",
	InvoiceTitle:     "Documento Tributario Electrónico",
	SummaryPrefix:    "Reporte_Compras",
	InvoicePrefix:    "Factura",
	CriteriaHeading:  "Filtros aplicados",
	Client:           "Cliente",
	DTE:              "DTE",
	Product:          "Producto",
	From:             "Desde",
	To:               "Hasta",
	None:             "Ninguno",
	ColControlNumber: "N° de control",
	ColReceiver:      "Receptor",
	ColIssuer:        "Emisor",
	ColIssueDate:     "Fecha de emisión",
	ColTotal:         "Total",
	Issuer:           "EMISOR",
	Receiver:         "RECEPTOR",
	ControlNumber:    "Número de control",
	GenerationCode:   "Código de generación",
	IssueDate:        "Fecha de emisión",
	DocumentType:     "Tipo de documento",
	ColDescription:   "Descripción",
	ColQuantity:      "Cantidad",
	ColUnitPrice:     "Precio unitario",
	ColSubtotal:      "Subtotal",
	TotalPayable:     "TOTAL A PAGAR",
	NoItems:          "El documento no contiene ítems",
	PageOfFormat:     "Página %v de %v",
	DateLayout:       "02/01/2006",
}

var englishLabels = Labels{
	Lang:             "en",
	SummaryTitle:     "Purchases Report",
	InvoiceTitle:     "Electronic Tax Document",
	SummaryPrefix:    "Report_Purchases",
	InvoicePrefix:    "Invoice",
	CriteriaHeading:  "Applied filters",
	Client:           "Client",
	DTE:              "DTE",
	Product:          "Product",
	From:             "From",
	To:               "To",
	None:             "None",
	ColControlNumber: "Control number",
	ColReceiver:      "Receiver",
	ColIssuer:        "Issuer",
	ColIssueDate:     "Issue date",
	ColTotal:         "Total",
	Issuer:           "ISSUER",
	Receiver:         "RECEIVER",
	ControlNumber:    "Control number",
	GenerationCode:   "Generation code",
	IssueDate:        "Issue date",
	DocumentType:     "Document type",
	ColDescription:   "Description",
	ColQuantity:      "Quantity",
	ColUnitPrice:     "Unit price",
	ColSubtotal:      "Subtotal",
	TotalPayable:     "TOTAL PAYABLE",
	NoItems:          "The document has no line items",
	PageOfFormat:     "Page %v of %v",
	DateLayout:       "01/02/2006",
}

var labelMatcher = language.NewMatcher([]language.Tag{
	language.Spanish, // primero: es el idioma por defecto
	language.English,
})

// LabelsFor elige los textos según una etiqueta BCP-47 ("es-SV", "en-US", ...).
// Cualquier idioma no soportado cae en español.
func LabelsFor(tag string) Labels {
	matched, _ := language.MatchStrings(labelMatcher, tag)
	if base, _ := matched.Base(); base.String() == "en" {
		return englishLabels
	}
	return spanishLabels
}

// PageOf texto del pie: "Página 2 de 5".
func (l Labels) PageOf(current, total int) string {
	return fmt.Sprintf(l.PageOfFormat, current, total)
}

// FormatDate fecha de calendario en el formato local; "—" si no hay fecha.
func (l Labels) FormatDate(d civil.Date) string {
	if d.IsZero() {
		return "—"
	}
	return d.In(time.UTC).Format(l.DateLayout)
}

// CriteriaLines una línea por criterio definido, en orden fijo
// (cliente, DTE, producto, desde, hasta). Sin criterios devuelve solo "Ninguno".
func (l Labels) CriteriaLines(c filter.Criteria) []string {
	c = c.Normalized()

	var lines []string
	add := func(label, value string) {
		lines = append(lines, label+": "+value)
	}
	if c.ClientNameContains != "" {
		add(l.Client, c.ClientNameContains)
	}
	if c.ControlNumberContains != "" {
		add(l.DTE, c.ControlNumberContains)
	}
	if c.ItemDescriptionContains != "" {
		add(l.Product, c.ItemDescriptionContains)
	}
	if !c.IssuedFrom.IsZero() {
		add(l.From, l.FormatDate(c.IssuedFrom))
	}
	if !c.IssuedTo.IsZero() {
		add(l.To, l.FormatDate(c.IssuedTo))
	}
	if len(lines) == 0 {
		return []string{l.None}
	}
	return lines
}
