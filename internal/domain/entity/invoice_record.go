package entity

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// InvoiceRecord representa un DTE ya validado y normalizado.
// Se construye una sola vez en la ingesta; filtros y reportes solo lo leen.
type InvoiceRecord struct {
	Identification Identification
	Issuer         Party // emisor
	Receiver       Party // receptor
	LineItems      []LineItem
	Summary        Summary
	Warnings       []Warning // avisos de calidad de datos detectados al normalizar
}

// Identification metadatos de emisión (bloque "identificacion").
type Identification struct {
	ControlNumber  string     // numeroControl, p.ej. DTE-01-M001P001-000000000000001
	GenerationCode string     // codigoGeneracion (UUID en mayúsculas)
	DocumentType   string     // tipoDte, ver pkg/dte
	IssueDate      civil.Date // fecEmi; cero si venía vacía o ilegible
	IssueTime      string     // horEmi
	Currency       string     // tipoMoneda
}

// Party emisor o receptor del documento.
type Party struct {
	Name           string
	TradeName      string
	TaxID          string // NIT
	NRC            string
	DocumentType   string // tipoDocumento del receptor (13 = DUI, 36 = NIT, ...)
	DocumentNumber string // numDocumento; para el emisor coincide con el NIT
	Email          string
	Phone          string
}

// LineItem una línea de "cuerpoDocumento".
type LineItem struct {
	ItemNumber    int
	Description   string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	TaxableAmount decimal.Decimal // ventaGravada, subtotal mostrado en reportes
}

// Summary bloque "resumen".
type Summary struct {
	TotalPayable decimal.Decimal // totalPagar
	TotalInWords string          // totalLetras
}

// ControlNumber atajo a Identification.ControlNumber.
func (r InvoiceRecord) ControlNumber() string { return r.Identification.ControlNumber }

// GenerationCode atajo a Identification.GenerationCode.
func (r InvoiceRecord) GenerationCode() string { return r.Identification.GenerationCode }

// IssueDate atajo a Identification.IssueDate.
func (r InvoiceRecord) IssueDate() civil.Date { return r.Identification.IssueDate }

// TotalPayable atajo a Summary.TotalPayable.
func (r InvoiceRecord) TotalPayable() decimal.Decimal { return r.Summary.TotalPayable }

// HasWarning indica si el registro trae un aviso con el código dado.
func (r InvoiceRecord) HasWarning(code WarningCode) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// WarningCode tipos de aviso de calidad de datos.
type WarningCode string

const (
	WarnUnparsableTotal  WarningCode = "TOTAL_NO_NUMERICO"
	WarnInvalidIssueDate WarningCode = "FECHA_EMISION_INVALIDA"
	WarnInvalidLineItem  WarningCode = "ITEM_INVALIDO"
)

// Warning aviso no bloqueante: el documento es válido pero un campo no pudo normalizarse.
type Warning struct {
	Code  WarningCode
	Field string
	Value string // valor original tal como llegó
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s=%q", w.Code, w.Field, w.Value)
}
