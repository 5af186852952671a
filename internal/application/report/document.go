package report

import (
	"bytes"
	"io"
)

// Format formato de exportación.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Extension extensión de archivo sin punto.
func (f Format) Extension() string { return string(f) }

// ContentType tipo MIME del formato.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// ReportDocument reporte generado, listo para guardar o enviar.
type ReportDocument struct {
	Filename    string
	ContentType string
	Pages       int
	Content     []byte
	// Warnings avisos no bloqueantes (documento sin ítems, montos ilegibles...).
	// Todos cumplen errors.Is con ErrEmptyLineItems o ErrDataQuality.
	Warnings []error
}

// WriteTo escribe el contenido en w.
func (d *ReportDocument) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(d.Content).WriteTo(w)
}
