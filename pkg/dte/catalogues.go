// Package dte contiene catálogos del Sistema de Transmisión de DTE del
// Ministerio de Hacienda de El Salvador usados para presentar los documentos.
package dte

// =============================================================================
// CAT-002 - Tipo de Documento Tributario Electrónico
// =============================================================================

const (
	DocumentTypeFactura             = "01" // Factura
	DocumentTypeCreditoFiscal       = "03" // Comprobante de crédito fiscal
	DocumentTypeNotaRemision        = "04" // Nota de remisión
	DocumentTypeNotaCredito         = "05" // Nota de crédito
	DocumentTypeNotaDebito          = "06" // Nota de débito
	DocumentTypeRetencion           = "07" // Comprobante de retención
	DocumentTypeLiquidacion         = "08" // Comprobante de liquidación
	DocumentTypeContableLiquidacion = "09" // Documento contable de liquidación
	DocumentTypeExportacion         = "11" // Factura de exportación
	DocumentTypeSujetoExcluido      = "14" // Factura de sujeto excluido
	DocumentTypeDonacion            = "15" // Comprobante de donación
)

var documentTypeNames = map[string]string{
	DocumentTypeFactura:             "Factura",
	DocumentTypeCreditoFiscal:       "Comprobante de Crédito Fiscal",
	DocumentTypeNotaRemision:        "Nota de Remisión",
	DocumentTypeNotaCredito:         "Nota de Crédito",
	DocumentTypeNotaDebito:          "Nota de Débito",
	DocumentTypeRetencion:           "Comprobante de Retención",
	DocumentTypeLiquidacion:         "Comprobante de Liquidación",
	DocumentTypeContableLiquidacion: "Documento Contable de Liquidación",
	DocumentTypeExportacion:         "Factura de Exportación",
	DocumentTypeSujetoExcluido:      "Factura de Sujeto Excluido",
	DocumentTypeDonacion:            "Comprobante de Donación",
}

// DocumentTypeName devuelve el nombre del tipo de DTE o "" si el código no está en el catálogo.
func DocumentTypeName(code string) string {
	return documentTypeNames[code]
}

// =============================================================================
// CAT-022 - Tipo de documento de identificación del receptor
// =============================================================================

const (
	IdentificationNIT        = "36"
	IdentificationDUI        = "13"
	IdentificationOther      = "37"
	IdentificationPassport   = "03"
	IdentificationResidentID = "02"
)

var identificationNames = map[string]string{
	IdentificationNIT:        "NIT",
	IdentificationDUI:        "DUI",
	IdentificationOther:      "Otro",
	IdentificationPassport:   "Pasaporte",
	IdentificationResidentID: "Carnet de Residente",
}

// IdentificationName nombre corto del tipo de identificación ("" si es desconocido).
func IdentificationName(code string) string {
	return identificationNames[code]
}
