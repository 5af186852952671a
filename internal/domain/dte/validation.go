// Package dte valida la forma mínima de un Documento Tributario Electrónico (JSON)
// y lo normaliza a entity.InvoiceRecord. No aplica reglas de negocio
// (aritmética de impuestos, dígitos verificadores): solo presencia y tipo.
package dte

import (
	"github.com/jhoicas/dte-compras/internal/domain/entity"
)

// Bloques obligatorios. El primer nombre es la clave del esquema de Hacienda;
// el segundo, el alias en inglés aceptado por integraciones externas.
var (
	keyIdentification = []string{"identificacion", "identification"}
	keyIssuer         = []string{"emisor", "issuer"}
	keyReceiver       = []string{"receptor", "receiver"}
	keyLineItems      = []string{"cuerpoDocumento", "lineItems"}
	keySummary        = []string{"resumen", "summary"}
)

// Validate decodifica el texto y valida su estructura.
// Devuelve el registro normalizado o un *ValidationError (InvalidEncoding o MalformedStructure).
func Validate(text []byte) (entity.InvoiceRecord, error) {
	v, err := Decode(text)
	if err != nil {
		return entity.InvoiceRecord{}, err
	}
	raw, ok := v.(map[string]any)
	if !ok {
		return entity.InvoiceRecord{}, structureError("$")
	}
	return ValidateDocument(raw)
}

// ValidateDocument valida un documento ya decodificado. Función pura: no modifica raw.
func ValidateDocument(raw RawDocument) (entity.InvoiceRecord, error) {
	if raw == nil {
		return entity.InvoiceRecord{}, structureError("$")
	}

	var missing []string
	ident, ok := objectField(raw, keyIdentification)
	if !ok {
		missing = append(missing, keyIdentification[0])
	}
	issuer, ok := objectField(raw, keyIssuer)
	if !ok {
		missing = append(missing, keyIssuer[0])
	}
	receiver, ok := objectField(raw, keyReceiver)
	if !ok {
		missing = append(missing, keyReceiver[0])
	}
	items, ok := arrayField(raw, keyLineItems)
	if !ok {
		missing = append(missing, keyLineItems[0])
	}
	summary, ok := objectField(raw, keySummary)
	if !ok {
		missing = append(missing, keySummary[0])
	}
	if len(missing) > 0 {
		return entity.InvoiceRecord{}, structureError(missing...)
	}

	return normalize(raw, ident, issuer, receiver, items, summary), nil
}

// lookup devuelve el valor de la primera clave presente (aunque sea null).
func lookup(obj map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func objectField(obj map[string]any, keys []string) (map[string]any, bool) {
	v, ok := lookup(obj, keys)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok && m != nil
}

func arrayField(obj map[string]any, keys []string) ([]any, bool) {
	v, ok := lookup(obj, keys)
	if !ok {
		return nil, false
	}
	a, ok := v.([]any)
	return a, ok && a != nil
}
