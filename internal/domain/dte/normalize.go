package dte

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dte-compras/internal/domain/entity"
	"github.com/jhoicas/dte-compras/pkg/money"
)

// Formatos de fecha aceptados en fecEmi además de ISO (YYYY-MM-DD).
var issueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
	"2006/01/02",
}

func normalize(raw, ident, issuer, receiver map[string]any, items []any, summary map[string]any) entity.InvoiceRecord {
	var warnings []entity.Warning

	id := entity.Identification{
		ControlNumber:  firstString(ident, raw, "numeroControl", "controlNumber"),
		GenerationCode: NormalizeGenerationCode(firstString(ident, raw, "codigoGeneracion", "generationCode")),
		DocumentType:   stringField(ident, "tipoDte", "documentType"),
		IssueTime:      stringField(ident, "horEmi", "issueTime"),
		Currency:       stringField(ident, "tipoMoneda", "currency"),
	}
	if s := firstString(ident, raw, "fecEmi", "issueDate"); s != "" {
		d, err := NormalizeDate(s)
		if err != nil {
			warnings = append(warnings, entity.Warning{Code: entity.WarnInvalidIssueDate, Field: "identificacion.fecEmi", Value: s})
		} else {
			id.IssueDate = d
		}
	} else {
		warnings = append(warnings, entity.Warning{Code: entity.WarnInvalidIssueDate, Field: "identificacion.fecEmi"})
	}

	lineItems := make([]entity.LineItem, 0, len(items))
	for i, it := range items {
		obj, ok := it.(map[string]any)
		if !ok || obj == nil {
			warnings = append(warnings, entity.Warning{
				Code: entity.WarnInvalidLineItem, Field: fmt.Sprintf("cuerpoDocumento[%d]", i), Value: fmt.Sprint(it),
			})
			continue
		}
		li, w := normalizeLineItem(i, obj)
		lineItems = append(lineItems, li)
		warnings = append(warnings, w...)
	}

	sum := entity.Summary{TotalInWords: stringField(summary, "totalLetras", "totalInWords")}
	totalRaw, _ := lookup(summary, []string{"totalPagar", "totalPayable"})
	total, err := money.Parse(totalRaw)
	if err != nil || total.IsNegative() {
		warnings = append(warnings, entity.Warning{Code: entity.WarnUnparsableTotal, Field: "resumen.totalPagar", Value: rawText(totalRaw)})
		total = decimal.Zero
	}
	sum.TotalPayable = total

	return entity.InvoiceRecord{
		Identification: id,
		Issuer:         normalizeParty(issuer),
		Receiver:       normalizeParty(receiver),
		LineItems:      lineItems,
		Summary:        sum,
		Warnings:       warnings,
	}
}

func normalizeParty(obj map[string]any) entity.Party {
	p := entity.Party{
		Name:           stringField(obj, "nombre", "name"),
		TradeName:      stringField(obj, "nombreComercial", "tradeName"),
		TaxID:          stringField(obj, "nit", "taxId"),
		NRC:            stringField(obj, "nrc"),
		DocumentType:   stringField(obj, "tipoDocumento", "documentType"),
		DocumentNumber: stringField(obj, "numDocumento", "documentNumber"),
		Email:          stringField(obj, "correo", "email"),
		Phone:          stringField(obj, "telefono", "phone"),
	}
	// El receptor de un crédito fiscal se identifica por NIT en lugar de numDocumento.
	if p.DocumentNumber == "" {
		p.DocumentNumber = p.TaxID
	}
	return p
}

func normalizeLineItem(index int, obj map[string]any) (entity.LineItem, []entity.Warning) {
	var warnings []entity.Warning
	amount := func(keys ...string) decimal.Decimal {
		v, ok := lookup(obj, keys)
		if !ok || v == nil {
			return decimal.Zero
		}
		d, err := money.Parse(v)
		if err != nil {
			warnings = append(warnings, entity.Warning{
				Code:  entity.WarnInvalidLineItem,
				Field: fmt.Sprintf("cuerpoDocumento[%d].%s", index, keys[0]),
				Value: rawText(v),
			})
			return decimal.Zero
		}
		return d
	}

	li := entity.LineItem{
		ItemNumber:    index + 1,
		Description:   stringField(obj, "descripcion", "description"),
		Quantity:      amount("cantidad", "quantity"),
		UnitPrice:     amount("precioUni", "unitPrice"),
		TaxableAmount: amount("ventaGravada", "taxableAmount"),
	}
	if n, ok := intField(obj, "numItem", "itemNumber"); ok {
		li.ItemNumber = n
	}
	return li, warnings
}

// NormalizeDate convierte una fecha de emisión en fecha de calendario.
// Acepta YYYY-MM-DD, RFC 3339 y DD/MM/YYYY; la parte horaria se descarta tal como viene.
func NormalizeDate(s string) (civil.Date, error) {
	s = strings.TrimSpace(s)
	if d, err := civil.ParseDate(s); err == nil {
		return d, nil
	}
	for _, layout := range issueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.DateOf(t), nil
		}
	}
	return civil.Date{}, fmt.Errorf("dte: fecha %q no reconocida", s)
}

// NormalizeGenerationCode deja el código de generación en la forma canónica de Hacienda
// (UUID en mayúsculas); si no es un UUID se conserva tal cual.
func NormalizeGenerationCode(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return s
	}
	return strings.ToUpper(u.String())
}

// ── helpers ───────────────────────────────────────────────────────────────────

func stringField(obj map[string]any, keys ...string) string {
	v, ok := lookup(obj, keys)
	if !ok {
		return ""
	}
	return rawText(v)
}

// firstString busca primero en el bloque y luego en la raíz del documento.
func firstString(block, root map[string]any, keys ...string) string {
	if s := stringField(block, keys...); s != "" {
		return s
	}
	return stringField(root, keys...)
}

func intField(obj map[string]any, keys ...string) (int, bool) {
	v, ok := lookup(obj, keys)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case json.Number:
		n, err := t.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	case float64:
		return int(t), t == float64(int(t))
	default:
		return 0, false
	}
}

func rawText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
