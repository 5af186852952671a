// Package money centraliza la conversión y el formato de montos monetarios.
package money

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse convierte un monto recibido como número JSON o como texto numérico
// ("12.50", " $7 ") en decimal. No aplica redondeo.
func Parse(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case json.Number:
		return decimal.NewFromString(t.String())
	case string:
		s := strings.TrimSpace(t)
		s = strings.TrimPrefix(s, "$")
		s = strings.TrimSpace(s)
		if s == "" {
			return decimal.Zero, fmt.Errorf("money: monto vacío")
		}
		return decimal.NewFromString(s)
	case float64:
		return decimal.NewFromFloat(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case decimal.Decimal:
		return t, nil
	case nil:
		return decimal.Zero, fmt.Errorf("money: monto ausente")
	default:
		return decimal.Zero, fmt.Errorf("money: tipo no numérico %T", v)
	}
}

// Format devuelve el monto con dos decimales fijos y el símbolo de moneda como prefijo.
// Ej: Format("$", 12.5) → "$12.50", Format("$", -3) → "-$3.00".
func Format(symbol string, d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + symbol + d.Neg().StringFixed(2)
	}
	return symbol + d.StringFixed(2)
}

// Quantity formatea una cantidad sin forzar decimales: 1 → "1", 2.50 → "2.5".
func Quantity(d decimal.Decimal) string {
	return d.String()
}
