package money_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dte-compras/pkg/money"
)

func TestParse_AceptaNumeroYTexto(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"json.Number", json.Number("12.50"), "12.5"},
		{"texto", "7.00", "7"},
		{"texto con símbolo y espacios", " $ 1500.25 ", "1500.25"},
		{"float64", 3.75, "3.75"},
		{"int", 4, "4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestParse_RechazaValoresNoNumericos(t *testing.T) {
	for _, in := range []any{nil, "", "abc", true, map[string]any{}} {
		_, err := money.Parse(in)
		assert.Error(t, err, "entrada %v debe fallar", in)
	}
}

func TestFormat_DosDecimalesConSimbolo(t *testing.T) {
	assert.Equal(t, "$12.50", money.Format("$", decimal.RequireFromString("12.5")))
	assert.Equal(t, "$0.00", money.Format("$", decimal.Zero))
	assert.Equal(t, "$7.01", money.Format("$", decimal.RequireFromString("7.005")))
	assert.Equal(t, "-$3.00", money.Format("$", decimal.NewFromInt(-3)))
}

func TestQuantity_SinCerosSobrantes(t *testing.T) {
	assert.Equal(t, "1", money.Quantity(decimal.RequireFromString("1.00")))
	assert.Equal(t, "2.5", money.Quantity(decimal.RequireFromString("2.50")))
}
