package report_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dte-compras/internal/application/report"
	"github.com/jhoicas/dte-compras/internal/domain"
)

// 100 mm útiles: 10 header + 10 footer → 80 para tabla; cabecera 5 + filas de 5.
var testGeometry = report.PageGeometry{
	UsableHeight:      100,
	HeaderHeight:      10,
	FooterHeight:      10,
	TableHeaderHeight: 5,
	RowHeight:         5,
	FirstPageExtra:    25,
}

func TestPaginate_UnaPagina(t *testing.T) {
	plan, err := report.Paginate(3, testGeometry)
	require.NoError(t, err)

	require.Equal(t, 1, plan.TotalPages())
	p := plan.Pages[0]
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 0, p.Start)
	assert.Equal(t, 3, p.End)
	assert.True(t, p.Table)
	assert.True(t, p.Trailer)
}

func TestPaginate_VariasPaginas_CapacidadPrimeraYContinuacion(t *testing.T) {
	// Página 1: (100-20-25-5)/5 = 10 filas. Continuación: (100-20-5)/5 = 15 filas.
	plan, err := report.Paginate(40, testGeometry)
	require.NoError(t, err)

	require.Equal(t, 3, plan.TotalPages())
	assert.Equal(t, 10, plan.Pages[0].Rows())
	assert.Equal(t, 15, plan.Pages[1].Rows())
	assert.Equal(t, 15, plan.Pages[2].Rows())
	assert.Equal(t, 40, plan.Pages[2].End)

	for i, p := range plan.Pages {
		assert.Equal(t, i+1, p.Number)
		if i > 0 {
			assert.Equal(t, plan.Pages[i-1].End, p.Start, "las páginas son contiguas")
		}
	}
}

func TestPaginate_FilasExactas_SinPaginaExtra(t *testing.T) {
	plan, err := report.Paginate(25, testGeometry)
	require.NoError(t, err)
	assert.Equal(t, 2, plan.TotalPages())
}

func TestPaginate_SinFilas_UnaPaginaConTablaVacia(t *testing.T) {
	plan, err := report.Paginate(0, testGeometry)
	require.NoError(t, err)

	require.Equal(t, 1, plan.TotalPages())
	assert.Equal(t, 0, plan.Pages[0].Rows())
	assert.True(t, plan.Pages[0].Table)
	assert.True(t, plan.Pages[0].Trailer)
}

func TestPaginate_PrimeraPaginaSinCapacidad(t *testing.T) {
	g := testGeometry
	g.FirstPageExtra = 78 // quedan 2 mm: no cabe cabecera + fila

	plan, err := report.Paginate(4, g)
	require.NoError(t, err)

	require.Equal(t, 2, plan.TotalPages())
	assert.Equal(t, 0, plan.Pages[0].Rows())
	assert.False(t, plan.Pages[0].Table)
	assert.Equal(t, 4, plan.Pages[1].Rows())
}

func TestPaginate_BloqueFinalNoCabe_AgregaPagina(t *testing.T) {
	g := testGeometry
	g.TrailerHeight = 20

	// 10 filas llenan la página 1 por completo.
	plan, err := report.Paginate(10, g)
	require.NoError(t, err)

	require.Equal(t, 2, plan.TotalPages())
	assert.False(t, plan.Pages[0].Trailer)
	last := plan.Pages[1]
	assert.True(t, last.Trailer)
	assert.False(t, last.Table)
	assert.Equal(t, 0, last.Rows())
}

func TestPaginate_BloqueFinalCabeJusto(t *testing.T) {
	g := testGeometry
	g.TrailerHeight = 10

	// 8 filas: usado 20+25+5+40 = 90, quedan 10.
	plan, err := report.Paginate(8, g)
	require.NoError(t, err)
	require.Equal(t, 1, plan.TotalPages())
	assert.True(t, plan.Pages[0].Trailer)
}

func TestPaginate_AlturasFraccionarias(t *testing.T) {
	g := report.PageGeometry{UsableHeight: 0.3, RowHeight: 0.1}
	plan, err := report.Paginate(3, g)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.TotalPages(), "0.3/0.1 no debe perder una fila por redondeo")
}

func TestPaginate_GeometriaInvalida(t *testing.T) {
	cases := map[string]report.PageGeometry{
		"sin alto de fila":     {UsableHeight: 100},
		"fila mayor a página":  {UsableHeight: 10, HeaderHeight: 5, FooterHeight: 5, RowHeight: 1},
		"alto negativo":        {UsableHeight: 100, RowHeight: 5, FooterHeight: -1},
		"extra mayor a página": {UsableHeight: 100, RowHeight: 5, FirstPageExtra: 120},
		"final mayor a página": {UsableHeight: 100, RowHeight: 5, TrailerHeight: 120},
	}
	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := report.Paginate(1, g)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestPaginate_FilasNegativas(t *testing.T) {
	_, err := report.Paginate(-1, testGeometry)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPageGeometry_Remaining(t *testing.T) {
	plan, err := report.Paginate(12, testGeometry)
	require.NoError(t, err)
	require.Equal(t, 2, plan.TotalPages())

	assert.InDelta(t, 0, testGeometry.Remaining(plan.Pages[0]), 1e-9, "página 1 llena")
	// Página 2: 20 fijos + 5 cabecera + 2 filas × 5 = 35 → quedan 65.
	assert.InDelta(t, 65, testGeometry.Remaining(plan.Pages[1]), 1e-9)
}
