package purchases_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dte-compras/internal/application/dto"
	"github.com/jhoicas/dte-compras/internal/application/purchases"
	"github.com/jhoicas/dte-compras/internal/domain"
	"github.com/jhoicas/dte-compras/internal/domain/dte"
	"github.com/jhoicas/dte-compras/internal/domain/entity"
	"github.com/jhoicas/dte-compras/internal/domain/filter"
)

// memorySource InvoiceSource en memoria.
type memorySource struct {
	records []entity.InvoiceRecord
	err     error
}

func (s *memorySource) List(context.Context) ([]entity.InvoiceRecord, error) {
	return s.records, s.err
}

func (s *memorySource) GetByGenerationCode(_ context.Context, code string) (*entity.InvoiceRecord, error) {
	for i := range s.records {
		if s.records[i].GenerationCode() == code {
			return &s.records[i], nil
		}
	}
	return nil, s.err
}

func newRecord(code, control, client string, date civil.Date, total string) entity.InvoiceRecord {
	return entity.InvoiceRecord{
		Identification: entity.Identification{ControlNumber: control, GenerationCode: code, IssueDate: date},
		Issuer:         entity.Party{Name: "Distribuidora Acme"},
		Receiver:       entity.Party{Name: client},
		Summary:        entity.Summary{TotalPayable: decimal.RequireFromString(total)},
	}
}

func twoRecords() *memorySource {
	return &memorySource{records: []entity.InvoiceRecord{
		newRecord("AAA", "DTE-001", "Acme Corp", civil.Date{Year: 2024, Month: 1, Day: 10}, "12.50"),
		newRecord("BBB", "DTE-002", "Beta LLC", civil.Date{Year: 2024, Month: 2, Day: 5}, "7.00"),
	}}
}

func TestList_FiltraPorCliente(t *testing.T) {
	uc := purchases.NewListUseCase(twoRecords(), "$")

	items, err := uc.List(context.Background(), filter.Criteria{ClientNameContains: "acme"})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, dto.PurchaseListItem{
		GenerationCode: "AAA",
		ControlNumber:  "DTE-001",
		Receiver:       "Acme Corp",
		Issuer:         "Distribuidora Acme",
		IssueDate:      "2024-01-10",
		Total:          decimal.RequireFromString("12.50"),
		TotalDisplay:   "$12.50",
	}, items[0])
}

func TestList_SinCriterios_DevuelveTodo(t *testing.T) {
	items, err := purchases.NewListUseCase(twoRecords(), "").List(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "$7.00", items[1].TotalDisplay)
}

func TestList_SinResultados_ListaVacia(t *testing.T) {
	items, err := purchases.NewListUseCase(twoRecords(), "$").
		List(context.Background(), filter.Criteria{ControlNumberContains: "DTE-999"})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSearch_RangoInvertido_ErrInvalidInput(t *testing.T) {
	_, err := purchases.NewListUseCase(twoRecords(), "$").Search(context.Background(), filter.Criteria{
		IssuedFrom: civil.Date{Year: 2024, Month: 3, Day: 1},
		IssuedTo:   civil.Date{Year: 2024, Month: 1, Day: 1},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearch_ErrorDeLaFuente(t *testing.T) {
	boom := errors.New("disco no disponible")
	_, err := purchases.NewListUseCase(&memorySource{err: boom}, "$").Search(context.Background(), filter.Criteria{})
	assert.ErrorIs(t, err, boom)
}

func TestListPage_Recorta(t *testing.T) {
	src := &memorySource{}
	for i := 0; i < 5; i++ {
		src.records = append(src.records, newRecord(fmt.Sprint(i), fmt.Sprintf("DTE-%03d", i), "Acme", civil.Date{}, "1"))
	}
	uc := purchases.NewListUseCase(src, "$")

	resp, err := uc.ListPage(context.Background(), filter.Criteria{}, dto.PageRequest{Limit: 2, Offset: 3})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "DTE-003", resp.Items[0].ControlNumber)
	assert.Equal(t, dto.PageResponse{Limit: 2, Offset: 3, Total: 5}, resp.Page)

	resp, err = uc.ListPage(context.Background(), filter.Criteria{}, dto.PageRequest{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 50, resp.Page.Limit, "límite por defecto")
}

func TestGet(t *testing.T) {
	src := &memorySource{records: []entity.InvoiceRecord{
		newRecord("5B2F3C4D-1A2B-4C3D-8E9F-0A1B2C3D4E5F", "DTE-001", "Acme", civil.Date{}, "1"),
	}}
	uc := purchases.NewListUseCase(src, "$")

	rec, err := uc.Get(context.Background(), "5b2f3c4d-1a2b-4c3d-8e9f-0a1b2c3d4e5f")
	require.NoError(t, err)
	assert.Equal(t, "DTE-001", rec.ControlNumber())

	_, err = uc.Get(context.Background(), "0f9e8d7c-6b5a-4948-8776-655443322110")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Get(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Ingesta ──────────────────────────────────────────────────────────────────

func dteWithItems(n int) string {
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(`{"numItem": %d, "cantidad": 1, "descripcion": "Ítem %d", "precioUni": 1, "ventaGravada": 1}`, i+1, i+1))
	}
	return `{
  "identificacion": {"numeroControl": "DTE-001", "codigoGeneracion": "5b2f3c4d-1a2b-4c3d-8e9f-0a1b2c3d4e5f", "fecEmi": "2024-01-10"},
  "emisor": {"nombre": "Distribuidora Acme", "nit": "06141234561019"},
  "receptor": {"nombre": "Acme Corp"},
  "cuerpoDocumento": [` + strings.Join(items, ",") + `],
  "resumen": {"totalPagar": "5.00"}
}`
}

func TestInspect_VistaPrevia_PrimerosTresItems(t *testing.T) {
	preview, err := purchases.NewIngestUseCase("$").Inspect("compra.json", []byte(dteWithItems(5)))
	require.NoError(t, err)

	assert.Equal(t, "compra.json", preview.File)
	assert.Equal(t, "DTE-001", preview.ControlNumber)
	assert.Equal(t, "5B2F3C4D-1A2B-4C3D-8E9F-0A1B2C3D4E5F", preview.GenerationCode)
	assert.Equal(t, "Distribuidora Acme", preview.Issuer)
	assert.Equal(t, "Acme Corp", preview.Receiver)
	assert.Equal(t, "2024-01-10", preview.IssueDate)
	assert.Equal(t, []string{"Ítem 1", "Ítem 2", "Ítem 3"}, preview.Items)
	assert.Equal(t, 5, preview.ItemCount)
	assert.True(t, preview.MoreItems)
	assert.Equal(t, "$5.00", preview.TotalDisplay)
}

func TestInspect_PocosItems(t *testing.T) {
	preview, err := purchases.NewIngestUseCase("$").Inspect("a.json", []byte(dteWithItems(2)))
	require.NoError(t, err)
	assert.Len(t, preview.Items, 2)
	assert.False(t, preview.MoreItems)

	preview, err = purchases.NewIngestUseCase("$").Inspect("b.json", []byte(dteWithItems(0)))
	require.NoError(t, err)
	assert.Empty(t, preview.Items)
	assert.Equal(t, 0, preview.ItemCount)
}

func TestInspect_Rechazos(t *testing.T) {
	uc := purchases.NewIngestUseCase("$")

	_, err := uc.Inspect("roto.json", []byte("{not json"))
	assert.ErrorIs(t, err, domain.ErrInvalidEncoding)

	_, err = uc.Inspect("incompleto.json", []byte(`{"identificacion": {}}`))
	assert.ErrorIs(t, err, domain.ErrMalformedStructure)
	var verr *dte.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "emisor")
}
