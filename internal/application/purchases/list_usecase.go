package purchases

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/dte-compras/internal/application/dto"
	"github.com/jhoicas/dte-compras/internal/domain"
	"github.com/jhoicas/dte-compras/internal/domain/dte"
	"github.com/jhoicas/dte-compras/internal/domain/entity"
	"github.com/jhoicas/dte-compras/internal/domain/filter"
	"github.com/jhoicas/dte-compras/internal/domain/repository"
	"github.com/jhoicas/dte-compras/pkg/logger"
	"github.com/jhoicas/dte-compras/pkg/money"
)

// ListUseCase búsqueda de compras sobre la fuente de DTE.
type ListUseCase struct {
	source repository.InvoiceSource
	symbol string
	log    zerolog.Logger
}

// NewListUseCase construye el caso de uso; symbol es el prefijo de moneda ("$").
func NewListUseCase(source repository.InvoiceSource, symbol string) *ListUseCase {
	if symbol == "" {
		symbol = "$"
	}
	return &ListUseCase{
		source: source,
		symbol: symbol,
		log:    logger.WithComponent("purchases"),
	}
}

// Search valida los criterios y devuelve los registros que coinciden, en el
// orden de la fuente.
//
// Retorna:
//   - domain.ErrInvalidInput si el rango de fechas es incoherente.
func (uc *ListUseCase) Search(ctx context.Context, c filter.Criteria) ([]entity.InvoiceRecord, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	records, err := uc.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("purchases: cargar DTE: %w", err)
	}

	matches := filter.Apply(records, c)
	uc.log.Debug().
		Int("total", len(records)).
		Int("matches", len(matches)).
		Bool("sin_criterios", c.IsZero()).
		Msg("búsqueda de compras")
	return matches, nil
}

// List listado en pantalla de las compras que coinciden.
func (uc *ListUseCase) List(ctx context.Context, c filter.Criteria) ([]dto.PurchaseListItem, error) {
	matches, err := uc.Search(ctx, c)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseListItem, 0, len(matches))
	for _, r := range matches {
		items = append(items, uc.toListItem(r))
	}
	return items, nil
}

// ListPage como List pero recortado a una página.
func (uc *ListUseCase) ListPage(ctx context.Context, c filter.Criteria, page dto.PageRequest) (*dto.PurchaseListResponse, error) {
	page.DefaultPage()
	items, err := uc.List(ctx, c)
	if err != nil {
		return nil, err
	}

	total := len(items)
	start := min(page.Offset, total)
	end := min(start+page.Limit, total)
	return &dto.PurchaseListResponse{
		Items: items[start:end],
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Get obtiene un documento por código de generación.
//
// Retorna:
//   - domain.ErrInvalidInput si el código viene vacío.
//   - domain.ErrNotFound si no existe en la fuente.
func (uc *ListUseCase) Get(ctx context.Context, generationCode string) (*entity.InvoiceRecord, error) {
	code := dte.NormalizeGenerationCode(generationCode)
	if code == "" {
		return nil, fmt.Errorf("%w: código de generación requerido", domain.ErrInvalidInput)
	}
	rec, err := uc.source.GetByGenerationCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("purchases: obtener DTE: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: DTE %s", domain.ErrNotFound, code)
	}
	return rec, nil
}

func (uc *ListUseCase) toListItem(r entity.InvoiceRecord) dto.PurchaseListItem {
	item := dto.PurchaseListItem{
		GenerationCode: r.GenerationCode(),
		ControlNumber:  r.ControlNumber(),
		Receiver:       r.Receiver.Name,
		Issuer:         r.Issuer.Name,
		Total:          r.TotalPayable(),
		TotalDisplay:   money.Format(uc.symbol, r.TotalPayable()),
		Warnings:       warningStrings(r.Warnings),
	}
	if d := r.IssueDate(); !d.IsZero() {
		item.IssueDate = d.String()
	}
	return item
}

func warningStrings(ws []entity.Warning) []string {
	if len(ws) == 0 {
		return nil
	}
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.String())
	}
	return out
}
