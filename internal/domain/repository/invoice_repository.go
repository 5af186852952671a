package repository

import (
	"context"

	"github.com/jhoicas/dte-compras/internal/domain/entity"
)

// InvoiceSource puerto de lectura de DTE ya validados.
type InvoiceSource interface {
	// List devuelve todos los registros en el orden de carga.
	List(ctx context.Context) ([]entity.InvoiceRecord, error)
	// GetByGenerationCode devuelve (nil, nil) si no existe.
	GetByGenerationCode(ctx context.Context, code string) (*entity.InvoiceRecord, error)
}
