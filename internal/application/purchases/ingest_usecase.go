package purchases

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/dte-compras/internal/application/dto"
	"github.com/jhoicas/dte-compras/internal/domain/dte"
	"github.com/jhoicas/dte-compras/pkg/logger"
	"github.com/jhoicas/dte-compras/pkg/money"
)

// IngestUseCase validación de archivos antes de incorporarlos.
type IngestUseCase struct {
	symbol string
	log    zerolog.Logger
}

// NewIngestUseCase construye el caso de uso.
func NewIngestUseCase(symbol string) *IngestUseCase {
	if symbol == "" {
		symbol = "$"
	}
	return &IngestUseCase{symbol: symbol, log: logger.WithComponent("ingest")}
}

// Inspect valida el contenido de un archivo y arma la vista previa.
// Los errores son *dte.ValidationError (InvalidEncoding o MalformedStructure).
func (uc *IngestUseCase) Inspect(file string, text []byte) (*dto.UploadPreview, error) {
	rec, err := dte.Validate(text)
	if err != nil {
		uc.log.Warn().Str("file", file).Err(err).Msg("archivo rechazado")
		return nil, err
	}

	preview := &dto.UploadPreview{
		File:           file,
		ControlNumber:  rec.ControlNumber(),
		GenerationCode: rec.GenerationCode(),
		Issuer:         rec.Issuer.Name,
		Receiver:       rec.Receiver.Name,
		Items:          make([]string, 0, dto.PreviewItems),
		ItemCount:      len(rec.LineItems),
		MoreItems:      len(rec.LineItems) > dto.PreviewItems,
		TotalDisplay:   money.Format(uc.symbol, rec.TotalPayable()),
		Warnings:       warningStrings(rec.Warnings),
	}
	if d := rec.IssueDate(); !d.IsZero() {
		preview.IssueDate = d.String()
	}
	for _, it := range rec.LineItems[:min(len(rec.LineItems), dto.PreviewItems)] {
		preview.Items = append(preview.Items, it.Description)
	}

	uc.log.Info().
		Str("file", file).
		Str("control", preview.ControlNumber).
		Int("items", preview.ItemCount).
		Int("warnings", len(preview.Warnings)).
		Msg("archivo válido")
	return preview, nil
}
