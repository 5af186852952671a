// Package cli expone los casos de uso como comandos de terminal (cobra).
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/dte-compras/internal/application/dto"
	"github.com/jhoicas/dte-compras/internal/application/purchases"
	"github.com/jhoicas/dte-compras/internal/application/report"
	"github.com/jhoicas/dte-compras/internal/domain"
	"github.com/jhoicas/dte-compras/internal/infrastructure/jsonfs"
	infrapdf "github.com/jhoicas/dte-compras/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/dte-compras/internal/infrastructure/xlsx"
	"github.com/jhoicas/dte-compras/pkg/config"
	"github.com/jhoicas/dte-compras/pkg/logger"
)

// Version se sobrescribe en el build con -ldflags.
var Version = "dev"

// App dependencias compartidas por los comandos. Los casos de uso se arman en
// PersistentPreRunE, cuando los flags globales ya están leídos.
type App struct {
	cfg config.Config
	log *logger.Logger

	// flags globales
	dir      string
	lang     string
	logLevel string
	asJSON   bool

	source *jsonfs.DirectorySource
	list   *purchases.ListUseCase
	ingest *purchases.IngestUseCase
}

// NewRootCommand construye el árbol de comandos.
func NewRootCommand(cfg config.Config) *cobra.Command {
	app := &App{cfg: cfg}

	root := &cobra.Command{
		Use:   "dte",
		Short: "Consulta y reportes de compras a partir de DTE (JSON)",
		Long: `dte valida Documentos Tributarios Electrónicos en formato JSON, los filtra
por cliente, número de control, producto y fecha de emisión, y exporta
reportes paginados en PDF o Excel.

Variables de entorno: APP_ENV, LOG_LEVEL, DTE_SOURCE_DIR, REPORT_FORMAT,
REPORT_OUTPUT_DIR, REPORT_LANGUAGE, REPORT_TIMEZONE, REPORT_CURRENCY_SYMBOL,
REPORT_STRIPED. Los flags tienen prioridad.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&app.dir, "dir", "d", cfg.Source.Dir, "directorio con los archivos .json")
	pf.StringVar(&app.lang, "lang", cfg.Report.Language, "idioma de los reportes (es, en)")
	pf.StringVar(&app.logLevel, "log-level", cfg.Log.Level, "nivel de log (trace, debug, info, warn, error, disabled)")
	pf.BoolVar(&app.asJSON, "json", false, "salida en JSON")

	root.AddCommand(
		newValidateCommand(app),
		newListCommand(app),
		newReportCommand(app),
		newInvoiceCommand(app),
	)
	return root
}

func (a *App) init(cmd *cobra.Command) error {
	a.log = logger.New(logger.Config{
		Env:    a.cfg.App.Env,
		Level:  a.logLevel,
		Output: cmd.ErrOrStderr(),
	})
	a.source = jsonfs.NewDirectorySource(a.dir)
	a.list = purchases.NewListUseCase(a.source, a.cfg.Report.CurrencySymbol)
	a.ingest = purchases.NewIngestUseCase(a.cfg.Report.CurrencySymbol)

	a.log.Debug().
		Str("cmd", cmd.Name()).
		Str("dir", a.dir).
		Str("lang", a.lang).
		Msg("comando iniciado")
	return nil
}

// renderer arma el Renderer para el formato pedido ("" = el configurado).
func (a *App) renderer(format string) (*report.Renderer, error) {
	if format == "" {
		format = a.cfg.Report.Format
	}

	var gen report.Generator
	switch report.Format(format) {
	case report.FormatPDF:
		gen = infrapdf.NewMarotoPDFGenerator(a.cfg.App.Name)
	case report.FormatXLSX:
		gen = infraxlsx.NewExcelizeGenerator(a.cfg.App.Name)
	default:
		return nil, fmt.Errorf("%w: formato %q no soportado (pdf | xlsx)", domain.ErrInvalidInput, format)
	}

	return report.NewRenderer(gen, report.Options{
		Language:       a.lang,
		CurrencySymbol: a.cfg.Report.CurrencySymbol,
		Location:       a.cfg.Report.Location(),
		Striped:        a.cfg.Report.Striped,
	}), nil
}

// Execute corre el comando y devuelve el código de salida del proceso.
func Execute(ctx context.Context, root *cobra.Command) int {
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	resp := errorResponse(err)
	log := logger.WithComponent("cli")
	log.Error().Err(err).Str("code", resp.Code).Msg("comando fallido")

	asJSON, _ := root.PersistentFlags().GetBool("json")
	if asJSON {
		_ = writeJSON(root.OutOrStdout(), resp)
	} else {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %s\n", resp.Message)
	}
	return exitCode(err)
}

// ── Errores ───────────────────────────────────────────────────────────────────

// errorResponse traduce errores de dominio a un código estable.
func errorResponse(err error) dto.ErrorResponse {
	switch {
	case errors.Is(err, domain.ErrInvalidEncoding):
		return dto.ErrorResponse{Code: "INVALID_ENCODING", Message: err.Error()}
	case errors.Is(err, domain.ErrMalformedStructure):
		return dto.ErrorResponse{Code: "MALFORMED_STRUCTURE", Message: err.Error()}
	case errors.Is(err, domain.ErrEmptyResultSet):
		return dto.ErrorResponse{Code: "EMPTY_RESULT_SET", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, context.Canceled):
		return dto.ErrorResponse{Code: "CANCELED", Message: "operación cancelada"}
	default:
		return dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidEncoding),
		errors.Is(err, domain.ErrMalformedStructure):
		return 2
	case errors.Is(err, domain.ErrNotFound):
		return 3
	default:
		return 1
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
