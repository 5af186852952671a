package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/dte-compras/internal/application/report"
	"github.com/jhoicas/dte-compras/internal/domain"
)

// exportResult salida --json de report e invoice.
type exportResult struct {
	File     string   `json:"file"`
	Pages    int      `json:"pages"`
	Bytes    int      `json:"bytes"`
	Warnings []string `json:"warnings,omitempty"`
}

func newReportCommand(app *App) *cobra.Command {
	var (
		crit criteriaFlags
		exp  exportFlags
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Exporta el reporte resumen de las compras que cumplen los criterios",
		Example: `  dte report --cliente acme -f pdf -o ./reportes
  dte report --desde 01/02/2024 -f xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := crit.criteria()
			if err != nil {
				return err
			}
			renderer, err := app.renderer(exp.format)
			if err != nil {
				return err
			}
			records, err := app.list.Search(cmd.Context(), c)
			if err != nil {
				return err
			}

			doc, err := renderer.RenderSummaryReport(cmd.Context(), records, c)
			if errors.Is(err, domain.ErrEmptyResultSet) {
				// Sin resultados no es una falla: se informa y no se genera archivo.
				fmt.Fprintln(cmd.ErrOrStderr(), "No hay resultados para exportar.")
				return nil
			}
			if err != nil {
				return err
			}
			return app.save(cmd.OutOrStdout(), doc, exp.outDir)
		},
	}
	crit.register(cmd)
	exp.register(cmd, app.cfg.Report.OutputDir)
	return cmd
}

func newInvoiceCommand(app *App) *cobra.Command {
	var exp exportFlags
	cmd := &cobra.Command{
		Use:     "invoice <codigo-generacion>",
		Short:   "Exporta el reporte de un documento",
		Example: `  dte invoice 5B2F3C4D-1A2B-4C3D-8E9F-0A1B2C3D4E5F -f pdf`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := app.renderer(exp.format)
			if err != nil {
				return err
			}
			rec, err := app.list.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			doc, err := renderer.RenderDocumentReport(cmd.Context(), *rec)
			if err != nil {
				return err
			}
			return app.save(cmd.OutOrStdout(), doc, exp.outDir)
		},
	}
	exp.register(cmd, app.cfg.Report.OutputDir)
	return cmd
}

// save escribe el documento en dir e informa ruta, páginas y avisos.
func (a *App) save(w io.Writer, doc *report.ReportDocument, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de salida: %w", err)
	}
	path := filepath.Join(dir, doc.Filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear archivo: %w", err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", path, err)
	}

	res := exportResult{File: path, Pages: doc.Pages, Bytes: len(doc.Content)}
	for _, warn := range doc.Warnings {
		res.Warnings = append(res.Warnings, warn.Error())
	}

	if a.asJSON {
		return writeJSON(w, res)
	}
	fmt.Fprintf(w, "Reporte generado: %s (páginas: %d)\n", res.File, res.Pages)
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "  Aviso: %s\n", warn)
	}
	return nil
}
