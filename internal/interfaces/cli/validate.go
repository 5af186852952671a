package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/dte-compras/internal/application/dto"
	"github.com/jhoicas/dte-compras/internal/domain"
)

// validateResult resultado por archivo (salida --json).
type validateResult struct {
	File    string             `json:"file"`
	Valid   bool               `json:"valid"`
	Preview *dto.UploadPreview `json:"preview,omitempty"`
	Error   *dto.ErrorResponse `json:"error,omitempty"`
}

func newValidateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [archivo.json ...]",
		Short: "Valida archivos DTE y muestra un resumen de cada uno",
		Long: `Valida la estructura de cada archivo (JSON bien formado con identificación,
emisor, receptor, cuerpo del documento y resumen). Sin argumentos valida
todos los archivos del directorio --dir.`,
		Example: `  dte validate compra1.json compra2.json
  dte validate --dir ./dte --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				var err error
				if files, err = listDir(app.dir); err != nil {
					return err
				}
			}

			results := make([]validateResult, 0, len(files))
			rejected := 0
			for _, path := range files {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				res := app.validateFile(path)
				if !res.Valid {
					rejected++
				}
				results = append(results, res)
			}

			out := cmd.OutOrStdout()
			if app.asJSON {
				if err := writeJSON(out, results); err != nil {
					return err
				}
			} else {
				printValidation(out, results)
			}

			if rejected > 0 {
				return fmt.Errorf("%w: %d de %d archivos rechazados", domain.ErrInvalidInput, rejected, len(results))
			}
			return nil
		},
	}
}

func (a *App) validateFile(path string) validateResult {
	name := filepath.Base(path)
	res := validateResult{File: name}
	fail := func(err error) validateResult {
		resp := errorResponse(err)
		res.Error = &resp
		return res
	}

	if !strings.EqualFold(filepath.Ext(name), ".json") {
		return fail(fmt.Errorf("%w: solo se aceptan archivos .json", domain.ErrInvalidInput))
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return fail(err)
	}
	preview, err := a.ingest.Inspect(name, text)
	if err != nil {
		return fail(err)
	}
	res.Valid, res.Preview = true, preview
	return res
}

func printValidation(w io.Writer, results []validateResult) {
	for _, r := range results {
		if !r.Valid {
			fmt.Fprintf(w, "✗ %s: %s\n", r.File, r.Error.Message)
			continue
		}
		p := r.Preview
		fmt.Fprintf(w, "✓ %s\n", r.File)
		fmt.Fprintf(w, "  Emisor:   %s\n", p.Issuer)
		fmt.Fprintf(w, "  Receptor: %s\n", p.Receiver)
		items := strings.Join(p.Items, ", ")
		if p.MoreItems {
			items += " …y más"
		}
		if p.ItemCount == 0 {
			items = "(sin ítems)"
		}
		fmt.Fprintf(w, "  Ítems:    %s\n", items)
		fmt.Fprintf(w, "  Total:    %s\n", p.TotalDisplay)
		for _, warn := range p.Warnings {
			fmt.Fprintf(w, "  Aviso:    %s\n", warn)
		}
	}
}

// listDir archivos (no directorios) del directorio, en orden de nombre.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("leer directorio %s: %w", dir, err)
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: el directorio %s no contiene archivos", domain.ErrInvalidInput, dir)
	}
	return files, nil
}
