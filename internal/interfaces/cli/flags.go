package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/dte-compras/internal/domain"
	"github.com/jhoicas/dte-compras/internal/domain/dte"
	"github.com/jhoicas/dte-compras/internal/domain/filter"
)

// criteriaFlags los cinco criterios de búsqueda como flags.
type criteriaFlags struct {
	client  string
	control string
	product string
	from    string
	to      string
}

func (f *criteriaFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.client, "cliente", "", "nombre del receptor contiene (sin distinguir mayúsculas)")
	fl.StringVar(&f.control, "dte", "", "número de control contiene")
	fl.StringVar(&f.product, "producto", "", "descripción de algún ítem contiene")
	fl.StringVar(&f.from, "desde", "", "fecha de emisión desde, inclusiva (AAAA-MM-DD o DD/MM/AAAA)")
	fl.StringVar(&f.to, "hasta", "", "fecha de emisión hasta, inclusiva (AAAA-MM-DD o DD/MM/AAAA)")
}

// criteria convierte los flags; una fecha ilegible es ErrInvalidInput.
func (f *criteriaFlags) criteria() (filter.Criteria, error) {
	c := filter.Criteria{
		ClientNameContains:      f.client,
		ControlNumberContains:   f.control,
		ItemDescriptionContains: f.product,
	}
	if f.from != "" {
		d, err := dte.NormalizeDate(f.from)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("%w: --desde %q", domain.ErrInvalidInput, f.from)
		}
		c.IssuedFrom = d
	}
	if f.to != "" {
		d, err := dte.NormalizeDate(f.to)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("%w: --hasta %q", domain.ErrInvalidInput, f.to)
		}
		c.IssuedTo = d
	}
	if err := c.Validate(); err != nil {
		return filter.Criteria{}, err
	}
	return c.Normalized(), nil
}

// exportFlags formato y destino de los reportes.
type exportFlags struct {
	format string
	outDir string
}

func (f *exportFlags) register(cmd *cobra.Command, defaultDir string) {
	fl := cmd.Flags()
	fl.StringVarP(&f.format, "formato", "f", "", "formato de salida: pdf | xlsx (por defecto REPORT_FORMAT)")
	fl.StringVarP(&f.outDir, "salida", "o", defaultDir, "directorio donde se guarda el reporte")
}
