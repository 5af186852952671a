package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/dte-compras/internal/application/dto"
)

func newListCommand(app *App) *cobra.Command {
	var (
		crit criteriaFlags
		page dto.PageRequest
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista las compras que cumplen los criterios",
		Example: `  dte list --cliente acme
  dte list --desde 2024-02-01 --hasta 2024-02-28 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := crit.criteria()
			if err != nil {
				return err
			}
			resp, err := app.list.ListPage(cmd.Context(), c, page)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if app.asJSON {
				return writeJSON(out, resp)
			}
			return printList(out, resp)
		},
	}
	crit.register(cmd)
	cmd.Flags().IntVar(&page.Limit, "limit", 50, "máximo de filas")
	cmd.Flags().IntVar(&page.Offset, "offset", 0, "filas a saltar")
	return cmd
}

func printList(w io.Writer, resp *dto.PurchaseListResponse) error {
	if resp.Page.Total == 0 {
		_, err := fmt.Fprintln(w, "No se encontraron compras.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "N° DE CONTROL\tRECEPTOR\tTOTAL\tFECHA\tCÓDIGO DE GENERACIÓN")
	for _, it := range resp.Items {
		date := it.IssueDate
		if date == "" {
			date = "—"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", it.ControlNumber, it.Receiver, it.TotalDisplay, date, it.GenerationCode)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	shown := len(resp.Items)
	if shown < resp.Page.Total {
		_, err := fmt.Fprintf(w, "\nMostrando %d-%d de %d.\n", resp.Page.Offset+1, resp.Page.Offset+shown, resp.Page.Total)
		return err
	}
	return nil
}
