package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/bootstrap"
)

type importFunc func(c *bootstrap.Container, ctx context.Context, name string, r io.Reader) (*dto.ImportResult, error)

func importCmd(open opener) *cobra.Command {
	c := &cobra.Command{
		Use:   "import",
		Short: "Import a spreadsheet (.xlsx or .csv) into the tracker",
	}

	c.AddCommand(importKindCmd(open, "rma", "Import an RMA sheet",
		func(c *bootstrap.Container, ctx context.Context, name string, r io.Reader) (*dto.ImportResult, error) {
			return c.Import.ImportRMA(ctx, name, r)
		}))
	c.AddCommand(importKindCmd(open, "service-orders", "Import a service order sheet",
		func(c *bootstrap.Container, ctx context.Context, name string, r io.Reader) (*dto.ImportResult, error) {
			return c.Import.ImportServiceOrders(ctx, name, r)
		}))
	return c
}

func importKindCmd(open opener, use, short string, run importFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			cont, err := open(cmd)
			if err != nil {
				return err
			}
			defer cont.Close()

			res, err := run(cont, cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			th := defaultTheme()
			fmt.Fprintln(out(cmd), th.OK.Render(res.Message))
			fmt.Fprintf(out(cmd), "%s %d\n", th.Faint.Render("Processed:"), res.Processed)
			return nil
		},
	}
}
