package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
)

func ticketsCmd(open opener) *cobra.Command {
	var status string
	var format string

	c := &cobra.Command{
		Use:   "tickets",
		Short: "List tickets, optionally filtered by status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cont, err := open(cmd)
			if err != nil {
				return err
			}
			defer cont.Close()

			items, err := cont.Tickets.List(cmd.Context(), status)
			if err != nil {
				return err
			}
			return printTickets(out(cmd), items, format)
		},
	}

	c.Flags().StringVarP(&status, "status", "s", "", "Status filter (empty or \"All\" lists everything)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printTickets(w io.Writer, items []dto.TicketResponse, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "pretty", "":
		if len(items) == 0 {
			fmt.Fprintln(w, "(no tickets found)")
			return nil
		}
		th := defaultTheme()
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, th.Title.Render("ID")+"\tRMA\tCUSTOMER\tSTATUS\tDAYS")
		for _, t := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", t.ID, t.RMA, t.Customer, th.Status.Render(t.Status), t.DaysOpen)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
