package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func reportCmd(open opener) *cobra.Command {
	var dir string
	var noXML bool

	c := &cobra.Command{
		Use:   "report <customer-id>",
		Short: "Write the customer's repair status report (PDF and XML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cont, err := open(cmd)
			if err != nil {
				return err
			}
			defer cont.Close()

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			name, pdf, err := cont.Reports.DownloadPDF(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			written := []string{}
			p, err := writeFile(dir, name, pdf)
			if err != nil {
				return err
			}
			written = append(written, p)

			if !noXML {
				name, xml, err := cont.Reports.DownloadXML(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				p, err := writeFile(dir, name, xml)
				if err != nil {
					return err
				}
				written = append(written, p)
			}

			th := defaultTheme()
			fmt.Fprintln(out(cmd), th.Title.Render("Report downloaded successfully"))
			for _, p := range written {
				fmt.Fprintf(out(cmd), "- %s\n", p)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&dir, "output", "o", ".", "Output directory")
	c.Flags().BoolVar(&noXML, "no-xml", false, "Skip the XML export")
	return c
}

func writeFile(dir, name string, data []byte) (string, error) {
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", err
	}
	return p, nil
}
