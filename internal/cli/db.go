package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
)

// databaseFlags parámetros de conexión a la base del ERP.
type databaseFlags struct {
	dto.DatabaseConfigRequest
}

// AddFlags registra host, database, username y password en el flagSet.
func (f *databaseFlags) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Host, "host", "", "Database host (required)")
	flagSet.StringVar(&f.Database, "database", "", "Database name (required)")
	flagSet.StringVarP(&f.Username, "username", "u", "", "Username (required)")
	flagSet.StringVarP(&f.Password, "password", "p", "", "Password")
}

func dbCmd(open opener) *cobra.Command {
	c := &cobra.Command{
		Use:   "db",
		Short: "External ERP database settings",
	}
	c.AddCommand(dbTestCmd(open))
	return c
}

func dbTestCmd(open opener) *cobra.Command {
	var flags databaseFlags

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test a connection to the ERP database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cont, err := open(cmd)
			if err != nil {
				return err
			}
			defer cont.Close()

			th := defaultTheme()
			if !cont.Settings.TestConnection(cmd.Context(), flags.DatabaseConfigRequest) {
				fmt.Fprintln(out(cmd), th.Fail.Render("Database connection failed"))
				return errors.New("connection failed")
			}
			fmt.Fprintln(out(cmd), th.OK.Render("Database connection successful"))
			return nil
		},
	}

	flags.AddFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("host")
	_ = cmd.MarkFlagRequired("database")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}
