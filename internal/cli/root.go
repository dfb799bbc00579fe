// Package cli implementa rmactl: importación de hojas, reportes y consultas sobre el mismo
// contenedor de casos de uso que expone la API.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rma-tracker/internal/bootstrap"
	"github.com/jhoicas/rma-tracker/pkg/clock"
	"github.com/jhoicas/rma-tracker/pkg/config"
	"github.com/jhoicas/rma-tracker/pkg/logger"
)

// ContainerFactory construye el contenedor de casos de uso para un comando.
type ContainerFactory func(ctx context.Context, debug bool) (*bootstrap.Container, error)

func Execute() {
	cmd := NewRootCmd(DefaultContainer)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// DefaultContainer carga la configuración del entorno y arma el contenedor.
// Sin --debug los logs se descartan para no ensuciar la salida.
func DefaultContainer(ctx context.Context, debug bool) (*bootstrap.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.Nop()
	if debug {
		log = logger.New(logger.Config{Env: "development", Level: "debug", Output: os.Stderr})
	}
	return bootstrap.New(ctx, cfg, log, clock.NewSystem())
}

// NewRootCmd arma el árbol de comandos sobre la fábrica indicada.
func NewRootCmd(factory ContainerFactory) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "rmactl",
		Short:        "rmactl: órdenes de reparación desde la terminal",
		SilenceUsage: true,
	}

	open := func(cmd *cobra.Command) (*bootstrap.Container, error) {
		return factory(cmd.Context(), debug)
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")
	cmd.AddCommand(importCmd(open))
	cmd.AddCommand(reportCmd(open))
	cmd.AddCommand(ticketsCmd(open))
	cmd.AddCommand(dbCmd(open))
	return cmd
}

type opener func(cmd *cobra.Command) (*bootstrap.Container, error)

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
