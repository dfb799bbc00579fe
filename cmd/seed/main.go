// seed carga el conjunto de demostración (clientes, RMAs, órdenes, tickets y comunicaciones)
// en la base PostgreSQL configurada, aplicando antes las migraciones pendientes.
//
// Uso: go run ./cmd/seed
// Los registros que ya existen (mismo id o número) se conservan.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/rma-tracker/internal/bootstrap"
	"github.com/jhoicas/rma-tracker/internal/domain"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/demo"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/rma-tracker/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	n, err := seed(ctx, bootstrap.PostgresRepositories(pool), demo.New(time.Now()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Seed completado: %d registros nuevos\n", n)
}

func seed(ctx context.Context, repos bootstrap.Repositories, ds demo.Dataset) (int, error) {
	created := 0
	skipDuplicate := func(err error) error {
		if err == nil {
			created++
			return nil
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return nil
		}
		return err
	}
	for _, c := range ds.Customers {
		if err := skipDuplicate(repos.Customers.Create(ctx, c)); err != nil {
			return created, fmt.Errorf("cliente %s: %w", c.Name, err)
		}
	}
	for _, r := range ds.RMAs {
		if err := repos.RMAs.Upsert(ctx, r); err != nil {
			return created, fmt.Errorf("RMA %s: %w", r.RMANumber, err)
		}
	}
	for _, o := range ds.ServiceOrders {
		if err := repos.ServiceOrders.Upsert(ctx, o); err != nil {
			return created, fmt.Errorf("orden %s: %w", o.Number, err)
		}
	}
	for _, t := range ds.Tickets {
		if err := skipDuplicate(repos.Tickets.Create(ctx, t)); err != nil {
			return created, fmt.Errorf("ticket %s: %w", t.ID, err)
		}
	}
	for _, c := range ds.Communications {
		if err := skipDuplicate(repos.Communications.Create(ctx, c)); err != nil {
			return created, fmt.Errorf("comunicación %s: %w", c.ID, err)
		}
	}
	return created, nil
}
