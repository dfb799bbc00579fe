package postgres

import (
	"context"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/pkg/config"
)

func TestMigrationFiles_Embebidas(t *testing.T) {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)
	script, err := migrationFiles.ReadFile(names[0])
	require.NoError(t, err)
	for _, table := range []string{"users", "customers", "rmas", "service_orders", "tickets", "communications"} {
		assert.Contains(t, string(script), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

func TestNonNil(t *testing.T) {
	assert.NotNil(t, nonNil(nil))
	assert.Equal(t, []string{"Completed"}, nonNil([]string{"Completed"}))
}

// Requiere TEST_DATABASE_URL apuntando a una base desechable.
func TestRepositorios_Integracion(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	defer pool.Close()

	_, err = Migrate(ctx, pool)
	require.NoError(t, err)
	again, err := Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Empty(t, again, "las migraciones ya aplicadas no se repiten")

	_, err = pool.Exec(ctx, `TRUNCATE users, customers, rmas, service_orders, tickets, communications`)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	rmas := NewRMARepository(pool)
	first := &entity.RMA{ID: "r1", RMANumber: "RMA-1", CustomerName: "Acme Corp", Status: "Open", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, rmas.Upsert(ctx, first))
	second := &entity.RMA{ID: "r2", RMANumber: "RMA-1", CustomerName: "Acme Corp", Status: "Closed", CreatedAt: now.Add(time.Hour), UpdatedAt: now.Add(time.Hour)}
	require.NoError(t, rmas.Upsert(ctx, second))
	assert.Equal(t, "r1", second.ID)

	got, err := rmas.GetByNumber(ctx, "RMA-1")
	require.NoError(t, err)
	assert.Equal(t, "Closed", got.Status)

	orders := NewServiceOrderRepository(pool)
	require.NoError(t, orders.Upsert(ctx, &entity.ServiceOrder{ID: "o1", Number: "SO-1", RMANumber: "RMA-1", CreatedAt: now, UpdatedAt: now}))
	list, err := orders.ListByCustomerName(ctx, " acme corp ")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "SO-1", list[0].Number)

	dash := NewDashboardRepository(pool)
	pending, err := dash.CountPendingRMAs(ctx, []string{"closed", "completed"}, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, pending)
}
