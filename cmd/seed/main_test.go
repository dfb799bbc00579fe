package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rma-tracker/internal/bootstrap"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/demo"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/memory"
)

func TestSeed_IdempotenteSobreMemoria(t *testing.T) {
	ctx := context.Background()
	repos := bootstrap.MemoryRepositories(memory.NewStore())
	ds := demo.New(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	n, err := seed(ctx, repos, ds)
	require.NoError(t, err)
	assert.Equal(t, len(ds.Customers)+len(ds.Tickets)+len(ds.Communications), n)

	again, err := seed(ctx, repos, demo.New(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Zero(t, again)

	rmas, err := repos.RMAs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rmas, len(ds.RMAs))
}
