package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rma-tracker/internal/application/analytics"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/statuscatalog"
	"github.com/jhoicas/rma-tracker/pkg/clock"
)

func date(month time.Month, day, hour int) time.Time {
	return time.Date(2024, month, day, hour, 0, 0, 0, time.UTC)
}

func TestGetSummary_IndicadoresYVariacion(t *testing.T) {
	now := date(time.March, 15, 12)
	store := memory.NewStore()
	tickets := memory.NewTicketRepository(store)
	ctx := context.Background()

	for _, tk := range []*entity.Ticket{
		{ID: "A", Customer: "Acme Corp", Status: "Completed", CreatedAt: date(time.March, 1, 12), UpdatedAt: date(time.March, 5, 12)},
		{ID: "B", Customer: "TechCo", Status: "Shipped", CreatedAt: date(time.February, 1, 12), UpdatedAt: date(time.February, 10, 12)},
		{ID: "C", Customer: "Global", Status: "Rework", CreatedAt: date(time.March, 10, 12), UpdatedAt: now.Add(-2 * time.Hour)},
		{ID: "D", Customer: "Acme Corp", Status: "Awaiting Test", CreatedAt: date(time.February, 20, 12), UpdatedAt: date(time.February, 20, 12)},
	} {
		require.NoError(t, tickets.Create(ctx, tk))
	}

	uc := analytics.NewDashboardUseCase(memory.NewDashboardRepository(store), statuscatalog.Default(), clock.NewFixed(now))
	resp, err := uc.GetSummary(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Stats, 4)

	byName := map[string]struct{ value, change, trend string }{}
	for _, s := range resp.Stats {
		byName[s.Name] = struct{ value, change, trend string }{s.Value, s.Change, s.Trend}
	}

	assert.Equal(t, "2", byName[analytics.StatActiveRepairs].value)
	assert.Equal(t, "+100.00%", byName[analytics.StatActiveRepairs].change)

	assert.Equal(t, "4.0 days", byName[analytics.StatAverageRepairTime].value)
	assert.Equal(t, "-55.56%", byName[analytics.StatAverageRepairTime].change)
	assert.Equal(t, "down", byName[analytics.StatAverageRepairTime].trend)

	assert.Equal(t, "1", byName[analytics.StatCompletedThisMonth].value)
	assert.Equal(t, "+0.00%", byName[analytics.StatCompletedThisMonth].change)

	assert.Equal(t, "0", byName[analytics.StatPendingRMAs].value)

	require.Len(t, resp.RecentUpdates, 4)
	assert.Equal(t, "C", resp.RecentUpdates[0].ServiceOrder)
	assert.Equal(t, "2h ago", resp.RecentUpdates[0].UpdatedAgo)
	assert.Equal(t, "A", resp.RecentUpdates[1].ServiceOrder)
}

func TestPercentChange(t *testing.T) {
	d := decimal.NewFromInt
	assert.Equal(t, "+4.75%", analytics.FormatChange(analytics.PercentChange(decimal.RequireFromString("104.75"), d(100))))
	assert.Equal(t, "-50.00%", analytics.FormatChange(analytics.PercentChange(d(1), d(2))))
	assert.Equal(t, "+100.00%", analytics.FormatChange(analytics.PercentChange(d(3), d(0))))
	assert.Equal(t, "+0.00%", analytics.FormatChange(analytics.PercentChange(d(0), d(0))))
}

func TestRelativeTime(t *testing.T) {
	now := date(time.March, 15, 12)
	assert.Equal(t, "just now", analytics.RelativeTime(now.Add(-10*time.Second), now))
	assert.Equal(t, "15m ago", analytics.RelativeTime(now.Add(-15*time.Minute), now))
	assert.Equal(t, "4h ago", analytics.RelativeTime(now.Add(-4*time.Hour), now))
	assert.Equal(t, "3d ago", analytics.RelativeTime(now.Add(-75*time.Hour), now))
}
