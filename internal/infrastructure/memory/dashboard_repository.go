package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepository)(nil)

// DashboardRepository calcula los indicadores recorriendo los mapas del store.
type DashboardRepository struct {
	store *Store
}

// NewDashboardRepository crea el repositorio.
func NewDashboardRepository(store *Store) *DashboardRepository {
	return &DashboardRepository{store: store}
}

func (r *DashboardRepository) CountActiveTickets(ctx context.Context, doneStatuses []string, asOf time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	done := toSet(doneStatuses)
	n := 0
	for _, t := range r.store.tickets {
		if !t.CreatedAt.Before(asOf) {
			continue
		}
		// terminado antes de asOf: ya no estaba activo
		if done[t.Status] && t.UpdatedAt.Before(asOf) {
			continue
		}
		n++
	}
	return n, nil
}

func (r *DashboardRepository) CountCompletedTickets(ctx context.Context, doneStatuses []string, from, to time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	done := toSet(doneStatuses)
	n := 0
	for _, t := range r.store.tickets {
		if done[t.Status] && inRange(t.UpdatedAt, from, to) {
			n++
		}
	}
	return n, nil
}

func (r *DashboardRepository) AverageRepairDays(ctx context.Context, doneStatuses []string, from, to time.Time) (decimal.Decimal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	done := toSet(doneStatuses)
	total := decimal.Zero
	n := 0
	for _, t := range r.store.tickets {
		if !done[t.Status] || !inRange(t.UpdatedAt, from, to) {
			continue
		}
		days := decimal.NewFromFloat(t.UpdatedAt.Sub(t.CreatedAt).Hours()).Div(decimal.NewFromInt(24))
		total = total.Add(days)
		n++
	}
	if n == 0 {
		return decimal.Zero, nil
	}
	return total.Div(decimal.NewFromInt(int64(n))), nil
}

func (r *DashboardRepository) CountPendingRMAs(ctx context.Context, closedStatuses []string, asOf time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	closed := make(map[string]bool, len(closedStatuses))
	for _, st := range closedStatuses {
		closed[strings.ToLower(st)] = true
	}
	n := 0
	for _, rma := range r.store.rmas {
		if rma.CreatedAt.Before(asOf) && !closed[strings.ToLower(strings.TrimSpace(rma.Status))] {
			n++
		}
	}
	return n, nil
}

func (r *DashboardRepository) RecentTickets(ctx context.Context, limit int) ([]*entity.Ticket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Ticket, 0, len(r.store.tickets))
	for _, t := range r.store.tickets {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}
