// Package analytics contiene los casos de uso del tablero de reparaciones:
// indicadores del mes con su variación y las últimas actualizaciones.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
	"github.com/jhoicas/rma-tracker/pkg/clock"
)

const dashboardRecentUpdates = 5 // tickets en el widget "Recent Updates"

// Nombres de los indicadores.
const (
	StatActiveRepairs      = "Active Repairs"
	StatAverageRepairTime  = "Average Repair Time"
	StatPendingRMAs        = "Pending RMAs"
	StatCompletedThisMonth = "Completed This Month"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase genera los indicadores del tablero.
//
// Fuente de datos: DashboardRepository (consultas read-only).
type DashboardUseCase struct {
	repo    repository.DashboardRepository
	catalog *entity.StatusCatalog
	clock   clock.Clock
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository, catalog *entity.StatusCatalog, clk clock.Clock) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, catalog: catalog, clock: clk}
}

// GetSummary construye el DashboardResponse comparando con el mes anterior.
//
// Cinco consultas en paralelo:
//  1. activos ahora y hace un mes
//  2. tiempo medio de reparación este mes y el anterior
//  3. RMAs pendientes ahora y hace un mes
//  4. completados este mes y el anterior
//  5. últimos tickets actualizados
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	now := uc.clock.Now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)
	monthAgo := now.AddDate(0, -1, 0)
	done := uc.catalog.Done

	// ── Goroutines para paralelizar las consultas ─────────────────────────────
	type recentResult struct {
		tickets []*entity.Ticket
		err     error
	}

	count := func(f func(time.Time) (int, error), cur, prev time.Time) metricPair {
		c, err := f(cur)
		if err != nil {
			return metricPair{err: err}
		}
		p, err := f(prev)
		if err != nil {
			return metricPair{err: err}
		}
		return metricPair{cur: decimal.NewFromInt(int64(c)), prev: decimal.NewFromInt(int64(p))}
	}

	activeCh := make(chan metricPair, 1)
	avgCh := make(chan metricPair, 1)
	pendingCh := make(chan metricPair, 1)
	completedCh := make(chan metricPair, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		activeCh <- count(func(at time.Time) (int, error) {
			return uc.repo.CountActiveTickets(ctx, done, at)
		}, now, monthAgo)
	}()
	go func() {
		cur, err := uc.repo.AverageRepairDays(ctx, done, monthStart, now)
		if err != nil {
			avgCh <- metricPair{err: err}
			return
		}
		prev, err := uc.repo.AverageRepairDays(ctx, done, prevMonthStart, monthStart)
		avgCh <- metricPair{cur: cur, prev: prev, err: err}
	}()
	go func() {
		pendingCh <- count(func(at time.Time) (int, error) {
			return uc.repo.CountPendingRMAs(ctx, uc.catalog.RMAClosed, at)
		}, now, monthAgo)
	}()
	go func() {
		cur, err := uc.repo.CountCompletedTickets(ctx, done, monthStart, now)
		if err != nil {
			completedCh <- metricPair{err: err}
			return
		}
		prev, err := uc.repo.CountCompletedTickets(ctx, done, prevMonthStart, monthStart)
		completedCh <- metricPair{cur: decimal.NewFromInt(int64(cur)), prev: decimal.NewFromInt(int64(prev)), err: err}
	}()
	go func() {
		tickets, err := uc.repo.RecentTickets(ctx, dashboardRecentUpdates)
		recentCh <- recentResult{tickets, err}
	}()

	active := <-activeCh
	avg := <-avgCh
	pending := <-pendingCh
	completed := <-completedCh
	recent := <-recentCh

	if active.err != nil {
		return nil, fmt.Errorf("dashboard: reparaciones activas: %w", active.err)
	}
	if avg.err != nil {
		return nil, fmt.Errorf("dashboard: tiempo medio: %w", avg.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: RMAs pendientes: %w", pending.err)
	}
	if completed.err != nil {
		return nil, fmt.Errorf("dashboard: completados: %w", completed.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: últimas actualizaciones: %w", recent.err)
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	updates := make([]dto.RecentUpdateDTO, 0, len(recent.tickets))
	for _, t := range recent.tickets {
		updates = append(updates, dto.RecentUpdateDTO{
			ServiceOrder: t.ID,
			Status:       t.Status,
			Customer:     t.Customer,
			UpdatedAt:    t.UpdatedAt,
			UpdatedAgo:   RelativeTime(t.UpdatedAt, now),
		})
	}

	return &dto.DashboardResponse{
		Stats: []dto.StatDTO{
			stat(StatActiveRepairs, active.cur.String(), active),
			stat(StatAverageRepairTime, avg.cur.StringFixed(1)+" days", avg),
			stat(StatPendingRMAs, pending.cur.String(), pending),
			stat(StatCompletedThisMonth, completed.cur.String(), completed),
		},
		RecentUpdates: updates,
	}, nil
}

// metricPair valor del período actual y del anterior.
type metricPair struct {
	cur, prev decimal.Decimal
	err       error
}

func stat(name, value string, p metricPair) dto.StatDTO {
	change := PercentChange(p.cur, p.prev)
	trend := "up"
	if change.IsNegative() {
		trend = "down"
	}
	return dto.StatDTO{Name: name, Value: value, Change: FormatChange(change), Trend: trend}
}

// PercentChange variación porcentual (cur-prev)/prev*100 redondeada a dos decimales.
// Sin período anterior: 0 si tampoco hay valor actual, 100 en otro caso.
func PercentChange(cur, prev decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		if cur.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return cur.Sub(prev).Div(prev).Mul(hundred).Round(2)
}

// FormatChange formatea con signo explícito: "+4.75%", "-0.10%".
func FormatChange(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.StringFixed(2) + "%"
	}
	return "+" + d.StringFixed(2) + "%"
}

// RelativeTime etiqueta "hace cuánto" en inglés corto: "just now", "15m ago", "2h ago", "3d ago".
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	}
}
