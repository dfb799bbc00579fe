package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los indicadores del tablero.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del tablero.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

func (r *DashboardRepo) CountActiveTickets(ctx context.Context, doneStatuses []string, asOf time.Time) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM tickets
	WHERE created_at < $2
	  AND NOT (status = ANY($1) AND updated_at < $2)`
	var n int
	if err := r.q.QueryRow(ctx, query, nonNil(doneStatuses), asOf).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard active tickets: %w", err)
	}
	return n, nil
}

func (r *DashboardRepo) CountCompletedTickets(ctx context.Context, doneStatuses []string, from, to time.Time) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM tickets
	WHERE status = ANY($1)
	  AND updated_at >= $2 AND updated_at < $3`
	var n int
	if err := r.q.QueryRow(ctx, query, nonNil(doneStatuses), from, to).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard completed tickets: %w", err)
	}
	return n, nil
}

// AverageRepairDays AVG en NUMERIC para leerlo directo a decimal.Decimal (codec pgx-shopspring-decimal).
func (r *DashboardRepo) AverageRepairDays(ctx context.Context, doneStatuses []string, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (updated_at - created_at))::NUMERIC / 86400), 0)
	FROM tickets
	WHERE status = ANY($1)
	  AND updated_at >= $2 AND updated_at < $3`
	var avg decimal.Decimal
	if err := r.q.QueryRow(ctx, query, nonNil(doneStatuses), from, to).Scan(&avg); err != nil {
		return decimal.Zero, fmt.Errorf("dashboard average repair days: %w", err)
	}
	return avg, nil
}

func (r *DashboardRepo) CountPendingRMAs(ctx context.Context, closedStatuses []string, asOf time.Time) (int, error) {
	closed := make([]string, 0, len(closedStatuses))
	for _, s := range closedStatuses {
		closed = append(closed, strings.ToLower(s))
	}
	const query = `
	SELECT COUNT(*)
	FROM rmas
	WHERE created_at < $2
	  AND lower(btrim(status)) <> ALL($1)`
	var n int
	if err := r.q.QueryRow(ctx, query, closed, asOf).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard pending rmas: %w", err)
	}
	return n, nil
}

func (r *DashboardRepo) RecentTickets(ctx context.Context, limit int) ([]*entity.Ticket, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+ticketColumns+` FROM tickets
		ORDER BY updated_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard recent tickets: %w", err)
	}
	return collectTickets(rows)
}

// nonNil evita enviar NULL como array: status = ANY(NULL) nunca es verdadero pero tampoco falso.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
