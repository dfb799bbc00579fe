package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

// DashboardRepository consultas de solo lectura para los indicadores del tablero.
// doneStatuses son los estados de ticket que cuentan como reparación terminada;
// la fecha de terminación es UpdatedAt del ticket.
type DashboardRepository interface {
	// CountActiveTickets tickets creados antes de asOf que no estaban terminados en asOf.
	CountActiveTickets(ctx context.Context, doneStatuses []string, asOf time.Time) (int, error)

	// CountCompletedTickets tickets terminados en [from, to).
	CountCompletedTickets(ctx context.Context, doneStatuses []string, from, to time.Time) (int, error)

	// AverageRepairDays promedio de días (creación → terminación) de los terminados en [from, to).
	// Devuelve cero si no hay tickets terminados en el período.
	AverageRepairDays(ctx context.Context, doneStatuses []string, from, to time.Time) (decimal.Decimal, error)

	// CountPendingRMAs RMAs registrados antes de asOf cuyo estado no está en closedStatuses (sin distinguir mayúsculas).
	CountPendingRMAs(ctx context.Context, closedStatuses []string, asOf time.Time) (int, error)

	// RecentTickets los limit tickets actualizados más recientemente.
	RecentTickets(ctx context.Context, limit int) ([]*entity.Ticket, error)
}
