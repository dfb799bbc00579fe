package repository

import (
	"context"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

// TicketRepository define el puerto de persistencia para Ticket.
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	// List devuelve todos los tickets; status vacío = sin filtro, otro valor = coincidencia exacta.
	List(ctx context.Context, status string) ([]*entity.Ticket, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
}
