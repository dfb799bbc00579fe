package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rma-tracker/internal/domain"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

const ticketColumns = `id, rma, customer, status, product, serial, description, created_at, updated_at`

// TicketRepo implementación de TicketRepository.
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador.
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	query := `INSERT INTO tickets (` + ticketColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.RMA, t.Customer, t.Status, t.Product, t.Serial, t.Description, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (r *TicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	return scanTicket(r.q.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id))
}

// List status vacío = todos; otro valor = coincidencia exacta.
func (r *TicketRepo) List(ctx context.Context, status string) ([]*entity.Ticket, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+ticketColumns+` FROM tickets
		WHERE $1 = '' OR status = $1
		ORDER BY id`, status)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return collectTickets(rows)
}

func (r *TicketRepo) Update(ctx context.Context, t *entity.Ticket) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE tickets SET rma = $2, customer = $3, status = $4, product = $5, serial = $6,
		    description = $7, updated_at = $8
		WHERE id = $1`,
		t.ID, t.RMA, t.Customer, t.Status, t.Product, t.Serial, t.Description, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectTickets(rows pgx.Rows) ([]*entity.Ticket, error) {
	defer rows.Close()
	list := make([]*entity.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var t entity.Ticket
	err := row.Scan(&t.ID, &t.RMA, &t.Customer, &t.Status, &t.Product, &t.Serial, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}
	return &t, nil
}
