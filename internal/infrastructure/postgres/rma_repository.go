package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
)

var _ repository.RMARepository = (*RMARepo)(nil)

const rmaColumns = `id, rma_number, customer_name, customer_email, contact_name, contact_email,
	date_submitted, status, created_at, updated_at`

// RMARepo implementación de RMARepository (usable con pool o tx).
type RMARepo struct {
	q Querier
}

// NewRMARepository construye el adaptador. Pasar pool o tx (Querier).
func NewRMARepository(q Querier) *RMARepo {
	return &RMARepo{q: q}
}

// Upsert inserta el RMA o, si ya existe uno con el mismo número, lo reemplaza
// conservando su id y created_at. Un número vacío siempre inserta.
func (r *RMARepo) Upsert(ctx context.Context, rma *entity.RMA) error {
	args := []any{
		rma.ID, rma.RMANumber, rma.CustomerName, rma.CustomerEmail, rma.ContactName, rma.ContactEmail,
		rma.DateSubmitted, rma.Status, rma.CreatedAt, rma.UpdatedAt,
	}
	insert := `INSERT INTO rmas (` + rmaColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if rma.RMANumber == "" {
		if _, err := r.q.Exec(ctx, insert, args...); err != nil {
			return fmt.Errorf("insert rma: %w", err)
		}
		return nil
	}
	query := insert + `
		ON CONFLICT (rma_number) WHERE rma_number <> '' DO UPDATE SET
		    customer_name  = EXCLUDED.customer_name,
		    customer_email = EXCLUDED.customer_email,
		    contact_name   = EXCLUDED.contact_name,
		    contact_email  = EXCLUDED.contact_email,
		    date_submitted = EXCLUDED.date_submitted,
		    status         = EXCLUDED.status,
		    updated_at     = EXCLUDED.updated_at
		RETURNING id, created_at`
	if err := r.q.QueryRow(ctx, query, args...).Scan(&rma.ID, &rma.CreatedAt); err != nil {
		return fmt.Errorf("upsert rma %s: %w", rma.RMANumber, err)
	}
	return nil
}

// GetByNumber obtiene un RMA por número; nil si no existe o el número está vacío.
func (r *RMARepo) GetByNumber(ctx context.Context, rmaNumber string) (*entity.RMA, error) {
	query := `SELECT ` + rmaColumns + ` FROM rmas WHERE rma_number = btrim($1) AND rma_number <> ''`
	return scanRMA(r.q.QueryRow(ctx, query, rmaNumber))
}

// List devuelve todos los RMAs ordenados por número.
func (r *RMARepo) List(ctx context.Context) ([]*entity.RMA, error) {
	rows, err := r.q.Query(ctx, `SELECT `+rmaColumns+` FROM rmas ORDER BY rma_number, id`)
	if err != nil {
		return nil, fmt.Errorf("list rmas: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.RMA, 0)
	for rows.Next() {
		rma, err := scanRMA(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rma)
	}
	return list, rows.Err()
}

func scanRMA(row pgx.Row) (*entity.RMA, error) {
	var m entity.RMA
	err := row.Scan(
		&m.ID, &m.RMANumber, &m.CustomerName, &m.CustomerEmail, &m.ContactName, &m.ContactEmail,
		&m.DateSubmitted, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan rma: %w", err)
	}
	return &m, nil
}
