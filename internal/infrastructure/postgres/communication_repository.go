package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rma-tracker/internal/domain"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
)

var _ repository.CommunicationRepository = (*CommunicationRepo)(nil)

const communicationColumns = `id, type, subject, recipient, recipient_name, date, content, status, customer_id, attach_report`

// CommunicationRepo implementación de CommunicationRepository.
type CommunicationRepo struct {
	q Querier
}

// NewCommunicationRepository construye el adaptador.
func NewCommunicationRepository(q Querier) *CommunicationRepo {
	return &CommunicationRepo{q: q}
}

func (r *CommunicationRepo) Create(ctx context.Context, c *entity.Communication) error {
	query := `INSERT INTO communications (` + communicationColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Type, c.Subject, c.To, c.ToName, c.Date, c.Content, c.Status, c.CustomerID, c.AttachReport,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert communication: %w", err)
	}
	return nil
}

func (r *CommunicationRepo) GetByID(ctx context.Context, id string) (*entity.Communication, error) {
	return scanCommunication(r.q.QueryRow(ctx, `SELECT `+communicationColumns+` FROM communications WHERE id = $1`, id))
}

// List más recientes primero; status vacío = todas.
func (r *CommunicationRepo) List(ctx context.Context, status string) ([]*entity.Communication, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+communicationColumns+` FROM communications
		WHERE $1 = '' OR status = $1
		ORDER BY date DESC, id`, status)
	if err != nil {
		return nil, fmt.Errorf("list communications: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Communication, 0)
	for rows.Next() {
		c, err := scanCommunication(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CommunicationRepo) Update(ctx context.Context, c *entity.Communication) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE communications SET type = $2, subject = $3, recipient = $4, recipient_name = $5,
		    date = $6, content = $7, status = $8, customer_id = $9, attach_report = $10
		WHERE id = $1`,
		c.ID, c.Type, c.Subject, c.To, c.ToName, c.Date, c.Content, c.Status, c.CustomerID, c.AttachReport,
	)
	if err != nil {
		return fmt.Errorf("update communication: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCommunication(row pgx.Row) (*entity.Communication, error) {
	var c entity.Communication
	err := row.Scan(&c.ID, &c.Type, &c.Subject, &c.To, &c.ToName, &c.Date, &c.Content, &c.Status, &c.CustomerID, &c.AttachReport)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan communication: %w", err)
	}
	return &c, nil
}
