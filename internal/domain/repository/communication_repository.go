package repository

import (
	"context"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

// CommunicationRepository define el puerto de persistencia para comunicaciones.
type CommunicationRepository interface {
	Create(ctx context.Context, c *entity.Communication) error
	GetByID(ctx context.Context, id string) (*entity.Communication, error)
	// List ordenado por fecha descendente; status vacío = todas.
	List(ctx context.Context, status string) ([]*entity.Communication, error)
	Update(ctx context.Context, c *entity.Communication) error
}
