package repository

import (
	"context"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

// RMARepository define el puerto de persistencia para RMA.
type RMARepository interface {
	// Upsert actualiza el RMA con el mismo número si existe; si no (o el número está vacío) inserta.
	Upsert(ctx context.Context, rma *entity.RMA) error
	GetByNumber(ctx context.Context, rmaNumber string) (*entity.RMA, error)
	List(ctx context.Context) ([]*entity.RMA, error)
}
