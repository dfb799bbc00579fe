package repository

import (
	"context"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// GetByName busca sin distinguir mayúsculas; nil si no existe.
	GetByName(ctx context.Context, name string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
}
