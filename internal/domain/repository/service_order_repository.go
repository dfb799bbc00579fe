package repository

import (
	"context"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

// ServiceOrderRepository define el puerto de persistencia para órdenes de servicio.
type ServiceOrderRepository interface {
	// Upsert actualiza la orden con el mismo número si existe; si no (o el número está vacío) inserta.
	Upsert(ctx context.Context, order *entity.ServiceOrder) error
	GetByNumber(ctx context.Context, number string) (*entity.ServiceOrder, error)
	// ListByCustomerName devuelve las órdenes cuyo RMA pertenece al cliente, ordenadas por número.
	ListByCustomerName(ctx context.Context, customerName string) ([]*entity.ServiceOrder, error)
	List(ctx context.Context) ([]*entity.ServiceOrder, error)
}
