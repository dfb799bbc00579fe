package importer

import (
	"context"

	"github.com/jhoicas/rma-tracker/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Si fn devuelve error no queda persistido nada de la importación.
type TxRunner interface {
	RunImport(ctx context.Context, fn func(
		rmaRepo repository.RMARepository,
		orderRepo repository.ServiceOrderRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}
