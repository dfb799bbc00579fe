package memory

import (
	"context"

	"github.com/jhoicas/rma-tracker/internal/application/importer"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
)

var _ importer.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las importaciones y restaura el estado previo si fn falla.
type TxRunner struct {
	store *Store
}

// NewTxRunner crea el runner sobre store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// RunImport ejecuta fn con los repositorios del store; ante error deshace los cambios.
func (r *TxRunner) RunImport(ctx context.Context, fn func(
	rmaRepo repository.RMARepository,
	orderRepo repository.ServiceOrderRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	snap := r.store.snapshotImport()
	if err := fn(NewRMARepository(r.store), NewServiceOrderRepository(r.store), NewCustomerRepository(r.store)); err != nil {
		r.store.restoreImport(snap)
		return err
	}
	return nil
}
