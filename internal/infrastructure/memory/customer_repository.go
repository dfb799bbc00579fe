package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/rma-tracker/internal/domain"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository implementación en memoria.
type CustomerRepository struct {
	store *Store
}

// NewCustomerRepository crea el repositorio.
func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.customers[c.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *c
	r.store.customers[c.ID] = &cp
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	c, ok := r.store.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *CustomerRepository) GetByName(ctx context.Context, name string) (*entity.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	key := strings.TrimSpace(name)
	for _, c := range r.store.customers {
		if strings.EqualFold(strings.TrimSpace(c.Name), key) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Customer, 0, len(r.store.customers))
	for _, c := range r.store.customers {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *entity.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.store.customers[c.ID] = &cp
	return nil
}
