package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
)

var _ repository.ServiceOrderRepository = (*ServiceOrderRepository)(nil)

// ServiceOrderRepository implementación en memoria.
type ServiceOrderRepository struct {
	store *Store
}

// NewServiceOrderRepository crea el repositorio.
func NewServiceOrderRepository(store *Store) *ServiceOrderRepository {
	return &ServiceOrderRepository{store: store}
}

func (r *ServiceOrderRepository) Upsert(ctx context.Context, order *entity.ServiceOrder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if order.Number != "" {
		for id, existing := range r.store.orders {
			if existing.Number == order.Number {
				cp := *order
				cp.ID = id
				cp.CreatedAt = existing.CreatedAt
				r.store.orders[id] = &cp
				order.ID = id
				return nil
			}
		}
	}
	cp := *order
	r.store.orders[order.ID] = &cp
	return nil
}

func (r *ServiceOrderRepository) GetByNumber(ctx context.Context, number string) (*entity.ServiceOrder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	key := strings.TrimSpace(number)
	if key == "" {
		return nil, nil
	}
	for _, o := range r.store.orders {
		if o.Number == key {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByCustomerName cruza órdenes con RMAs por número de RMA.
func (r *ServiceOrderRepository) ListByCustomerName(ctx context.Context, customerName string) ([]*entity.ServiceOrder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	name := strings.TrimSpace(customerName)
	rmaNumbers := make(map[string]bool)
	for _, rma := range r.store.rmas {
		if rma.RMANumber != "" && strings.EqualFold(strings.TrimSpace(rma.CustomerName), name) {
			rmaNumbers[rma.RMANumber] = true
		}
	}
	var out []*entity.ServiceOrder
	for _, o := range r.store.orders {
		if rmaNumbers[o.RMANumber] {
			cp := *o
			out = append(out, &cp)
		}
	}
	sortOrders(out)
	return out, nil
}

func (r *ServiceOrderRepository) List(ctx context.Context) ([]*entity.ServiceOrder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.ServiceOrder, 0, len(r.store.orders))
	for _, o := range r.store.orders {
		cp := *o
		out = append(out, &cp)
	}
	sortOrders(out)
	return out, nil
}

func sortOrders(list []*entity.ServiceOrder) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Number != list[j].Number {
			return list[i].Number < list[j].Number
		}
		return list[i].ID < list[j].ID
	})
}
