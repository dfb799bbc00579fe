package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
)

var _ repository.RMARepository = (*RMARepository)(nil)

// RMARepository implementación en memoria.
type RMARepository struct {
	store *Store
}

// NewRMARepository crea el repositorio.
func NewRMARepository(store *Store) *RMARepository {
	return &RMARepository{store: store}
}

func (r *RMARepository) Upsert(ctx context.Context, rma *entity.RMA) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if rma.RMANumber != "" {
		for id, existing := range r.store.rmas {
			if existing.RMANumber == rma.RMANumber {
				cp := *rma
				cp.ID = id
				cp.CreatedAt = existing.CreatedAt
				r.store.rmas[id] = &cp
				rma.ID = id
				return nil
			}
		}
	}
	cp := *rma
	r.store.rmas[rma.ID] = &cp
	return nil
}

func (r *RMARepository) GetByNumber(ctx context.Context, rmaNumber string) (*entity.RMA, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	key := strings.TrimSpace(rmaNumber)
	if key == "" {
		return nil, nil
	}
	for _, rma := range r.store.rmas {
		if rma.RMANumber == key {
			cp := *rma
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *RMARepository) List(ctx context.Context) ([]*entity.RMA, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.RMA, 0, len(r.store.rmas))
	for _, rma := range r.store.rmas {
		cp := *rma
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RMANumber != out[j].RMANumber {
			return out[i].RMANumber < out[j].RMANumber
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
