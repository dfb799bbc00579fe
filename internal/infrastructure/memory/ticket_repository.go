package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/rma-tracker/internal/domain"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepository)(nil)

// TicketRepository implementación en memoria.
type TicketRepository struct {
	store *Store
}

// NewTicketRepository crea el repositorio.
func NewTicketRepository(store *Store) *TicketRepository {
	return &TicketRepository{store: store}
}

func (r *TicketRepository) Create(ctx context.Context, t *entity.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.tickets[t.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *t
	r.store.tickets[t.ID] = &cp
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	t, ok := r.store.tickets[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *TicketRepository) List(ctx context.Context, status string) ([]*entity.Ticket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Ticket, 0, len(r.store.tickets))
	for _, t := range r.store.tickets {
		if status != "" && t.Status != status {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *TicketRepository) Update(ctx context.Context, t *entity.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.tickets[t.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *t
	r.store.tickets[t.ID] = &cp
	return nil
}
