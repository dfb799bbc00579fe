package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/rma-tracker/internal/domain"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
)

var _ repository.CommunicationRepository = (*CommunicationRepository)(nil)

// CommunicationRepository implementación en memoria.
type CommunicationRepository struct {
	store *Store
}

// NewCommunicationRepository crea el repositorio.
func NewCommunicationRepository(store *Store) *CommunicationRepository {
	return &CommunicationRepository{store: store}
}

func (r *CommunicationRepository) Create(ctx context.Context, c *entity.Communication) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.communications[c.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *c
	r.store.communications[c.ID] = &cp
	return nil
}

func (r *CommunicationRepository) GetByID(ctx context.Context, id string) (*entity.Communication, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	c, ok := r.store.communications[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *CommunicationRepository) List(ctx context.Context, status string) ([]*entity.Communication, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Communication, 0, len(r.store.communications))
	for _, c := range r.store.communications {
		if status != "" && c.Status != status {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *CommunicationRepository) Update(ctx context.Context, c *entity.Communication) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.communications[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.store.communications[c.ID] = &cp
	return nil
}
