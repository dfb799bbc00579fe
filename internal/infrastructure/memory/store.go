// Package memory implementa los repositorios sobre mapas protegidos por mutex.
// Es el almacenamiento por defecto (APP_STORAGE=memory) y el que usan los tests.
package memory

import (
	"sync"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/demo"
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu             sync.RWMutex
	txMu           sync.Mutex
	customers      map[string]*entity.Customer
	rmas           map[string]*entity.RMA
	orders         map[string]*entity.ServiceOrder
	tickets        map[string]*entity.Ticket
	communications map[string]*entity.Communication
	users          map[string]*entity.User
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		customers:      make(map[string]*entity.Customer),
		rmas:           make(map[string]*entity.RMA),
		orders:         make(map[string]*entity.ServiceOrder),
		tickets:        make(map[string]*entity.Ticket),
		communications: make(map[string]*entity.Communication),
		users:          make(map[string]*entity.User),
	}
}

// Seed carga el dataset de demostración. Sobrescribe registros con el mismo ID.
func (s *Store) Seed(ds demo.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range ds.Customers {
		cp := *c
		s.customers[c.ID] = &cp
	}
	for _, r := range ds.RMAs {
		cp := *r
		s.rmas[r.ID] = &cp
	}
	for _, o := range ds.ServiceOrders {
		cp := *o
		s.orders[o.ID] = &cp
	}
	for _, t := range ds.Tickets {
		cp := *t
		s.tickets[t.ID] = &cp
	}
	for _, c := range ds.Communications {
		cp := *c
		s.communications[c.ID] = &cp
	}
}

type snapshot struct {
	customers map[string]*entity.Customer
	rmas      map[string]*entity.RMA
	orders    map[string]*entity.ServiceOrder
}

// snapshotImport copia las tablas que toca una importación.
func (s *Store) snapshotImport() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		customers: cloneMap(s.customers),
		rmas:      cloneMap(s.rmas),
		orders:    cloneMap(s.orders),
	}
}

func (s *Store) restoreImport(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = snap.customers
	s.rmas = snap.rmas
	s.orders = snap.orders
}

func cloneMap[T any](m map[string]*T) map[string]*T {
	out := make(map[string]*T, len(m))
	for k, v := range m {
		cp := *v
		out[k] = &cp
	}
	return out
}
