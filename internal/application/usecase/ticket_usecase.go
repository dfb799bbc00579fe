package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/domain"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
	"github.com/jhoicas/rma-tracker/pkg/clock"
)

// FilterAll valor de filtro que devuelve todos los registros.
const FilterAll = "all"

// maxCreateAttempts reintentos cuando otra instancia tomó el mismo número de ticket.
const maxCreateAttempts = 5

// TicketUseCase aplica reglas de negocio para tickets de reparación.
type TicketUseCase struct {
	repo    repository.TicketRepository
	catalog *entity.StatusCatalog
	clock   clock.Clock
	log     zerolog.Logger

	// createMu serializa numeración e inserción dentro del proceso.
	createMu sync.Mutex
}

// NewTicketUseCase construye el caso de uso con el puerto de persistencia y el catálogo de estados.
func NewTicketUseCase(repo repository.TicketRepository, catalog *entity.StatusCatalog, clk clock.Clock, log zerolog.Logger) *TicketUseCase {
	return &TicketUseCase{repo: repo, catalog: catalog, clock: clk, log: log}
}

// Statuses devuelve el catálogo en orden de flujo.
func (uc *TicketUseCase) Statuses() []string {
	out := make([]string, len(uc.catalog.Statuses))
	copy(out, uc.catalog.Statuses)
	return out
}

// List filtra por estado exacto; "all" o vacío devuelve todos.
func (uc *TicketUseCase) List(ctx context.Context, status string) ([]dto.TicketResponse, error) {
	filter := strings.TrimSpace(status)
	if strings.EqualFold(filter, FilterAll) {
		filter = ""
	}
	tickets, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("tickets: listar: %w", err)
	}
	now := uc.clock.Now()
	out := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResponse(t, now))
	}
	return out, nil
}

// Get obtiene un ticket; ErrNotFound si no existe.
func (uc *TicketUseCase) Get(ctx context.Context, id string) (*dto.TicketResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tickets: obtener %s: %w", id, err)
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	resp := toTicketResponse(t, uc.clock.Now())
	return &resp, nil
}

// Create registra un ticket nuevo en el estado inicial del catálogo.
// Cliente, producto, serie y descripción son obligatorios.
func (uc *TicketUseCase) Create(ctx context.Context, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if missing := missingFields(map[string]string{
		"customer":    in.Customer,
		"product":     in.Product,
		"serial":      in.Serial,
		"description": in.Description,
	}); missing != "" {
		return nil, fmt.Errorf("%w: faltan campos: %s", domain.ErrInvalidInput, missing)
	}

	now := uc.clock.Now()
	t := &entity.Ticket{
		RMA:         strings.TrimSpace(in.RMA),
		Customer:    strings.TrimSpace(in.Customer),
		Status:      uc.catalog.Initial,
		Product:     strings.TrimSpace(in.Product),
		Serial:      strings.TrimSpace(in.Serial),
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.insert(ctx, t, now); err != nil {
		return nil, err
	}
	uc.log.Info().Str("ticket", t.ID).Str("customer", t.Customer).Msg("ticket creado")
	resp := toTicketResponse(t, now)
	return &resp, nil
}

// UpdateStatus cambia el estado; debe pertenecer al catálogo.
func (uc *TicketUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.TicketResponse, error) {
	if !uc.catalog.Valid(status) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, status)
	}
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tickets: obtener %s: %w", id, err)
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.clock.Now()
	prev := t.Status
	t.Status = status
	t.UpdatedAt = now
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("tickets: actualizar %s: %w", id, err)
	}
	uc.log.Info().Str("ticket", id).Str("from", prev).Str("to", status).Msg("estado de ticket actualizado")
	resp := toTicketResponse(t, now)
	return &resp, nil
}

// insert asigna el siguiente ID y guarda el ticket. Si otra instancia usó el mismo número
// (ErrDuplicate) vuelve a numerar, hasta maxCreateAttempts veces.
func (uc *TicketUseCase) insert(ctx context.Context, t *entity.Ticket, now time.Time) error {
	uc.createMu.Lock()
	defer uc.createMu.Unlock()

	var err error
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		t.ID, err = uc.nextID(ctx, now)
		if err != nil {
			return err
		}
		err = uc.repo.Create(ctx, t)
		if !errors.Is(err, domain.ErrDuplicate) {
			break
		}
		uc.log.Warn().Str("ticket", t.ID).Int("attempt", attempt+1).Msg("número de ticket ocupado, renumerando")
	}
	if err != nil {
		return fmt.Errorf("tickets: crear: %w", err)
	}
	return nil
}

// nextID numera como las órdenes de servicio: SO-<año>-<n>, a partir de 101.
func (uc *TicketUseCase) nextID(ctx context.Context, now time.Time) (string, error) {
	existing, err := uc.repo.List(ctx, "")
	if err != nil {
		return "", fmt.Errorf("tickets: numerar: %w", err)
	}
	prefix := fmt.Sprintf("SO-%d-", now.Year())
	next := 101
	for _, t := range existing {
		if !strings.HasPrefix(t.ID, prefix) {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(t.ID, prefix)); err == nil && n >= next {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s%d", prefix, next), nil
}

func toTicketResponse(t *entity.Ticket, now time.Time) dto.TicketResponse {
	return dto.TicketResponse{
		ID:          t.ID,
		RMA:         t.RMA,
		Customer:    t.Customer,
		Status:      t.Status,
		Product:     t.Product,
		Serial:      t.Serial,
		Description: t.Description,
		DaysOpen:    t.DaysOpen(now),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// missingFields devuelve los nombres (ordenados) de los campos vacíos, separados por coma.
func missingFields(fields map[string]string) string {
	var missing []string
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return strings.Join(missing, ", ")
}
