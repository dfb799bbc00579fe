package importer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/application/ports"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
	"github.com/jhoicas/rma-tracker/pkg/clock"
)

// Tipos de importación.
const (
	KindRMA          = "rma"
	KindServiceOrder = "service_order"
)

// ImportUseCase pipeline Hoja de cálculo → filas → registros tipados → persistencia.
type ImportUseCase struct {
	reader ports.SheetReader
	tx     TxRunner
	clock  clock.Clock
	log    zerolog.Logger
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(reader ports.SheetReader, tx TxRunner, clk clock.Clock, log zerolog.Logger) *ImportUseCase {
	return &ImportUseCase{reader: reader, tx: tx, clock: clk, log: log}
}

// ImportRMA procesa la hoja de RMAs. Por cada cliente desconocido crea su cuenta
// con el contacto de la fila para que luego se le pueda enviar el reporte.
func (uc *ImportUseCase) ImportRMA(ctx context.Context, filename string, r io.Reader) (*dto.ImportResult, error) {
	rows, err := uc.reader.ReadRows(ctx, filename, r)
	if err != nil {
		return nil, fmt.Errorf("importer: leer %s: %w", filename, err)
	}
	records := ParseRMARows(rows)
	now := uc.clock.Now()

	err = uc.tx.RunImport(ctx, func(rmaRepo repository.RMARepository, _ repository.ServiceOrderRepository, customerRepo repository.CustomerRepository) error {
		seen := make(map[string]bool)
		for _, rec := range records {
			rma := &entity.RMA{
				ID:            uuid.New().String(),
				RMANumber:     rec.RMANumber,
				CustomerName:  rec.CustomerName,
				CustomerEmail: rec.CustomerEmail,
				ContactName:   rec.ContactName,
				ContactEmail:  rec.ContactEmail,
				DateSubmitted: rec.DateSubmitted,
				Status:        rec.Status,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := rmaRepo.Upsert(ctx, rma); err != nil {
				return fmt.Errorf("guardar RMA %q: %w", rec.RMANumber, err)
			}

			key := strings.ToLower(strings.TrimSpace(rec.CustomerName))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			if err := ensureCustomer(ctx, customerRepo, rec, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importer: %w", err)
	}

	uc.log.Info().Str("file", filename).Int("records", len(records)).Msg("RMAs importados")
	return &dto.ImportResult{
		Kind:      KindRMA,
		Processed: len(records),
		Message:   fmt.Sprintf("Successfully processed %d RMA records", len(records)),
	}, nil
}

// ImportServiceOrders procesa la hoja de órdenes de servicio.
func (uc *ImportUseCase) ImportServiceOrders(ctx context.Context, filename string, r io.Reader) (*dto.ImportResult, error) {
	rows, err := uc.reader.ReadRows(ctx, filename, r)
	if err != nil {
		return nil, fmt.Errorf("importer: leer %s: %w", filename, err)
	}
	records := ParseServiceOrderRows(rows)
	now := uc.clock.Now()

	err = uc.tx.RunImport(ctx, func(_ repository.RMARepository, orderRepo repository.ServiceOrderRepository, _ repository.CustomerRepository) error {
		for _, rec := range records {
			order := &entity.ServiceOrder{
				ID:                      uuid.New().String(),
				Number:                  rec.ServiceOrder,
				SalesOrder:              rec.SalesOrder,
				ProductStatus:           rec.ProductStatus,
				OrderStatus:             normalizeOrderStatus(rec.OrderStatus),
				Material:                rec.Material,
				MaterialDescription:     rec.MaterialDescription,
				Serial:                  rec.Serial,
				OrderCreatedDate:        rec.OrderCreatedDate,
				CustomerRequiredDate:    rec.CustomerRequiredDate,
				EstimatedCompletionDate: rec.EstimatedCompletionDate,
				RMANumber:               rec.RMANumber,
				CreatedAt:               now,
				UpdatedAt:               now,
			}
			if err := orderRepo.Upsert(ctx, order); err != nil {
				return fmt.Errorf("guardar orden %q: %w", rec.ServiceOrder, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importer: %w", err)
	}

	uc.log.Info().Str("file", filename).Int("records", len(records)).Msg("órdenes de servicio importadas")
	return &dto.ImportResult{
		Kind:      KindServiceOrder,
		Processed: len(records),
		Message:   fmt.Sprintf("Successfully processed %d Service Order records", len(records)),
	}, nil
}

func ensureCustomer(ctx context.Context, repo repository.CustomerRepository, rec RMARecord, now time.Time) error {
	existing, err := repo.GetByName(ctx, rec.CustomerName)
	if err != nil {
		return fmt.Errorf("buscar cliente %q: %w", rec.CustomerName, err)
	}
	if existing != nil {
		return nil
	}
	email := rec.CustomerEmail
	if email == "" {
		email = rec.ContactEmail
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(rec.CustomerName),
		Contact:   rec.ContactName,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(ctx, customer); err != nil {
		return fmt.Errorf("crear cliente %q: %w", rec.CustomerName, err)
	}
	return nil
}

// normalizeOrderStatus "Open"/"CLOSED" → open/closed; otros valores se conservan.
func normalizeOrderStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case entity.OrderStatusOpen:
		return entity.OrderStatusOpen
	case entity.OrderStatusClosed:
		return entity.OrderStatusClosed
	}
	return s
}
