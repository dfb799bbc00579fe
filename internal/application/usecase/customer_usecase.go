package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/domain"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
)

// CustomerUseCase consulta de clientes con sus reparaciones.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	orders    repository.ServiceOrderRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, orders repository.ServiceOrderRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, orders: orders}
}

// List devuelve todos los clientes ordenados por nombre.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("customers: listar: %w", err)
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp, err := uc.withRepairs(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// Get obtiene un cliente; ErrNotFound si no existe.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("customers: obtener %s: %w", id, err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp, err := uc.withRepairs(ctx, c)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// withRepairs agrega reparaciones y contadores: TotalRepairs cuenta todas las órdenes,
// ActiveRMAs los RMAs distintos con alguna orden abierta.
func (uc *CustomerUseCase) withRepairs(ctx context.Context, c *entity.Customer) (dto.CustomerResponse, error) {
	orders, err := uc.orders.ListByCustomerName(ctx, c.Name)
	if err != nil {
		return dto.CustomerResponse{}, fmt.Errorf("customers: reparaciones de %s: %w", c.Name, err)
	}
	active := make(map[string]bool)
	repairs := make([]dto.RepairDTO, 0, len(orders))
	for _, o := range orders {
		if o.IsOpen() && o.RMANumber != "" {
			active[o.RMANumber] = true
		}
		repairs = append(repairs, toRepairDTO(o))
	}
	return dto.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Contact:      c.Contact,
		Phone:        c.Phone,
		Email:        c.Email,
		ActiveRMAs:   len(active),
		TotalRepairs: len(orders),
		Repairs:      repairs,
	}, nil
}

func toRepairDTO(o *entity.ServiceOrder) dto.RepairDTO {
	return dto.RepairDTO{
		ServiceOrder:            o.Number,
		SalesOrder:              o.SalesOrder,
		ProductStatus:           o.ProductStatus,
		OrderStatus:             o.OrderStatus,
		Material:                dto.MaterialDTO{PartNumber: o.Material, Description: o.MaterialDescription},
		Serial:                  o.Serial,
		OrderCreatedDate:        o.OrderCreatedDate,
		CustomerRequiredDate:    o.CustomerRequiredDate,
		EstimatedCompletionDate: o.EstimatedCompletionDate,
		RMANumber:               o.RMANumber,
	}
}
