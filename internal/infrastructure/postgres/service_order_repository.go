package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
)

var _ repository.ServiceOrderRepository = (*ServiceOrderRepo)(nil)

const serviceOrderColumns = `so.id, so.number, so.sales_order, so.product_status, so.order_status,
	so.material, so.material_description, so.serial, so.order_created_date,
	so.customer_required_date, so.estimated_completion_date, so.rma_number,
	so.created_at, so.updated_at`

// ServiceOrderRepo implementación de ServiceOrderRepository (usable con pool o tx).
type ServiceOrderRepo struct {
	q Querier
}

// NewServiceOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceOrderRepository(q Querier) *ServiceOrderRepo {
	return &ServiceOrderRepo{q: q}
}

// Upsert inserta la orden o reemplaza la que tenga el mismo número conservando id y created_at.
func (r *ServiceOrderRepo) Upsert(ctx context.Context, o *entity.ServiceOrder) error {
	args := []any{
		o.ID, o.Number, o.SalesOrder, o.ProductStatus, o.OrderStatus,
		o.Material, o.MaterialDescription, o.Serial, o.OrderCreatedDate,
		o.CustomerRequiredDate, o.EstimatedCompletionDate, o.RMANumber,
		o.CreatedAt, o.UpdatedAt,
	}
	insert := `
		INSERT INTO service_orders (id, number, sales_order, product_status, order_status,
		    material, material_description, serial, order_created_date,
		    customer_required_date, estimated_completion_date, rma_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	if o.Number == "" {
		if _, err := r.q.Exec(ctx, insert, args...); err != nil {
			return fmt.Errorf("insert service order: %w", err)
		}
		return nil
	}
	query := insert + `
		ON CONFLICT (number) WHERE number <> '' DO UPDATE SET
		    sales_order               = EXCLUDED.sales_order,
		    product_status            = EXCLUDED.product_status,
		    order_status              = EXCLUDED.order_status,
		    material                  = EXCLUDED.material,
		    material_description      = EXCLUDED.material_description,
		    serial                    = EXCLUDED.serial,
		    order_created_date        = EXCLUDED.order_created_date,
		    customer_required_date    = EXCLUDED.customer_required_date,
		    estimated_completion_date = EXCLUDED.estimated_completion_date,
		    rma_number                = EXCLUDED.rma_number,
		    updated_at                = EXCLUDED.updated_at
		RETURNING id, created_at`
	if err := r.q.QueryRow(ctx, query, args...).Scan(&o.ID, &o.CreatedAt); err != nil {
		return fmt.Errorf("upsert service order %s: %w", o.Number, err)
	}
	return nil
}

// GetByNumber obtiene una orden por número; nil si no existe.
func (r *ServiceOrderRepo) GetByNumber(ctx context.Context, number string) (*entity.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders so
		WHERE so.number = btrim($1) AND so.number <> ''`
	return scanServiceOrder(r.q.QueryRow(ctx, query, number))
}

// ListByCustomerName órdenes cuyo RMA pertenece al cliente (nombre sin distinguir mayúsculas).
func (r *ServiceOrderRepo) ListByCustomerName(ctx context.Context, customerName string) ([]*entity.ServiceOrder, error) {
	query := `
		SELECT ` + serviceOrderColumns + `
		FROM service_orders so
		JOIN rmas r ON r.rma_number = so.rma_number AND r.rma_number <> ''
		WHERE lower(btrim(r.customer_name)) = lower(btrim($1))
		ORDER BY so.number, so.id`
	return r.list(ctx, query, customerName)
}

// List devuelve todas las órdenes ordenadas por número.
func (r *ServiceOrderRepo) List(ctx context.Context) ([]*entity.ServiceOrder, error) {
	return r.list(ctx, `SELECT `+serviceOrderColumns+` FROM service_orders so ORDER BY so.number, so.id`)
}

func (r *ServiceOrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.ServiceOrder, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ServiceOrder, 0)
	for rows.Next() {
		o, err := scanServiceOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanServiceOrder(row pgx.Row) (*entity.ServiceOrder, error) {
	var o entity.ServiceOrder
	err := row.Scan(
		&o.ID, &o.Number, &o.SalesOrder, &o.ProductStatus, &o.OrderStatus,
		&o.Material, &o.MaterialDescription, &o.Serial, &o.OrderCreatedDate,
		&o.CustomerRequiredDate, &o.EstimatedCompletionDate, &o.RMANumber,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan service order: %w", err)
	}
	return &o, nil
}
