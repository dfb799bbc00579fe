// Package demo contiene el conjunto de datos de demostración con el que arranca
// el almacenamiento en memoria y que cmd/seed carga en PostgreSQL.
package demo

import (
	"time"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

// Dataset datos de demostración relativos a un instante de referencia.
type Dataset struct {
	Customers      []*entity.Customer
	RMAs           []*entity.RMA
	ServiceOrders  []*entity.ServiceOrder
	Tickets        []*entity.Ticket
	Communications []*entity.Communication
}

// New construye el dataset. Las antigüedades de tickets y comunicaciones se calculan
// respecto a now para que "days open" y "updated ago" tengan sentido en cualquier fecha.
func New(now time.Time) Dataset {
	day := 24 * time.Hour
	created := now.Add(-30 * day)

	customers := []*entity.Customer{
		{ID: "1", Name: "Acme Corp", Contact: "John Smith", Phone: "+1 (555) 123-4567", Email: "john.smith@acme.com"},
		{ID: "2", Name: "TechCo Industries", Contact: "Sarah Johnson", Phone: "+1 (555) 234-5678", Email: "sarah.j@techco.com"},
		{ID: "3", Name: "Global Systems", Contact: "Mike Wilson", Phone: "+1 (555) 345-6789", Email: "m.wilson@globalsys.com"},
	}
	for _, c := range customers {
		c.CreatedAt, c.UpdatedAt = created, created
	}

	rmas := []*entity.RMA{
		{ID: "rma-1", RMANumber: "RMA-2024-001", CustomerName: "Acme Corp", CustomerEmail: "service@acme.com",
			ContactName: "John Smith", ContactEmail: "john.smith@acme.com", DateSubmitted: "2024-02-24", Status: "Open"},
		{ID: "rma-2", RMANumber: "RMA-2024-002", CustomerName: "TechCo Industries", CustomerEmail: "support@techco.com",
			ContactName: "Sarah Johnson", ContactEmail: "sarah.j@techco.com", DateSubmitted: "2024-02-26", Status: "Open"},
		{ID: "rma-3", RMANumber: "RMA-2024-003", CustomerName: "Global Systems", CustomerEmail: "it@globalsys.com",
			ContactName: "Mike Wilson", ContactEmail: "m.wilson@globalsys.com", DateSubmitted: "2024-02-27", Status: "Open"},
	}
	for _, r := range rmas {
		r.CreatedAt, r.UpdatedAt = created, created
	}

	orders := []*entity.ServiceOrder{
		{ID: "so-1", Number: "SO-2024-101", SalesOrder: "PO-2024-001", ProductStatus: "Final Testing",
			OrderStatus: entity.OrderStatusOpen, Material: "CM-X1-001", MaterialDescription: "Control Module X1",
			Serial: "SN-123456", OrderCreatedDate: "2024-02-25", CustomerRequiredDate: "2024-03-10",
			EstimatedCompletionDate: "2024-03-05", RMANumber: "RMA-2024-001"},
		{ID: "so-2", Number: "SO-2024-102", SalesOrder: "PO-2024-001", ProductStatus: "Awaiting Parts",
			OrderStatus: entity.OrderStatusOpen, Material: "PS-Y2-002", MaterialDescription: "Power Supply Y2",
			Serial: "SN-789012", OrderCreatedDate: "2024-02-26", CustomerRequiredDate: "2024-03-15",
			EstimatedCompletionDate: "2024-03-10", RMANumber: "RMA-2024-001"},
		{ID: "so-3", Number: "SO-2024-103", SalesOrder: "PO-2024-002", ProductStatus: "Initial Inspection",
			OrderStatus: entity.OrderStatusOpen, Material: "SA-Z3-003", MaterialDescription: "Sensor Array Z3",
			Serial: "SN-345678", OrderCreatedDate: "2024-02-27", CustomerRequiredDate: "2024-03-12",
			EstimatedCompletionDate: "2024-03-07", RMANumber: "RMA-2024-002"},
	}
	for _, o := range orders {
		o.CreatedAt, o.UpdatedAt = created, created
	}

	tickets := []*entity.Ticket{
		{ID: "SO-2024-101", RMA: "RMA-2024-001", Customer: "Acme Corp", Status: "Awaiting Test",
			Product: "Control Module X1", Serial: "SN-123456",
			CreatedAt: now.Add(-5 * day), UpdatedAt: now.Add(-2 * time.Hour)},
		{ID: "SO-2024-102", RMA: "RMA-2024-002", Customer: "TechCo Industries", Status: "Final Test",
			Product: "Power Supply Y2", Serial: "SN-789012",
			CreatedAt: now.Add(-3 * day), UpdatedAt: now.Add(-4 * time.Hour)},
		{ID: "SO-2024-103", RMA: "RMA-2024-003", Customer: "Global Systems", Status: "Awaiting Parts",
			Product: "Sensor Array Z3", Serial: "SN-345678",
			CreatedAt: now.Add(-7 * day), UpdatedAt: now.Add(-6 * time.Hour)},
	}

	comms := []*entity.Communication{
		{ID: "1", Type: entity.CommunicationEmail, Subject: "RMA Status Update - SO-2024-101",
			To: "john.smith@acme.com", ToName: "John Smith", Date: now.Add(-1 * day),
			Content: "Your repair order has been moved to final testing phase...", Status: entity.CommunicationSent},
		{ID: "2", Type: entity.CommunicationEmail, Subject: "Parts Delay Notification - SO-2024-103",
			To: "m.wilson@globalsys.com", ToName: "Mike Wilson", Date: now.Add(-2 * day),
			Content: "We are currently waiting for replacement parts to arrive...", Status: entity.CommunicationDraft},
	}

	return Dataset{
		Customers:      customers,
		RMAs:           rmas,
		ServiceOrders:  orders,
		Tickets:        tickets,
		Communications: comms,
	}
}
