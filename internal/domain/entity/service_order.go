package entity

import "time"

// Estados de la orden (columna "Order Status").
const (
	OrderStatusOpen   = "open"
	OrderStatusClosed = "closed"
)

// ServiceOrder orden de servicio interna: una reparación concreta dentro de un RMA.
// Las fechas se conservan como texto tal cual vienen de la importación.
type ServiceOrder struct {
	ID                      string
	Number                  string // "Service Order"
	SalesOrder              string
	ProductStatus           string
	OrderStatus             string
	Material                string // número de parte
	MaterialDescription     string
	Serial                  string
	OrderCreatedDate        string
	CustomerRequiredDate    string
	EstimatedCompletionDate string
	RMANumber               string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsOpen indica si la orden sigue abierta. Un estado vacío cuenta como abierta.
func (s *ServiceOrder) IsOpen() bool {
	return s.OrderStatus != OrderStatusClosed
}
