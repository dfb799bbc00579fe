package dto

import "time"

// CreateTicketRequest formulario "New Ticket": los cuatro campos son obligatorios.
type CreateTicketRequest struct {
	Customer    string `json:"customer"`
	Product     string `json:"product"`
	Serial      string `json:"serial"`
	Description string `json:"description"`
	RMA         string `json:"rma"`
}

// UpdateTicketStatusRequest cambio de estado de reparación.
type UpdateTicketStatusRequest struct {
	Status string `json:"status"`
}

// TicketResponse fila del listado de tickets.
type TicketResponse struct {
	ID          string    `json:"id"`
	RMA         string    `json:"rma"`
	Customer    string    `json:"customer"`
	Status      string    `json:"status"`
	Product     string    `json:"product"`
	Serial      string    `json:"serial"`
	Description string    `json:"description,omitempty"`
	DaysOpen    int       `json:"days_open"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
