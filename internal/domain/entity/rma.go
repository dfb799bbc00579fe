package entity

import "time"

// RMA autorización de devolución de mercancía tal como llega en la hoja de cálculo.
// Los campos son texto libre: no se valida formato de fecha ni de email.
type RMA struct {
	ID            string
	RMANumber     string
	CustomerName  string
	CustomerEmail string
	ContactName   string
	ContactEmail  string
	DateSubmitted string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
