package entity

import "time"

// Customer representa una cuenta de cliente que envía equipos a reparar.
// Contact/Email son el contacto de la cuenta; el contacto del RMA tiene prioridad al notificar.
type Customer struct {
	ID        string
	Name      string
	Contact   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
