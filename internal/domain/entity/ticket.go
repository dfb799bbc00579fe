package entity

import "time"

// Ticket ticket de reparación visible en el tablero.
type Ticket struct {
	ID          string
	RMA         string
	Customer    string
	Status      string
	Product     string
	Serial      string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DaysOpen días completos transcurridos desde la creación hasta now.
func (t *Ticket) DaysOpen(now time.Time) int {
	if now.Before(t.CreatedAt) {
		return 0
	}
	return int(now.Sub(t.CreatedAt) / (24 * time.Hour))
}
