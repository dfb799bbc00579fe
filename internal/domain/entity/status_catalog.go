package entity

// StatusCatalog estados de reparación que puede tener un ticket.
type StatusCatalog struct {
	Initial   string   // estado de los tickets nuevos
	Statuses  []string // en orden de flujo
	Done      []string // estados que cuentan como reparación terminada
	RMAClosed []string // estados de RMA que no cuentan como pendientes
}

// Valid indica si status pertenece al catálogo (coincidencia exacta).
func (c *StatusCatalog) Valid(status string) bool {
	for _, s := range c.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsDone indica si status es un estado terminal.
func (c *StatusCatalog) IsDone(status string) bool {
	for _, s := range c.Done {
		if s == status {
			return true
		}
	}
	return false
}
