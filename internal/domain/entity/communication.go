package entity

import "time"

// Tipos de comunicación.
const (
	CommunicationEmail    = "email"
	CommunicationTelegram = "telegram"
)

// Estados de comunicación.
const (
	CommunicationSent  = "sent"
	CommunicationDraft = "draft"
)

// Communication mensaje enviado o en borrador hacia un cliente.
// Si AttachReport es true, al enviarse se adjunta el reporte PDF de CustomerID.
type Communication struct {
	ID           string
	Type         string
	Subject      string
	To           string // email o chat ID de Telegram
	ToName       string
	Date         time.Time
	Content      string
	Status       string
	CustomerID   string
	AttachReport bool
}
