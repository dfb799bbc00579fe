package ports

import (
	"context"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

// Attachment archivo adjunto a un correo.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// OutgoingEmail correo listo para entregar.
type OutgoingEmail struct {
	To          string
	ToName      string
	Subject     string
	Body        string
	Attachments []Attachment
}

// EmailSender entrega correos (SMTP o registro en log).
type EmailSender interface {
	SendEmail(ctx context.Context, msg OutgoingEmail) error
}

// ChatSender entrega mensajes de texto a un chat (Telegram).
type ChatSender interface {
	SendChat(ctx context.Context, chatID, text string) error
}

// ConnectionProber verifica que una base de datos externa responde con la configuración dada.
// Solo recibe configuraciones completas; la validación de campos vacíos es previa.
type ConnectionProber interface {
	Probe(ctx context.Context, cfg entity.DatabaseConfig) error
}
