// Package mail entrega correos por SMTP (gomail) o, sin SMTP configurado, solo los registra.
package mail

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/rma-tracker/internal/application/ports"
	"github.com/jhoicas/rma-tracker/pkg/config"
)

var _ ports.EmailSender = (*GomailSender)(nil)

// GomailSender envía por SMTP con gopkg.in/gomail.v2.
type GomailSender struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	log      zerolog.Logger
}

// NewGomailSender construye el sender con la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig, log zerolog.Logger) *GomailSender {
	return &GomailSender{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:     cfg.From,
		fromName: cfg.FromName,
		log:      log,
	}
}

// SendEmail abre una conexión SMTP por mensaje. gomail no acepta contexto:
// solo se respeta una cancelación previa al envío.
func (s *GomailSender) SendEmail(ctx context.Context, msg ports.OutgoingEmail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := buildMessage(s.from, s.fromName, msg)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("mail: enviar a %s: %w", msg.To, err)
	}
	s.log.Info().Str("to", msg.To).Str("subject", msg.Subject).Int("attachments", len(msg.Attachments)).Msg("correo enviado")
	return nil
}

func buildMessage(from, fromName string, msg ports.OutgoingEmail) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, fromName)
	m.SetAddressHeader("To", msg.To, msg.ToName)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	for _, a := range msg.Attachments {
		data := a.Data
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}))
		}
		m.Attach(a.Filename, settings...)
	}
	return m
}
