package mail

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/rma-tracker/internal/application/ports"
)

var _ ports.EmailSender = (*LogSender)(nil)

// LogSender sustituto del SMTP: espera latency y registra el correo.
type LogSender struct {
	latency time.Duration
	log     zerolog.Logger
}

// NewLogSender crea el sender de log.
func NewLogSender(latency time.Duration, log zerolog.Logger) *LogSender {
	return &LogSender{latency: latency, log: log}
}

func (s *LogSender) SendEmail(ctx context.Context, msg ports.OutgoingEmail) error {
	if s.latency > 0 {
		t := time.NewTimer(s.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}
	s.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("body_len", len(msg.Body)).
		Int("attachments", len(msg.Attachments)).
		Msg("correo registrado (SMTP no configurado)")
	return nil
}
