package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/rma-tracker/internal/application/ports"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/demo"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/memory"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	s.Seed(demo.New(now))
	return s
}

type fakeMailer struct {
	sent []ports.OutgoingEmail
	err  error
}

func (f *fakeMailer) SendEmail(_ context.Context, msg ports.OutgoingEmail) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type chatMsg struct{ chatID, text string }

type fakeChat struct{ sent []chatMsg }

func (f *fakeChat) SendChat(_ context.Context, chatID, text string) error {
	f.sent = append(f.sent, chatMsg{chatID, text})
	return nil
}

type fakeAttacher struct{ calls []string }

func (f *fakeAttacher) ReportAttachment(_ context.Context, customerID string) (ports.Attachment, error) {
	f.calls = append(f.calls, customerID)
	return ports.Attachment{Filename: "Acme_Corp_repair_status.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}, nil
}

type fakeProber struct {
	calls int
	err   error
}

func (f *fakeProber) Probe(_ context.Context, _ entity.DatabaseConfig) error {
	f.calls++
	return f.err
}

var errProbe = errors.New("access denied")
