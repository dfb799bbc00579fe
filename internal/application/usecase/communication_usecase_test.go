package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/application/usecase"
	"github.com/jhoicas/rma-tracker/internal/domain"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/rma-tracker/pkg/clock"
)

type commFixture struct {
	uc       *usecase.CommunicationUseCase
	mailer   *fakeMailer
	chat     *fakeChat
	attacher *fakeAttacher
}

func newCommFixture(t *testing.T) commFixture {
	store := seededStore(t)
	f := commFixture{mailer: &fakeMailer{}, chat: &fakeChat{}, attacher: &fakeAttacher{}}
	f.uc = usecase.NewCommunicationUseCase(memory.NewCommunicationRepository(store), f.mailer, f.chat, f.attacher, clock.NewFixed(now), zerolog.Nop())
	return f
}

func TestNormalizeFilter(t *testing.T) {
	assert.Equal(t, entity.CommunicationSent, usecase.NormalizeFilter("sent"))
	assert.Equal(t, entity.CommunicationDraft, usecase.NormalizeFilter("drafts"))
	assert.Equal(t, "", usecase.NormalizeFilter("all"))
	assert.Equal(t, "", usecase.NormalizeFilter("archivados"), "filtro desconocido = todas")
}

func TestCommunicationList_Filtros(t *testing.T) {
	f := newCommFixture(t)
	ctx := context.Background()

	all, err := f.uc.List(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	sent, err := f.uc.List(ctx, "sent")
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "RMA Status Update - SO-2024-101", sent[0].Subject)

	drafts, err := f.uc.List(ctx, "drafts")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, entity.CommunicationDraft, drafts[0].Status)

	unknown, err := f.uc.List(ctx, "otro")
	require.NoError(t, err)
	assert.Len(t, unknown, 2)
}

func TestCommunicationCreate_EmailEnviado(t *testing.T) {
	f := newCommFixture(t)
	resp, err := f.uc.Create(context.Background(), dto.CreateCommunicationRequest{
		To: "sarah.j@techco.com", Subject: "Parts arrived", Content: "Your parts are here.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CommunicationSent, resp.Status)
	assert.Equal(t, entity.CommunicationEmail, resp.Type)
	require.Len(t, f.mailer.sent, 1)
	assert.Empty(t, f.mailer.sent[0].Attachments)
}

func TestCommunicationCreate_Telegram(t *testing.T) {
	f := newCommFixture(t)
	_, err := f.uc.Create(context.Background(), dto.CreateCommunicationRequest{
		Type: "telegram", To: "123456", Subject: "SO-2024-101", Content: "Final test OK",
	})
	require.NoError(t, err)
	require.Len(t, f.chat.sent, 1)
	assert.Equal(t, "123456", f.chat.sent[0].chatID)
	assert.Equal(t, "SO-2024-101\n\nFinal test OK", f.chat.sent[0].text)
	assert.Empty(t, f.mailer.sent)
}

func TestCommunicationCreate_Validaciones(t *testing.T) {
	f := newCommFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, dto.CreateCommunicationRequest{To: "a@b.c"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, dto.CreateCommunicationRequest{Type: "fax", To: "a", Subject: "s", Content: "c"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, dto.CreateCommunicationRequest{To: "a", Subject: "s", Content: "c", AttachReport: true})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.mailer.sent)
}

func TestCommunicationSendDraft(t *testing.T) {
	f := newCommFixture(t)
	ctx := context.Background()

	resp, err := f.uc.SendDraft(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, entity.CommunicationSent, resp.Status)
	assert.Equal(t, now, resp.Date)
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "m.wilson@globalsys.com", f.mailer.sent[0].To)

	_, err = f.uc.SendDraft(ctx, "2")
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.uc.SendDraft(ctx, "99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCommunicationSendDraft_RegeneraAdjunto(t *testing.T) {
	f := newCommFixture(t)
	ctx := context.Background()

	draft, err := f.uc.SaveDraft(ctx, dto.CreateCommunicationRequest{
		To: "john.smith@acme.com", Subject: "Weekly", Content: "Body", CustomerID: "1", AttachReport: true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CommunicationDraft, draft.Status)
	assert.Empty(t, f.attacher.calls, "el borrador no genera el PDF")

	_, err = f.uc.SendDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, f.attacher.calls)
	require.Len(t, f.mailer.sent, 1)
	require.Len(t, f.mailer.sent[0].Attachments, 1)
	assert.Equal(t, "Acme_Corp_repair_status.pdf", f.mailer.sent[0].Attachments[0].Filename)
}
