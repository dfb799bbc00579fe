package report_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/application/ports"
	"github.com/jhoicas/rma-tracker/internal/application/report"
	"github.com/jhoicas/rma-tracker/internal/domain"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/demo"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/rma-tracker/pkg/clock"
)

// ── Fakes ──

type fakePDF struct{ calls int }

func (f *fakePDF) GenerateRepairReportPDF(_ context.Context, r dto.RepairReport) ([]byte, error) {
	f.calls++
	return []byte("%PDF-" + r.CustomerName), nil
}

type fakeXML struct{}

func (fakeXML) GenerateRepairReportXML(_ context.Context, r dto.RepairReport) ([]byte, error) {
	return []byte("<RepairStatusReport/>"), nil
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

var now = time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)

type fixture struct {
	store  *memory.Store
	mailer *fakeMailer
	pdf    *fakePDF
	uc     *report.ReportUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	store.Seed(demo.New(now))
	f := &fixture{store: store, mailer: &fakeMailer{}, pdf: &fakePDF{}}
	f.uc = report.NewReportUseCase(report.Deps{
		Customers:      memory.NewCustomerRepository(store),
		RMAs:           memory.NewRMARepository(store),
		ServiceOrders:  memory.NewServiceOrderRepository(store),
		Communications: memory.NewCommunicationRepository(store),
		PDF:            f.pdf,
		XML:            fakeXML{},
		Mailer:         f.mailer,
		Clock:          clock.NewFixed(now),
		Log:            zerolog.Nop(),
	}, report.Branding{CompanyName: "Cosworth", Signature: "Will"})
	return f
}

// ── Composición ──

func TestFilename_ReemplazaEspacios(t *testing.T) {
	assert.Equal(t, "Acme_Corp_repair_status.pdf", report.Filename("Acme Corp"))
	assert.Equal(t, "TechCo_Industries_Ltd_repair_status.pdf", report.Filename("TechCo  Industries\tLtd"))
	assert.Equal(t, "Globex_repair_status.pdf", report.Filename("Globex"))
	assert.Equal(t, "Acme_Corp_repair_status.xml", report.XMLFilename("Acme Corp"))
}

func TestFilename_EspaciosUnicode(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"nbsp", "Acme\u00a0Corp"},
		{"tab vertical", "Acme\vCorp"},
		{"ideográfico", "Acme\u3000Corp"},
		{"em space", "Acme\u2003Corp"},
		{"bom", "Acme\uFEFFCorp"},
		{"mezcla", "Acme \u00a0\t Corp"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, "Acme_Corp_repair_status.pdf", report.Filename(c.in))
			assert.Equal(t, "Acme_Corp_repair_status.xml", report.XMLFilename(c.in))
		})
	}
	assert.Equal(t, "_Acme_repair_status.pdf", report.Filename("\u00a0 Acme"))
	assert.Equal(t, "Müller_GmbH_repair_status.pdf", report.Filename("Müller GmbH"))
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Cosworth Repair Status Update - 3/1/2024", report.Subject("Cosworth", now))
}

func TestBody_ResumenPorOrden(t *testing.T) {
	body := report.Body("John Smith", "Cosworth", "Will", []*entity.ServiceOrder{
		{Number: "SO-2024-101", ProductStatus: "Final Testing"},
		{Number: "SO-2024-102", ProductStatus: "Awaiting Parts"},
	})
	assert.True(t, strings.HasPrefix(body, "Dear John Smith,\n\n"))
	assert.Contains(t, body, "open repairs with Cosworth.")
	assert.Contains(t, body, "This Week's Update:\nSO-2024-101: Final Testing\nSO-2024-102: Awaiting Parts\n\n")
	assert.Contains(t, body, "We Value Your Feedback:")
	assert.True(t, strings.HasSuffix(body, "Kind regards,\nWill"))
}

// ── Reportes ──

func TestDownloadPDF(t *testing.T) {
	f := newFixture(t)
	name, data, err := f.uc.DownloadPDF(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Acme_Corp_repair_status.pdf", name)
	assert.Equal(t, "%PDF-Acme Corp", string(data))

	_, _, err = f.uc.DownloadPDF(context.Background(), "999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadXML(t *testing.T) {
	f := newFixture(t)
	name, _, err := f.uc.DownloadXML(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "TechCo_Industries_repair_status.xml", name)
}

func TestBuild_ReparacionesDelCliente(t *testing.T) {
	f := newFixture(t)
	_, rep, err := f.uc.Build(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, rep.Repairs, 2)
	assert.Equal(t, now, rep.GeneratedAt)
}

// ── Contacto ──

func TestGetCustomerContact_PrimeroElRMA(t *testing.T) {
	f := newFixture(t)
	c, err := f.uc.GetCustomerContact(context.Background(), "RMA-2024-001")
	require.NoError(t, err)
	assert.Equal(t, &dto.ContactResponse{Name: "John Smith", Email: "john.smith@acme.com"}, c)
}

func TestGetCustomerContact_CaeALaCuenta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, memory.NewRMARepository(f.store).Upsert(ctx, &entity.RMA{
		ID: "x", RMANumber: "RMA-2024-002", CustomerName: "TechCo Industries", CustomerEmail: "support@techco.com",
	}))

	c, err := f.uc.GetCustomerContact(ctx, "RMA-2024-002")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", c.Name)
	assert.Equal(t, "sarah.j@techco.com", c.Email)
}

func TestGetCustomerContact_RMAInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.GetCustomerContact(context.Background(), "RMA-0")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Actualización semanal ──

func TestSendStatusUpdate_BorradorPorDefecto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.uc.SendStatusUpdate(ctx, "1", "")
	require.NoError(t, err)
	assert.Equal(t, entity.CommunicationDraft, resp.Status)
	assert.Equal(t, "john.smith@acme.com", resp.To)
	assert.Equal(t, "Cosworth Repair Status Update - 3/1/2024", resp.Subject)
	assert.True(t, resp.AttachReport)
	assert.Equal(t, "1", resp.CustomerID)
	assert.Empty(t, f.mailer.sent, "un borrador no se entrega")

	stored, err := memory.NewCommunicationRepository(f.store).GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.Content, "SO-2024-101: Final Testing")
}

func TestSendStatusUpdate_EnviaConAdjunto(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.SendStatusUpdate(context.Background(), "1", report.ModeSend)
	require.NoError(t, err)
	assert.Equal(t, entity.CommunicationSent, resp.Status)
	require.Len(t, f.mailer.sent, 1)
	msg := f.mailer.sent[0]
	assert.Equal(t, "John Smith", msg.ToName)
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "Acme_Corp_repair_status.pdf", msg.Attachments[0].Filename)
	assert.Equal(t, "application/pdf", msg.Attachments[0].ContentType)
}

func TestSendStatusUpdate_SinRMA(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.SendStatusUpdate(context.Background(), "3", report.ModeDraft)
	assert.ErrorIs(t, err, domain.ErrNoRMANumber)
	assert.Equal(t, "No RMA number found", domain.ErrNoRMANumber.Error())
}

func TestSendStatusUpdate_ModoInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.SendStatusUpdate(context.Background(), "1", "display")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSendStatusUpdate_FalloDeEnvioQuedaBorrador(t *testing.T) {
	f := newFixture(t)
	f.mailer.err = errors.New("smtp caído")
	ctx := context.Background()

	_, err := f.uc.SendStatusUpdate(ctx, "1", report.ModeSend)
	assert.ErrorIs(t, err, f.mailer.err)

	drafts, err := memory.NewCommunicationRepository(f.store).List(ctx, entity.CommunicationDraft)
	require.NoError(t, err)
	var pending []*entity.Communication
	for _, c := range drafts {
		if c.CustomerID == "1" && c.AttachReport {
			pending = append(pending, c)
		}
	}
	require.Len(t, pending, 1, "el correo no entregado queda como borrador")
	assert.Equal(t, "john.smith@acme.com", pending[0].To)
}

type failingUpdateComms struct {
	repository.CommunicationRepository
}

func (failingUpdateComms) Update(context.Context, *entity.Communication) error {
	return errors.New("db caída")
}

func TestSendStatusUpdate_EntregadoAunqueFalleLaActualizacion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	comms := memory.NewCommunicationRepository(f.store)
	uc := report.NewReportUseCase(report.Deps{
		Customers:      memory.NewCustomerRepository(f.store),
		RMAs:           memory.NewRMARepository(f.store),
		ServiceOrders:  memory.NewServiceOrderRepository(f.store),
		Communications: failingUpdateComms{CommunicationRepository: comms},
		PDF:            f.pdf,
		XML:            fakeXML{},
		Mailer:         f.mailer,
		Clock:          clock.NewFixed(now),
		Log:            zerolog.Nop(),
	}, report.Branding{CompanyName: "Cosworth", Signature: "Will"})

	resp, err := uc.SendStatusUpdate(ctx, "1", report.ModeSend)
	require.NoError(t, err)
	assert.Equal(t, entity.CommunicationSent, resp.Status)
	require.Len(t, f.mailer.sent, 1)

	stored, err := comms.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "el correo entregado queda registrado")
}
