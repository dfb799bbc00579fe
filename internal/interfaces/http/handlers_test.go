package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/application/usecase"
	"github.com/jhoicas/rma-tracker/internal/bootstrap"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	apphttp "github.com/jhoicas/rma-tracker/internal/interfaces/http"
	"github.com/jhoicas/rma-tracker/pkg/clock"
	"github.com/jhoicas/rma-tracker/pkg/config"
	"github.com/jhoicas/rma-tracker/pkg/logger"
)

// newAPI app completa sobre el almacenamiento en memoria con el conjunto de demostración.
func newAPI(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		App:    config.AppConfig{Storage: config.StorageMemory},
		JWT:    config.JWTConfig{Secret: testJWTSecret, Expiration: testExpMin, Issuer: testIssuer},
		Report: config.ReportConfig{CompanyName: "Cosworth", Signature: "Will"},
		ERP:    config.ERPConfig{Prober: "stub"},
	}
	log := logger.Nop()
	c, err := bootstrap.New(context.Background(), cfg, log, clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	t.Cleanup(c.Close)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:          c.Auth,
		DashboardUC:     c.Dashboard,
		TicketUC:        c.Tickets,
		CustomerUC:      c.Customers,
		ReportUC:        c.Reports,
		CommunicationUC: c.Communications,
		SettingsUC:      c.Settings,
		ImportUC:        c.Import,
		JWTSecret:       testJWTSecret,
		Log:             log.Zerolog(),
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, role string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestTickets_FiltroPorEstado(t *testing.T) {
	app := newAPI(t)

	all := decode[dto.ListResponse[dto.TicketResponse]](t, call(t, app, http.MethodGet, "/api/tickets?status=all", "viewer", nil))
	assert.Equal(t, 3, all.Total)

	filtered := decode[dto.ListResponse[dto.TicketResponse]](t, call(t, app, http.MethodGet, "/api/tickets?status=Final%20Test", "viewer", nil))
	require.Equal(t, 1, filtered.Total)
	assert.Equal(t, "SO-2024-102", filtered.Items[0].ID)
}

func TestTickets_CrearValidaYRespetaRoles(t *testing.T) {
	app := newAPI(t)

	resp := call(t, app, http.MethodPost, "/api/tickets", "viewer", dto.CreateTicketRequest{Customer: "Acme Corp"})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/tickets", "technician", dto.CreateTicketRequest{Customer: "Acme Corp"})
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errBody.Code)

	resp = call(t, app, http.MethodPost, "/api/tickets", "technician", dto.CreateTicketRequest{
		Customer: "Acme Corp", Product: "Control Module X1", Serial: "CM-1", Description: "No enciende",
	})
	created := decode[dto.TicketResponse](t, resp)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Awaiting Test", created.Status)

	resp = call(t, app, http.MethodPatch, "/api/tickets/"+created.ID+"/status", "technician", dto.UpdateTicketStatusRequest{Status: "Completed"})
	updated := decode[dto.TicketResponse](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Completed", updated.Status)
}

func TestCustomers_DescargaPDF(t *testing.T) {
	app := newAPI(t)

	resp := call(t, app, http.MethodGet, "/api/customers/1/report.pdf", "viewer", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Acme_Corp_repair_status.pdf")
	assert.Equal(t, apphttp.MsgReportDownloaded, resp.Header.Get(apphttp.HeaderStatusMessage))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	resp = call(t, app, http.MethodGet, "/api/customers/999/report.pdf", "viewer", nil)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.MsgReportFailed, errBody.Message)
}

func TestCustomers_ActualizacionSemanal(t *testing.T) {
	app := newAPI(t)

	resp := call(t, app, http.MethodPost, "/api/customers/1/status-update?mode=draft", "technician", nil)
	out := decode[dto.CommunicationResultResponse](t, resp)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, apphttp.MsgEmailDrafted, out.Message)
	assert.Equal(t, "draft", out.Communication.Status)
	assert.Equal(t, "john.smith@acme.com", out.Communication.To)

	// Global Systems no tiene órdenes de servicio.
	resp = call(t, app, http.MethodPost, "/api/customers/3/status-update?mode=send", "technician", nil)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, apphttp.MsgNoRMANumber, errBody.Message)
}

func TestCommunications_FiltroYEnvioDeBorrador(t *testing.T) {
	app := newAPI(t)

	drafts := decode[dto.ListResponse[dto.CommunicationResponse]](t, call(t, app, http.MethodGet, "/api/communications?filter=drafts", "viewer", nil))
	require.Equal(t, 1, drafts.Total)

	resp := call(t, app, http.MethodPost, "/api/communications/"+drafts.Items[0].ID+"/send", "technician", nil)
	out := decode[dto.CommunicationResultResponse](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, apphttp.MsgEmailSent, out.Message)

	resp = call(t, app, http.MethodPost, "/api/communications/"+drafts.Items[0].ID+"/send", "technician", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSettings_ConfiguracionIncompleta(t *testing.T) {
	app := newAPI(t)

	test := decode[dto.ConnectionTestResponse](t, call(t, app, http.MethodPost, "/api/settings/database/test", "admin",
		dto.DatabaseConfigRequest{Host: "erp", Database: "svc", Username: "u"}))
	assert.False(t, test.Connected)

	resp := call(t, app, http.MethodPost, "/api/settings/database", "admin", dto.DatabaseConfigRequest{Host: "erp"})
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.MsgInvalidConfig, errBody.Message)

	resp = call(t, app, http.MethodPost, "/api/settings/database", "admin",
		dto.DatabaseConfigRequest{Host: "erp", Database: "svc", Username: "u", Password: "p"})
	assert.Equal(t, apphttp.MsgConnectionSaved, resp.Header.Get(apphttp.HeaderStatusMessage))
	status := decode[dto.ConnectionStatusResponse](t, resp)
	assert.True(t, status.Connected)
	assert.Equal(t, "erp", status.Host)
}

type downProber struct{}

func (downProber) Probe(context.Context, entity.DatabaseConfig) error {
	return errors.New("dial tcp: connection refused")
}

func TestSettings_ConectarConProberCaido(t *testing.T) {
	uc := usecase.NewSettingsUseCase(downProber{}, zerolog.Nop())
	h := apphttp.NewSettingsHandler(uc, zerolog.Nop())
	app := fiber.New()
	app.Post("/api/settings/database", h.Connect)
	app.Post("/api/settings/database/test", h.TestConnection)

	cfg := dto.DatabaseConfigRequest{Host: "erp", Database: "svc", Username: "u", Password: "p"}
	resp := call(t, app, http.MethodPost, "/api/settings/database", "", cfg)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, apphttp.MsgConnectionSaveFailed, errBody.Message)
	assert.False(t, uc.Connected())

	test := decode[dto.ConnectionTestResponse](t, call(t, app, http.MethodPost, "/api/settings/database/test", "", cfg))
	assert.False(t, test.Connected)
	assert.Equal(t, apphttp.MsgConnectionFailed, test.Message)
}

func TestImport_RMACSV(t *testing.T) {
	app := newAPI(t)

	csv := "RMA Number,Customer Name,Customer Email,Contact Name,Contact Email,Date Submitted,Status\n" +
		"RMA-2024-010,Nova Labs,ops@nova.io,Lucia Perez,lucia@nova.io,2024-02-20,Open\n"
	req := multipartRequest(t, "/api/import/rma", "rmas.csv", csv)
	req.Header.Set("Authorization", tokenForRole(t, "technician"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	res := decode[dto.ImportResult](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, res.Processed)

	contact := decode[dto.ContactResponse](t, call(t, app, http.MethodGet, "/api/rmas/RMA-2024-010/contact", "viewer", nil))
	assert.Equal(t, "lucia@nova.io", contact.Email)
}

func TestImport_FormatoNoSoportado(t *testing.T) {
	app := newAPI(t)

	req := multipartRequest(t, "/api/import/service-orders", "orders.pdf", "no es una hoja")
	req.Header.Set("Authorization", tokenForRole(t, "technician"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, apphttp.MsgServiceOrderImportFailed, errBody.Message)
}

func TestDashboard_Resumen(t *testing.T) {
	app := newAPI(t)

	summary := decode[dto.DashboardResponse](t, call(t, app, http.MethodGet, "/api/dashboard", "viewer", nil))
	assert.Len(t, summary.Stats, 4)
	require.Len(t, summary.RecentUpdates, 3)
	assert.Equal(t, "SO-2024-101", summary.RecentUpdates[0].ServiceOrder)
	assert.Equal(t, "2h ago", summary.RecentUpdates[0].UpdatedAgo)
}

func multipartRequest(t *testing.T, path, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
