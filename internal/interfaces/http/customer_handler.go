package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/application/report"
	"github.com/jhoicas/rma-tracker/internal/application/usecase"
	"github.com/jhoicas/rma-tracker/internal/domain"
)

// HeaderStatusMessage aviso para el usuario en respuestas binarias (descarga del reporte).
const HeaderStatusMessage = "X-Status-Message"

// CustomerHandler clientes, reporte de reparaciones y actualización semanal.
type CustomerHandler struct {
	customers *usecase.CustomerUseCase
	reports   *report.ReportUseCase
	log       zerolog.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(customers *usecase.CustomerUseCase, reports *report.ReportUseCase, log zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, reports: reports, log: log}
}

// List GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.customers.List(c.UserContext())
	if err != nil {
		return fail(c, h.log, err, "")
	}
	return c.JSON(list)
}

// Get GET /api/customers/:id
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	customer, err := h.customers.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, h.log, err, "cliente no encontrado")
	}
	return c.JSON(customer)
}

// DownloadPDF GET /api/customers/:id/report.pdf
func (h *CustomerHandler) DownloadPDF(c *fiber.Ctx) error {
	name, data, err := h.reports.DownloadPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, h.log, err, MsgReportFailed)
	}
	return sendFile(c, name, "application/pdf", data)
}

// DownloadXML GET /api/customers/:id/report.xml
func (h *CustomerHandler) DownloadXML(c *fiber.Ctx) error {
	name, data, err := h.reports.DownloadXML(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, h.log, err, MsgReportFailed)
	}
	return sendFile(c, name, fiber.MIMEApplicationXMLCharsetUTF8, data)
}

// SendStatusUpdate POST /api/customers/:id/status-update?mode=draft|send
func (h *CustomerHandler) SendStatusUpdate(c *fiber.Ctx) error {
	mode := c.Query("mode", report.ModeDraft)
	comm, err := h.reports.SendStatusUpdate(c.UserContext(), c.Params("id"), mode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoRMANumber):
			return fail(c, h.log, err, MsgNoRMANumber)
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrNotFound):
			return fail(c, h.log, err, "")
		default:
			return fail(c, h.log, err, MsgEmailFailed)
		}
	}
	msg := MsgEmailDrafted
	if mode == report.ModeSend {
		msg = MsgEmailSent
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommunicationResultResponse{Message: msg, Communication: *comm})
}

// Contact GET /api/rmas/:rma/contact
func (h *CustomerHandler) Contact(c *fiber.Ctx) error {
	contact, err := h.reports.GetCustomerContact(c.UserContext(), c.Params("rma"))
	if err != nil {
		return fail(c, h.log, err, "contacto no encontrado")
	}
	return c.JSON(contact)
}

func sendFile(c *fiber.Ctx, filename, contentType string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, contentDisposition(filename))
	c.Set(HeaderStatusMessage, MsgReportDownloaded)
	return c.Send(data)
}

// contentDisposition adjunto con nombre ASCII de respaldo y filename* en UTF-8 (RFC 5987)
// cuando el nombre del cliente trae caracteres fuera de ASCII.
func contentDisposition(filename string) string {
	fallback := make([]byte, 0, len(filename))
	ascii := true
	for _, r := range filename {
		switch {
		case r == '"' || r == '\\':
			fallback = append(fallback, '_')
		case r < 0x20 || r > 0x7e:
			ascii = false
			fallback = append(fallback, '_')
		default:
			fallback = append(fallback, byte(r))
		}
	}
	header := `attachment; filename="` + string(fallback) + `"`
	if ascii {
		return header
	}
	return header + "; filename*=UTF-8''" + encodeRFC5987(filename)
}

// encodeRFC5987 percent-encoding de todo byte fuera de attr-char.
func encodeRFC5987(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if isAttrChar(ch) {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[ch>>4])
		b.WriteByte(hex[ch&0x0f])
	}
	return b.String()
}

func isAttrChar(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", ch) >= 0
}
