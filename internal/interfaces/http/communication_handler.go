package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/application/usecase"
	"github.com/jhoicas/rma-tracker/internal/domain"
)

// CommunicationHandler bandeja de comunicaciones (enviadas y borradores).
type CommunicationHandler struct {
	uc  *usecase.CommunicationUseCase
	log zerolog.Logger
}

// NewCommunicationHandler construye el handler.
func NewCommunicationHandler(uc *usecase.CommunicationUseCase, log zerolog.Logger) *CommunicationHandler {
	return &CommunicationHandler{uc: uc, log: log}
}

// List GET /api/communications?filter=all|sent|drafts
func (h *CommunicationHandler) List(c *fiber.Ctx) error {
	filter := c.Query("filter", "all")
	list, err := h.uc.List(c.UserContext(), filter)
	if err != nil {
		return fail(c, h.log, err, "")
	}
	return c.JSON(dto.ListResponse[dto.CommunicationResponse]{Items: list, Filter: filter, Total: len(list)})
}

// Create POST /api/communications: entrega y guarda como enviada.
func (h *CommunicationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCommunicationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	comm, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.failEmail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommunicationResultResponse{Message: MsgEmailSent, Communication: *comm})
}

// SaveDraft POST /api/communications/drafts
func (h *CommunicationHandler) SaveDraft(c *fiber.Ctx) error {
	var in dto.CreateCommunicationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	comm, err := h.uc.SaveDraft(c.UserContext(), in)
	if err != nil {
		return h.failEmail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommunicationResultResponse{Message: MsgEmailDrafted, Communication: *comm})
}

// SendDraft POST /api/communications/:id/send
func (h *CommunicationHandler) SendDraft(c *fiber.Ctx) error {
	comm, err := h.uc.SendDraft(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.failEmail(c, err)
	}
	return c.JSON(dto.CommunicationResultResponse{Message: MsgEmailSent, Communication: *comm})
}

// failEmail validación y estados con su propio mensaje; fallos de entrega con el mensaje fijo.
func (h *CommunicationHandler) failEmail(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
		return fail(c, h.log, err, "")
	}
	return fail(c, h.log, err, MsgEmailFailed)
}
