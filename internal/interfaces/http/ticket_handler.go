package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/application/usecase"
)

// TicketHandler maneja las peticiones HTTP de tickets de reparación.
type TicketHandler struct {
	uc  *usecase.TicketUseCase
	log zerolog.Logger
}

// NewTicketHandler construye el handler.
func NewTicketHandler(uc *usecase.TicketUseCase, log zerolog.Logger) *TicketHandler {
	return &TicketHandler{uc: uc, log: log}
}

// List GET /api/tickets?status=all
func (h *TicketHandler) List(c *fiber.Ctx) error {
	filter := c.Query("status", usecase.FilterAll)
	list, err := h.uc.List(c.UserContext(), filter)
	if err != nil {
		return fail(c, h.log, err, "")
	}
	return c.JSON(dto.ListResponse[dto.TicketResponse]{Items: list, Filter: filter, Total: len(list)})
}

// Statuses GET /api/tickets/statuses
func (h *TicketHandler) Statuses(c *fiber.Ctx) error {
	return c.JSON(h.uc.Statuses())
}

// Get GET /api/tickets/:id
func (h *TicketHandler) Get(c *fiber.Ctx) error {
	t, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, h.log, err, "ticket no encontrado")
	}
	return c.JSON(t)
}

// Create POST /api/tickets
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	t, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, h.log, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

// UpdateStatus PATCH /api/tickets/:id/status
func (h *TicketHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateTicketStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	t, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return fail(c, h.log, err, "ticket no encontrado")
	}
	return c.JSON(t)
}
