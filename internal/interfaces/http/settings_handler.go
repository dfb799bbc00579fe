package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/application/usecase"
	"github.com/jhoicas/rma-tracker/internal/domain"
)

// SettingsHandler conexión a la base de datos externa.
type SettingsHandler struct {
	uc  *usecase.SettingsUseCase
	log zerolog.Logger
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{uc: uc, log: log}
}

// TestConnection POST /api/settings/database/test. Siempre 200; el resultado va en connected.
func (h *SettingsHandler) TestConnection(c *fiber.Ctx) error {
	var in dto.DatabaseConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	ok := h.uc.TestConnection(c.UserContext(), in)
	msg := MsgConnectionFailed
	if ok {
		msg = MsgConnectionOK
	}
	return c.JSON(dto.ConnectionTestResponse{Connected: ok, Message: msg})
}

// Connect POST /api/settings/database
func (h *SettingsHandler) Connect(c *fiber.Ctx) error {
	var in dto.DatabaseConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Connect(c.UserContext(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidConfig) {
			return fail(c, h.log, err, MsgInvalidConfig)
		}
		return fail(c, h.log, err, MsgConnectionSaveFailed)
	}
	c.Set(HeaderStatusMessage, MsgConnectionSaved)
	return c.JSON(h.uc.Status())
}

// Status GET /api/settings/database/status
func (h *SettingsHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.uc.Status())
}
