package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/domain"
)

// Mensajes fijos que ve el usuario; la causa solo va al log.
const (
	MsgRMAImportFailed          = "Error processing RMA file"
	MsgServiceOrderImportFailed = "Error processing Service Order file"
	MsgReportDownloaded         = "Report downloaded successfully"
	MsgReportFailed             = "Failed to download report"
	MsgEmailDrafted             = "Email drafted"
	MsgEmailSent                = "Email sent"
	MsgEmailFailed              = "Failed to create email"
	MsgNoRMANumber              = "No RMA number found"
	MsgInvalidConfig            = "Invalid configuration"
	MsgConnectionOK             = "Database connection successful"
	MsgConnectionFailed         = "Database connection failed"
	MsgConnectionSaved          = "Database connection saved successfully"
	MsgConnectionSaveFailed     = "Failed to save database connection"
)

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

func invalidBody(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}

// statusFor traduce errores de dominio a status HTTP y código.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidConfig):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrUnsupportedFormat), errors.Is(err, domain.ErrEmptyWorkbook),
		errors.Is(err, domain.ErrNoRMANumber), errors.Is(err, domain.ErrChannelDisabled):
		return fiber.StatusUnprocessableEntity, "UNPROCESSABLE"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// fail responde el error mapeado. Los errores de validación y "no encontrado" muestran su
// mensaje; el resto muestra message (o el texto del error si message está vacío) y se registra.
func fail(c *fiber.Ctx, log zerolog.Logger, err error, message string) error {
	status, code := statusFor(err)
	if status >= fiber.StatusInternalServerError || status == fiber.StatusUnprocessableEntity {
		log.Error().Err(err).Str("path", c.Path()).Msg(firstNonEmpty(message, "error interno"))
	}
	if message == "" || (status == fiber.StatusBadRequest && !errors.Is(err, domain.ErrInvalidConfig)) {
		message = err.Error()
	}
	return errorJSON(c, status, code, message)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
