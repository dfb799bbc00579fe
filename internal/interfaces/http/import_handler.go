package http

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/application/importer"
)

// ImportHandler subida de hojas de cálculo (campo multipart "file").
type ImportHandler struct {
	uc  *importer.ImportUseCase
	log zerolog.Logger
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.ImportUseCase, log zerolog.Logger) *ImportHandler {
	return &ImportHandler{uc: uc, log: log}
}

type importFunc func(ctx context.Context, filename string, r io.Reader) (*dto.ImportResult, error)

// ImportRMA POST /api/import/rma
func (h *ImportHandler) ImportRMA(c *fiber.Ctx) error {
	return h.handle(c, h.uc.ImportRMA, MsgRMAImportFailed)
}

// ImportServiceOrders POST /api/import/service-orders
func (h *ImportHandler) ImportServiceOrders(c *fiber.Ctx) error {
	return h.handle(c, h.uc.ImportServiceOrders, MsgServiceOrderImportFailed)
}

func (h *ImportHandler) handle(c *fiber.Ctx, run importFunc, failMsg string) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", "campo multipart 'file' requerido")
	}
	f, err := fh.Open()
	if err != nil {
		return fail(c, h.log, err, failMsg)
	}
	defer f.Close()

	res, err := run(c.UserContext(), fh.Filename, f)
	if err != nil {
		status, code := statusFor(err)
		if status < fiber.StatusInternalServerError {
			status, code = fiber.StatusUnprocessableEntity, "UNPROCESSABLE"
		}
		h.log.Error().Err(err).Str("file", fh.Filename).Msg(failMsg)
		return errorJSON(c, status, code, failMsg)
	}
	return c.JSON(res)
}
