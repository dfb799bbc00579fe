package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/rma-tracker/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del tablero.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log zerolog.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetSummary indicadores del mes y últimas actualizaciones.
// GET /api/dashboard
//
// Respuesta: DashboardResponse (stats[4] con variación frente al mes anterior,
// recent_updates[5]). Las fechas se calculan en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return fail(c, h.log, err, "")
	}
	return c.JSON(summary)
}
