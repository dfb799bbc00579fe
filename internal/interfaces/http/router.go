package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/rma-tracker/internal/application/analytics"
	"github.com/jhoicas/rma-tracker/internal/application/auth"
	"github.com/jhoicas/rma-tracker/internal/application/importer"
	"github.com/jhoicas/rma-tracker/internal/application/report"
	"github.com/jhoicas/rma-tracker/internal/application/usecase"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	DashboardUC     *appanalytics.DashboardUseCase
	TicketUC        *usecase.TicketUseCase
	CustomerUC      *usecase.CustomerUseCase
	ReportUC        *report.ReportUseCase
	CommunicationUC *usecase.CommunicationUseCase
	SettingsUC      *usecase.SettingsUseCase
	ImportUC        *importer.ImportUseCase
	JWTSecret       string
	Log             zerolog.Logger
}

// Router registra las rutas de la API.
// Lectura: cualquier rol autenticado. Escritura: admin y technician. Ajustes y registro: admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	log := deps.Log

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	writers := RequireRole(entity.RoleAdmin, entity.RoleTechnician)
	admins := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/register", admins, authHandler.Register)
	protected.Get("/auth/me", authHandler.Me)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	protected.Get("/dashboard", dashboardHandler.GetSummary)

	// Tickets
	tickets := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC, log)
	tickets.Get("/", ticketHandler.List)
	tickets.Get("/statuses", ticketHandler.Statuses)
	tickets.Get("/:id", ticketHandler.Get)
	tickets.Post("/", writers, ticketHandler.Create)
	tickets.Patch("/:id/status", writers, ticketHandler.UpdateStatus)

	// Customers y reporte de reparaciones
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ReportUC, log)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id/report.pdf", customerHandler.DownloadPDF)
	customers.Get("/:id/report.xml", customerHandler.DownloadXML)
	customers.Get("/:id", customerHandler.Get)
	customers.Post("/:id/status-update", writers, customerHandler.SendStatusUpdate)
	protected.Get("/rmas/:rma/contact", customerHandler.Contact)

	// Communications
	comms := protected.Group("/communications")
	commHandler := NewCommunicationHandler(deps.CommunicationUC, log)
	comms.Get("/", commHandler.List)
	comms.Post("/", writers, commHandler.Create)
	comms.Post("/drafts", writers, commHandler.SaveDraft)
	comms.Post("/:id/send", writers, commHandler.SendDraft)

	// Settings (base de datos externa)
	settings := protected.Group("/settings/database")
	settingsHandler := NewSettingsHandler(deps.SettingsUC, log)
	settings.Get("/status", settingsHandler.Status)
	settings.Post("/test", admins, settingsHandler.TestConnection)
	settings.Post("/", admins, settingsHandler.Connect)

	// Importación de hojas de cálculo
	imports := protected.Group("/import", writers)
	importHandler := NewImportHandler(deps.ImportUC, log)
	imports.Post("/rma", importHandler.ImportRMA)
	imports.Post("/service-orders", importHandler.ImportServiceOrders)
}
