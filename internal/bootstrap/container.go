// Package bootstrap arma el grafo de dependencias compartido por la API y la CLI:
// almacenamiento (memoria o PostgreSQL), canales de envío, catálogo de estados y casos de uso.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	appanalytics "github.com/jhoicas/rma-tracker/internal/application/analytics"
	"github.com/jhoicas/rma-tracker/internal/application/auth"
	"github.com/jhoicas/rma-tracker/internal/application/importer"
	"github.com/jhoicas/rma-tracker/internal/application/ports"
	"github.com/jhoicas/rma-tracker/internal/application/report"
	"github.com/jhoicas/rma-tracker/internal/application/usecase"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/demo"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/erp"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/mail"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/rma-tracker/internal/infrastructure/pdf"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/statuscatalog"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/telegram"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/xmlreport"
	"github.com/jhoicas/rma-tracker/pkg/clock"
	"github.com/jhoicas/rma-tracker/pkg/config"
	"github.com/jhoicas/rma-tracker/pkg/logger"
)

const mysqlProbeTimeout = 5 * time.Second

// Repositories puertos de persistencia de un backend concreto.
type Repositories struct {
	Users          repository.UserRepository
	Customers      repository.CustomerRepository
	RMAs           repository.RMARepository
	ServiceOrders  repository.ServiceOrderRepository
	Tickets        repository.TicketRepository
	Communications repository.CommunicationRepository
	Dashboard      repository.DashboardRepository
	Tx             importer.TxRunner
}

// Container casos de uso listos para montar en HTTP o en la CLI.
type Container struct {
	Catalog *entity.StatusCatalog
	Repos   Repositories

	Auth           *auth.AuthUseCase
	Dashboard      *appanalytics.DashboardUseCase
	Tickets        *usecase.TicketUseCase
	Customers      *usecase.CustomerUseCase
	Reports        *report.ReportUseCase
	Communications *usecase.CommunicationUseCase
	Settings       *usecase.SettingsUseCase
	Import         *importer.ImportUseCase

	pool *pgxpool.Pool
}

// New construye el contenedor. Con almacenamiento en memoria carga el conjunto de demostración;
// con PostgreSQL abre el pool y aplica las migraciones pendientes.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger, clk clock.Clock) (*Container, error) {
	catalog := statuscatalog.Default()
	if cfg.App.StatusesFile != "" {
		loaded, err := statuscatalog.Load(cfg.App.StatusesFile)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
		catalog = loaded
	}

	c := &Container{Catalog: catalog}
	switch cfg.App.Storage {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
		if len(applied) > 0 {
			log.Info().Strs("migrations", applied).Msg("migraciones aplicadas")
		}
		c.pool = pool
		c.Repos = PostgresRepositories(pool)
	default:
		store := memory.NewStore()
		store.Seed(demo.New(clk.Now()))
		c.Repos = MemoryRepositories(store)
	}

	c.Auth = auth.NewAuthUseCase(c.Repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, clk)
	if created, err := c.Auth.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		c.Close()
		return nil, err
	} else if created {
		log.Info().Str("email", cfg.Admin.Email).Msg("administrador inicial creado")
	}

	c.Reports = report.NewReportUseCase(report.Deps{
		Customers:      c.Repos.Customers,
		RMAs:           c.Repos.RMAs,
		ServiceOrders:  c.Repos.ServiceOrders,
		Communications: c.Repos.Communications,
		PDF:            infrapdf.NewMarotoPDFGenerator(cfg.Report.CompanyName),
		XML:            xmlreport.NewEtreeGenerator(),
		Mailer:         newMailer(cfg, log),
		Clock:          clk,
		Log:            log.Component("report"),
	}, report.Branding{
		CompanyName: cfg.Report.CompanyName,
		Signature:   cfg.Report.Signature,
		Location:    cfg.Report.Location(),
	})

	c.Dashboard = appanalytics.NewDashboardUseCase(c.Repos.Dashboard, catalog, clk)
	c.Tickets = usecase.NewTicketUseCase(c.Repos.Tickets, catalog, clk, log.Component("tickets"))
	c.Customers = usecase.NewCustomerUseCase(c.Repos.Customers, c.Repos.ServiceOrders)
	c.Communications = usecase.NewCommunicationUseCase(
		c.Repos.Communications,
		c.Reports.Mailer,
		telegram.NewBotSender(cfg.Telegram.BotToken, log.Component("telegram")),
		c.Reports,
		clk,
		log.Component("communications"),
	)
	c.Settings = usecase.NewSettingsUseCase(newProber(cfg), log.Component("settings"))
	c.Import = importer.NewImportUseCase(spreadsheet.NewReader(), c.Repos.Tx, clk, log.Component("importer"))
	return c, nil
}

// Close libera el pool de PostgreSQL si lo hay.
func (c *Container) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}

// MemoryRepositories repositorios sobre un Store en memoria.
func MemoryRepositories(store *memory.Store) Repositories {
	return Repositories{
		Users:          memory.NewUserRepository(store),
		Customers:      memory.NewCustomerRepository(store),
		RMAs:           memory.NewRMARepository(store),
		ServiceOrders:  memory.NewServiceOrderRepository(store),
		Tickets:        memory.NewTicketRepository(store),
		Communications: memory.NewCommunicationRepository(store),
		Dashboard:      memory.NewDashboardRepository(store),
		Tx:             memory.NewTxRunner(store),
	}
}

// PostgresRepositories repositorios sobre el pool.
func PostgresRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:          postgres.NewUserRepository(pool),
		Customers:      postgres.NewCustomerRepository(pool),
		RMAs:           postgres.NewRMARepository(pool),
		ServiceOrders:  postgres.NewServiceOrderRepository(pool),
		Tickets:        postgres.NewTicketRepository(pool),
		Communications: postgres.NewCommunicationRepository(pool),
		Dashboard:      postgres.NewDashboardRepository(pool),
		Tx:             postgres.NewTxRunner(pool),
	}
}

// newMailer SMTP si hay host configurado; si no, los correos solo se registran.
func newMailer(cfg *config.Config, log *logger.Logger) ports.EmailSender {
	if cfg.SMTP.Enabled() {
		return mail.NewGomailSender(cfg.SMTP, log.Component("smtp"))
	}
	return mail.NewLogSender(cfg.App.StubLatency, log.Component("mail"))
}

func newProber(cfg *config.Config) ports.ConnectionProber {
	if cfg.ERP.Prober == "mysql" {
		return erp.NewMySQLProber(mysqlProbeTimeout)
	}
	return erp.NewStubProber(cfg.App.StubLatency)
}
