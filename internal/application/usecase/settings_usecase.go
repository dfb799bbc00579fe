package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/application/ports"
	"github.com/jhoicas/rma-tracker/internal/domain"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

// SettingsUseCase conexión con la base de datos externa (ERP) configurada desde ajustes.
type SettingsUseCase struct {
	prober    ports.ConnectionProber
	connected atomic.Bool
	log       zerolog.Logger

	mu  sync.Mutex
	cfg entity.DatabaseConfig
}

// NewSettingsUseCase construye el caso de uso; arranca desconectado.
func NewSettingsUseCase(prober ports.ConnectionProber, log zerolog.Logger) *SettingsUseCase {
	return &SettingsUseCase{prober: prober, log: log}
}

func toDatabaseConfig(in dto.DatabaseConfigRequest) entity.DatabaseConfig {
	return entity.DatabaseConfig{Host: in.Host, Database: in.Database, Username: in.Username, Password: in.Password}
}

// TestConnection devuelve false si falta algún campo o si la verificación falla.
func (uc *SettingsUseCase) TestConnection(ctx context.Context, in dto.DatabaseConfigRequest) bool {
	cfg := toDatabaseConfig(in)
	if !cfg.Complete() {
		return false
	}
	if err := uc.prober.Probe(ctx, cfg); err != nil {
		uc.log.Warn().Err(err).Str("host", cfg.Host).Msg("prueba de conexión fallida")
		return false
	}
	return true
}

// Connect guarda la configuración y marca la conexión como activa.
// Con algún campo vacío devuelve domain.ErrInvalidConfig.
func (uc *SettingsUseCase) Connect(ctx context.Context, in dto.DatabaseConfigRequest) error {
	cfg := toDatabaseConfig(in)
	if !cfg.Complete() {
		return domain.ErrInvalidConfig
	}
	if err := uc.prober.Probe(ctx, cfg); err != nil {
		return fmt.Errorf("settings: conectar a %s: %w", cfg.Host, err)
	}
	uc.mu.Lock()
	uc.cfg = cfg
	uc.mu.Unlock()
	uc.connected.Store(true)
	uc.log.Info().Str("host", cfg.Host).Str("database", cfg.Database).Msg("base de datos externa conectada")
	return nil
}

// Connected indica si hay una conexión establecida.
func (uc *SettingsUseCase) Connected() bool {
	return uc.connected.Load()
}

// Status estado de la conexión y a qué servidor apunta (sin credenciales).
func (uc *SettingsUseCase) Status() dto.ConnectionStatusResponse {
	if !uc.connected.Load() {
		return dto.ConnectionStatusResponse{}
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return dto.ConnectionStatusResponse{Connected: true, Host: uc.cfg.Host, Database: uc.cfg.Database}
}
