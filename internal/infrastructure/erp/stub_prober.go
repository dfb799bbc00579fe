package erp

import (
	"context"
	"time"

	"github.com/jhoicas/rma-tracker/internal/application/ports"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

var _ ports.ConnectionProber = (*StubProber)(nil)

// StubProber simula la verificación: espera latency y siempre tiene éxito.
type StubProber struct {
	latency time.Duration
}

// NewStubProber crea el prober simulado.
func NewStubProber(latency time.Duration) *StubProber {
	return &StubProber{latency: latency}
}

func (p *StubProber) Probe(ctx context.Context, _ entity.DatabaseConfig) error {
	if p.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
