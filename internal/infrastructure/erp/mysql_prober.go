// Package erp verifica la conexión con la base de datos externa configurada en ajustes.
package erp

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/jhoicas/rma-tracker/internal/application/ports"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

var _ ports.ConnectionProber = (*MySQLProber)(nil)

const defaultMySQLPort = "3306"

// MySQLProber abre una conexión efímera contra el ERP (MySQL) y hace ping.
type MySQLProber struct {
	timeout time.Duration
}

// NewMySQLProber crea el prober; timeout acota la conexión y el ping.
func NewMySQLProber(timeout time.Duration) *MySQLProber {
	return &MySQLProber{timeout: timeout}
}

// Probe devuelve nil si el servidor acepta las credenciales.
func (p *MySQLProber) Probe(ctx context.Context, cfg entity.DatabaseConfig) error {
	db, err := sql.Open("mysql", BuildDSN(cfg, p.timeout))
	if err != nil {
		return fmt.Errorf("erp: abrir conexión: %w", err)
	}
	defer db.Close()

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("erp: ping %s: %w", cfg.Host, err)
	}
	return nil
}

// BuildDSN arma el DSN del driver MySQL. Host sin puerto usa 3306.
func BuildDSN(cfg entity.DatabaseConfig, timeout time.Duration) string {
	mc := mysql.NewConfig()
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = withDefaultPort(cfg.Host)
	mc.DBName = cfg.Database
	mc.Timeout = timeout
	return mc.FormatDSN()
}

func withDefaultPort(host string) string {
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(host, defaultMySQLPort)
}
