package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

func TestTicket_DaysOpen(t *testing.T) {
	created := time.Date(2024, 2, 25, 9, 0, 0, 0, time.UTC)
	tk := &entity.Ticket{CreatedAt: created}

	assert.Equal(t, 0, tk.DaysOpen(created.Add(23*time.Hour)))
	assert.Equal(t, 5, tk.DaysOpen(created.Add(5*24*time.Hour+time.Minute)))
	assert.Equal(t, 0, tk.DaysOpen(created.Add(-time.Hour)), "fecha futura no produce días negativos")
}

func TestDatabaseConfig_Complete(t *testing.T) {
	full := entity.DatabaseConfig{Host: "erp", Database: "svc", Username: "u", Password: "p"}
	assert.True(t, full.Complete())

	for name, mutate := range map[string]func(*entity.DatabaseConfig){
		"host":     func(c *entity.DatabaseConfig) { c.Host = "" },
		"database": func(c *entity.DatabaseConfig) { c.Database = "" },
		"username": func(c *entity.DatabaseConfig) { c.Username = "" },
		"password": func(c *entity.DatabaseConfig) { c.Password = "" },
	} {
		c := full
		mutate(&c)
		assert.False(t, c.Complete(), "falta %s", name)
	}
}

func TestServiceOrder_IsOpen(t *testing.T) {
	assert.True(t, (&entity.ServiceOrder{OrderStatus: entity.OrderStatusOpen}).IsOpen())
	assert.True(t, (&entity.ServiceOrder{}).IsOpen())
	assert.False(t, (&entity.ServiceOrder{OrderStatus: entity.OrderStatusClosed}).IsOpen())
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole(entity.RoleTechnician))
	assert.False(t, entity.ValidRole("bodeguero"))
}
