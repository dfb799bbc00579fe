package dto

import (
	"time"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

// RepairReport datos de entrada de los generadores de reporte (PDF y XML).
type RepairReport struct {
	CustomerName string
	GeneratedAt  time.Time
	Repairs      []*entity.ServiceOrder
}
