package ports

import (
	"context"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
)

// RepairReportPDFGenerator genera el PDF "Repair Status Report" de un cliente.
type RepairReportPDFGenerator interface {
	GenerateRepairReportPDF(ctx context.Context, report dto.RepairReport) ([]byte, error)
}

// RepairReportXMLGenerator serializa el mismo reporte en XML para intercambio con el ERP.
type RepairReportXMLGenerator interface {
	GenerateRepairReportXML(ctx context.Context, report dto.RepairReport) ([]byte, error)
}
