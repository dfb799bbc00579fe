// Package xmlreport serializa el reporte de reparaciones en XML para el ERP.
//
//	<RepairStatusReport customer="Acme Corp" generatedAt="2024-03-01T10:00:00Z">
//	  <ServiceOrder number="SO-2024-101">
//	    <SalesOrder>PO-2024-001</SalesOrder>
//	    ...
//	  </ServiceOrder>
//	</RepairStatusReport>
package xmlreport

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/application/ports"
)

var _ ports.RepairReportXMLGenerator = (*EtreeGenerator)(nil)

// EtreeGenerator implementa ports.RepairReportXMLGenerator con beevik/etree.
type EtreeGenerator struct{}

// NewEtreeGenerator construye el generador.
func NewEtreeGenerator() *EtreeGenerator { return &EtreeGenerator{} }

// GenerateRepairReportXML devuelve el documento indentado con dos espacios.
func (g *EtreeGenerator) GenerateRepairReportXML(ctx context.Context, report dto.RepairReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("RepairStatusReport")
	root.CreateAttr("customer", report.CustomerName)
	root.CreateAttr("generatedAt", report.GeneratedAt.Format(time.RFC3339))
	root.CreateAttr("count", fmt.Sprint(len(report.Repairs)))

	for _, r := range report.Repairs {
		so := root.CreateElement("ServiceOrder")
		so.CreateAttr("number", r.Number)
		addText(so, "SalesOrder", r.SalesOrder)
		addText(so, "RMANumber", r.RMANumber)
		addText(so, "ProductStatus", r.ProductStatus)
		addText(so, "OrderStatus", r.OrderStatus)
		mat := so.CreateElement("Material")
		mat.CreateAttr("partNumber", r.Material)
		mat.SetText(r.MaterialDescription)
		addText(so, "Serial", r.Serial)
		dates := so.CreateElement("Dates")
		addText(dates, "Created", r.OrderCreatedDate)
		addText(dates, "Required", r.CustomerRequiredDate)
		addText(dates, "EstimatedCompletion", r.EstimatedCompletionDate)
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmlreport: serializar: %w", err)
	}
	return out.Bytes(), nil
}

func addText(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}
