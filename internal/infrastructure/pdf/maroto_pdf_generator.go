// Package pdf genera el "Repair Status Report" de un cliente con Maroto v2.
//
// Layout de la página A4 apaisada:
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  Repair Status Report                                   <Compañía>   │
//	│  Customer: <nombre>                                                  │
//	│  Date: <hoy>                                                         │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  TABLA: Service Order | Sales Order | RMA Number | Status | ...      │
//	└──────────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/application/ports"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

var _ ports.RepairReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorHeader = &props.Color{Red: 66, Green: 139, Blue: 202}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite  = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// gridSize columnas de la grilla: diez columnas de tabla con anchos distintos.
const gridSize = 20

// DateLayout formato corto de fecha usado en el reporte.
const DateLayout = "01/02/2006"

type column struct {
	label string
	size  int
}

var columns = []column{
	{"Service Order", 2},
	{"Sales Order", 2},
	{"RMA Number", 2},
	{"Status", 2},
	{"Order Status", 1},
	{"Material", 3},
	{"Serial", 2},
	{"Created", 2},
	{"Required", 2},
	{"Est. Completion", 2},
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.RepairReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	companyName string
}

// NewMarotoPDFGenerator construye el generador; companyName figura como autor del documento.
func NewMarotoPDFGenerator(companyName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{companyName: companyName}
}

// GenerateRepairReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateRepairReportPDF(ctx context.Context, report dto.RepairReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(gridSize).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Repair Status Report", true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRows(report, g.companyName)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorHeader, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(report.Repairs, report.GeneratedAt.Location())...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRows(report dto.RepairReport, company string) []core.Row {
	return []core.Row{
		row.New(12).Add(
			col.New(14).Add(text.New("Repair Status Report", props.Text{
				Style: fontstyle.Bold, Size: 16, Top: 2,
			})),
			col.New(6).Add(text.New(company, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 4, Color: colorGray,
			})),
		),
		row.New(6).Add(col.New(gridSize).Add(text.New("Customer: "+report.CustomerName, props.Text{Size: 10}))),
		row.New(8).Add(col.New(gridSize).Add(text.New("Date: "+report.GeneratedAt.Format(DateLayout), props.Text{Size: 10}))),
	}
}

// tableHeaderRow: cabecera con fondo azul y texto blanco.
func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

// tableDetailRows: una fila por reparación. Material ocupa dos líneas: número de parte y descripción.
func tableDetailRows(repairs []*entity.ServiceOrder, loc *time.Location) []core.Row {
	result := make([]core.Row, 0, len(repairs))
	for _, r := range repairs {
		cells := []string{
			r.Number,
			r.SalesOrder,
			r.RMANumber,
			r.ProductStatus,
			r.OrderStatus,
			"", // material
			r.Serial,
			FormatDate(r.OrderCreatedDate, loc),
			FormatDate(r.CustomerRequiredDate, loc),
			FormatDate(r.EstimatedCompletionDate, loc),
		}
		cols := make([]core.Col, 0, len(columns))
		for i, c := range columns {
			cl := col.New(c.size)
			if columns[i].label == "Material" {
				cl.Add(
					text.New(r.Material, props.Text{Size: 8, Top: 1, Left: 1, Right: 1}),
					text.New(r.MaterialDescription, props.Text{Size: 7, Top: 5, Left: 1, Right: 1, Color: colorGray}),
				)
			} else {
				cl.Add(text.New(cells[i], props.Text{Size: 8, Top: 1, Left: 1, Right: 1}))
			}
			cols = append(cols, cl)
		}
		result = append(result, row.New(11).Add(cols...))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"02-Jan-2006",
}

// FormatDate convierte la fecha importada a formato corto local. Si no se reconoce
// el formato se devuelve tal cual.
func FormatDate(s string, loc *time.Location) string {
	v := strings.TrimSpace(s)
	if v == "" {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t.In(loc).Format(DateLayout)
		}
	}
	return s
}
