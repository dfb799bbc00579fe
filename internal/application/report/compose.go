// Package report arma el reporte de reparaciones de un cliente (PDF/XML) y la
// actualización semanal por correo que lo adjunta.
package report

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

const (
	pdfSuffix = "_repair_status.pdf"
	xmlSuffix = "_repair_status.xml"
)

// SubjectDateLayout fecha corta del asunto (mes/día/año sin ceros).
const SubjectDateLayout = "1/2/2006"

// Filename nombre del PDF: los espacios del cliente se reemplazan por "_".
func Filename(customerName string) string {
	return baseName(customerName) + pdfSuffix
}

// XMLFilename nombre del reporte XML.
func XMLFilename(customerName string) string {
	return baseName(customerName) + xmlSuffix
}

// baseName colapsa cada tramo de espacios en un "_". Cuenta como espacio cualquier
// separador Unicode (NBSP, U+3000, \v) y el BOM, que llega pegado en exportaciones de Excel.
func baseName(customerName string) string {
	var b strings.Builder
	b.Grow(len(customerName))
	inSpace := false
	for _, r := range customerName {
		if isNameSpace(r) {
			if !inSpace {
				b.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func isNameSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Zs, r) || r == '\uFEFF'
}

// Subject asunto del correo semanal.
func Subject(company string, date time.Time) string {
	return fmt.Sprintf("%s Repair Status Update - %s", company, date.Format(SubjectDateLayout))
}

// Body cuerpo del correo semanal: saludo, resumen por orden de servicio y firma.
func Body(contactName, company, signature string, repairs []*entity.ServiceOrder) string {
	lines := make([]string, 0, len(repairs))
	for _, r := range repairs {
		lines = append(lines, fmt.Sprintf("%s: %s", r.Number, r.ProductStatus))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", contactName)
	fmt.Fprintf(&b, "I am writing to provide you with this week's update on your open repairs with %s. "+
		"Below, you will find a table that outlines the current status of each of your repairs. "+
		"The table includes detailed information such as sales order, service order, product status, "+
		"and estimated completion date.\n\n", company)
	b.WriteString("This Week's Update:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	b.WriteString("We Value Your Feedback:\n")
	fmt.Fprintf(&b, "Your feedback is very important to %s. Please let me know if you have any questions, "+
		"concerns, or suggestions regarding our repair services or this update. You can reply to this "+
		"email directly, or contact me using the details below.\n\n", company)
	b.WriteString("Contact Us:\n")
	b.WriteString("For more details about your repairs, feel free to contact me directly or use the RMA " +
		"tracker on our website for the latest updates.\n\n")
	fmt.Fprintf(&b, "Kind regards,\n%s", signature)
	return b.String()
}
