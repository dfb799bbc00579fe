// Package importer convierte hojas de cálculo de RMAs y órdenes de servicio en
// registros tipados y los persiste en una sola transacción.
package importer

// Encabezados de la hoja de RMAs.
const (
	ColRMANumber     = "RMA Number"
	ColCustomerName  = "Customer Name"
	ColCustomerEmail = "Customer Email"
	ColContactName   = "Contact Name"
	ColContactEmail  = "Contact Email"
	ColDateSubmitted = "Date Submitted"
	ColStatus        = "Status"
)

// Encabezados de la hoja de órdenes de servicio.
const (
	ColServiceOrder            = "Service Order"
	ColSalesOrder              = "Sales Order"
	ColProductStatus           = "Product Status"
	ColOrderStatus             = "Order Status"
	ColMaterial                = "Material"
	ColMaterialDescription     = "Material Description"
	ColSerial                  = "Serial"
	ColOrderCreatedDate        = "Order Created Date"
	ColCustomerRequiredDate    = "Customer Required Date"
	ColEstimatedCompletionDate = "Estimated Completion Date"
)

// RMARecord fila normalizada de la hoja de RMAs.
type RMARecord struct {
	RMANumber     string
	CustomerName  string
	CustomerEmail string
	ContactName   string
	ContactEmail  string
	DateSubmitted string
	Status        string
}

// ServiceOrderRecord fila normalizada de la hoja de órdenes de servicio.
type ServiceOrderRecord struct {
	ServiceOrder            string
	SalesOrder              string
	ProductStatus           string
	OrderStatus             string
	Material                string
	MaterialDescription     string
	Serial                  string
	OrderCreatedDate        string
	CustomerRequiredDate    string
	EstimatedCompletionDate string
	RMANumber               string
}

// ParseRMARows mapea cada fila por nombre de columna. Una columna ausente produce "".
func ParseRMARows(rows []map[string]string) []RMARecord {
	out := make([]RMARecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, RMARecord{
			RMANumber:     row[ColRMANumber],
			CustomerName:  row[ColCustomerName],
			CustomerEmail: row[ColCustomerEmail],
			ContactName:   row[ColContactName],
			ContactEmail:  row[ColContactEmail],
			DateSubmitted: row[ColDateSubmitted],
			Status:        row[ColStatus],
		})
	}
	return out
}

// ParseServiceOrderRows mapea cada fila por nombre de columna. Una columna ausente produce "".
func ParseServiceOrderRows(rows []map[string]string) []ServiceOrderRecord {
	out := make([]ServiceOrderRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ServiceOrderRecord{
			ServiceOrder:            row[ColServiceOrder],
			SalesOrder:              row[ColSalesOrder],
			ProductStatus:           row[ColProductStatus],
			OrderStatus:             row[ColOrderStatus],
			Material:                row[ColMaterial],
			MaterialDescription:     row[ColMaterialDescription],
			Serial:                  row[ColSerial],
			OrderCreatedDate:        row[ColOrderCreatedDate],
			CustomerRequiredDate:    row[ColCustomerRequiredDate],
			EstimatedCompletionDate: row[ColEstimatedCompletionDate],
			RMANumber:               row[ColRMANumber],
		})
	}
	return out
}
