package dto

// MaterialDTO número de parte y descripción de la pieza reparada.
type MaterialDTO struct {
	PartNumber  string `json:"part_number"`
	Description string `json:"description"`
}

// RepairDTO reparación (orden de servicio) de un cliente.
type RepairDTO struct {
	ServiceOrder            string      `json:"service_order"`
	SalesOrder              string      `json:"sales_order"`
	ProductStatus           string      `json:"product_status"`
	OrderStatus             string      `json:"order_status"`
	Material                MaterialDTO `json:"material"`
	Serial                  string      `json:"serial"`
	OrderCreatedDate        string      `json:"order_created_date"`
	CustomerRequiredDate    string      `json:"customer_required_date"`
	EstimatedCompletionDate string      `json:"estimated_completion_date"`
	RMANumber               string      `json:"rma_number"`
}

// CustomerResponse cliente con sus reparaciones y contadores derivados.
type CustomerResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Contact      string      `json:"contact"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	ActiveRMAs   int         `json:"active_rmas"`
	TotalRepairs int         `json:"total_repairs"`
	Repairs      []RepairDTO `json:"repairs"`
}

// ContactResponse contacto al que se dirige la actualización semanal.
type ContactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
