package dto

// ImportResult resumen de una importación de hoja de cálculo.
type ImportResult struct {
	Kind      string `json:"kind"` // rma | service_order
	Processed int    `json:"processed"`
	Message   string `json:"message"`
}
