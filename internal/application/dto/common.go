package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta de operaciones que solo notifican un resultado al usuario.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListResponse envoltorio de listados con el filtro aplicado.
type ListResponse[T any] struct {
	Items  []T    `json:"items"`
	Filter string `json:"filter"`
	Total  int    `json:"total"`
}
