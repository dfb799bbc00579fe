package dto

// DatabaseConfigRequest formulario de conexión a la base de datos externa.
type DatabaseConfigRequest struct {
	Host     string `json:"host"`
	Database string `json:"database"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ConnectionTestResponse resultado de probar la conexión.
type ConnectionTestResponse struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message"`
}

// ConnectionStatusResponse estado actual de la conexión guardada.
type ConnectionStatusResponse struct {
	Connected bool   `json:"connected"`
	Host      string `json:"host,omitempty"`
	Database  string `json:"database,omitempty"`
}
