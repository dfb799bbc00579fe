package entity

// DatabaseConfig datos de conexión a la base de datos externa (ERP) desde la pantalla de ajustes.
type DatabaseConfig struct {
	Host     string
	Database string
	Username string
	Password string
}

// Complete es true solo si los cuatro campos tienen valor.
func (c DatabaseConfig) Complete() bool {
	return c.Host != "" && c.Database != "" && c.Username != "" && c.Password != ""
}
