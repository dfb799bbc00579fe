package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Ajustes de base de datos externa: algún campo de la conexión está vacío.
	ErrInvalidConfig = errors.New("Invalid configuration")
	// Reporte semanal: la primera reparación del cliente no tiene número de RMA.
	ErrNoRMANumber = errors.New("No RMA number found")
	// Importación: extensión de archivo no soportada o libro sin hojas.
	ErrUnsupportedFormat = errors.New("formato de hoja de cálculo no soportado")
	ErrEmptyWorkbook     = errors.New("la hoja de cálculo no contiene datos")
	// Comunicaciones: canal no configurado (SMTP o Telegram).
	ErrChannelDisabled = errors.New("canal de envío no configurado")
)
