package dto

import (
	"time"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

// CreateCommunicationRequest formulario "New Email". Type vacío = email.
// Con AttachReport y CustomerID se adjunta el reporte PDF del cliente al enviar.
type CreateCommunicationRequest struct {
	Type         string `json:"type"`
	To           string `json:"to"`
	ToName       string `json:"to_name"`
	Subject      string `json:"subject"`
	Content      string `json:"content"`
	CustomerID   string `json:"customer_id"`
	AttachReport bool   `json:"attach_report"`
}

// CommunicationResponse comunicación enviada o en borrador.
type CommunicationResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Subject      string    `json:"subject"`
	To           string    `json:"to"`
	ToName       string    `json:"to_name,omitempty"`
	Date         time.Time `json:"date"`
	Content      string    `json:"content"`
	Status       string    `json:"status"`
	CustomerID   string    `json:"customer_id,omitempty"`
	AttachReport bool      `json:"attach_report"`
}

// NewCommunicationResponse mapea la entidad a la respuesta HTTP.
func NewCommunicationResponse(c *entity.Communication) CommunicationResponse {
	return CommunicationResponse{
		ID:           c.ID,
		Type:         c.Type,
		Subject:      c.Subject,
		To:           c.To,
		ToName:       c.ToName,
		Date:         c.Date,
		Content:      c.Content,
		Status:       c.Status,
		CustomerID:   c.CustomerID,
		AttachReport: c.AttachReport,
	}
}

// CommunicationResultResponse comunicación creada con el aviso para el usuario
// ("Email sent" / "Email drafted").
type CommunicationResultResponse struct {
	Message       string                `json:"message"`
	Communication CommunicationResponse `json:"communication"`
}
