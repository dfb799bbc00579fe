package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/application/ports"
	"github.com/jhoicas/rma-tracker/internal/domain"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
	"github.com/jhoicas/rma-tracker/pkg/clock"
)

// Filtros del listado de comunicaciones.
const (
	FilterSent   = "sent"
	FilterDrafts = "drafts"
)

// ReportAttacher genera el PDF de un cliente para adjuntarlo al enviar un borrador.
type ReportAttacher interface {
	ReportAttachment(ctx context.Context, customerID string) (ports.Attachment, error)
}

// CommunicationUseCase envío y borradores de correos y mensajes de Telegram.
type CommunicationUseCase struct {
	repo    repository.CommunicationRepository
	mailer  ports.EmailSender
	chat    ports.ChatSender
	reports ReportAttacher
	clock   clock.Clock
	log     zerolog.Logger
}

// NewCommunicationUseCase construye el caso de uso.
func NewCommunicationUseCase(
	repo repository.CommunicationRepository,
	mailer ports.EmailSender,
	chat ports.ChatSender,
	reports ReportAttacher,
	clk clock.Clock,
	log zerolog.Logger,
) *CommunicationUseCase {
	return &CommunicationUseCase{repo: repo, mailer: mailer, chat: chat, reports: reports, clock: clk, log: log}
}

// NormalizeFilter traduce el filtro de la pantalla a estado: "sent" → sent,
// "drafts" → draft y cualquier otro valor (incluido "all") → sin filtro.
func NormalizeFilter(filter string) string {
	switch strings.ToLower(strings.TrimSpace(filter)) {
	case FilterSent:
		return entity.CommunicationSent
	case FilterDrafts:
		return entity.CommunicationDraft
	default:
		return ""
	}
}

// List devuelve las comunicaciones más recientes primero.
func (uc *CommunicationUseCase) List(ctx context.Context, filter string) ([]dto.CommunicationResponse, error) {
	list, err := uc.repo.List(ctx, NormalizeFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("communications: listar: %w", err)
	}
	out := make([]dto.CommunicationResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewCommunicationResponse(c))
	}
	return out, nil
}

// Create entrega la comunicación y la guarda como enviada.
func (uc *CommunicationUseCase) Create(ctx context.Context, in dto.CreateCommunicationRequest) (*dto.CommunicationResponse, error) {
	c, err := uc.newCommunication(in)
	if err != nil {
		return nil, err
	}
	if err := uc.deliver(ctx, c); err != nil {
		return nil, err
	}
	c.Status = entity.CommunicationSent
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("communications: guardar: %w", err)
	}
	resp := dto.NewCommunicationResponse(c)
	return &resp, nil
}

// SaveDraft guarda la comunicación sin entregarla.
func (uc *CommunicationUseCase) SaveDraft(ctx context.Context, in dto.CreateCommunicationRequest) (*dto.CommunicationResponse, error) {
	c, err := uc.newCommunication(in)
	if err != nil {
		return nil, err
	}
	c.Status = entity.CommunicationDraft
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("communications: guardar borrador: %w", err)
	}
	resp := dto.NewCommunicationResponse(c)
	return &resp, nil
}

// SendDraft entrega un borrador y lo marca como enviado. ErrNotFound si no existe,
// ErrConflict si ya fue enviado.
func (uc *CommunicationUseCase) SendDraft(ctx context.Context, id string) (*dto.CommunicationResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("communications: obtener %s: %w", id, err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.Status == entity.CommunicationSent {
		return nil, fmt.Errorf("%w: la comunicación %s ya fue enviada", domain.ErrConflict, id)
	}
	if err := uc.deliver(ctx, c); err != nil {
		return nil, err
	}
	c.Status = entity.CommunicationSent
	c.Date = uc.clock.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("communications: actualizar %s: %w", id, err)
	}
	resp := dto.NewCommunicationResponse(c)
	return &resp, nil
}

func (uc *CommunicationUseCase) newCommunication(in dto.CreateCommunicationRequest) (*entity.Communication, error) {
	typ := strings.ToLower(strings.TrimSpace(in.Type))
	if typ == "" {
		typ = entity.CommunicationEmail
	}
	if typ != entity.CommunicationEmail && typ != entity.CommunicationTelegram {
		return nil, fmt.Errorf("%w: tipo de comunicación %q", domain.ErrInvalidInput, in.Type)
	}
	if missing := missingFields(map[string]string{
		"to":      in.To,
		"subject": in.Subject,
		"content": in.Content,
	}); missing != "" {
		return nil, fmt.Errorf("%w: faltan campos: %s", domain.ErrInvalidInput, missing)
	}
	if in.AttachReport && strings.TrimSpace(in.CustomerID) == "" {
		return nil, fmt.Errorf("%w: attach_report requiere customer_id", domain.ErrInvalidInput)
	}
	return &entity.Communication{
		ID:           uuid.New().String(),
		Type:         typ,
		Subject:      strings.TrimSpace(in.Subject),
		To:           strings.TrimSpace(in.To),
		ToName:       strings.TrimSpace(in.ToName),
		Date:         uc.clock.Now(),
		Content:      in.Content,
		CustomerID:   strings.TrimSpace(in.CustomerID),
		AttachReport: in.AttachReport,
	}, nil
}

// deliver entrega por el canal de la comunicación. Los adjuntos se regeneran en cada envío.
func (uc *CommunicationUseCase) deliver(ctx context.Context, c *entity.Communication) error {
	switch c.Type {
	case entity.CommunicationTelegram:
		if err := uc.chat.SendChat(ctx, c.To, c.Subject+"\n\n"+c.Content); err != nil {
			return fmt.Errorf("communications: telegram: %w", err)
		}
	default:
		msg := ports.OutgoingEmail{To: c.To, ToName: c.ToName, Subject: c.Subject, Body: c.Content}
		if c.AttachReport && c.CustomerID != "" {
			att, err := uc.reports.ReportAttachment(ctx, c.CustomerID)
			if err != nil {
				return fmt.Errorf("communications: adjuntar reporte: %w", err)
			}
			msg.Attachments = append(msg.Attachments, att)
		}
		if err := uc.mailer.SendEmail(ctx, msg); err != nil {
			return fmt.Errorf("communications: email: %w", err)
		}
	}
	uc.log.Info().Str("id", c.ID).Str("type", c.Type).Str("to", c.To).Msg("comunicación entregada")
	return nil
}
