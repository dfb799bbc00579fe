package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/application/ports"
	"github.com/jhoicas/rma-tracker/internal/domain"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/domain/repository"
	"github.com/jhoicas/rma-tracker/pkg/clock"
)

// Modos de SendStatusUpdate.
const (
	ModeDraft = "draft" // se guarda para revisión antes de enviar
	ModeSend  = "send"
)

const pdfContentType = "application/pdf"

// Branding datos fijos del reporte y del correo.
type Branding struct {
	CompanyName string
	Signature   string
	Location    *time.Location
}

// Deps dependencias del caso de uso.
type Deps struct {
	Customers      repository.CustomerRepository
	RMAs           repository.RMARepository
	ServiceOrders  repository.ServiceOrderRepository
	Communications repository.CommunicationRepository
	PDF            ports.RepairReportPDFGenerator
	XML            ports.RepairReportXMLGenerator
	Mailer         ports.EmailSender
	Clock          clock.Clock
	Log            zerolog.Logger
}

// ReportUseCase genera reportes por cliente y la actualización semanal por correo.
type ReportUseCase struct {
	Deps
	brand Branding
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(deps Deps, brand Branding) *ReportUseCase {
	if brand.Location == nil {
		brand.Location = time.UTC
	}
	return &ReportUseCase{Deps: deps, brand: brand}
}

// Build reúne el cliente y sus reparaciones. ErrNotFound si el cliente no existe.
func (uc *ReportUseCase) Build(ctx context.Context, customerID string) (*entity.Customer, dto.RepairReport, error) {
	customer, err := uc.Customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, dto.RepairReport{}, fmt.Errorf("report: cliente %s: %w", customerID, err)
	}
	if customer == nil {
		return nil, dto.RepairReport{}, domain.ErrNotFound
	}
	repairs, err := uc.ServiceOrders.ListByCustomerName(ctx, customer.Name)
	if err != nil {
		return nil, dto.RepairReport{}, fmt.Errorf("report: reparaciones de %s: %w", customer.Name, err)
	}
	return customer, dto.RepairReport{
		CustomerName: customer.Name,
		GeneratedAt:  uc.Clock.Now().In(uc.brand.Location),
		Repairs:      repairs,
	}, nil
}

// DownloadPDF devuelve el nombre de archivo y los bytes del PDF.
func (uc *ReportUseCase) DownloadPDF(ctx context.Context, customerID string) (string, []byte, error) {
	att, err := uc.ReportAttachment(ctx, customerID)
	if err != nil {
		return "", nil, err
	}
	return att.Filename, att.Data, nil
}

// DownloadXML devuelve el nombre de archivo y el reporte en XML.
func (uc *ReportUseCase) DownloadXML(ctx context.Context, customerID string) (string, []byte, error) {
	customer, rep, err := uc.Build(ctx, customerID)
	if err != nil {
		return "", nil, err
	}
	data, err := uc.XML.GenerateRepairReportXML(ctx, rep)
	if err != nil {
		return "", nil, fmt.Errorf("report: xml: %w", err)
	}
	return XMLFilename(customer.Name), data, nil
}

// ReportAttachment genera el PDF listo para adjuntar a un correo.
func (uc *ReportUseCase) ReportAttachment(ctx context.Context, customerID string) (ports.Attachment, error) {
	customer, rep, err := uc.Build(ctx, customerID)
	if err != nil {
		return ports.Attachment{}, err
	}
	data, err := uc.PDF.GenerateRepairReportPDF(ctx, rep)
	if err != nil {
		return ports.Attachment{}, fmt.Errorf("report: pdf: %w", err)
	}
	return ports.Attachment{Filename: Filename(customer.Name), ContentType: pdfContentType, Data: data}, nil
}

// GetCustomerContact contacto de un RMA: primero el contacto del propio RMA y,
// si no tiene email, la cuenta del cliente. ErrNotFound si no hay ninguno.
func (uc *ReportUseCase) GetCustomerContact(ctx context.Context, rmaNumber string) (*dto.ContactResponse, error) {
	rma, err := uc.RMAs.GetByNumber(ctx, rmaNumber)
	if err != nil {
		return nil, fmt.Errorf("report: RMA %s: %w", rmaNumber, err)
	}
	if rma == nil {
		return nil, domain.ErrNotFound
	}
	if rma.ContactEmail != "" {
		return &dto.ContactResponse{Name: firstNonEmpty(rma.ContactName, rma.CustomerName), Email: rma.ContactEmail}, nil
	}
	account, err := uc.Customers.GetByName(ctx, rma.CustomerName)
	if err != nil {
		return nil, fmt.Errorf("report: cliente %s: %w", rma.CustomerName, err)
	}
	if account != nil && account.Email != "" {
		return &dto.ContactResponse{Name: firstNonEmpty(account.Contact, account.Name), Email: account.Email}, nil
	}
	if rma.CustomerEmail != "" {
		return &dto.ContactResponse{Name: firstNonEmpty(rma.ContactName, rma.CustomerName), Email: rma.CustomerEmail}, nil
	}
	return nil, domain.ErrNotFound
}

// SendStatusUpdate compone la actualización semanal con el PDF adjunto.
// En ModeDraft queda como borrador; en ModeSend se entrega y se guarda como enviada.
func (uc *ReportUseCase) SendStatusUpdate(ctx context.Context, customerID, mode string) (*dto.CommunicationResponse, error) {
	if mode == "" {
		mode = ModeDraft
	}
	if mode != ModeDraft && mode != ModeSend {
		return nil, fmt.Errorf("%w: modo %q", domain.ErrInvalidInput, mode)
	}

	customer, rep, err := uc.Build(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(rep.Repairs) == 0 || strings.TrimSpace(rep.Repairs[0].RMANumber) == "" {
		return nil, domain.ErrNoRMANumber
	}

	contact, err := uc.GetCustomerContact(ctx, rep.Repairs[0].RMANumber)
	if errors.Is(err, domain.ErrNotFound) {
		contact = &dto.ContactResponse{Name: firstNonEmpty(customer.Contact, customer.Name), Email: customer.Email}
	} else if err != nil {
		return nil, err
	}
	if contact.Email == "" {
		return nil, fmt.Errorf("%w: %s no tiene email de contacto", domain.ErrInvalidInput, customer.Name)
	}

	pdf, err := uc.PDF.GenerateRepairReportPDF(ctx, rep)
	if err != nil {
		return nil, fmt.Errorf("report: pdf: %w", err)
	}
	att := ports.Attachment{Filename: Filename(customer.Name), ContentType: pdfContentType, Data: pdf}

	comm := &entity.Communication{
		ID:           uuid.New().String(),
		Type:         entity.CommunicationEmail,
		Subject:      Subject(uc.brand.CompanyName, rep.GeneratedAt),
		To:           contact.Email,
		ToName:       contact.Name,
		Date:         rep.GeneratedAt,
		Content:      Body(contact.Name, uc.brand.CompanyName, uc.brand.Signature, rep.Repairs),
		Status:       entity.CommunicationDraft,
		CustomerID:   customer.ID,
		AttachReport: true,
	}

	// Borrador primero; pasa a enviado solo tras la entrega.
	if err := uc.Communications.Create(ctx, comm); err != nil {
		return nil, fmt.Errorf("report: guardar comunicación: %w", err)
	}

	if mode == ModeSend {
		err := uc.Mailer.SendEmail(ctx, ports.OutgoingEmail{
			To:          comm.To,
			ToName:      comm.ToName,
			Subject:     comm.Subject,
			Body:        comm.Content,
			Attachments: []ports.Attachment{att},
		})
		if err != nil {
			return nil, fmt.Errorf("report: enviar actualización (queda borrador %s): %w", comm.ID, err)
		}
		comm.Status = entity.CommunicationSent
		if err := uc.Communications.Update(ctx, comm); err != nil {
			uc.Log.Error().Err(err).Str("communication", comm.ID).Str("to", comm.To).
				Msg("correo entregado pero sigue guardado como borrador")
		}
	}

	uc.Log.Info().Str("customer", customer.Name).Str("to", comm.To).Str("status", comm.Status).Msg("actualización semanal creada")
	resp := dto.NewCommunicationResponse(comm)
	return &resp, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
