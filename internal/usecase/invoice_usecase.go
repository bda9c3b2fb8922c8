package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"fiscalai/internal/domain/entities"
	"fiscalai/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IssueInvoiceInput is one NFS-e issuance request as received from the UI or
// the assistant.
type IssueInvoiceInput struct {
	CompanyID        string
	ClienteNome      string
	ClienteDocumento string
	DescricaoServico string
	Valor            decimal.Decimal
	AliquotaISS      decimal.Decimal
	Municipio        string
	DataPrestacao    string
	CodigoServico    string
	ISSRetido        bool
}

// InvoiceStatusResult is the outcome of one provider status poll.
type InvoiceStatusResult struct {
	Numero            string
	Status            entities.InvoiceStatus
	CodigoVerificacao string
	PDFURL            string
	XMLURL            string
}

// IInvoiceUseCase exposes NFS-e issuance, status reconciliation and listing.
type IInvoiceUseCase interface {
	Issue(ctx context.Context, in IssueInvoiceInput) (entities.Invoice, error)
	CheckStatus(ctx context.Context, numero, invoiceID string) (InvoiceStatusResult, error)
	List(ctx context.Context, filter interfaces.InvoiceFilter) ([]entities.Invoice, int, error)
}

type InvoiceUseCase struct {
	repo          interfaces.IInvoiceRepository
	companyRepo   interfaces.ICompanyRepository
	notifications interfaces.INotificationRepository
	gateway       interfaces.IFiscalGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	companyRepo interfaces.ICompanyRepository,
	notifications interfaces.INotificationRepository,
	gateway interfaces.IFiscalGateway,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		repo:          repo,
		companyRepo:   companyRepo,
		notifications: notifications,
		gateway:       gateway,
	}
}

// Issue validates the request, submits the NFS-e to the provider and
// persists the resulting invoice. Validation failures happen before any
// network call; a company without a provider id is rejected immediately and
// no invoice record is created.
func (u *InvoiceUseCase) Issue(ctx context.Context, in IssueInvoiceInput) (entities.Invoice, error) {
	log.Printf("[invoice][usecase] issue start company_id=%s", in.CompanyID)

	if err := validateIssueInput(in); err != nil {
		return entities.Invoice{}, err
	}

	company, err := u.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if company.ID == "" {
		return entities.Invoice{}, ErrCompanyNotFound
	}
	if !company.Registered() {
		log.Printf("[invoice][usecase] company not registered company_id=%s", in.CompanyID)
		return entities.Invoice{}, ErrCompanyNotRegistered
	}

	valorISS, valorLiquido := entities.ComputeISS(in.Valor, in.AliquotaISS)

	result, err := u.gateway.IssueInvoice(ctx, interfaces.IssueInvoiceCommand{
		Company:          company,
		ClienteNome:      in.ClienteNome,
		ClienteDocumento: in.ClienteDocumento,
		DescricaoServico: in.DescricaoServico,
		Valor:            in.Valor,
		AliquotaISS:      in.AliquotaISS,
		ValorISS:         valorISS,
		ISSRetido:        in.ISSRetido,
		DataPrestacao:    in.DataPrestacao,
		CodigoServico:    in.CodigoServico,
	})
	if err != nil {
		log.Printf("[invoice][usecase] provider issuance failed company_id=%s err=%v", in.CompanyID, err)
		return entities.Invoice{}, err
	}

	dataEmissao := result.DataEmissao
	if dataEmissao == "" {
		dataEmissao = time.Now().UTC().Format("2006-01-02")
	}

	inv := entities.Invoice{
		ID:                uuid.NewString(),
		CompanyID:         company.ID,
		Numero:            result.Numero,
		CodigoVerificacao: result.CodigoVerificacao,
		ClienteNome:       in.ClienteNome,
		ClienteDocumento:  in.ClienteDocumento,
		DescricaoServico:  in.DescricaoServico,
		Valor:             in.Valor,
		AliquotaISS:       in.AliquotaISS,
		ValorISS:          valorISS,
		ValorLiquido:      valorLiquido,
		Status:            result.Status,
		DataEmissao:       dataEmissao,
		PDFURL:            result.PDFURL,
		XMLURL:            result.XMLURL,
		MotivoRejeicao:    result.MotivoRejeicao,
		Municipio:         in.Municipio,
		CreatedAt:         time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		log.Printf("[invoice][usecase] persist failed company_id=%s err=%v", in.CompanyID, err)
		return entities.Invoice{}, err
	}

	u.notify(ctx, entities.Notification{
		Titulo:    "Nota fiscal emitida",
		Mensagem:  issuedMessage(created.Numero),
		Tipo:      entities.NotificationTipoSucesso,
		InvoiceID: created.ID,
	})

	log.Printf("[invoice][usecase] issue success invoice_id=%s numero=%s status=%s", created.ID, created.Numero, created.Status)
	return created, nil
}

// CheckStatus polls the provider for the NFS-e state and reconciles the
// stored invoice. The invoice is located by id when given, by numero
// otherwise; an invoice missing from the store does not fail the poll. A
// notification is recorded only when the stored status actually changed.
func (u *InvoiceUseCase) CheckStatus(ctx context.Context, numero, invoiceID string) (InvoiceStatusResult, error) {
	numero = strings.TrimSpace(numero)
	if numero == "" {
		return InvoiceStatusResult{}, ErrInvalidInvoiceNumero
	}
	log.Printf("[invoice][usecase] status check start numero=%s", numero)

	result, err := u.gateway.GetInvoiceStatus(ctx, numero)
	if err != nil {
		log.Printf("[invoice][usecase] status check failed numero=%s err=%v", numero, err)
		return InvoiceStatusResult{}, err
	}

	stored, err := u.findStored(ctx, numero, invoiceID)
	if err != nil {
		return InvoiceStatusResult{}, err
	}

	if stored.ID != "" {
		updated, err := u.repo.UpdateFiscalData(ctx, stored.ID, interfaces.InvoiceFiscalUpdate{
			Status:            result.Status,
			Numero:            result.Numero,
			CodigoVerificacao: result.CodigoVerificacao,
			PDFURL:            result.PDFURL,
			XMLURL:            result.XMLURL,
			MotivoRejeicao:    result.MotivoRejeicao,
		})
		if err != nil {
			return InvoiceStatusResult{}, err
		}

		if stored.Status != result.Status {
			u.notify(ctx, entities.Notification{
				Titulo:    "Status atualizado",
				Mensagem:  fmt.Sprintf("Nota fiscal %s: %s", numero, result.Status),
				Tipo:      statusNotificationType(result.Status),
				InvoiceID: stored.ID,
			})
		}
		log.Printf("[invoice][usecase] status check reconciled invoice_id=%s status=%s", updated.ID, result.Status)
	}

	return InvoiceStatusResult{
		Numero:            stringFallback(result.Numero, numero),
		Status:            result.Status,
		CodigoVerificacao: result.CodigoVerificacao,
		PDFURL:            result.PDFURL,
		XMLURL:            result.XMLURL,
	}, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, filter interfaces.InvoiceFilter) ([]entities.Invoice, int, error) {
	return u.repo.List(ctx, filter)
}

func (u *InvoiceUseCase) findStored(ctx context.Context, numero, invoiceID string) (entities.Invoice, error) {
	if id := strings.TrimSpace(invoiceID); id != "" {
		return u.repo.GetByID(ctx, id)
	}
	return u.repo.GetByNumero(ctx, numero)
}

// notify records the notification on a best-effort basis; a failed write
// never fails the fiscal operation that triggered it.
func (u *InvoiceUseCase) notify(ctx context.Context, n entities.Notification) {
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()
	if _, err := u.notifications.Create(ctx, n); err != nil {
		log.Printf("[invoice][usecase] notification write failed err=%v", err)
	}
}

func validateIssueInput(in IssueInvoiceInput) error {
	required := []struct {
		value, field, label string
	}{
		{in.CompanyID, "companyId", "ID da empresa"},
		{in.ClienteNome, "cliente_nome", "Nome do cliente"},
		{in.ClienteDocumento, "cliente_documento", "Documento do cliente"},
		{in.DescricaoServico, "descricao_servico", "Descrição do serviço"},
		{in.Municipio, "municipio", "Município"},
		{in.DataPrestacao, "data_prestacao", "Data da prestação"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return missingField(f.field, f.label)
		}
	}
	if !in.Valor.IsPositive() {
		return ErrInvalidInvoiceValue
	}
	if in.AliquotaISS.IsNegative() || in.AliquotaISS.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidISSRate
	}
	return nil
}

func issuedMessage(numero string) string {
	if numero == "" {
		return "Nota fiscal enviada para processamento"
	}
	return fmt.Sprintf("Nota fiscal %s emitida com sucesso", numero)
}

func statusNotificationType(s entities.InvoiceStatus) entities.NotificationType {
	switch s {
	case entities.InvoiceStatusAutorizada:
		return entities.NotificationTipoSucesso
	case entities.InvoiceStatusRejeitada:
		return entities.NotificationTipoErro
	default:
		return entities.NotificationTipoInfo
	}
}

func stringFallback(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
