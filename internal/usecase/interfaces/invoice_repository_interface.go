package interfaces

import (
	"context"

	"fiscalai/internal/domain/entities"
)

// InvoiceFilter narrows and pages List results. Zero values mean "no filter";
// Limit defaults at the repository when zero.
type InvoiceFilter struct {
	CompanyID string
	Status    entities.InvoiceStatus
	Limit     int
	Offset    int
}

// InvoiceFiscalUpdate is the partial update applied after a provider status
// poll. Empty strings leave the stored attribute untouched; Status is always
// written.
type InvoiceFiscalUpdate struct {
	Status            entities.InvoiceStatus
	Numero            string
	CodigoVerificacao string
	PDFURL            string
	XMLURL            string
	MotivoRejeicao    string
}

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByNumero(ctx context.Context, numero string) (entities.Invoice, error)
	UpdateFiscalData(ctx context.Context, id string, upd InvoiceFiscalUpdate) (entities.Invoice, error)
	List(ctx context.Context, filter InvoiceFilter) (invoices []entities.Invoice, total int, err error)
}
