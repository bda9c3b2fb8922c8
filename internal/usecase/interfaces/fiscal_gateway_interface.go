package interfaces

import (
	"context"

	"fiscalai/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IssueInvoiceCommand carries one NFS-e submission. Monetary values are
// exact decimals; ValorISS must already be derived from Valor and
// AliquotaISS by entities.ComputeISS.
type IssueInvoiceCommand struct {
	Company                entities.Company
	ClienteNome            string
	ClienteDocumento       string
	DescricaoServico       string
	Valor                  decimal.Decimal
	AliquotaISS            decimal.Decimal
	ValorISS               decimal.Decimal
	ISSRetido              bool
	DataPrestacao          string
	CodigoServico          string
	TomadorCodigoMunicipio string
	TomadorUF              string
}

// FiscalInvoiceResult is the provider outcome with the status already
// normalized into the internal vocabulary at the gateway boundary.
type FiscalInvoiceResult struct {
	Numero            string
	CodigoVerificacao string
	Status            entities.InvoiceStatus
	DataEmissao       string
	PDFURL            string
	XMLURL            string
	MotivoRejeicao    string
}

// IFiscalGateway abstracts the external fiscal provider (Nuvem Fiscal).
//
// Every failure is a *nuvemfiscal.APIError carrying a structured kind;
// callers translate kinds into user-facing responses and never retry.
type IFiscalGateway interface {
	RegisterCompany(ctx context.Context, company entities.Company) (providerID string, err error)
	IssueInvoice(ctx context.Context, cmd IssueInvoiceCommand) (FiscalInvoiceResult, error)
	GetInvoiceStatus(ctx context.Context, numero string) (FiscalInvoiceResult, error)
	HealthCheck(ctx context.Context) error
}
