package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the internal lifecycle of an NFS-e.
//
// An invoice is created as pendente_confirmacao right after a submission
// attempt and moves to one of the terminal statuses when the provider
// confirms the outcome.
type InvoiceStatus string

const (
	InvoiceStatusPendenteConfirmacao InvoiceStatus = "pendente_confirmacao"
	InvoiceStatusAutorizada          InvoiceStatus = "autorizada"
	InvoiceStatusRejeitada           InvoiceStatus = "rejeitada"
	InvoiceStatusCancelada           InvoiceStatus = "cancelada"
)

// Terminal reports whether the status is not expected to change again.
func (s InvoiceStatus) Terminal() bool {
	switch s {
	case InvoiceStatusAutorizada, InvoiceStatusRejeitada, InvoiceStatusCancelada:
		return true
	}
	return false
}

// Invoice is one issued or attempted service invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (numero-index): numero
//
// Monetary representation:
//   - Valor, AliquotaISS, ValorISS and ValorLiquido are exact decimals and
//     are persisted as string attributes so no binary floating point error
//     ever reaches the stored cents.
type Invoice struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	Numero            string          `json:"numero,omitempty"`
	CodigoVerificacao string          `json:"codigo_verificacao,omitempty"`
	ClienteNome       string          `json:"cliente_nome"`
	ClienteDocumento  string          `json:"cliente_documento"`
	DescricaoServico  string          `json:"descricao_servico"`
	Valor             decimal.Decimal `json:"valor"`
	AliquotaISS       decimal.Decimal `json:"aliquota_iss"`
	ValorISS          decimal.Decimal `json:"valor_iss"`
	ValorLiquido      decimal.Decimal `json:"valor_liquido"`
	Status            InvoiceStatus   `json:"status"`
	DataEmissao       string          `json:"data_emissao,omitempty"`
	PDFURL            string          `json:"pdf_url,omitempty"`
	XMLURL            string          `json:"xml_url,omitempty"`
	MotivoRejeicao    string          `json:"motivo_rejeicao,omitempty"`
	Municipio         string          `json:"municipio"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ComputeISS derives the ISS amount and the net value for a service value and
// an ISS rate (percent). The ISS is rounded to cents first so that
// valor == valor_iss + valor_liquido always holds exactly.
func ComputeISS(valor, aliquota decimal.Decimal) (valorISS, valorLiquido decimal.Decimal) {
	valorISS = valor.Mul(aliquota).Div(decimal.NewFromInt(100)).Round(2)
	valorLiquido = valor.Sub(valorISS)
	return valorISS, valorLiquido
}
