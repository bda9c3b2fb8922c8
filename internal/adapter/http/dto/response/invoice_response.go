package response

import (
	"time"

	"fiscalai/internal/domain/entities"
	"fiscalai/internal/usecase"
)

// InvoiceResponse renders monetary values as fixed-point strings so clients
// receive exactly the cents the service computed.
type InvoiceResponse struct {
	ID                string    `json:"id"`
	CompanyID         string    `json:"company_id"`
	Numero            string    `json:"numero,omitempty"`
	CodigoVerificacao string    `json:"codigo_verificacao,omitempty"`
	ClienteNome       string    `json:"cliente_nome"`
	ClienteDocumento  string    `json:"cliente_documento"`
	DescricaoServico  string    `json:"descricao_servico"`
	Valor             string    `json:"valor"`
	AliquotaISS       string    `json:"aliquota_iss"`
	ValorISS          string    `json:"valor_iss"`
	ValorLiquido      string    `json:"valor_liquido"`
	Status            string    `json:"status"`
	DataEmissao       string    `json:"data_emissao,omitempty"`
	PDFURL            string    `json:"pdf_url,omitempty"`
	XMLURL            string    `json:"xml_url,omitempty"`
	MotivoRejeicao    string    `json:"motivo_rejeicao,omitempty"`
	Municipio         string    `json:"municipio"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                inv.ID,
		CompanyID:         inv.CompanyID,
		Numero:            inv.Numero,
		CodigoVerificacao: inv.CodigoVerificacao,
		ClienteNome:       inv.ClienteNome,
		ClienteDocumento:  inv.ClienteDocumento,
		DescricaoServico:  inv.DescricaoServico,
		Valor:             inv.Valor.StringFixed(2),
		AliquotaISS:       inv.AliquotaISS.String(),
		ValorISS:          inv.ValorISS.StringFixed(2),
		ValorLiquido:      inv.ValorLiquido.StringFixed(2),
		Status:            string(inv.Status),
		DataEmissao:       inv.DataEmissao,
		PDFURL:            inv.PDFURL,
		XMLURL:            inv.XMLURL,
		MotivoRejeicao:    inv.MotivoRejeicao,
		Municipio:         inv.Municipio,
		CreatedAt:         inv.CreatedAt,
	}
}

type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int               `json:"total"`
}

func FromInvoiceList(invoices []entities.Invoice, total int) InvoiceListResponse {
	out := InvoiceListResponse{Invoices: make([]InvoiceResponse, 0, len(invoices)), Total: total}
	for _, inv := range invoices {
		out.Invoices = append(out.Invoices, FromInvoice(inv))
	}
	return out
}

type InvoiceStatusResponse struct {
	Numero            string `json:"numero"`
	Status            string `json:"status"`
	CodigoVerificacao string `json:"codigo_verificacao,omitempty"`
	PDFURL            string `json:"pdf_url,omitempty"`
	XMLURL            string `json:"xml_url,omitempty"`
}

func FromInvoiceStatus(r usecase.InvoiceStatusResult) InvoiceStatusResponse {
	return InvoiceStatusResponse{
		Numero:            r.Numero,
		Status:            string(r.Status),
		CodigoVerificacao: r.CodigoVerificacao,
		PDFURL:            r.PDFURL,
		XMLURL:            r.XMLURL,
	}
}
