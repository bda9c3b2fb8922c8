package request

import (
	"strings"

	"fiscalai/internal/usecase"

	"github.com/shopspring/decimal"
)

// IssueInvoiceRequest is the payload accepted by the NFS-e issuance endpoint.
// Monetary values arrive as JSON numbers and are converted to exact decimals
// before any arithmetic happens.
type IssueInvoiceRequest struct {
	CompanyID        string  `json:"company_id" binding:"required"`
	ClienteNome      string  `json:"cliente_nome" binding:"required"`
	ClienteDocumento string  `json:"cliente_documento" binding:"required"`
	DescricaoServico string  `json:"descricao_servico" binding:"required"`
	Valor            float64 `json:"valor" binding:"required,gt=0"`
	AliquotaISS      float64 `json:"aliquota_iss" binding:"gte=0,lte=100"`
	Municipio        string  `json:"municipio" binding:"required"`
	DataPrestacao    string  `json:"data_prestacao" binding:"required"`
	CodigoServico    string  `json:"codigo_servico"`
	ISSRetido        bool    `json:"iss_retido"`
}

func (r IssueInvoiceRequest) ToInput() usecase.IssueInvoiceInput {
	return usecase.IssueInvoiceInput{
		CompanyID:        strings.TrimSpace(r.CompanyID),
		ClienteNome:      strings.TrimSpace(r.ClienteNome),
		ClienteDocumento: strings.TrimSpace(r.ClienteDocumento),
		DescricaoServico: strings.TrimSpace(r.DescricaoServico),
		Valor:            decimal.NewFromFloat(r.Valor).Round(2),
		AliquotaISS:      decimal.NewFromFloat(r.AliquotaISS),
		Municipio:        strings.TrimSpace(r.Municipio),
		DataPrestacao:    strings.TrimSpace(r.DataPrestacao),
		CodigoServico:    strings.TrimSpace(r.CodigoServico),
		ISSRetido:        r.ISSRetido,
	}
}
