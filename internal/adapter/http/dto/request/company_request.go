package request

import (
	"strings"

	"fiscalai/internal/domain/entities"
)

// CreateCompanyRequest is the payload accepted by the company creation
// endpoint. The cnpj rule runs the full check-digit validation registered on
// the binding engine.
type CreateCompanyRequest struct {
	RazaoSocial        string `json:"razao_social" binding:"required"`
	NomeFantasia       string `json:"nome_fantasia"`
	CNPJ               string `json:"cnpj" binding:"required,cnpj"`
	InscricaoMunicipal string `json:"inscricao_municipal"`
	InscricaoEstadual  string `json:"inscricao_estadual"`

	Logradouro      string `json:"logradouro"`
	Numero          string `json:"numero"`
	Complemento     string `json:"complemento"`
	Bairro          string `json:"bairro"`
	CodigoMunicipio string `json:"codigo_municipio"`
	Municipio       string `json:"municipio" binding:"required"`
	UF              string `json:"uf" binding:"required,len=2"`
	CEP             string `json:"cep"`

	Email    string `json:"email" binding:"required,email"`
	Telefone string `json:"telefone" binding:"required"`

	CNAEPrincipal string `json:"cnae_principal"`
}

func (r CreateCompanyRequest) ToEntity() entities.Company {
	return entities.Company{
		RazaoSocial:        strings.TrimSpace(r.RazaoSocial),
		NomeFantasia:       strings.TrimSpace(r.NomeFantasia),
		CNPJ:               strings.TrimSpace(r.CNPJ),
		InscricaoMunicipal: strings.TrimSpace(r.InscricaoMunicipal),
		InscricaoEstadual:  strings.TrimSpace(r.InscricaoEstadual),
		Logradouro:         strings.TrimSpace(r.Logradouro),
		Numero:             strings.TrimSpace(r.Numero),
		Complemento:        strings.TrimSpace(r.Complemento),
		Bairro:             strings.TrimSpace(r.Bairro),
		CodigoMunicipio:    strings.TrimSpace(r.CodigoMunicipio),
		Municipio:          strings.TrimSpace(r.Municipio),
		UF:                 strings.ToUpper(strings.TrimSpace(r.UF)),
		CEP:                strings.TrimSpace(r.CEP),
		Email:              strings.TrimSpace(r.Email),
		Telefone:           strings.TrimSpace(r.Telefone),
		CNAEPrincipal:      strings.TrimSpace(r.CNAEPrincipal),
	}
}
