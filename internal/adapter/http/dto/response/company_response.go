package response

import (
	"time"

	"fiscalai/internal/domain/entities"
)

type CompanyResponse struct {
	ID                 string     `json:"id"`
	RazaoSocial        string     `json:"razao_social"`
	NomeFantasia       string     `json:"nome_fantasia,omitempty"`
	CNPJ               string     `json:"cnpj"`
	InscricaoMunicipal string     `json:"inscricao_municipal,omitempty"`
	InscricaoEstadual  string     `json:"inscricao_estadual,omitempty"`
	Logradouro         string     `json:"logradouro,omitempty"`
	Numero             string     `json:"numero,omitempty"`
	Complemento        string     `json:"complemento,omitempty"`
	Bairro             string     `json:"bairro,omitempty"`
	CodigoMunicipio    string     `json:"codigo_municipio,omitempty"`
	Municipio          string     `json:"municipio"`
	UF                 string     `json:"uf"`
	CEP                string     `json:"cep,omitempty"`
	Email              string     `json:"email"`
	Telefone           string     `json:"telefone"`
	CNAEPrincipal      string     `json:"cnae_principal,omitempty"`
	FiscalRegistered   bool       `json:"fiscal_registered"`
	NuvemFiscalID      string     `json:"nuvem_fiscal_id,omitempty"`
	RegisteredAt       *time.Time `json:"nuvem_fiscal_registered_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func FromCompany(c entities.Company) CompanyResponse {
	return CompanyResponse{
		ID:                 c.ID,
		RazaoSocial:        c.RazaoSocial,
		NomeFantasia:       c.NomeFantasia,
		CNPJ:               c.CNPJ,
		InscricaoMunicipal: c.InscricaoMunicipal,
		InscricaoEstadual:  c.InscricaoEstadual,
		Logradouro:         c.Logradouro,
		Numero:             c.Numero,
		Complemento:        c.Complemento,
		Bairro:             c.Bairro,
		CodigoMunicipio:    c.CodigoMunicipio,
		Municipio:          c.Municipio,
		UF:                 c.UF,
		CEP:                c.CEP,
		Email:              c.Email,
		Telefone:           c.Telefone,
		CNAEPrincipal:      c.CNAEPrincipal,
		FiscalRegistered:   c.Registered(),
		NuvemFiscalID:      c.NuvemFiscalID,
		RegisteredAt:       c.NuvemFiscalRegisteredAt,
		CreatedAt:          c.CreatedAt,
	}
}
