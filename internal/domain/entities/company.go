package entities

import "time"

// Company is a service business able to issue NFS-e.
//
// Storage model (DynamoDB):
//   - PK: id
//
// NuvemFiscalID is empty until the company is successfully registered at the
// fiscal provider; once set it is treated as immutable evidence of
// registration and never overwritten.
type Company struct {
	ID                 string `json:"id"`
	RazaoSocial        string `json:"razao_social"`
	NomeFantasia       string `json:"nome_fantasia,omitempty"`
	CNPJ               string `json:"cnpj"`
	InscricaoMunicipal string `json:"inscricao_municipal,omitempty"`
	InscricaoEstadual  string `json:"inscricao_estadual,omitempty"`

	Logradouro      string `json:"logradouro,omitempty"`
	Numero          string `json:"numero,omitempty"`
	Complemento     string `json:"complemento,omitempty"`
	Bairro          string `json:"bairro,omitempty"`
	CodigoMunicipio string `json:"codigo_municipio,omitempty"`
	Municipio       string `json:"municipio"`
	UF              string `json:"uf"`
	CEP             string `json:"cep,omitempty"`

	Email    string `json:"email"`
	Telefone string `json:"telefone"`

	CNAEPrincipal string `json:"cnae_principal,omitempty"`

	NuvemFiscalID           string     `json:"nuvem_fiscal_id,omitempty"`
	NuvemFiscalRegisteredAt *time.Time `json:"nuvem_fiscal_registered_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Registered reports whether the company already holds a fiscal-provider id.
func (c Company) Registered() bool {
	return c.NuvemFiscalID != ""
}
