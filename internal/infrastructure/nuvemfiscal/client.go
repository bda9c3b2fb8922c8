package nuvemfiscal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"fiscalai/internal/config"
	"fiscalai/internal/domain/entities"
	"fiscalai/internal/usecase/interfaces"
)

// Per-operation timeouts. Registration and issuance hit municipal systems
// behind the provider and are the slowest calls.
const (
	registerTimeout = 30 * time.Second
	issueTimeout    = 30 * time.Second
	statusTimeout   = 15 * time.Second
	healthTimeout   = 10 * time.Second
)

// Address defaults applied when the company record omits a sub-field the
// provider requires. 3550308 is the IBGE code for São Paulo.
const (
	defaultLogradouro      = "Rua Principal"
	defaultNumero          = "100"
	defaultBairro          = "Centro"
	defaultCodigoMunicipio = "3550308"
	defaultCEP             = "01000000"
	defaultCodigoServico   = "01.07"
	defaultCNAE            = "6311900"
)

// TokenSource provides a bearer token for the client's environment.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client wraps the Nuvem Fiscal HTTP API. The base URL is fixed at
// construction from the process configuration, so a single client never
// mixes sandbox and production endpoints.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

var _ interfaces.IFiscalGateway = (*Client)(nil)

func NewClient(cfg config.NuvemFiscalConfig, tokens TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{},
	}
}

// providerInvoice is the NFS-e wire representation returned by the provider.
// The sandbox and production deployments disagree on some field names, hence
// the link_pdf/link_xml fallbacks.
type providerInvoice struct {
	Numero            string `json:"numero"`
	CodigoVerificacao string `json:"codigo_verificacao"`
	Status            string `json:"status"`
	StatusSefaz       string `json:"status_sefaz"`
	DataEmissao       string `json:"data_emissao"`
	PDFURL            string `json:"pdf_url"`
	LinkPDF           string `json:"link_pdf"`
	XMLURL            string `json:"xml_url"`
	LinkXML           string `json:"link_xml"`
	MotivoRejeicao    string `json:"motivo_rejeicao"`
}

func (p providerInvoice) toResult() interfaces.FiscalInvoiceResult {
	pdf := p.PDFURL
	if pdf == "" {
		pdf = p.LinkPDF
	}
	xml := p.XMLURL
	if xml == "" {
		xml = p.LinkXML
	}
	return interfaces.FiscalInvoiceResult{
		Numero:            p.Numero,
		CodigoVerificacao: p.CodigoVerificacao,
		Status:            MapStatus(p.Status, p.StatusSefaz),
		DataEmissao:       p.DataEmissao,
		PDFURL:            pdf,
		XMLURL:            xml,
		MotivoRejeicao:    p.MotivoRejeicao,
	}
}

type companyAddress struct {
	Logradouro      string `json:"logradouro"`
	Numero          string `json:"numero"`
	Complemento     string `json:"complemento,omitempty"`
	Bairro          string `json:"bairro"`
	CodigoMunicipio string `json:"codigo_municipio"`
	Cidade          string `json:"cidade"`
	UF              string `json:"uf"`
	CodigoPais      string `json:"codigo_pais"`
	Pais            string `json:"pais"`
	CEP             string `json:"cep"`
}

type companyRegistration struct {
	CPFCNPJ            string         `json:"cpf_cnpj"`
	NomeRazaoSocial    string         `json:"nome_razao_social"`
	NomeFantasia       string         `json:"nome_fantasia"`
	Email              string         `json:"email"`
	Fone               string         `json:"fone"`
	InscricaoMunicipal string         `json:"inscricao_municipal,omitempty"`
	InscricaoEstadual  string         `json:"inscricao_estadual,omitempty"`
	Endereco           companyAddress `json:"endereco"`
}

// RegisterCompany registers the company at the provider and returns the id
// assigned by it. The caller is responsible for persisting the id.
func (c *Client) RegisterCompany(ctx context.Context, company entities.Company) (string, error) {
	payload := companyRegistration{
		CPFCNPJ:            OnlyDigits(company.CNPJ),
		NomeRazaoSocial:    company.RazaoSocial,
		NomeFantasia:       stringDefault(company.NomeFantasia, company.RazaoSocial),
		Email:              company.Email,
		Fone:               OnlyDigits(company.Telefone),
		InscricaoMunicipal: company.InscricaoMunicipal,
		InscricaoEstadual:  company.InscricaoEstadual,
		Endereco: companyAddress{
			Logradouro:      stringDefault(company.Logradouro, defaultLogradouro),
			Numero:          stringDefault(company.Numero, defaultNumero),
			Complemento:     company.Complemento,
			Bairro:          stringDefault(company.Bairro, defaultBairro),
			CodigoMunicipio: stringDefault(company.CodigoMunicipio, defaultCodigoMunicipio),
			Cidade:          company.Municipio,
			UF:              strings.ToUpper(company.UF),
			CodigoPais:      "1058",
			Pais:            "Brasil",
			CEP:             stringDefault(OnlyDigits(company.CEP), defaultCEP),
		},
	}

	var out struct {
		ID      string `json:"id"`
		CPFCNPJ string `json:"cpf_cnpj"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/empresas", payload, registerTimeout, &out); err != nil {
		return "", err
	}

	providerID := stringDefault(out.ID, out.CPFCNPJ)
	if providerID == "" {
		return "", &APIError{Kind: KindUpstream, Message: "resposta inválida da Nuvem Fiscal"}
	}
	return providerID, nil
}

type issuePayload struct {
	Referencia string `json:"referencia"`
	Prestador  struct {
		CPFCNPJ            string `json:"cpf_cnpj"`
		InscricaoMunicipal string `json:"inscricao_municipal"`
		RazaoSocial        string `json:"razao_social"`
		NomeFantasia       string `json:"nome_fantasia"`
		Endereco           struct {
			Logradouro      string `json:"logradouro"`
			Numero          string `json:"numero"`
			Bairro          string `json:"bairro"`
			CodigoMunicipio string `json:"codigo_municipio"`
			UF              string `json:"uf"`
			CEP             string `json:"cep"`
		} `json:"endereco"`
	} `json:"prestador"`
	Tomador struct {
		CPFCNPJ     string `json:"cpf_cnpj"`
		RazaoSocial string `json:"razao_social"`
		Endereco    struct {
			CodigoMunicipio string `json:"codigo_municipio"`
			UF              string `json:"uf"`
		} `json:"endereco"`
	} `json:"tomador"`
	Servico struct {
		Discriminacao             string      `json:"discriminacao"`
		CodigoTributarioMunicipio string      `json:"codigo_tributario_municipio"`
		CodigoCNAE                string      `json:"codigo_cnae"`
		ItemListaServico          string      `json:"item_lista_servico"`
		ValorServicos             json.Number `json:"valor_servicos"`
		Aliquota                  json.Number `json:"aliquota"`
		ValorISS                  json.Number `json:"valor_iss"`
		ISSRetido                 bool        `json:"iss_retido"`
	} `json:"servico"`
	DataEmissao              string `json:"data_emissao"`
	DataPrestacao            string `json:"data_prestacao"`
	NaturezaOperacao         int    `json:"natureza_operacao"`
	RegimeEspecialTributacao int    `json:"regime_especial_tributacao"`
}

// IssueInvoice submits one NFS-e. The result carries the status already
// mapped into the internal vocabulary; the caller persists the invoice.
func (c *Client) IssueInvoice(ctx context.Context, cmd interfaces.IssueInvoiceCommand) (interfaces.FiscalInvoiceResult, error) {
	company := cmd.Company

	var payload issuePayload
	payload.Referencia = company.NuvemFiscalID
	payload.Prestador.CPFCNPJ = OnlyDigits(company.CNPJ)
	payload.Prestador.InscricaoMunicipal = company.InscricaoMunicipal
	payload.Prestador.RazaoSocial = company.RazaoSocial
	payload.Prestador.NomeFantasia = stringDefault(company.NomeFantasia, company.RazaoSocial)
	payload.Prestador.Endereco.Logradouro = stringDefault(company.Logradouro, defaultLogradouro)
	payload.Prestador.Endereco.Numero = stringDefault(company.Numero, defaultNumero)
	payload.Prestador.Endereco.Bairro = stringDefault(company.Bairro, defaultBairro)
	payload.Prestador.Endereco.CodigoMunicipio = stringDefault(company.CodigoMunicipio, defaultCodigoMunicipio)
	payload.Prestador.Endereco.UF = strings.ToUpper(company.UF)
	payload.Prestador.Endereco.CEP = stringDefault(OnlyDigits(company.CEP), defaultCEP)

	payload.Tomador.CPFCNPJ = OnlyDigits(cmd.ClienteDocumento)
	payload.Tomador.RazaoSocial = cmd.ClienteNome
	payload.Tomador.Endereco.CodigoMunicipio = stringDefault(cmd.TomadorCodigoMunicipio, defaultCodigoMunicipio)
	payload.Tomador.Endereco.UF = strings.ToUpper(stringDefault(cmd.TomadorUF, company.UF))

	payload.Servico.Discriminacao = cmd.DescricaoServico
	payload.Servico.CodigoTributarioMunicipio = stringDefault(cmd.CodigoServico, defaultCodigoServico)
	payload.Servico.CodigoCNAE = stringDefault(OnlyDigits(company.CNAEPrincipal), defaultCNAE)
	payload.Servico.ItemListaServico = stringDefault(cmd.CodigoServico, defaultCodigoServico)
	payload.Servico.ValorServicos = json.Number(cmd.Valor.String())
	payload.Servico.Aliquota = json.Number(cmd.AliquotaISS.String())
	payload.Servico.ValorISS = json.Number(cmd.ValorISS.String())
	payload.Servico.ISSRetido = cmd.ISSRetido

	payload.DataEmissao = time.Now().UTC().Format(time.RFC3339)
	payload.DataPrestacao = cmd.DataPrestacao
	payload.NaturezaOperacao = 1
	payload.RegimeEspecialTributacao = 6

	var out providerInvoice
	if err := c.doJSON(ctx, http.MethodPost, "/nfse", payload, issueTimeout, &out); err != nil {
		return interfaces.FiscalInvoiceResult{}, err
	}
	return out.toResult(), nil
}

// GetInvoiceStatus fetches the current provider state of an NFS-e by number.
func (c *Client) GetInvoiceStatus(ctx context.Context, numero string) (interfaces.FiscalInvoiceResult, error) {
	var out providerInvoice
	if err := c.doJSON(ctx, http.MethodGet, "/nfse/"+numero, nil, statusTimeout, &out); err != nil {
		return interfaces.FiscalInvoiceResult{}, err
	}
	return out.toResult(), nil
}

// HealthCheck probes the provider with a bounded timeout. nil means
// connected (any 2xx); auth failures and timeouts come back as APIError so
// the caller can build a cause-specific message.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/empresas", nil, healthTimeout, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, timeout time.Duration, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiErr := classifyTransport(err)
		log.Printf("[nuvemfiscal][client] %s %s transport failure kind=%s", method, path, apiErr.Kind)
		return apiErr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := classifyStatus(resp.StatusCode, providerMessage(resp.Body))
		log.Printf("[nuvemfiscal][client] %s %s failed status=%d kind=%s", method, path, resp.StatusCode, apiErr.Kind)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Kind: KindUpstream, Message: "resposta inválida da Nuvem Fiscal"}
	}
	return nil
}

// providerMessage extracts the human message from an error body, tolerating
// the shapes the provider has been observed to return.
func providerMessage(r io.Reader) string {
	var payload struct {
		Mensagem string `json:"mensagem"`
		Error    string `json:"error"`
		Message  string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	if payload.Mensagem != "" {
		return payload.Mensagem
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

// OnlyDigits strips everything but 0-9, the normalization the provider
// expects for CNPJ/CPF, phone and CEP values.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stringDefault(v, def string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return def
}
