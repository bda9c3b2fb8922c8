package nuvemfiscal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fiscalai/internal/config"
	"fiscalai/internal/domain/entities"
	"fiscalai/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

type staticTokens string

func (s staticTokens) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

func newTestClient(baseURL string) *Client {
	return NewClient(config.NuvemFiscalConfig{BaseURL: baseURL}, staticTokens("test-token"))
}

func testCompany() entities.Company {
	return entities.Company{
		ID:                 "cmp-1",
		RazaoSocial:        "Acme Serviços LTDA",
		CNPJ:               "11.222.333/0001-81",
		InscricaoMunicipal: "12345",
		Municipio:          "São Paulo",
		UF:                 "sp",
		Email:              "fiscal@acme.com.br",
		Telefone:           "(11) 99999-0000",
		NuvemFiscalID:      "nf-cmp-1",
	}
}

func TestClient_RegisterCompany(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/empresas" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Fatalf("unexpected authorization header %q", got)
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload["cpf_cnpj"] != "11222333000181" {
			t.Fatalf("expected digits-only cnpj, got %v", payload["cpf_cnpj"])
		}
		endereco := payload["endereco"].(map[string]any)
		if endereco["logradouro"] != "Rua Principal" || endereco["codigo_municipio"] != "3550308" {
			t.Fatalf("expected address defaults, got %v", endereco)
		}
		if endereco["uf"] != "SP" {
			t.Fatalf("expected uppercased uf, got %v", endereco["uf"])
		}

		w.Write([]byte(`{"id":"nf-123","cpf_cnpj":"11222333000181"}`))
	}))
	defer srv.Close()

	providerID, err := newTestClient(srv.URL).RegisterCompany(context.Background(), testCompany())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if providerID != "nf-123" {
		t.Fatalf("expected nf-123, got %q", providerID)
	}
}

func TestClient_IssueInvoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/nfse" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		servico := payload["servico"].(map[string]any)
		if servico["valor_servicos"] != 1500.0 || servico["valor_iss"] != 75.0 {
			t.Fatalf("unexpected monetary values: %v", servico)
		}
		if payload["natureza_operacao"] != 1.0 || payload["regime_especial_tributacao"] != 6.0 {
			t.Fatalf("unexpected tax regime fields: %v", payload)
		}

		w.Write([]byte(`{"numero":"42","codigo_verificacao":"CV42","status":"autorizada","link_pdf":"https://pdf"}`))
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).IssueInvoice(context.Background(), interfaces.IssueInvoiceCommand{
		Company:          testCompany(),
		ClienteNome:      "Cliente X",
		ClienteDocumento: "529.982.247-25",
		DescricaoServico: "Consultoria",
		Valor:            decimal.RequireFromString("1500"),
		AliquotaISS:      decimal.RequireFromString("5"),
		ValorISS:         decimal.RequireFromString("75"),
		DataPrestacao:    "2026-08-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Numero != "42" || result.Status != entities.InvoiceStatusAutorizada {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.PDFURL != "https://pdf" {
		t.Fatalf("expected link_pdf fallback, got %q", result.PDFURL)
	}
}

func TestClient_GetInvoiceStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/nfse/42" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"numero":"42","status":"processando","status_sefaz":"rejeitado","motivo_rejeicao":"IM inválida"}`))
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).GetInvoiceStatus(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != entities.InvoiceStatusRejeitada {
		t.Fatalf("expected rejeitada via status_sefaz, got %s", result.Status)
	}
	if result.MotivoRejeicao != "IM inválida" {
		t.Fatalf("unexpected motivo: %q", result.MotivoRejeicao)
	}
}

func TestClient_ErrorClassification(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnauthorized, KindAuth},
		{http.StatusForbidden, KindAuth},
		{http.StatusNotFound, KindNotFound},
		{http.StatusConflict, KindConflict},
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusInternalServerError, KindUpstream},
		{http.StatusBadGateway, KindUpstream},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"mensagem":"detalhe do provedor"}`))
		}))

		err := newTestClient(srv.URL).HealthCheck(context.Background())
		srv.Close()

		if KindOf(err) != tc.want {
			t.Fatalf("status %d: expected kind %s, got %v", tc.status, tc.want, err)
		}
		apiErr := err.(*APIError)
		if apiErr.Message != "detalhe do provedor" {
			t.Fatalf("status %d: expected provider message, got %q", tc.status, apiErr.Message)
		}
	}
}

func TestClient_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := newTestClient(srv.URL).HealthCheck(ctx)
	if KindOf(err) != KindTimeout {
		t.Fatalf("expected timeout kind, got %v", err)
	}
}

func TestClient_HealthCheckOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	if err := newTestClient(srv.URL).HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOnlyDigits(t *testing.T) {
	if got := OnlyDigits("11.222.333/0001-81"); got != "11222333000181" {
		t.Fatalf("unexpected result %q", got)
	}
	if got := OnlyDigits("(11) 99999-0000"); got != "11999990000" {
		t.Fatalf("unexpected result %q", got)
	}
}
