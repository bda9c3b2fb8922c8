package nuvemfiscal

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"fiscalai/internal/config"
)

// Required scopes for NFS-e operations.
const tokenScope = "empresa cep cnpj nfse"

// TokenProvider exchanges client credentials for a short-lived bearer token
// at the Nuvem Fiscal OAuth endpoint.
//
// When the token cache is enabled and the provider returns expires_in, the
// token is reused until expiry minus the configured safety margin; otherwise
// every call performs a fresh exchange.
type TokenProvider struct {
	cfg        config.NuvemFiscalConfig
	httpClient *http.Client

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func NewTokenProvider(cfg config.NuvemFiscalConfig) *TokenProvider {
	return &TokenProvider{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

// Token returns a bearer token for the configured environment.
//
// A statically configured token takes precedence over the OAuth exchange.
func (p *TokenProvider) Token(ctx context.Context) (string, error) {
	if p.cfg.StaticToken != "" {
		return p.cfg.StaticToken, nil
	}
	if p.cfg.ClientID == "" || p.cfg.ClientSecret == "" {
		return "", &APIError{Kind: KindConfiguration, Message: "credenciais da Nuvem Fiscal não configuradas"}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cfg.TokenCache && p.token != "" && time.Now().Before(p.expiry) {
		return p.token, nil
	}

	token, expiresIn, err := p.exchange(ctx)
	if err != nil {
		return "", err
	}

	if p.cfg.TokenCache && expiresIn > 0 {
		p.token = token
		p.expiry = time.Now().Add(time.Duration(expiresIn)*time.Second - p.cfg.TokenCacheMargin)
	}
	return token, nil
}

func (p *TokenProvider) exchange(ctx context.Context) (token string, expiresIn int64, err error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {p.cfg.ClientID},
		"client_secret": {p.cfg.ClientSecret},
		"scope":         {tokenScope},
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", 0, classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[nuvemfiscal][token] exchange failed status=%d body_len=%d", resp.StatusCode, len(body))
		return "", 0, &APIError{
			Kind:       KindAuth,
			Message:    "falha ao obter token de acesso da Nuvem Fiscal",
			HTTPStatus: resp.StatusCode,
		}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", 0, &APIError{Kind: KindAuth, Message: "resposta inválida do servidor de autenticação"}
	}
	if payload.AccessToken == "" {
		return "", 0, &APIError{Kind: KindAuth, Message: "token de acesso não retornado"}
	}
	return payload.AccessToken, payload.ExpiresIn, nil
}
