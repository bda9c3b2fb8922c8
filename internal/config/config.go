package config

import (
	"os"
	"strings"
	"time"
)

// Config carries every external setting the service needs, resolved once at
// startup. Components receive the values through their constructors so a
// request never mixes sandbox URLs with production credentials.
type Config struct {
	NuvemFiscal NuvemFiscalConfig
	Webhook     WebhookConfig
	OpenAI      OpenAIConfig
	Email       EmailConfig
}

// NuvemFiscalConfig selects the sandbox or production deployment of the
// fiscal provider and holds the credentials for that environment only.
type NuvemFiscalConfig struct {
	UseSandbox   bool
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string

	// StaticToken, when set, bypasses the OAuth exchange entirely.
	StaticToken string

	// TokenCache enables reusing an OAuth token until it expires; the
	// margin is subtracted from expires_in so a near-expiry token is
	// never sent upstream.
	TokenCache       bool
	TokenCacheMargin time.Duration
}

type WebhookConfig struct {
	PagarmeSecret string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type EmailConfig struct {
	APIURL   string
	APIKey   string
	FromName string
}

const (
	sandboxBaseURL    = "https://api.sandbox.nuvemfiscal.com.br"
	productionBaseURL = "https://api.nuvemfiscal.com.br"
	oauthTokenURL     = "https://auth.nuvemfiscal.com.br/oauth/token"
)

// Load reads the full configuration from environment variables.
//
// Supported env vars:
//   - NUVEM_FISCAL_USE_SANDBOX (default: true; anything but "false" keeps sandbox)
//   - NUVEM_FISCAL_{SANDBOX,PRODUCTION}_CLIENT_ID / _CLIENT_SECRET / _TOKEN
//   - NUVEM_FISCAL_TOKEN_CACHE (default: on; "off"/"false"/"0" disables)
//   - PAGARME_WEBHOOK_SECRET
//   - OPENAI_API_KEY, OPENAI_MODEL (default: gpt-4o-mini)
//   - EMAIL_API_URL, EMAIL_API_KEY, EMAIL_FROM_NAME (default: FiscalAI)
func Load() Config {
	useSandbox := os.Getenv("NUVEM_FISCAL_USE_SANDBOX") != "false"

	env := "PRODUCTION"
	baseURL := productionBaseURL
	if useSandbox {
		env = "SANDBOX"
		baseURL = sandboxBaseURL
	}

	return Config{
		NuvemFiscal: NuvemFiscalConfig{
			UseSandbox:       useSandbox,
			BaseURL:          baseURL,
			TokenURL:         oauthTokenURL,
			ClientID:         os.Getenv("NUVEM_FISCAL_" + env + "_CLIENT_ID"),
			ClientSecret:     os.Getenv("NUVEM_FISCAL_" + env + "_CLIENT_SECRET"),
			StaticToken:      os.Getenv("NUVEM_FISCAL_" + env + "_TOKEN"),
			TokenCache:       !isDisabled(os.Getenv("NUVEM_FISCAL_TOKEN_CACHE")),
			TokenCacheMargin: time.Minute,
		},
		Webhook: WebhookConfig{
			PagarmeSecret: os.Getenv("PAGARME_WEBHOOK_SECRET"),
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  getenvDefault("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Email: EmailConfig{
			APIURL:   os.Getenv("EMAIL_API_URL"),
			APIKey:   os.Getenv("EMAIL_API_KEY"),
			FromName: getenvDefault("EMAIL_FROM_NAME", "FiscalAI"),
		},
	}
}

func isDisabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "off", "false", "0", "no":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
