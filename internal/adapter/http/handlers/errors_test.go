package handlers

import (
	"errors"
	"net/http"
	"testing"

	"fiscalai/internal/infrastructure/nuvemfiscal"
	"fiscalai/internal/usecase"
)

func timeoutAPIError() *nuvemfiscal.APIError {
	return &nuvemfiscal.APIError{Kind: nuvemfiscal.KindTimeout, Message: "tempo de conexão esgotado"}
}

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"company not found", usecase.ErrCompanyNotFound, http.StatusNotFound, "COMPANY_NOT_FOUND"},
		{"already registered", usecase.ErrCompanyAlreadyRegistered, http.StatusConflict, "COMPANY_ALREADY_REGISTERED"},
		{"not registered", usecase.ErrCompanyNotRegistered, http.StatusBadRequest, "COMPANY_NOT_REGISTERED"},
		{"missing field", &usecase.MissingFieldError{Field: "municipio", Label: "Município"}, http.StatusBadRequest, "MISSING_REQUIRED_FIELD"},
		{"invalid signature", usecase.ErrInvalidWebhookSignature, http.StatusUnauthorized, "INVALID_SIGNATURE"},
		{"missing signature", usecase.ErrMissingWebhookSignature, http.StatusUnauthorized, "MISSING_SIGNATURE"},
		{"assistant not configured", usecase.ErrAssistantNotConfigured, http.StatusInternalServerError, "ASSISTANT_NOT_CONFIGURED"},
		{"fiscal validation", &nuvemfiscal.APIError{Kind: nuvemfiscal.KindValidation, Message: "IM inválida"}, http.StatusBadRequest, "FISCAL_VALIDATION_ERROR"},
		{"fiscal auth", &nuvemfiscal.APIError{Kind: nuvemfiscal.KindAuth}, http.StatusUnauthorized, "FISCAL_AUTH_ERROR"},
		{"fiscal not found", &nuvemfiscal.APIError{Kind: nuvemfiscal.KindNotFound}, http.StatusNotFound, "FISCAL_NOT_FOUND"},
		{"fiscal conflict", &nuvemfiscal.APIError{Kind: nuvemfiscal.KindConflict}, http.StatusConflict, "FISCAL_CONFLICT"},
		{"fiscal rate limited", &nuvemfiscal.APIError{Kind: nuvemfiscal.KindRateLimited}, http.StatusTooManyRequests, "FISCAL_RATE_LIMITED"},
		{"fiscal timeout", timeoutAPIError(), http.StatusRequestTimeout, "FISCAL_TIMEOUT"},
		{"fiscal upstream", &nuvemfiscal.APIError{Kind: nuvemfiscal.KindUpstream}, http.StatusBadGateway, "FISCAL_UPSTREAM_ERROR"},
		{"fiscal configuration", &nuvemfiscal.APIError{Kind: nuvemfiscal.KindConfiguration}, http.StatusInternalServerError, "FISCAL_NOT_CONFIGURED"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapDomainError(tc.err)
			if appErr.HTTPStatus != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, appErr.HTTPStatus)
			}
			if appErr.Code != tc.wantCode {
				t.Fatalf("expected code %s, got %s", tc.wantCode, appErr.Code)
			}
		})
	}
}

func TestMapDomainError_ProviderMessagePassthrough(t *testing.T) {
	appErr := mapDomainError(&nuvemfiscal.APIError{Kind: nuvemfiscal.KindValidation, Message: "alíquota fora da faixa"})
	if appErr.Message != "alíquota fora da faixa" {
		t.Fatalf("expected provider message, got %q", appErr.Message)
	}

	appErr = mapDomainError(&nuvemfiscal.APIError{Kind: nuvemfiscal.KindValidation})
	if appErr.Message != "Dados rejeitados pela Nuvem Fiscal" {
		t.Fatalf("expected fallback message, got %q", appErr.Message)
	}
}
