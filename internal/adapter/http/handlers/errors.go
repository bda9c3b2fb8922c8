package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"fiscalai/internal/infrastructure/nuvemfiscal"
	"fiscalai/internal/usecase"
	"fiscalai/pkg"
)

// mapDomainError translates use case and fiscal-provider errors into the
// AppError shape handlers answer with. Provider failures are classified once
// at the client boundary; here each kind only gets its status and Portuguese
// message.
func mapDomainError(err error) *pkg.AppError {
	var missing *usecase.MissingFieldError
	if errors.As(err, &missing) {
		return pkg.NewDomainErrorSimple(
			"MISSING_REQUIRED_FIELD",
			fmt.Sprintf("Campo obrigatório não informado: %s", missing.Label),
			http.StatusBadRequest,
		)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID):
		return pkg.NewDomainErrorSimple("INVALID_COMPANY_ID", "ID da empresa inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return pkg.NewDomainErrorSimple("COMPANY_NOT_FOUND", "Empresa não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCompanyAlreadyRegistered):
		return pkg.NewDomainErrorSimple("COMPANY_ALREADY_REGISTERED", "Empresa já cadastrada na Nuvem Fiscal", http.StatusConflict)
	case errors.Is(err, usecase.ErrCompanyNotRegistered):
		return pkg.NewDomainErrorSimple("COMPANY_NOT_REGISTERED", "Empresa não cadastrada na Nuvem Fiscal. Faça o cadastro fiscal antes de emitir notas", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Nota fiscal não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidInvoiceNumero):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_NUMERO", "Número da nota fiscal inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceValue):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_VALUE", "Valor da nota deve ser maior que zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidISSRate):
		return pkg.NewDomainErrorSimple("INVALID_ISS_RATE", "Alíquota de ISS inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMessageRequired):
		return pkg.NewDomainErrorSimple("MESSAGE_REQUIRED", "Mensagem é obrigatória", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssistantNotConfigured):
		return pkg.NewDomainErrorSimple("ASSISTANT_NOT_CONFIGURED", "Assistente não configurado", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrEmailSenderNotConfigured):
		return pkg.NewDomainErrorSimple("EMAIL_NOT_CONFIGURED", "Integração de email não configurada", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvalidEmailAddress):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL_ADDRESS", "Endereço de email inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWebhookSecretNotConfigured):
		return pkg.NewDomainErrorSimple("WEBHOOK_NOT_CONFIGURED", "Webhook não configurado", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrMissingWebhookSignature):
		return pkg.NewDomainErrorSimple("MISSING_SIGNATURE", "Assinatura do webhook não informada", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Assinatura do webhook inválida", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidWebhookPayload):
		return pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Payload do webhook inválido", http.StatusBadRequest)
	}

	var apiErr *nuvemfiscal.APIError
	if errors.As(err, &apiErr) {
		return mapFiscalError(apiErr)
	}

	return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno do servidor", err, http.StatusInternalServerError)
}

func mapFiscalError(apiErr *nuvemfiscal.APIError) *pkg.AppError {
	switch apiErr.Kind {
	case nuvemfiscal.KindConfiguration:
		return pkg.NewDomainError("FISCAL_NOT_CONFIGURED", "Integração fiscal não configurada", apiErr, http.StatusInternalServerError)
	case nuvemfiscal.KindValidation:
		return pkg.NewDomainError("FISCAL_VALIDATION_ERROR", providerMessage(apiErr, "Dados rejeitados pela Nuvem Fiscal"), apiErr, http.StatusBadRequest)
	case nuvemfiscal.KindAuth:
		return pkg.NewDomainError("FISCAL_AUTH_ERROR", "Erro de autenticação com a Nuvem Fiscal", apiErr, http.StatusUnauthorized)
	case nuvemfiscal.KindNotFound:
		return pkg.NewDomainError("FISCAL_NOT_FOUND", "Registro não encontrado na Nuvem Fiscal", apiErr, http.StatusNotFound)
	case nuvemfiscal.KindConflict:
		return pkg.NewDomainError("FISCAL_CONFLICT", providerMessage(apiErr, "Registro já existe na Nuvem Fiscal"), apiErr, http.StatusConflict)
	case nuvemfiscal.KindRateLimited:
		return pkg.NewDomainError("FISCAL_RATE_LIMITED", "Limite de requisições da Nuvem Fiscal excedido", apiErr, http.StatusTooManyRequests)
	case nuvemfiscal.KindTimeout:
		return pkg.NewDomainError("FISCAL_TIMEOUT", "Tempo de conexão com a Nuvem Fiscal esgotado", apiErr, http.StatusRequestTimeout)
	default:
		return pkg.NewDomainError("FISCAL_UPSTREAM_ERROR", "Falha na comunicação com a Nuvem Fiscal", apiErr, http.StatusBadGateway)
	}
}

func providerMessage(apiErr *nuvemfiscal.APIError, fallback string) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
