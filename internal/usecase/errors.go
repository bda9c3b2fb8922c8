package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCompanyID           = errors.New("invalid company id")
	ErrCompanyNotFound            = errors.New("company not found")
	ErrCompanyAlreadyRegistered   = errors.New("company already registered at the fiscal provider")
	ErrCompanyNotRegistered       = errors.New("company not registered at the fiscal provider")
	ErrInvoiceNotFound            = errors.New("invoice not found")
	ErrInvalidInvoiceNumero       = errors.New("invalid invoice numero")
	ErrInvalidInvoiceValue        = errors.New("invalid invoice value")
	ErrInvalidISSRate             = errors.New("invalid iss rate")
	ErrMessageRequired            = errors.New("message is required")
	ErrAssistantNotConfigured     = errors.New("assistant gateway not configured")
	ErrEmailSenderNotConfigured   = errors.New("email integration not configured")
	ErrInvalidEmailAddress        = errors.New("invalid email address")
	ErrWebhookSecretNotConfigured = errors.New("webhook secret not configured")
	ErrMissingWebhookSignature    = errors.New("webhook signature not provided")
	ErrInvalidWebhookSignature    = errors.New("webhook signature validation failed")
	ErrInvalidWebhookPayload      = errors.New("invalid webhook payload")
)

// MissingFieldError names the required field a request omitted. Label is the
// Portuguese field description echoed back to the user.
type MissingFieldError struct {
	Field string
	Label string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func missingField(field, label string) *MissingFieldError {
	return &MissingFieldError{Field: field, Label: label}
}
