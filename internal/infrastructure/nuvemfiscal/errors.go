package nuvemfiscal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies every failure of the Nuvem Fiscal integration once, at
// the client boundary. Callers branch on the kind instead of re-deriving user
// messages from raw HTTP status codes.
type ErrorKind string

const (
	KindConfiguration ErrorKind = "configuration"
	KindValidation    ErrorKind = "validation"
	KindAuth          ErrorKind = "auth"
	KindNotFound      ErrorKind = "not_found"
	KindConflict      ErrorKind = "conflict"
	KindRateLimited   ErrorKind = "rate_limited"
	KindTimeout       ErrorKind = "timeout"
	KindUpstream      ErrorKind = "upstream"
)

// APIError is the structured error produced by the token provider and the
// fiscal API client. HTTPStatus is the upstream status when one was received.
type APIError struct {
	Kind       ErrorKind
	Message    string
	HTTPStatus int
}

func (e *APIError) Error() string {
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("nuvemfiscal: %s (status %d): %s", e.Kind, e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("nuvemfiscal: %s: %s", e.Kind, e.Message)
}

// KindOf extracts the ErrorKind from err, or KindUpstream when err is not an
// APIError.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUpstream
}

// classifyStatus maps an upstream non-2xx status to an APIError.
func classifyStatus(status int, message string) *APIError {
	kind := KindUpstream
	switch {
	case status == http.StatusBadRequest:
		kind = KindValidation
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = KindAuth
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status == http.StatusConflict:
		kind = KindConflict
	case status == http.StatusTooManyRequests:
		kind = KindRateLimited
	}
	return &APIError{Kind: kind, Message: message, HTTPStatus: status}
}

// classifyTransport maps a transport-level failure (no upstream response) to
// an APIError, distinguishing client-side timeouts from generic failures.
func classifyTransport(err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &APIError{Kind: KindTimeout, Message: "tempo de conexão esgotado"}
	}
	var timeoutErr interface{ Timeout() bool }
	if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return &APIError{Kind: KindTimeout, Message: "tempo de conexão esgotado"}
	}
	return &APIError{Kind: KindUpstream, Message: err.Error()}
}
