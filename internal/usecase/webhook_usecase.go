package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"fiscalai/internal/domain/entities"
	"fiscalai/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// WebhookResult reports how an incoming gateway event was handled. Processed
// is false for event types the service does not act on; those are still
// acknowledged so the gateway stops retrying them.
type WebhookResult struct {
	Processed bool
	EventType string
}

// IWebhookUseCase verifies and dispatches payment-gateway webhook deliveries.
type IWebhookUseCase interface {
	HandlePagarme(ctx context.Context, rawBody []byte, signature string) (WebhookResult, error)
}

type WebhookUseCase struct {
	secret        string
	notifications interfaces.INotificationRepository
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(secret string, notifications interfaces.INotificationRepository) *WebhookUseCase {
	return &WebhookUseCase{secret: secret, notifications: notifications}
}

// pagarmeEvent is the tagged union of gateway events the service reacts to.
// Exactly one of Payment or Subscription is set for a known event type.
type pagarmeEvent struct {
	Type         string
	Payment      *paymentEvent
	Subscription *subscriptionEvent
}

type paymentEvent struct {
	Approved      bool
	CustomerName  string
	AmountCents   int64
	FailureReason string
}

type subscriptionEvent struct {
	Action       string // canceled, created, updated
	CustomerName string
	PlanName     string
}

// HandlePagarme verifies the delivery signature against the raw body and
// dispatches the event. Signature verification always runs on the exact bytes
// received, before any JSON parsing.
func (u *WebhookUseCase) HandlePagarme(ctx context.Context, rawBody []byte, signature string) (WebhookResult, error) {
	if u.secret == "" {
		return WebhookResult{}, ErrWebhookSecretNotConfigured
	}
	if signature == "" {
		return WebhookResult{}, ErrMissingWebhookSignature
	}
	if !verifySignature(u.secret, rawBody, signature) {
		log.Printf("[webhook][usecase] signature mismatch")
		return WebhookResult{}, ErrInvalidWebhookSignature
	}

	event, err := parsePagarmeEvent(rawBody)
	if err != nil {
		return WebhookResult{}, err
	}

	log.Printf("[webhook][usecase] event received type=%s", event.Type)

	notification, known := u.notificationFor(event)
	if !known {
		log.Printf("[webhook][usecase] event ignored type=%s", event.Type)
		return WebhookResult{Processed: false, EventType: event.Type}, nil
	}

	notification.ID = uuid.NewString()
	notification.CreatedAt = time.Now().UTC()
	if _, err := u.notifications.Create(ctx, notification); err != nil {
		return WebhookResult{}, err
	}
	return WebhookResult{Processed: true, EventType: event.Type}, nil
}

// verifySignature checks an HMAC-SHA256 hex digest of body. A "sha256="
// prefix on the delivered value is accepted and stripped. Comparison is
// constant time.
func verifySignature(secret string, body []byte, signature string) bool {
	signature = strings.TrimPrefix(strings.TrimSpace(signature), "sha256=")

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}

func parsePagarmeEvent(rawBody []byte) (pagarmeEvent, error) {
	var payload struct {
		Type  string `json:"type"`
		Event string `json:"event"`
		Data  struct {
			Customer struct {
				Name string `json:"name"`
			} `json:"customer"`
			Amount        int64  `json:"amount"`
			FailureReason string `json:"failure_reason"`
			Plan          struct {
				Name string `json:"name"`
			} `json:"plan"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return pagarmeEvent{}, ErrInvalidWebhookPayload
	}

	eventType := payload.Type
	if eventType == "" {
		eventType = payload.Event
	}
	if eventType == "" {
		return pagarmeEvent{}, ErrInvalidWebhookPayload
	}

	event := pagarmeEvent{Type: eventType}
	switch eventType {
	case "payment.approved", "payment.paid":
		event.Payment = &paymentEvent{
			Approved:     true,
			CustomerName: payload.Data.Customer.Name,
			AmountCents:  payload.Data.Amount,
		}
	case "payment.failed", "payment.refused":
		event.Payment = &paymentEvent{
			CustomerName:  payload.Data.Customer.Name,
			AmountCents:   payload.Data.Amount,
			FailureReason: payload.Data.FailureReason,
		}
	case "subscription.canceled":
		event.Subscription = &subscriptionEvent{Action: "canceled", CustomerName: payload.Data.Customer.Name, PlanName: payload.Data.Plan.Name}
	case "subscription.created":
		event.Subscription = &subscriptionEvent{Action: "created", CustomerName: payload.Data.Customer.Name, PlanName: payload.Data.Plan.Name}
	case "subscription.updated":
		event.Subscription = &subscriptionEvent{Action: "updated", CustomerName: payload.Data.Customer.Name, PlanName: payload.Data.Plan.Name}
	}
	return event, nil
}

func (u *WebhookUseCase) notificationFor(event pagarmeEvent) (entities.Notification, bool) {
	switch {
	case event.Payment != nil && event.Payment.Approved:
		return entities.Notification{
			Titulo:   "Pagamento aprovado",
			Mensagem: fmt.Sprintf("Pagamento de %s no valor de %s foi aprovado", clienteLabel(event.Payment.CustomerName), formatCents(event.Payment.AmountCents)),
			Tipo:     entities.NotificationTipoSucesso,
		}, true
	case event.Payment != nil:
		msg := fmt.Sprintf("Pagamento de %s no valor de %s foi recusado", clienteLabel(event.Payment.CustomerName), formatCents(event.Payment.AmountCents))
		if event.Payment.FailureReason != "" {
			msg = fmt.Sprintf("%s: %s", msg, event.Payment.FailureReason)
		}
		return entities.Notification{
			Titulo:   "Pagamento recusado",
			Mensagem: msg,
			Tipo:     entities.NotificationTipoErro,
		}, true
	case event.Subscription != nil:
		switch event.Subscription.Action {
		case "canceled":
			return entities.Notification{
				Titulo:   "Assinatura cancelada",
				Mensagem: fmt.Sprintf("Assinatura de %s foi cancelada", clienteLabel(event.Subscription.CustomerName)),
				Tipo:     entities.NotificationTipoAlerta,
			}, true
		case "created":
			return entities.Notification{
				Titulo:   "Assinatura ativada",
				Mensagem: fmt.Sprintf("Assinatura de %s foi ativada%s", clienteLabel(event.Subscription.CustomerName), planSuffix(event.Subscription.PlanName)),
				Tipo:     entities.NotificationTipoSucesso,
			}, true
		case "updated":
			return entities.Notification{
				Titulo:   "Assinatura atualizada",
				Mensagem: fmt.Sprintf("Assinatura de %s foi atualizada%s", clienteLabel(event.Subscription.CustomerName), planSuffix(event.Subscription.PlanName)),
				Tipo:     entities.NotificationTipoInfo,
			}, true
		}
	}
	return entities.Notification{}, false
}

func clienteLabel(name string) string {
	if name == "" {
		return "cliente"
	}
	return name
}

func planSuffix(plan string) string {
	if plan == "" {
		return ""
	}
	return fmt.Sprintf(" (plano %s)", plan)
}

// formatCents renders a gateway amount (integer cents) in BRL.
func formatCents(cents int64) string {
	reais := cents / 100
	rest := cents % 100
	if rest < 0 {
		rest = -rest
	}
	return fmt.Sprintf("R$ %d,%02d", reais, rest)
}
