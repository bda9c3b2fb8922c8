package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"fiscalai/internal/domain/entities"
	mock_interfaces "fiscalai/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const webhookSecret = "whsec-test"

func sign(body string) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestWebhookUseCase_HandlePagarme_Signature(t *testing.T) {
	body := `{"type":"payment.approved","data":{"customer":{"name":"Maria"},"amount":15000}}`

	t.Run("secret not configured", func(t *testing.T) {
		uc := NewWebhookUseCase("", nil)
		_, err := uc.HandlePagarme(context.Background(), []byte(body), sign(body))
		if !errors.Is(err, ErrWebhookSecretNotConfigured) {
			t.Fatalf("expected ErrWebhookSecretNotConfigured, got %v", err)
		}
	})

	t.Run("missing signature", func(t *testing.T) {
		uc := NewWebhookUseCase(webhookSecret, nil)
		_, err := uc.HandlePagarme(context.Background(), []byte(body), "")
		if !errors.Is(err, ErrMissingWebhookSignature) {
			t.Fatalf("expected ErrMissingWebhookSignature, got %v", err)
		}
	})

	t.Run("exact digest accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
		notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) { return n, nil },
		)

		uc := NewWebhookUseCase(webhookSecret, notifications)
		res, err := uc.HandlePagarme(context.Background(), []byte(body), sign(body))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Processed {
			t.Fatal("expected processed")
		}
	})

	t.Run("sha256 prefix accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
		notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) { return n, nil },
		)

		uc := NewWebhookUseCase(webhookSecret, notifications)
		if _, err := uc.HandlePagarme(context.Background(), []byte(body), "sha256="+sign(body)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("single character mutation rejected", func(t *testing.T) {
		digest := sign(body)
		flipped := "0"
		if digest[0] == '0' {
			flipped = "1"
		}
		mutated := flipped + digest[1:]

		uc := NewWebhookUseCase(webhookSecret, nil)
		_, err := uc.HandlePagarme(context.Background(), []byte(body), mutated)
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("signature over different body rejected", func(t *testing.T) {
		uc := NewWebhookUseCase(webhookSecret, nil)
		_, err := uc.HandlePagarme(context.Background(), []byte(body+" "), sign(body))
		if !errors.Is(err, ErrInvalidWebhookSignature) {
			t.Fatalf("expected ErrInvalidWebhookSignature, got %v", err)
		}
	})

	t.Run("invalid json after valid signature", func(t *testing.T) {
		broken := `{"type":`
		uc := NewWebhookUseCase(webhookSecret, nil)
		_, err := uc.HandlePagarme(context.Background(), []byte(broken), sign(broken))
		if !errors.Is(err, ErrInvalidWebhookPayload) {
			t.Fatalf("expected ErrInvalidWebhookPayload, got %v", err)
		}
	})
}

func TestWebhookUseCase_HandlePagarme_Events(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		wantTitle string
		wantTipo  entities.NotificationType
		inMessage string
	}{
		{
			name:      "payment approved",
			body:      `{"type":"payment.approved","data":{"customer":{"name":"Maria"},"amount":15000}}`,
			wantTitle: "Pagamento aprovado",
			wantTipo:  entities.NotificationTipoSucesso,
			inMessage: "R$ 150,00",
		},
		{
			name:      "payment paid synonym",
			body:      `{"type":"payment.paid","data":{"customer":{"name":"Maria"},"amount":9990}}`,
			wantTitle: "Pagamento aprovado",
			wantTipo:  entities.NotificationTipoSucesso,
			inMessage: "R$ 99,90",
		},
		{
			name:      "payment failed",
			body:      `{"type":"payment.failed","data":{"customer":{"name":"João"},"amount":5000,"failure_reason":"cartão recusado"}}`,
			wantTitle: "Pagamento recusado",
			wantTipo:  entities.NotificationTipoErro,
			inMessage: "cartão recusado",
		},
		{
			name:      "event key fallback",
			body:      `{"event":"payment.refused","data":{"customer":{"name":"João"},"amount":5000}}`,
			wantTitle: "Pagamento recusado",
			wantTipo:  entities.NotificationTipoErro,
			inMessage: "R$ 50,00",
		},
		{
			name:      "subscription canceled",
			body:      `{"type":"subscription.canceled","data":{"customer":{"name":"Ana"}}}`,
			wantTitle: "Assinatura cancelada",
			wantTipo:  entities.NotificationTipoAlerta,
			inMessage: "Ana",
		},
		{
			name:      "subscription created",
			body:      `{"type":"subscription.created","data":{"customer":{"name":"Ana"},"plan":{"name":"Pro"}}}`,
			wantTitle: "Assinatura ativada",
			wantTipo:  entities.NotificationTipoSucesso,
			inMessage: "plano Pro",
		},
		{
			name:      "subscription updated",
			body:      `{"type":"subscription.updated","data":{"customer":{"name":"Ana"}}}`,
			wantTitle: "Assinatura atualizada",
			wantTipo:  entities.NotificationTipoInfo,
			inMessage: "Ana",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
			notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, n entities.Notification) (entities.Notification, error) {
					if n.Titulo != tc.wantTitle || n.Tipo != tc.wantTipo {
						t.Fatalf("unexpected notification: %+v", n)
					}
					if !strings.Contains(n.Mensagem, tc.inMessage) {
						t.Fatalf("expected %q in message %q", tc.inMessage, n.Mensagem)
					}
					if n.ID == "" || n.CreatedAt.IsZero() {
						t.Fatal("expected id and created_at")
					}
					return n, nil
				},
			)

			uc := NewWebhookUseCase(webhookSecret, notifications)
			res, err := uc.HandlePagarme(context.Background(), []byte(tc.body), sign(tc.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !res.Processed {
				t.Fatal("expected processed")
			}
		})
	}

	t.Run("unknown event acknowledged without notification", func(t *testing.T) {
		body := `{"type":"charge.refunded","data":{}}`
		uc := NewWebhookUseCase(webhookSecret, nil)

		res, err := uc.HandlePagarme(context.Background(), []byte(body), sign(body))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Processed {
			t.Fatal("unknown event must not be processed")
		}
		if res.EventType != "charge.refunded" {
			t.Fatalf("unexpected event type: %q", res.EventType)
		}
	})
}
