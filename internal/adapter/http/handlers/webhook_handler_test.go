package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"fiscalai/internal/adapter/http/handlers/mocks"
	"fiscalai/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_HandlePagarme(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *WebhookHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/webhooks/pagarme", h.HandlePagarme)
		return r
	}

	t.Run("signature header variants reach the usecase", func(t *testing.T) {
		for _, header := range []string{"X-Hub-Signature", "X-Pagarme-Signature", "Signature"} {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIWebhookUseCase(ctrl)
			r := newRouter(NewWebhookHandler(uc))

			uc.EXPECT().HandlePagarme(gomock.Any(), []byte(`{}`), "sha256=abc").Return(usecase.WebhookResult{Processed: true, EventType: "payment.paid"}, nil)

			req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/pagarme", bytes.NewBufferString(`{}`))
			req.Header.Set(header, "sha256=abc")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("header %s: expected 200, got %d", header, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("invalid signature maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(NewWebhookHandler(uc))

		uc.EXPECT().HandlePagarme(gomock.Any(), gomock.Any(), "bad").Return(usecase.WebhookResult{}, usecase.ErrInvalidWebhookSignature)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/pagarme", bytes.NewBufferString(`{}`))
		req.Header.Set("X-Hub-Signature", "bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing signature maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(NewWebhookHandler(uc))

		uc.EXPECT().HandlePagarme(gomock.Any(), gomock.Any(), "").Return(usecase.WebhookResult{}, usecase.ErrMissingWebhookSignature)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/pagarme", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown event acknowledged with processed false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(NewWebhookHandler(uc))

		uc.EXPECT().HandlePagarme(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.WebhookResult{Processed: false, EventType: "charge.refunded"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/pagarme", bytes.NewBufferString(`{"type":"charge.refunded"}`))
		req.Header.Set("Signature", "sha256=abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"processed":false`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
