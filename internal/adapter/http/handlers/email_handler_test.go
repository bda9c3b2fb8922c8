package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fiscalai/internal/adapter/http/handlers/mocks"
	"fiscalai/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEmailHandler_SendEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *EmailHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/notifications/email", h.SendEmail)
		return r
	}

	doPost := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/notifications/email", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json returns 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIEmailUseCase(ctrl)
		r := newRouter(NewEmailHandler(uc))

		w := doPost(r, `{`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed address rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIEmailUseCase(ctrl)
		r := newRouter(NewEmailHandler(uc))

		w := doPost(r, `{"to":"not-an-address","subject":"Aviso","message":"Olá"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("sender not configured returns 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIEmailUseCase(ctrl)
		r := newRouter(NewEmailHandler(uc))

		uc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(usecase.ErrEmailSenderNotConfigured)

		w := doPost(r, `{"to":"dono@empresa.com.br","subject":"Aviso","message":"Olá"}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success answers success and email_sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIEmailUseCase(ctrl)
		r := newRouter(NewEmailHandler(uc))

		uc.EXPECT().Send(gomock.Any(), usecase.SendEmailInput{
			To:          "dono@empresa.com.br",
			Subject:     "Nota emitida",
			Message:     "Sua nota foi autorizada",
			MessageType: "sucesso",
		}).Return(nil)

		w := doPost(r, `{"to":"dono@empresa.com.br","subject":"Nota emitida","message":"Sua nota foi autorizada","type":"sucesso"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		if !strings.Contains(body, `"success":true`) || !strings.Contains(body, `"email_sent":true`) {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}
