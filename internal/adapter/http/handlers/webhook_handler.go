package handlers

import (
	"io"
	"net/http"

	response "fiscalai/internal/adapter/http/dto/response"
	"fiscalai/internal/usecase"
	"fiscalai/pkg"

	"github.com/gin-gonic/gin"
)

// signatureHeaders are the header names Pagar.me deliveries carry the HMAC
// digest in, checked in order.
var signatureHeaders = []string{"X-Hub-Signature", "X-Pagarme-Signature", "Signature"}

var errUnreadableWebhookBody = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Payload do webhook inválido", http.StatusBadRequest)

// WebhookHandler receives payment-gateway deliveries.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandlePagarme verifies the delivery signature against the raw request body
// and dispatches the event. Unknown event types are acknowledged with
// processed=false so the gateway stops retrying them.
func (h *WebhookHandler) HandlePagarme(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(errUnreadableWebhookBody.HTTPStatus, errUnreadableWebhookBody.ToHTTPError())
		return
	}

	result, err := h.usecase.HandlePagarme(c.Request.Context(), rawBody, extractSignature(c))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWebhookResult(result))
}

func extractSignature(c *gin.Context) string {
	for _, header := range signatureHeaders {
		if v := c.GetHeader(header); v != "" {
			return v
		}
	}
	return ""
}
