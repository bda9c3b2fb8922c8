package handlers

import (
	"net/http"

	request "fiscalai/internal/adapter/http/dto/request"
	response "fiscalai/internal/adapter/http/dto/response"
	"fiscalai/internal/usecase"
	"fiscalai/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEmailPayload = pkg.NewDomainErrorSimple("INVALID_EMAIL_INPUT", "Dados do email inválidos", http.StatusBadRequest)

// EmailHandler handles outbound notification email requests.
type EmailHandler struct {
	usecase usecase.IEmailUseCase
}

func NewEmailHandler(uc usecase.IEmailUseCase) *EmailHandler {
	return &EmailHandler{usecase: uc}
}

func (h *EmailHandler) SendEmail(c *gin.Context) {
	var payload request.SendEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEmailPayload.HTTPStatus, errInvalidEmailPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Send(c.Request.Context(), payload.ToInput()); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.EmailSent())
}
