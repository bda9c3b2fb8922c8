package handlers

import (
	"net/http"

	request "fiscalai/internal/adapter/http/dto/request"
	response "fiscalai/internal/adapter/http/dto/response"
	"fiscalai/internal/usecase"
	"fiscalai/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAssistantPayload = pkg.NewDomainErrorSimple("INVALID_ASSISTANT_INPUT", "Comando do assistente inválido", http.StatusBadRequest)

// AssistantHandler handles natural-language command interpretation.
type AssistantHandler struct {
	usecase usecase.IAssistantUseCase
}

func NewAssistantHandler(uc usecase.IAssistantUseCase) *AssistantHandler {
	return &AssistantHandler{usecase: uc}
}

func (h *AssistantHandler) InterpretCommand(c *gin.Context) {
	var payload request.AssistantCommandRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssistantPayload.HTTPStatus, errInvalidAssistantPayload.ToHTTPError())
		return
	}

	interpretation, err := h.usecase.Interpret(c.Request.Context(), payload.Message, payload.HistoryEntities())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInterpretation(interpretation))
}
