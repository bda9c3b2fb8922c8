package handlers

import (
	"net/http"

	response "fiscalai/internal/adapter/http/dto/response"
	"fiscalai/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ConnectionHandler handles fiscal-provider connectivity checks.
type ConnectionHandler struct {
	usecase usecase.IConnectionUseCase
}

func NewConnectionHandler(uc usecase.IConnectionUseCase) *ConnectionHandler {
	return &ConnectionHandler{usecase: uc}
}

func (h *ConnectionHandler) CheckConnection(c *gin.Context) {
	status, err := h.usecase.CheckConnection(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntegrationStatus(status))
}

func (h *ConnectionHandler) GetConnectionStatus(c *gin.Context) {
	status, err := h.usecase.GetStatus(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if status.CompanyID == "" {
		appErr := mapDomainError(usecase.ErrCompanyNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntegrationStatus(status))
}
