package handlers

import (
	"net/http"
	"strconv"

	response "fiscalai/internal/adapter/http/dto/response"
	"fiscalai/internal/usecase"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the in-app notification feed.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	notifications, err := h.usecase.ListRecent(c.Request.Context(), limit)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(notifications))
}
