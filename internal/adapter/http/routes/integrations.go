package routes

import (
	"fiscalai/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhooks      = "/webhooks"
	PathAssistant     = "/assistant"
	PathNotifications = "/notifications"
)

func addIntegrationRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler, assistantHandler *handlers.AssistantHandler, emailHandler *handlers.EmailHandler, notificationHandler *handlers.NotificationHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/pagarme", webhookHandler.HandlePagarme)
	}

	assistant := rg.Group(PathAssistant)
	{
		assistant.POST("/commands", assistantHandler.InterpretCommand)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.POST("/email", emailHandler.SendEmail)
	}
}
