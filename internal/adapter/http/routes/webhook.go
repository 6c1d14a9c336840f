package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/johnper68/twilio-bot-occipedido/internal/adapter/http/handlers"
)

const (
	PathWebhook = "/webhook"
)

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	rg.POST(PathWebhook, webhookHandler.HandleInbound)
}
