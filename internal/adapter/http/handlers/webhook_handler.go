package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/johnper68/twilio-bot-occipedido/internal/adapter/http/dto/request"
	response "github.com/johnper68/twilio-bot-occipedido/internal/adapter/http/dto/response"
	"github.com/johnper68/twilio-bot-occipedido/internal/usecase"
	"github.com/johnper68/twilio-bot-occipedido/pkg"
)

var errInvalidWebhookPayload = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_INPUT", "Invalid webhook payload", http.StatusBadRequest)

// WebhookHandler receives inbound chat messages and answers with the TwiML
// reply envelope.

type WebhookHandler struct {
	usecase usecase.IDialogueUseCase
}

func NewWebhookHandler(uc usecase.IDialogueUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleInbound processes one inbound message turn.
//
// @Summary      Inbound message webhook
// @Description  Receives a chat message (form or JSON encoded From/Body) and replies with a TwiML envelope.
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      xml
// @Param        From  formData  string  true  "Channel-qualified sender, e.g. whatsapp:+573001234567"
// @Param        Body  formData  string  true  "Message text"
// @Success      200  {string}  string  "TwiML response"
// @Failure      400  {object}  pkg.HTTPError
// @Router       /webhook [post]
func (h *WebhookHandler) HandleInbound(c *gin.Context) {
	var payload request.WebhookRequest
	if err := c.ShouldBind(&payload); err != nil {
		log.Printf("[webhook][handler] bind failed err=%v", err)
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	senderID := payload.SenderID()
	if senderID == "" {
		log.Printf("[webhook][handler] missing sender")
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	log.Printf("[webhook][handler] inbound sender=%s body_len=%d", senderID, len(payload.Body))

	reply, err := h.usecase.HandleMessage(c.Request.Context(), senderID, payload.Body)
	if err != nil {
		// The use case answers recoverable failures itself; anything that
		// reaches here still must answer the channel instead of dropping
		// the turn.
		log.Printf("[webhook][handler] turn failed sender=%s err=%v", senderID, err)
		reply = "❌ Ocurrió un error. Intenta más tarde."
	}

	c.Data(http.StatusOK, response.TwiMLContentType, response.NewTwiML(reply).Render())
}
