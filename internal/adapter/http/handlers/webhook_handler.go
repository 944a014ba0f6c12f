package handlers

import (
	"net/http"
	"strings"

	"delivery_payments/internal/adapter/http/dto/request"
	"delivery_payments/internal/adapter/http/dto/response"
	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase"
	"delivery_payments/pkg"
	"delivery_payments/pkg/logger"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives provider payment notifications.
type WebhookHandler struct {
	usecase usecase.IPaymentTransactionUseCase
}

func NewWebhookHandler(uc usecase.IPaymentTransactionUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// Receive godoc
// @Summary      Provider payment notification
// @Description  Always acknowledged with 200 unless processing failed; the provider retries on other codes.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        method     path    string  true   "mercadopago"
// @Param        x-request-id  header  string  false  "provider delivery id"
// @Param        body       body    request.WebhookRequest  false  "notification"
// @Success      200  {object}  response.WebhookAckResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /webhooks/{method} [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	ctx := c.Request.Context()
	method, ok := entities.ParsePaymentMethod(c.Param("method"))
	if !ok {
		writeError(c, mapPaymentTransactionError(usecase.ErrInvalidPaymentMethod))
		return
	}

	var req request.WebhookRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Component(ctx, "webhook.handler").Warn().Err(err).Msg("unreadable notification body")
			writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
			return
		}
	}

	event := usecase.WebhookEvent{
		Method:     method,
		Type:       req.EventType(firstNonEmpty(c.Query("type"), c.Query("topic"))),
		Action:     strings.TrimSpace(req.Action),
		ResourceID: req.ResourceID(firstNonEmpty(c.Query("data.id"), c.Query("id"))),
		DeliveryID: strings.TrimSpace(c.GetHeader("x-request-id")),
	}

	ack, err := h.usecase.IngestWebhook(ctx, event)
	if err != nil {
		appErr := mapPaymentTransactionError(err)
		logger.Component(ctx, "webhook.handler").Error().Err(err).
			Str("resource_id", event.ResourceID).
			Str("delivery_id", event.DeliveryID).
			Msg("notification processing failed")
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromWebhookAck(ack))
}
