package routes

import (
	"delivery_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments/:method"
	PathWebhooks = "/webhooks/:method"
)

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentTransactionHandler, webhooks *handlers.WebhookHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/transactions", h.CreateTransaction)
		payments.GET("/transactions/:token", h.GetTransaction)
		payments.DELETE("/transactions/:token", h.DeleteTransaction)
		payments.GET("/transactions/:token/status", h.GetStatus)
		payments.POST("/transactions/:token/commit", h.CommitTransaction)
		payments.POST("/transactions/:token/cancel", h.CancelTransaction)
		payments.POST("/transactions/:token/order", h.LinkOrder)
		payments.GET("/sessions/:session_id/pending", h.ListPendingBySession)
		payments.GET("/unlinked", h.ListUnlinkedAuthorized)

		// Browser return from the gateway. Webpay posts the form, Mercado Pago redirects with GET.
		payments.GET("/return", h.GatewayReturn)
		payments.POST("/return", h.GatewayReturn)
	}

	rg.POST(PathWebhooks, webhooks.Receive)
}
