package interfaces

import (
	"context"
	"time"

	"delivery_payments/internal/domain/entities"
)

const (
	EventTypeStatusChanged = "payment.transaction.status_changed"
	EventTypeOrderLinked   = "payment.order.linked"
	EventTypeCancelled     = "payment.transaction.cancelled"
)

// TransactionEvent is published after a transaction changes.
type TransactionEvent struct {
	EventID       string                     `json:"event_id"`
	EventType     string                     `json:"event_type"`
	Token         string                     `json:"token"`
	BuyOrder      string                     `json:"buy_order"`
	PaymentMethod entities.PaymentMethod     `json:"payment_method"`
	Status        entities.TransactionStatus `json:"status"`
	OrderID       string                     `json:"order_id,omitempty"`
	Amount        string                     `json:"amount"`
	Timestamp     time.Time                  `json:"timestamp"`
}

type IEventPublisher interface {
	Publish(ctx context.Context, event TransactionEvent) error
}

// IWebhookDeduper remembers provider deliveries being or already processed.
type IWebhookDeduper interface {
	// Claim returns false when deliveryID was claimed before.
	Claim(ctx context.Context, deliveryID string) (bool, error)
	// Release forgets a claim so a failed delivery can be retried.
	Release(ctx context.Context, deliveryID string) error
}

// IReconciliationMetrics records reconciliation outcomes.
type IReconciliationMetrics interface {
	StatusResolved(method entities.PaymentMethod, source string, status entities.TransactionStatus)
	OrderLinkage(method entities.PaymentMethod, outcome string)
	WebhookProcessed(method entities.PaymentMethod, outcome string)
}
