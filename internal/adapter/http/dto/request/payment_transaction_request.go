package request

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest opens a payment intent. Payload is the order
// document created once the payment is authorized. Required fields are checked
// by the use case so the 400 names the missing one.
type CreateTransactionRequest struct {
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"15990"`
	BuyOrder  string          `json:"buy_order" example:"BO-20250101-0001"`
	SessionID string          `json:"session_id" example:"sess-7f3a"`
	Payload   json.RawMessage `json:"payload" swaggertype:"object"`
}

type CancelTransactionRequest struct {
	CancelledBy string `json:"cancelled_by" example:"user"`
	Reason      string `json:"reason" example:"user_cancelled"`
}

type LinkOrderRequest struct {
	OrderID string `json:"order_id" example:"981"`
}

// WebhookRequest is a Mercado Pago notification body. Older IPN deliveries
// send "topic" and "id" instead of "type" and "data.id".
type WebhookRequest struct {
	Type   string `json:"type"`
	Topic  string `json:"topic"`
	Action string `json:"action"`
	Data   struct {
		ID json.RawMessage `json:"id" swaggertype:"string"`
	} `json:"data"`
	ID json.RawMessage `json:"id" swaggertype:"string"`
}

// EventType returns the notification type, falling back to the IPN topic
// and then to the query string value.
func (r WebhookRequest) EventType(queryType string) string {
	for _, v := range []string{r.Type, r.Topic, queryType} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// ResourceID returns data.id, falling back to the IPN id and then to the
// query string value.
func (r WebhookRequest) ResourceID(queryID string) string {
	if v := rawString(r.Data.ID); v != "" {
		return v
	}
	if r.Topic != "" {
		if v := rawString(r.ID); v != "" {
			return v
		}
	}
	return strings.TrimSpace(queryID)
}

func rawString(raw json.RawMessage) string {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "null" {
		return ""
	}
	return s
}
