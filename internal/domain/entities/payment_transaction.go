package entities

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the canonical status of a payment transaction.
//
// Domain notes:
//   - AUTHORIZED, CANCELED, REFUNDED and CHARGED_BACK are final.
//   - REJECTED is not final: the gateway may allow a retry of the same intent.

type TransactionStatus string

const (
	TransactionStatusPending     TransactionStatus = "PENDING"
	TransactionStatusAuthorized  TransactionStatus = "AUTHORIZED"
	TransactionStatusRejected    TransactionStatus = "REJECTED"
	TransactionStatusCanceled    TransactionStatus = "CANCELED"
	TransactionStatusRefunded    TransactionStatus = "REFUNDED"
	TransactionStatusChargedBack TransactionStatus = "CHARGED_BACK"
)

// IsFinal reports whether no later signal may change the status.
func (s TransactionStatus) IsFinal() bool {
	switch s {
	case TransactionStatusAuthorized, TransactionStatusCanceled, TransactionStatusRefunded, TransactionStatusChargedBack:
		return true
	}
	return false
}

func (s TransactionStatus) IsCanonical() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusAuthorized, TransactionStatusRejected,
		TransactionStatusCanceled, TransactionStatusRefunded, TransactionStatusChargedBack:
		return true
	}
	return false
}

// NormalizeStatus maps a provider status to the canonical enum.
// Unknown values pass through upper-cased.
func NormalizeStatus(raw string) TransactionStatus {
	v := strings.TrimSpace(raw)
	if TransactionStatus(v).IsCanonical() {
		return TransactionStatus(v)
	}
	switch strings.ToLower(v) {
	case "pending", "in_process", "in_mediation", "initialized", "created", "authorized_for_collect":
		return TransactionStatusPending
	case "approved":
		return TransactionStatusAuthorized
	case "rejected":
		return TransactionStatusRejected
	case "cancelled", "canceled":
		return TransactionStatusCanceled
	case "refunded":
		return TransactionStatusRefunded
	case "charged_back":
		return TransactionStatusChargedBack
	}
	return TransactionStatus(strings.ToUpper(v))
}

type PaymentMethod string

const (
	PaymentMethodWebpay      PaymentMethod = "webpay"
	PaymentMethodMercadoPago PaymentMethod = "mercadopago"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodWebpay || m == PaymentMethodMercadoPago
}

func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	return m, m.IsValid()
}

// PaymentTransaction tracks one payment intent from creation to settlement.
//
// Storage model (DynamoDB):
//   - PK: pk = "<payment_method>#<token>"
//   - GSI1 (buy_order-index): payment_method + buy_order
//   - GSI2 (session_id-index): session_id + created_at
//
// Payload is the order-creation document supplied by the client. It is stored
// verbatim and only read when the order is created after authorization.
// Response is the last raw gateway response, kept for audit.

type PaymentTransaction struct {
	Token         string            `json:"token"`
	BuyOrder      string            `json:"buy_order"`
	SessionID     string            `json:"session_id"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
	PaymentMethod PaymentMethod     `json:"payment_method"`

	Payload  json.RawMessage `json:"payload,omitempty"`
	Response json.RawMessage `json:"response,omitempty"`
	// ProviderPaymentID is the gateway payment id seen in Response, if any.
	ProviderPaymentID string `json:"provider_payment_id,omitempty"`

	OrderCreated bool    `json:"order_created"`
	OrderID      *string `json:"order_id,omitempty"`

	CancelledBy  string     `json:"cancelled_by,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CancelReason string     `json:"cancel_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t PaymentTransaction) HasPayload() bool {
	s := strings.TrimSpace(string(t.Payload))
	return s != "" && s != "null" && s != "{}"
}

// IsLinked reports whether an order is already attached.
func (t PaymentTransaction) IsLinked() bool {
	return t.OrderCreated && t.OrderID != nil && *t.OrderID != ""
}

// IsExpired is advisory: it never changes the status.
func (t PaymentTransaction) IsExpired(now time.Time, window time.Duration) bool {
	return !t.CreatedAt.IsZero() && now.Sub(t.CreatedAt) > window
}
