package response

import (
	"encoding/json"
	"time"

	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase"
)

type TransactionResponse struct {
	Token             string          `json:"token"`
	BuyOrder          string          `json:"buy_order"`
	SessionID         string          `json:"session_id,omitempty"`
	Amount            string          `json:"amount"`
	Status            string          `json:"status"`
	PaymentMethod     string          `json:"payment_method"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	OrderCreated      bool            `json:"order_created"`
	OrderID           *string         `json:"order_id,omitempty"`
	CancelledBy       string          `json:"cancelled_by,omitempty"`
	CancelledAt       *time.Time      `json:"cancelled_at,omitempty"`
	CancelReason      string          `json:"cancel_reason,omitempty"`
	Expired           bool            `json:"expired"`
	Payload           json.RawMessage `json:"payload,omitempty" swaggertype:"object"`
	Response          json.RawMessage `json:"response,omitempty" swaggertype:"object"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// FromPaymentTransaction maps a transaction. Expired is advisory and computed
// against the given freshness window.
func FromPaymentTransaction(t entities.PaymentTransaction, now time.Time, window time.Duration) TransactionResponse {
	return TransactionResponse{
		Token:             t.Token,
		BuyOrder:          t.BuyOrder,
		SessionID:         t.SessionID,
		Amount:            t.Amount.String(),
		Status:            string(t.Status),
		PaymentMethod:     string(t.PaymentMethod),
		ProviderPaymentID: t.ProviderPaymentID,
		OrderCreated:      t.OrderCreated,
		OrderID:           t.OrderID,
		CancelledBy:       t.CancelledBy,
		CancelledAt:       t.CancelledAt,
		CancelReason:      t.CancelReason,
		Expired:           !t.Status.IsFinal() && t.IsExpired(now, window),
		Payload:           t.Payload,
		Response:          t.Response,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

func FromPaymentTransactions(list []entities.PaymentTransaction, now time.Time, window time.Duration) TransactionListResponse {
	out := TransactionListResponse{Transactions: make([]TransactionResponse, 0, len(list))}
	for _, t := range list {
		out.Transactions = append(out.Transactions, FromPaymentTransaction(t, now, window))
	}
	out.Count = len(out.Transactions)
	return out
}

type CreateTransactionResponse struct {
	Token       string              `json:"token"`
	URL         string              `json:"url"`
	Transaction TransactionResponse `json:"transaction"`
}

func FromCreateIntent(out usecase.CreateIntentOutput, now time.Time, window time.Duration) CreateTransactionResponse {
	return CreateTransactionResponse{
		Token:       out.Token,
		URL:         out.RedirectURL,
		Transaction: FromPaymentTransaction(out.Transaction, now, window),
	}
}

// StatusResponse tells whether the status was confirmed by the gateway
// (authoritative) or is the last stored state.
type StatusResponse struct {
	TransactionResponse
	Source        string `json:"source"`
	Strategy      string `json:"strategy,omitempty"`
	Authoritative bool   `json:"authoritative"`
}

func FromStatusResult(r usecase.StatusResult, now time.Time, window time.Duration) StatusResponse {
	return StatusResponse{
		TransactionResponse: FromPaymentTransaction(r.Transaction, now, window),
		Source:              r.Source,
		Strategy:            r.Strategy,
		Authoritative:       r.Authoritative(),
	}
}

type WebhookAckResponse struct {
	Processed bool   `json:"processed"`
	Reason    string `json:"reason"`
	Token     string `json:"token,omitempty"`
	Status    string `json:"status,omitempty"`
}

func FromWebhookAck(a usecase.WebhookAck) WebhookAckResponse {
	res := WebhookAckResponse{Processed: a.Processed, Reason: a.Reason}
	if a.Transaction != nil {
		res.Token = a.Transaction.Token
		res.Status = string(a.Transaction.Status)
	}
	return res
}
