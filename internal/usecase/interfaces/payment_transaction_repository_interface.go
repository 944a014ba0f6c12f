package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"delivery_payments/internal/domain/entities"
)

var ErrTransactionAlreadyExists = errors.New("payment transaction already exists")

// StatusUpdate is a conditional status write. It is skipped when the stored
// status is one of UnlessStatus.
type StatusUpdate struct {
	Status            entities.TransactionStatus
	Response          json.RawMessage
	ProviderPaymentID string
	UnlessStatus      []entities.TransactionStatus
}

// OrderLink sets the order back-reference. With a ClaimID the write only
// succeeds for the holder of that claim; without one it only succeeds when no
// live claim exists (claims older than StaleAfter are ignored).
type OrderLink struct {
	OrderID    string
	ClaimID    string
	StaleAfter time.Duration
}

// IPaymentTransactionRepository abstracts DynamoDB persistence for PaymentTransaction.
//
// Lookups return a zero value (empty Token) when nothing matches. Conditional
// writes return applied=false together with the current record when their
// condition does not hold.
type IPaymentTransactionRepository interface {
	Create(ctx context.Context, t entities.PaymentTransaction) (entities.PaymentTransaction, error)
	GetByToken(ctx context.Context, method entities.PaymentMethod, token string) (entities.PaymentTransaction, error)
	GetByBuyOrder(ctx context.Context, method entities.PaymentMethod, buyOrder string) (entities.PaymentTransaction, error)
	ListBySessionID(ctx context.Context, method entities.PaymentMethod, sessionID string, limit int) ([]entities.PaymentTransaction, error)
	ListUnlinkedAuthorized(ctx context.Context, method entities.PaymentMethod, limit int) ([]entities.PaymentTransaction, error)

	UpdateStatus(ctx context.Context, method entities.PaymentMethod, token string, upd StatusUpdate) (entities.PaymentTransaction, bool, error)
	UpdateResponse(ctx context.Context, method entities.PaymentMethod, token string, response json.RawMessage) (entities.PaymentTransaction, error)
	MarkCancelled(ctx context.Context, method entities.PaymentMethod, token, cancelledBy, reason string, at time.Time) (entities.PaymentTransaction, bool, error)
	ReplaceToken(ctx context.Context, method entities.PaymentMethod, oldToken, newToken string) (entities.PaymentTransaction, error)

	// ClaimOrderCreation atomically reserves the right to create the order.
	// Claims older than staleAfter may be taken over.
	ClaimOrderCreation(ctx context.Context, method entities.PaymentMethod, token, claimID string, staleAfter time.Duration) (bool, error)
	ReleaseOrderClaim(ctx context.Context, method entities.PaymentMethod, token, claimID string) error
	// LinkOrder sets order_created=true and order_id only if the status is
	// AUTHORIZED and order_created is still false.
	LinkOrder(ctx context.Context, method entities.PaymentMethod, token string, link OrderLink) (entities.PaymentTransaction, bool, error)

	Delete(ctx context.Context, method entities.PaymentMethod, token string) (bool, error)
}
