package interfaces

import (
	"context"
	"errors"

	"delivery_payments/internal/domain/entities"
)

var (
	// ErrGatewayNotConfigured means credentials or base URLs are missing.
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	// ErrGatewayResponse means the gateway answered with an incomplete success body.
	ErrGatewayResponse       = errors.New("payment gateway returned an invalid response")
	ErrOperationNotSupported = errors.New("operation not supported by payment gateway")
)

// IPaymentGateway abstracts external payment providers (Webpay, Mercado Pago).
//
// Every adapter returns provider-neutral entities.GatewayPayment values and
// keeps provider field names to itself. FetchByID returns (nil, nil) when the
// provider does not know the id.
type IPaymentGateway interface {
	Method() entities.PaymentMethod
	Configured() bool
	CreateIntent(ctx context.Context, req entities.IntentRequest) (entities.IntentResult, error)
	Commit(ctx context.Context, token string) (entities.GatewayPayment, error)
	FetchByID(ctx context.Context, id string) (*entities.GatewayPayment, error)
	SearchByExternalReference(ctx context.Context, externalReference string) ([]entities.GatewayPayment, error)
	FetchOrderPayments(ctx context.Context, token string) ([]entities.GatewayPayment, error)
	Invalidate(ctx context.Context, token string) error
}

// IStatusNormalizer maps a provider payment to the canonical status.
// One normalizer is bound to each gateway.
type IStatusNormalizer interface {
	Normalize(p entities.GatewayPayment) entities.TransactionStatus
}
