package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase/interfaces"
	"delivery_payments/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

var (
	ErrTransactionNotFound  = errors.New("payment transaction not found")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidBuyOrder      = errors.New("buy_order is required")
	ErrInvalidSessionID     = errors.New("session_id is required")
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidOrderID       = errors.New("order_id is required")
	ErrInvalidPayload       = errors.New("invalid payload")
	ErrStateConflict        = errors.New("payment transaction state conflict")
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")

	ErrGatewayNotConfigured  = interfaces.ErrGatewayNotConfigured
	ErrGatewayResponse       = interfaces.ErrGatewayResponse
	ErrOperationNotSupported = interfaces.ErrOperationNotSupported
)

const (
	defaultFreshnessWindow     = 10 * time.Minute
	defaultRejectedRetryWindow = 30 * time.Minute
	defaultOrderClaimTTL       = 5 * time.Minute
	defaultPendingListLimit    = 50
	defaultUnlinkedListLimit   = 100
	maxUnlinkedListLimit       = 500

	defaultCancelledBy  = "user"
	defaultCancelReason = "user_cancelled"
)

// IPaymentTransactionUseCase is the reconciliation engine for payment intents.
//
// Every operation is safe to call any number of times, in any order, for the
// same token: final states never move back, a user cancellation is sticky and
// at most one order is created per transaction.

type IPaymentTransactionUseCase interface {
	CreateIntent(ctx context.Context, in CreateIntentInput) (CreateIntentOutput, error)
	Commit(ctx context.Context, method entities.PaymentMethod, token string) (entities.PaymentTransaction, error)
	ResolveStatus(ctx context.Context, method entities.PaymentMethod, id string) (StatusResult, error)
	IngestWebhook(ctx context.Context, event WebhookEvent) (WebhookAck, error)
	Cancel(ctx context.Context, method entities.PaymentMethod, token, cancelledBy, reason string) (entities.PaymentTransaction, error)
	LinkOrder(ctx context.Context, method entities.PaymentMethod, token, orderID string) (entities.PaymentTransaction, error)
	GetInfo(ctx context.Context, method entities.PaymentMethod, token string) (entities.PaymentTransaction, error)
	ListPendingBySession(ctx context.Context, method entities.PaymentMethod, sessionID string) ([]entities.PaymentTransaction, error)
	ListUnlinkedAuthorized(ctx context.Context, method entities.PaymentMethod, limit int) ([]entities.PaymentTransaction, error)
	Delete(ctx context.Context, method entities.PaymentMethod, token string) error
}

type CreateIntentInput struct {
	Method    entities.PaymentMethod
	Amount    decimal.Decimal
	BuyOrder  string
	SessionID string
	Payload   json.RawMessage
}

type CreateIntentOutput struct {
	Token       string
	RedirectURL string
	Transaction entities.PaymentTransaction
}

// GatewayBinding pairs a gateway with the normalizer for its vocabulary.
// AutoCreateOrder is set for redirect-style gateways, where the stored payload
// is turned into an order as soon as the payment is authorized.
type GatewayBinding struct {
	Gateway         interfaces.IPaymentGateway
	Normalizer      interfaces.IStatusNormalizer
	AutoCreateOrder bool
}

type PaymentTransactionUseCase struct {
	repo          interfaces.IPaymentTransactionRepository
	orders        interfaces.IOrderCreator
	bindings      map[entities.PaymentMethod]GatewayBinding
	publicBaseURL string

	events  interfaces.IEventPublisher
	metrics interfaces.IReconciliationMetrics
	deduper interfaces.IWebhookDeduper

	now                 func() time.Time
	freshnessWindow     time.Duration
	rejectedRetryWindow time.Duration
	orderClaimTTL       time.Duration

	resolving singleflight.Group
}

var _ IPaymentTransactionUseCase = (*PaymentTransactionUseCase)(nil)

type Option func(*PaymentTransactionUseCase)

func WithEventPublisher(p interfaces.IEventPublisher) Option {
	return func(u *PaymentTransactionUseCase) { u.events = p }
}

func WithMetrics(m interfaces.IReconciliationMetrics) Option {
	return func(u *PaymentTransactionUseCase) {
		if m != nil {
			u.metrics = m
		}
	}
}

func WithWebhookDeduper(d interfaces.IWebhookDeduper) Option {
	return func(u *PaymentTransactionUseCase) { u.deduper = d }
}

func WithClock(now func() time.Time) Option {
	return func(u *PaymentTransactionUseCase) { u.now = now }
}

func WithFreshnessWindow(d time.Duration) Option {
	return func(u *PaymentTransactionUseCase) {
		if d > 0 {
			u.freshnessWindow = d
		}
	}
}

// WithRejectedRetryWindow bounds how long a REJECTED transaction keeps being
// re-checked against the gateway. Zero disables the bound.
func WithRejectedRetryWindow(d time.Duration) Option {
	return func(u *PaymentTransactionUseCase) { u.rejectedRetryWindow = d }
}

func WithOrderClaimTTL(d time.Duration) Option {
	return func(u *PaymentTransactionUseCase) {
		if d > 0 {
			u.orderClaimTTL = d
		}
	}
}

func NewPaymentTransactionUseCase(
	repo interfaces.IPaymentTransactionRepository,
	orders interfaces.IOrderCreator,
	publicBaseURL string,
	bindings []GatewayBinding,
	opts ...Option,
) *PaymentTransactionUseCase {
	u := &PaymentTransactionUseCase{
		repo:                repo,
		orders:              orders,
		bindings:            make(map[entities.PaymentMethod]GatewayBinding, len(bindings)),
		publicBaseURL:       strings.TrimRight(strings.TrimSpace(publicBaseURL), "/"),
		metrics:             noopMetrics{},
		now:                 func() time.Time { return time.Now().UTC() },
		freshnessWindow:     defaultFreshnessWindow,
		rejectedRetryWindow: defaultRejectedRetryWindow,
		orderClaimTTL:       defaultOrderClaimTTL,
	}
	for _, b := range bindings {
		if b.Gateway == nil {
			continue
		}
		u.bindings[b.Gateway.Method()] = b
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *PaymentTransactionUseCase) CreateIntent(ctx context.Context, in CreateIntentInput) (CreateIntentOutput, error) {
	log := logger.Component(ctx, "payment.usecase")
	buyOrder := strings.TrimSpace(in.BuyOrder)
	sessionID := strings.TrimSpace(in.SessionID)
	log.Info().Str("method", string(in.Method)).Str("buy_order", buyOrder).Str("amount", in.Amount.String()).Msg("create-intent start")

	if !in.Method.IsValid() {
		return CreateIntentOutput{}, ErrInvalidPaymentMethod
	}
	if !in.Amount.IsPositive() {
		return CreateIntentOutput{}, ErrInvalidAmount
	}
	if buyOrder == "" {
		return CreateIntentOutput{}, ErrInvalidBuyOrder
	}
	if sessionID == "" {
		return CreateIntentOutput{}, ErrInvalidSessionID
	}
	if len(in.Payload) > 0 && !json.Valid(in.Payload) {
		return CreateIntentOutput{}, ErrInvalidPayload
	}

	binding, err := u.binding(in.Method)
	if err != nil {
		log.Error().Err(err).Str("method", string(in.Method)).Msg("gateway not configured")
		return CreateIntentOutput{}, err
	}
	if u.publicBaseURL == "" {
		log.Error().Msg("public base url not configured")
		return CreateIntentOutput{}, fmt.Errorf("%w: missing PUBLIC_BASE_URL", ErrGatewayNotConfigured)
	}

	res, err := binding.Gateway.CreateIntent(ctx, entities.IntentRequest{
		BuyOrder:        buyOrder,
		SessionID:       sessionID,
		Amount:          in.Amount,
		ReturnURL:       u.returnURL(in.Method),
		NotificationURL: u.notificationURL(in.Method),
	})
	if err != nil {
		log.Error().Err(err).Str("buy_order", buyOrder).Msg("gateway create failed")
		return CreateIntentOutput{}, classifyGatewayError(err)
	}
	if strings.TrimSpace(res.Token) == "" || strings.TrimSpace(res.RedirectURL) == "" {
		log.Error().Str("buy_order", buyOrder).Msg("gateway create returned empty token or redirect url")
		return CreateIntentOutput{}, ErrGatewayResponse
	}

	now := u.now()
	tx := entities.PaymentTransaction{
		Token:             res.Token,
		BuyOrder:          buyOrder,
		SessionID:         sessionID,
		Amount:            in.Amount,
		Status:            entities.TransactionStatusPending,
		PaymentMethod:     in.Method,
		Payload:           in.Payload,
		Response:          res.Raw,
		ProviderPaymentID: res.PaymentID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	created, err := u.repo.Create(ctx, tx)
	if err != nil {
		log.Error().Err(err).Str("token", tx.Token).Msg("transaction create failed")
		return CreateIntentOutput{}, err
	}
	log.Info().Str("token", created.Token).Str("buy_order", buyOrder).Msg("create-intent success")

	return CreateIntentOutput{Token: created.Token, RedirectURL: res.RedirectURL, Transaction: created}, nil
}

// Commit confirms a redirect-style payment and creates the order once it is authorized.
func (u *PaymentTransactionUseCase) Commit(ctx context.Context, method entities.PaymentMethod, token string) (entities.PaymentTransaction, error) {
	log := logger.Component(ctx, "payment.usecase")
	token = strings.TrimSpace(token)
	if !method.IsValid() {
		return entities.PaymentTransaction{}, ErrInvalidPaymentMethod
	}
	if token == "" {
		return entities.PaymentTransaction{}, ErrInvalidToken
	}

	tx, err := u.load(ctx, method, token)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	binding, err := u.binding(method)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}

	if tx.Status.IsFinal() {
		log.Info().Str("token", token).Str("status", string(tx.Status)).Msg("commit skipped, transaction already final")
		if binding.AutoCreateOrder {
			tx = u.ensureOrder(ctx, tx)
		}
		return tx, nil
	}

	p, err := binding.Gateway.Commit(ctx, token)
	if err != nil {
		log.Error().Err(err).Str("token", token).Msg("gateway commit failed")
		return entities.PaymentTransaction{}, classifyGatewayError(err)
	}

	status := u.normalize(binding, p)
	saved, err := u.applyStatus(ctx, tx, p, status, finalStatuses)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	log.Info().Str("token", token).Str("status", string(saved.Status)).Msg("commit persisted")

	if binding.AutoCreateOrder {
		saved = u.ensureOrder(ctx, saved)
	}
	return saved, nil
}

// Cancel marks the transaction CANCELED and asks the gateway to expire the intent.
func (u *PaymentTransactionUseCase) Cancel(ctx context.Context, method entities.PaymentMethod, token, cancelledBy, reason string) (entities.PaymentTransaction, error) {
	log := logger.Component(ctx, "payment.usecase")
	token = strings.TrimSpace(token)
	if !method.IsValid() {
		return entities.PaymentTransaction{}, ErrInvalidPaymentMethod
	}
	if token == "" {
		return entities.PaymentTransaction{}, ErrInvalidToken
	}
	if cancelledBy = strings.TrimSpace(cancelledBy); cancelledBy == "" {
		cancelledBy = defaultCancelledBy
	}
	if reason = strings.TrimSpace(reason); reason == "" {
		reason = defaultCancelReason
	}

	tx, err := u.load(ctx, method, token)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if tx.Status.IsFinal() {
		log.Info().Str("token", token).Str("status", string(tx.Status)).Msg("cancel skipped, transaction already final")
		return tx, nil
	}

	saved, applied, err := u.repo.MarkCancelled(ctx, method, token, cancelledBy, reason, u.now())
	if err != nil {
		log.Error().Err(err).Str("token", token).Msg("cancel persist failed")
		return entities.PaymentTransaction{}, err
	}
	if !applied {
		current, err := u.current(ctx, method, token, saved)
		if err != nil {
			return entities.PaymentTransaction{}, err
		}
		log.Info().Str("token", token).Str("status", string(current.Status)).Msg("cancel lost race against a final status")
		return current, nil
	}
	log.Info().Str("token", token).Str("cancelled_by", cancelledBy).Str("reason", reason).Msg("transaction cancelled")
	u.publish(ctx, interfaces.EventTypeCancelled, saved)

	if binding, err := u.binding(method); err != nil {
		log.Warn().Err(err).Str("token", token).Msg("gateway invalidate skipped")
	} else if err := binding.Gateway.Invalidate(ctx, token); err != nil {
		if errors.Is(err, ErrOperationNotSupported) {
			log.Debug().Str("token", token).Msg("gateway has no invalidate operation")
		} else {
			log.Warn().Err(err).Str("token", token).Msg("gateway invalidate failed; local cancellation stands")
		}
	}
	return saved, nil
}

// LinkOrder records an order created by the client for an authorized transaction.
func (u *PaymentTransactionUseCase) LinkOrder(ctx context.Context, method entities.PaymentMethod, token, orderID string) (entities.PaymentTransaction, error) {
	log := logger.Component(ctx, "payment.usecase")
	token = strings.TrimSpace(token)
	orderID = strings.TrimSpace(orderID)
	if !method.IsValid() {
		return entities.PaymentTransaction{}, ErrInvalidPaymentMethod
	}
	if token == "" {
		return entities.PaymentTransaction{}, ErrInvalidToken
	}
	if orderID == "" {
		return entities.PaymentTransaction{}, ErrInvalidOrderID
	}

	tx, err := u.load(ctx, method, token)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if tx.IsLinked() {
		log.Info().Str("token", token).Str("order_id", *tx.OrderID).Msg("link-order already linked")
		u.metrics.OrderLinkage(method, "already_linked")
		return tx, nil
	}
	if tx.Status != entities.TransactionStatusAuthorized {
		return entities.PaymentTransaction{}, fmt.Errorf("%w: status is %s", ErrStateConflict, tx.Status)
	}

	linked, applied, err := u.repo.LinkOrder(ctx, method, token, interfaces.OrderLink{OrderID: orderID, StaleAfter: u.orderClaimTTL})
	if err != nil {
		log.Error().Err(err).Str("token", token).Str("order_id", orderID).Msg("link-order persist failed")
		return entities.PaymentTransaction{}, err
	}
	if !applied {
		current, err := u.current(ctx, method, token, linked)
		if err != nil {
			return entities.PaymentTransaction{}, err
		}
		if current.IsLinked() {
			u.metrics.OrderLinkage(method, "already_linked")
			return current, nil
		}
		if current.Status != entities.TransactionStatusAuthorized {
			return entities.PaymentTransaction{}, fmt.Errorf("%w: status is %s", ErrStateConflict, current.Status)
		}
		return entities.PaymentTransaction{}, fmt.Errorf("%w: order creation in progress", ErrStateConflict)
	}

	log.Info().Str("token", token).Str("order_id", orderID).Msg("order linked")
	u.metrics.OrderLinkage(method, "linked")
	u.publish(ctx, interfaces.EventTypeOrderLinked, linked)
	return linked, nil
}

func (u *PaymentTransactionUseCase) GetInfo(ctx context.Context, method entities.PaymentMethod, token string) (entities.PaymentTransaction, error) {
	token = strings.TrimSpace(token)
	if !method.IsValid() {
		return entities.PaymentTransaction{}, ErrInvalidPaymentMethod
	}
	if token == "" {
		return entities.PaymentTransaction{}, ErrInvalidToken
	}
	return u.load(ctx, method, token)
}

// ListPendingBySession returns the session's open transactions that are still
// inside the freshness window.
func (u *PaymentTransactionUseCase) ListPendingBySession(ctx context.Context, method entities.PaymentMethod, sessionID string) ([]entities.PaymentTransaction, error) {
	sessionID = strings.TrimSpace(sessionID)
	if !method.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	items, err := u.repo.ListBySessionID(ctx, method, sessionID, defaultPendingListLimit)
	if err != nil {
		return nil, err
	}
	now := u.now()
	pending := make([]entities.PaymentTransaction, 0, len(items))
	for _, tx := range items {
		if tx.Status.IsFinal() || tx.IsExpired(now, u.freshnessWindow) {
			continue
		}
		pending = append(pending, tx)
	}
	return pending, nil
}

// ListUnlinkedAuthorized lists authorized transactions without an order, the
// operator's view of failed order linkage.
func (u *PaymentTransactionUseCase) ListUnlinkedAuthorized(ctx context.Context, method entities.PaymentMethod, limit int) ([]entities.PaymentTransaction, error) {
	if !method.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	switch {
	case limit <= 0:
		limit = defaultUnlinkedListLimit
	case limit > maxUnlinkedListLimit:
		limit = maxUnlinkedListLimit
	}
	return u.repo.ListUnlinkedAuthorized(ctx, method, limit)
}

func (u *PaymentTransactionUseCase) Delete(ctx context.Context, method entities.PaymentMethod, token string) error {
	token = strings.TrimSpace(token)
	if !method.IsValid() {
		return ErrInvalidPaymentMethod
	}
	if token == "" {
		return ErrInvalidToken
	}
	deleted, err := u.repo.Delete(ctx, method, token)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTransactionNotFound
	}
	logger.Component(ctx, "payment.usecase").Info().Str("method", string(method)).Str("token", token).Msg("transaction deleted")
	return nil
}

// ensureOrder creates the commerce order for an authorized transaction at
// most once. Failures are logged for manual reconciliation and never returned:
// the payment itself already succeeded.
func (u *PaymentTransactionUseCase) ensureOrder(ctx context.Context, tx entities.PaymentTransaction) entities.PaymentTransaction {
	log := logger.Component(ctx, "payment.orders")
	if tx.Status != entities.TransactionStatusAuthorized || tx.OrderCreated {
		return tx
	}
	if !tx.HasPayload() {
		log.Warn().Str("token", tx.Token).Str("buy_order", tx.BuyOrder).Msg("authorized transaction has no payload; order must be linked manually")
		u.metrics.OrderLinkage(tx.PaymentMethod, "no_payload")
		return tx
	}
	if u.orders == nil {
		log.Error().Str("token", tx.Token).Msg("order service not configured; order must be linked manually")
		u.metrics.OrderLinkage(tx.PaymentMethod, "not_configured")
		return tx
	}

	claimID := uuid.NewString()
	claimed, err := u.repo.ClaimOrderCreation(ctx, tx.PaymentMethod, tx.Token, claimID, u.orderClaimTTL)
	if err != nil {
		log.Error().Err(err).Str("token", tx.Token).Msg("order claim failed")
		u.metrics.OrderLinkage(tx.PaymentMethod, "claim_error")
		return tx
	}
	if !claimed {
		log.Info().Str("token", tx.Token).Msg("order creation already claimed")
		u.metrics.OrderLinkage(tx.PaymentMethod, "claimed_elsewhere")
		if current, err := u.repo.GetByToken(ctx, tx.PaymentMethod, tx.Token); err == nil && current.Token != "" {
			return current
		}
		return tx
	}

	orderID, err := u.orders.CreateOrder(ctx, tx.Payload)
	orderID = strings.TrimSpace(orderID)
	if err == nil && orderID == "" {
		err = errors.New("order service returned an empty order id")
	}
	if err != nil {
		log.Error().Err(err).
			Str("token", tx.Token).
			Str("buy_order", tx.BuyOrder).
			Str("session_id", tx.SessionID).
			Str("amount", tx.Amount.String()).
			Msg("order creation failed for authorized payment; manual reconciliation required")
		u.metrics.OrderLinkage(tx.PaymentMethod, "create_failed")
		if rerr := u.repo.ReleaseOrderClaim(ctx, tx.PaymentMethod, tx.Token, claimID); rerr != nil {
			log.Error().Err(rerr).Str("token", tx.Token).Msg("order claim release failed")
		}
		return tx
	}

	linked, applied, err := u.repo.LinkOrder(ctx, tx.PaymentMethod, tx.Token, interfaces.OrderLink{OrderID: orderID, ClaimID: claimID})
	if err != nil || !applied {
		log.Error().Err(err).
			Str("token", tx.Token).
			Str("buy_order", tx.BuyOrder).
			Str("order_id", orderID).
			Msg("order created but link was not persisted; manual reconciliation required")
		u.metrics.OrderLinkage(tx.PaymentMethod, "link_failed")
		if err != nil || linked.Token == "" {
			return tx
		}
		return linked
	}

	log.Info().Str("token", tx.Token).Str("order_id", orderID).Msg("order created and linked")
	u.metrics.OrderLinkage(tx.PaymentMethod, "created")
	u.publish(ctx, interfaces.EventTypeOrderLinked, linked)
	return linked
}

// applyStatus persists a gateway observation unless the stored status is one
// of unless. When the write is skipped the current record is returned.
func (u *PaymentTransactionUseCase) applyStatus(
	ctx context.Context,
	tx entities.PaymentTransaction,
	p entities.GatewayPayment,
	status entities.TransactionStatus,
	unless []entities.TransactionStatus,
) (entities.PaymentTransaction, error) {
	log := logger.Component(ctx, "payment.usecase")
	saved, applied, err := u.repo.UpdateStatus(ctx, tx.PaymentMethod, tx.Token, interfaces.StatusUpdate{
		Status:            status,
		Response:          p.Raw,
		ProviderPaymentID: p.ID,
		UnlessStatus:      unless,
	})
	if err != nil {
		log.Error().Err(err).Str("token", tx.Token).Msg("status persist failed")
		return entities.PaymentTransaction{}, err
	}
	if !applied {
		current, err := u.current(ctx, tx.PaymentMethod, tx.Token, saved)
		if err != nil {
			return entities.PaymentTransaction{}, err
		}
		log.Info().Str("token", tx.Token).Str("stored", string(current.Status)).Str("observed", string(status)).Msg("status write skipped, stored status is protected")
		return current, nil
	}
	if saved.Status != tx.Status {
		log.Info().Str("token", tx.Token).Str("from", string(tx.Status)).Str("to", string(saved.Status)).Msg("status changed")
		u.publish(ctx, interfaces.EventTypeStatusChanged, saved)
	}
	return saved, nil
}

// normalize maps the provider status and refuses AUTHORIZED for a coarse
// approval whose settlement detail is not "accredited".
func (u *PaymentTransactionUseCase) normalize(binding GatewayBinding, p entities.GatewayPayment) entities.TransactionStatus {
	var status entities.TransactionStatus
	if binding.Normalizer != nil {
		status = binding.Normalizer.Normalize(p)
	} else {
		status = entities.NormalizeStatus(p.Status)
	}
	if strings.EqualFold(strings.TrimSpace(p.Status), "approved") && !p.IsAccredited() {
		return entities.TransactionStatusPending
	}
	return status
}

func (u *PaymentTransactionUseCase) binding(method entities.PaymentMethod) (GatewayBinding, error) {
	b, ok := u.bindings[method]
	if !ok || b.Gateway == nil || !b.Gateway.Configured() {
		return GatewayBinding{}, fmt.Errorf("%w: %s", ErrGatewayNotConfigured, method)
	}
	return b, nil
}

func (u *PaymentTransactionUseCase) load(ctx context.Context, method entities.PaymentMethod, token string) (entities.PaymentTransaction, error) {
	tx, err := u.repo.GetByToken(ctx, method, token)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if tx.Token == "" {
		return entities.PaymentTransaction{}, ErrTransactionNotFound
	}
	return tx, nil
}

// current returns fromCondition when a failed conditional write already
// carried the stored record, otherwise it reloads.
func (u *PaymentTransactionUseCase) current(ctx context.Context, method entities.PaymentMethod, token string, fromCondition entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	if fromCondition.Token != "" {
		return fromCondition, nil
	}
	return u.load(ctx, method, token)
}

func (u *PaymentTransactionUseCase) publish(ctx context.Context, eventType string, tx entities.PaymentTransaction) {
	if u.events == nil {
		return
	}
	ev := interfaces.TransactionEvent{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		Token:         tx.Token,
		BuyOrder:      tx.BuyOrder,
		PaymentMethod: tx.PaymentMethod,
		Status:        tx.Status,
		Amount:        tx.Amount.String(),
		Timestamp:     u.now(),
	}
	if tx.OrderID != nil {
		ev.OrderID = *tx.OrderID
	}
	if err := u.events.Publish(ctx, ev); err != nil {
		logger.Component(ctx, "payment.events").Warn().Err(err).Str("token", tx.Token).Str("event_type", eventType).Msg("event publish failed")
	}
}

func (u *PaymentTransactionUseCase) returnURL(method entities.PaymentMethod) string {
	return fmt.Sprintf("%s/v1/payments/%s/return", u.publicBaseURL, method)
}

func (u *PaymentTransactionUseCase) notificationURL(method entities.PaymentMethod) string {
	return fmt.Sprintf("%s/v1/webhooks/%s", u.publicBaseURL, method)
}

var finalStatuses = []entities.TransactionStatus{
	entities.TransactionStatusAuthorized,
	entities.TransactionStatusCanceled,
	entities.TransactionStatusRefunded,
	entities.TransactionStatusChargedBack,
}

func classifyGatewayError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrGatewayNotConfigured), errors.Is(err, ErrGatewayResponse), errors.Is(err, ErrOperationNotSupported):
		return err
	}
	return fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
}

type noopMetrics struct{}

func (noopMetrics) StatusResolved(entities.PaymentMethod, string, entities.TransactionStatus) {}
func (noopMetrics) OrderLinkage(entities.PaymentMethod, string)                               {}
func (noopMetrics) WebhookProcessed(entities.PaymentMethod, string)                           {}
