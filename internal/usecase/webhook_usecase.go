package usecase

import (
	"context"
	"errors"
	"strings"

	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase/interfaces"
	"delivery_payments/pkg/logger"
)

const (
	WebhookReasonProcessed       = "processed"
	WebhookReasonIgnoredType     = "ignored_event_type"
	WebhookReasonMissingResource = "missing_resource_id"
	WebhookReasonDuplicate       = "duplicate_delivery"
	WebhookReasonUnknownPayment  = "payment_not_found"
	WebhookReasonUnreferenced    = "unreferenced_payment"
	WebhookReasonMismatch        = "reference_mismatch"
	WebhookReasonCancelled       = "cancelled_sticky"
)

// WebhookEvent is a provider notification reduced to what ingestion needs.
// DeliveryID identifies one delivery attempt of the provider and is used for
// duplicate suppression.
type WebhookEvent struct {
	Method     entities.PaymentMethod
	Type       string
	Action     string
	ResourceID string
	DeliveryID string
}

// IsPaymentNotification reports whether the event concerns a payment resource.
func (e WebhookEvent) IsPaymentNotification() bool {
	t := strings.ToLower(strings.TrimSpace(e.Type))
	if t == "payment" {
		return true
	}
	return t == "" && strings.HasPrefix(strings.ToLower(e.Action), "payment.")
}

type WebhookAck struct {
	Processed   bool
	Reason      string
	Transaction *entities.PaymentTransaction
}

// IngestWebhook applies a provider payment notification to the local
// transaction. It never creates the commerce order and never reopens a
// cancelled transaction.
func (u *PaymentTransactionUseCase) IngestWebhook(ctx context.Context, event WebhookEvent) (WebhookAck, error) {
	log := logger.Component(ctx, "payment.webhook")
	if !event.Method.IsValid() {
		return WebhookAck{}, ErrInvalidPaymentMethod
	}
	if !event.IsPaymentNotification() {
		log.Info().Str("type", event.Type).Str("action", event.Action).Msg("webhook ignored, not a payment event")
		u.metrics.WebhookProcessed(event.Method, WebhookReasonIgnoredType)
		return WebhookAck{Reason: WebhookReasonIgnoredType}, nil
	}
	event.ResourceID = strings.TrimSpace(event.ResourceID)
	if event.ResourceID == "" {
		log.Warn().Str("action", event.Action).Msg("payment webhook without resource id")
		u.metrics.WebhookProcessed(event.Method, WebhookReasonMissingResource)
		return WebhookAck{Reason: WebhookReasonMissingResource}, nil
	}

	binding, err := u.binding(event.Method)
	if err != nil {
		return WebhookAck{}, err
	}

	claimed := false
	if u.deduper != nil && event.DeliveryID != "" {
		first, err := u.deduper.Claim(ctx, event.DeliveryID)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("delivery_id", event.DeliveryID).Msg("webhook dedupe unavailable; processing anyway")
		case !first:
			log.Info().Str("delivery_id", event.DeliveryID).Str("payment_id", event.ResourceID).Msg("duplicate webhook delivery")
			u.metrics.WebhookProcessed(event.Method, WebhookReasonDuplicate)
			return WebhookAck{Reason: WebhookReasonDuplicate}, nil
		default:
			claimed = true
		}
	}

	ack, err := u.ingestPayment(ctx, binding, event)
	if err != nil {
		if claimed {
			if rerr := u.deduper.Release(ctx, event.DeliveryID); rerr != nil {
				log.Warn().Err(rerr).Str("delivery_id", event.DeliveryID).Msg("webhook dedupe release failed")
			}
		}
		u.metrics.WebhookProcessed(event.Method, "error")
		return WebhookAck{}, err
	}
	u.metrics.WebhookProcessed(event.Method, ack.Reason)
	return ack, nil
}

func (u *PaymentTransactionUseCase) ingestPayment(ctx context.Context, binding GatewayBinding, event WebhookEvent) (WebhookAck, error) {
	log := logger.Component(ctx, "payment.webhook")
	method := event.Method

	p, err := binding.Gateway.FetchByID(ctx, event.ResourceID)
	if err != nil {
		log.Error().Err(err).Str("payment_id", event.ResourceID).Msg("webhook payment fetch failed")
		return WebhookAck{}, classifyGatewayError(err)
	}
	if p == nil {
		log.Warn().Str("payment_id", event.ResourceID).Msg("webhook payment unknown to gateway")
		return WebhookAck{Reason: WebhookReasonUnknownPayment}, nil
	}
	status := u.normalize(binding, *p)

	tx, err := u.findForPayment(ctx, method, *p)
	if err != nil {
		return WebhookAck{}, err
	}
	if tx.Token == "" {
		if p.ExternalReference == "" {
			log.Warn().Str("payment_id", p.ID).Msg("webhook payment carries no external reference")
			return WebhookAck{Reason: WebhookReasonUnreferenced}, nil
		}
		created, fresh, err := u.createFromPayment(ctx, method, *p, status)
		if err != nil {
			return WebhookAck{}, err
		}
		if fresh {
			return WebhookAck{Processed: true, Reason: WebhookReasonProcessed, Transaction: &created}, nil
		}
		tx = created
	}

	tx = u.adoptPreferenceToken(ctx, tx, *p)
	if !correspondsTo(tx, *p) {
		log.Warn().
			Str("token", tx.Token).
			Str("buy_order", tx.BuyOrder).
			Str("payment_id", p.ID).
			Str("payment_preference", p.PreferenceRef).
			Str("payment_external_reference", p.ExternalReference).
			Msg("webhook payment does not belong to transaction; ignored")
		return WebhookAck{Reason: WebhookReasonMismatch}, nil
	}

	if tx.Status == entities.TransactionStatusCanceled {
		saved, err := u.repo.UpdateResponse(ctx, method, tx.Token, p.Raw)
		if err != nil {
			return WebhookAck{}, err
		}
		log.Info().Str("token", tx.Token).Str("observed", string(status)).Msg("webhook on cancelled transaction; response stored, status kept")
		return WebhookAck{Processed: true, Reason: WebhookReasonCancelled, Transaction: &saved}, nil
	}

	saved, err := u.applyStatus(ctx, tx, *p, status, webhookGuard(status))
	if err != nil {
		return WebhookAck{}, err
	}
	log.Info().Str("token", saved.Token).Str("payment_id", p.ID).Str("status", string(saved.Status)).Msg("webhook applied")
	return WebhookAck{Processed: true, Reason: WebhookReasonProcessed, Transaction: &saved}, nil
}

// findForPayment looks the payment's transaction up by preference id, by a
// token equal to the payment id and finally by buy order.
func (u *PaymentTransactionUseCase) findForPayment(ctx context.Context, method entities.PaymentMethod, p entities.GatewayPayment) (entities.PaymentTransaction, error) {
	for _, token := range []string{p.PreferenceRef, p.ID} {
		if token == "" {
			continue
		}
		tx, err := u.repo.GetByToken(ctx, method, token)
		if err != nil || tx.Token != "" {
			return tx, err
		}
	}
	if p.ExternalReference == "" {
		return entities.PaymentTransaction{}, nil
	}
	return u.repo.GetByBuyOrder(ctx, method, p.ExternalReference)
}

// createFromPayment stores a transaction for a payment that was notified
// before the client's own record was found. fresh is false when a concurrent
// writer created it first and the stored record is returned instead.
func (u *PaymentTransactionUseCase) createFromPayment(ctx context.Context, method entities.PaymentMethod, p entities.GatewayPayment, status entities.TransactionStatus) (entities.PaymentTransaction, bool, error) {
	token := p.PreferenceRef
	if token == "" {
		token = p.ID
	}
	now := u.now()
	created, err := u.repo.Create(ctx, entities.PaymentTransaction{
		Token:             token,
		BuyOrder:          p.ExternalReference,
		Amount:            p.Amount,
		Status:            status,
		PaymentMethod:     method,
		Response:          p.Raw,
		ProviderPaymentID: p.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if errors.Is(err, interfaces.ErrTransactionAlreadyExists) {
		existing, err := u.load(ctx, method, token)
		return existing, false, err
	}
	if err != nil {
		return entities.PaymentTransaction{}, false, err
	}
	logger.Component(ctx, "payment.webhook").Info().Str("token", token).Str("buy_order", p.ExternalReference).Str("status", string(status)).Msg("transaction created from webhook")
	u.publish(ctx, interfaces.EventTypeStatusChanged, created)
	return created, true, nil
}

// webhookGuard lets refunds and chargebacks move an AUTHORIZED transaction;
// every other observation leaves final statuses untouched.
func webhookGuard(status entities.TransactionStatus) []entities.TransactionStatus {
	if status == entities.TransactionStatusRefunded || status == entities.TransactionStatusChargedBack {
		return []entities.TransactionStatus{
			entities.TransactionStatusCanceled,
			entities.TransactionStatusRefunded,
			entities.TransactionStatusChargedBack,
		}
	}
	return finalStatuses
}
