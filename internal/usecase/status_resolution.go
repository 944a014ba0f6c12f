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
	StatusSourceFinal             = "final"
	StatusSourceRetryWindowClosed = "retry_window_closed"
	StatusSourceGateway           = "gateway"
	StatusSourceUnresolved        = "unresolved"
)

// StatusResult is the answer of ResolveStatus. Source tells whether the status
// was confirmed against the gateway or is the last persisted state.
type StatusResult struct {
	Transaction entities.PaymentTransaction
	Source      string
	Strategy    string
}

// Authoritative reports whether the status was confirmed by the gateway or is final.
func (r StatusResult) Authoritative() bool {
	return r.Source == StatusSourceGateway || r.Source == StatusSourceFinal
}

// resolutionStrategy proposes a gateway payment for tx. A nil payment means
// the strategy has nothing to offer and the next one is tried.
type resolutionStrategy struct {
	name string
	find func(ctx context.Context, gw interfaces.IPaymentGateway, tx entities.PaymentTransaction, callerID string) (*entities.GatewayPayment, error)
}

var resolutionStrategies = []resolutionStrategy{
	{name: "stored_payment_id", find: findByStoredPaymentID},
	{name: "caller_payment_id", find: findByCallerPaymentID},
	{name: "external_reference", find: findByExternalReference},
	{name: "order_payments", find: findByOrderPayments},
}

// ResolveStatus reconciles the transaction identified by id (token, or a raw
// provider payment id) with the gateway. Final transactions are answered from
// the store without any gateway call. Gateway failures degrade to the last
// persisted status.
func (u *PaymentTransactionUseCase) ResolveStatus(ctx context.Context, method entities.PaymentMethod, id string) (StatusResult, error) {
	id = strings.TrimSpace(id)
	if !method.IsValid() {
		return StatusResult{}, ErrInvalidPaymentMethod
	}
	if id == "" {
		return StatusResult{}, ErrInvalidToken
	}

	v, err, shared := u.resolving.Do(string(method)+"#"+id, func() (any, error) {
		// Shared by every waiting caller, so one caller leaving must not cancel it.
		return u.resolve(context.WithoutCancel(ctx), method, id)
	})
	if err != nil {
		return StatusResult{}, err
	}
	if shared {
		logger.Component(ctx, "payment.resolve").Debug().Str("id", id).Msg("resolution shared with concurrent caller")
	}
	return v.(StatusResult), nil
}

func (u *PaymentTransactionUseCase) resolve(ctx context.Context, method entities.PaymentMethod, id string) (StatusResult, error) {
	log := logger.Component(ctx, "payment.resolve")

	tx, err := u.repo.GetByToken(ctx, method, id)
	if err != nil {
		return StatusResult{}, err
	}
	if tx.Token == "" && isProviderPaymentID(id) {
		if tx, err = u.locateByPaymentID(ctx, method, id); err != nil {
			return StatusResult{}, err
		}
	}
	if tx.Token == "" {
		return StatusResult{}, ErrTransactionNotFound
	}

	if tx.Status.IsFinal() {
		u.metrics.StatusResolved(method, StatusSourceFinal, tx.Status)
		return StatusResult{Transaction: tx, Source: StatusSourceFinal}, nil
	}
	if tx.Status == entities.TransactionStatusRejected && u.rejectedRetryWindow > 0 && tx.IsExpired(u.now(), u.rejectedRetryWindow) {
		log.Debug().Str("token", tx.Token).Msg("rejected transaction past retry window")
		u.metrics.StatusResolved(method, StatusSourceRetryWindowClosed, tx.Status)
		return StatusResult{Transaction: tx, Source: StatusSourceRetryWindowClosed}, nil
	}

	binding, err := u.binding(method)
	if err != nil {
		log.Warn().Err(err).Str("token", tx.Token).Msg("gateway unavailable for resolution; returning stored status")
		u.metrics.StatusResolved(method, StatusSourceUnresolved, tx.Status)
		return StatusResult{Transaction: tx, Source: StatusSourceUnresolved}, nil
	}

	for _, s := range resolutionStrategies {
		p, err := s.find(ctx, binding.Gateway, tx, id)
		if err != nil {
			if errors.Is(err, ErrOperationNotSupported) {
				continue
			}
			log.Warn().Err(err).Str("token", tx.Token).Str("strategy", s.name).Msg("resolution strategy failed")
			continue
		}
		if p == nil {
			continue
		}

		tx = u.adoptPreferenceToken(ctx, tx, *p)
		if !correspondsTo(tx, *p) {
			log.Warn().
				Str("token", tx.Token).
				Str("buy_order", tx.BuyOrder).
				Str("strategy", s.name).
				Str("payment_id", p.ID).
				Str("payment_preference", p.PreferenceRef).
				Str("payment_external_reference", p.ExternalReference).
				Msg("gateway payment does not belong to transaction; discarded")
			continue
		}

		saved, err := u.applyStatus(ctx, tx, *p, u.normalize(binding, *p), finalStatuses)
		if err != nil {
			return StatusResult{}, err
		}
		if binding.AutoCreateOrder {
			saved = u.ensureOrder(ctx, saved)
		}
		log.Info().Str("token", saved.Token).Str("strategy", s.name).Str("status", string(saved.Status)).Msg("status resolved")
		u.metrics.StatusResolved(method, StatusSourceGateway, saved.Status)
		return StatusResult{Transaction: saved, Source: StatusSourceGateway, Strategy: s.name}, nil
	}

	u.metrics.StatusResolved(method, StatusSourceUnresolved, tx.Status)
	return StatusResult{Transaction: tx, Source: StatusSourceUnresolved}, nil
}

// locateByPaymentID finds the transaction owning a raw provider payment id.
func (u *PaymentTransactionUseCase) locateByPaymentID(ctx context.Context, method entities.PaymentMethod, paymentID string) (entities.PaymentTransaction, error) {
	binding, err := u.binding(method)
	if err != nil {
		return entities.PaymentTransaction{}, nil
	}
	p, err := binding.Gateway.FetchByID(ctx, paymentID)
	if err != nil {
		logger.Component(ctx, "payment.resolve").Warn().Err(err).Str("payment_id", paymentID).Msg("payment lookup failed")
		return entities.PaymentTransaction{}, nil
	}
	if p == nil {
		return entities.PaymentTransaction{}, nil
	}
	if p.PreferenceRef != "" {
		tx, err := u.repo.GetByToken(ctx, method, p.PreferenceRef)
		if err != nil || tx.Token != "" {
			return tx, err
		}
	}
	if p.ExternalReference != "" {
		return u.repo.GetByBuyOrder(ctx, method, p.ExternalReference)
	}
	return entities.PaymentTransaction{}, nil
}

// adoptPreferenceToken rewrites a token that is still a raw payment id to the
// payment's owning preference id. It happens at most once per transaction.
func (u *PaymentTransactionUseCase) adoptPreferenceToken(ctx context.Context, tx entities.PaymentTransaction, p entities.GatewayPayment) entities.PaymentTransaction {
	if p.PreferenceRef == "" || p.ID == "" || tx.Token != p.ID || p.PreferenceRef == tx.Token {
		return tx
	}
	if p.ExternalReference != tx.BuyOrder {
		return tx
	}
	log := logger.Component(ctx, "payment.resolve")
	replaced, err := u.repo.ReplaceToken(ctx, tx.PaymentMethod, tx.Token, p.PreferenceRef)
	if err != nil && !errors.Is(err, interfaces.ErrTransactionAlreadyExists) {
		log.Warn().Err(err).Str("token", tx.Token).Str("preference_id", p.PreferenceRef).Msg("token rewrite failed")
		return tx
	}
	if err != nil || replaced.Token == "" {
		// A concurrent resolution already moved the record.
		moved, gerr := u.repo.GetByToken(ctx, tx.PaymentMethod, p.PreferenceRef)
		if gerr != nil || moved.Token == "" {
			log.Warn().Err(gerr).Str("token", tx.Token).Str("preference_id", p.PreferenceRef).Msg("token rewrite lost; keeping loaded transaction")
			return tx
		}
		log.Info().Str("from", tx.Token).Str("to", moved.Token).Msg("token already rewritten to preference id")
		return moved
	}
	log.Info().Str("from", tx.Token).Str("to", replaced.Token).Msg("token rewritten to preference id")
	return replaced
}

// correspondsTo reports whether p belongs to tx. A transaction created from a
// bare payment notification carries the payment id as token.
func correspondsTo(tx entities.PaymentTransaction, p entities.GatewayPayment) bool {
	if p.Matches(tx.Token, tx.BuyOrder) {
		return true
	}
	return p.PreferenceRef == "" && p.ID != "" && p.ID == tx.Token &&
		p.ExternalReference != "" && p.ExternalReference == tx.BuyOrder
}

func findByStoredPaymentID(ctx context.Context, gw interfaces.IPaymentGateway, tx entities.PaymentTransaction, _ string) (*entities.GatewayPayment, error) {
	if tx.ProviderPaymentID == "" {
		return nil, nil
	}
	return gw.FetchByID(ctx, tx.ProviderPaymentID)
}

func findByCallerPaymentID(ctx context.Context, gw interfaces.IPaymentGateway, tx entities.PaymentTransaction, callerID string) (*entities.GatewayPayment, error) {
	if !isProviderPaymentID(callerID) || callerID == tx.ProviderPaymentID {
		return nil, nil
	}
	return gw.FetchByID(ctx, callerID)
}

func findByExternalReference(ctx context.Context, gw interfaces.IPaymentGateway, tx entities.PaymentTransaction, _ string) (*entities.GatewayPayment, error) {
	if tx.BuyOrder == "" {
		return nil, nil
	}
	results, err := gw.SearchByExternalReference(ctx, tx.BuyOrder)
	if err != nil {
		return nil, err
	}
	var first *entities.GatewayPayment
	for i := range results {
		c := results[i]
		if !correspondsTo(tx, c) && !(c.ID == tx.Token && c.ExternalReference == tx.BuyOrder) {
			continue
		}
		if c.IsAccredited() {
			return &c, nil
		}
		if first == nil {
			first = &c
		}
	}
	return first, nil
}

func findByOrderPayments(ctx context.Context, gw interfaces.IPaymentGateway, tx entities.PaymentTransaction, _ string) (*entities.GatewayPayment, error) {
	payments, err := gw.FetchOrderPayments(ctx, tx.Token)
	if err != nil {
		return nil, err
	}
	for _, c := range payments {
		if !c.IsAccredited() || c.ID == "" {
			continue
		}
		confirmed, err := gw.FetchByID(ctx, c.ID)
		if err != nil || confirmed == nil {
			return nil, err
		}
		if !confirmed.IsAccredited() {
			return nil, nil
		}
		return confirmed, nil
	}
	return nil, nil
}

// isProviderPaymentID reports whether id looks like a raw numeric payment id.
func isProviderPaymentID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
