package usecase

import (
	"context"
	"encoding/json"
	"slices"
	"sort"
	"sync"
	"time"

	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase/interfaces"
)

// memoryRepository mirrors the conditional semantics of the DynamoDB store.
type memoryRepository struct {
	mu     sync.Mutex
	now    func() time.Time
	items  map[string]entities.PaymentTransaction
	claims map[string]orderClaim
}

type orderClaim struct {
	id string
	at time.Time
}

var _ interfaces.IPaymentTransactionRepository = (*memoryRepository)(nil)

func newMemoryRepository(now func() time.Time) *memoryRepository {
	return &memoryRepository{
		now:    now,
		items:  map[string]entities.PaymentTransaction{},
		claims: map[string]orderClaim{},
	}
}

func memKey(method entities.PaymentMethod, token string) string {
	return string(method) + "#" + token
}

func (r *memoryRepository) seed(t entities.PaymentTransaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[memKey(t.PaymentMethod, t.Token)] = t
}

func (r *memoryRepository) get(method entities.PaymentMethod, token string) entities.PaymentTransaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[memKey(method, token)]
}

func (r *memoryRepository) Create(_ context.Context, t entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(t.PaymentMethod, t.Token)
	if _, ok := r.items[k]; ok {
		return entities.PaymentTransaction{}, interfaces.ErrTransactionAlreadyExists
	}
	r.items[k] = t
	return t, nil
}

func (r *memoryRepository) GetByToken(_ context.Context, method entities.PaymentMethod, token string) (entities.PaymentTransaction, error) {
	return r.get(method, token), nil
}

func (r *memoryRepository) GetByBuyOrder(_ context.Context, method entities.PaymentMethod, buyOrder string) (entities.PaymentTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.items {
		if t.PaymentMethod == method && t.BuyOrder == buyOrder {
			return t, nil
		}
	}
	return entities.PaymentTransaction{}, nil
}

func (r *memoryRepository) ListBySessionID(_ context.Context, method entities.PaymentMethod, sessionID string, limit int) ([]entities.PaymentTransaction, error) {
	return r.list(limit, func(t entities.PaymentTransaction) bool {
		return t.PaymentMethod == method && t.SessionID == sessionID
	}), nil
}

func (r *memoryRepository) ListUnlinkedAuthorized(_ context.Context, method entities.PaymentMethod, limit int) ([]entities.PaymentTransaction, error) {
	return r.list(limit, func(t entities.PaymentTransaction) bool {
		return t.PaymentMethod == method && t.Status == entities.TransactionStatusAuthorized && !t.OrderCreated
	}), nil
}

func (r *memoryRepository) list(limit int, keep func(entities.PaymentTransaction) bool) []entities.PaymentTransaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.PaymentTransaction{}
	for _, t := range r.items {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r *memoryRepository) UpdateStatus(_ context.Context, method entities.PaymentMethod, token string, upd interfaces.StatusUpdate) (entities.PaymentTransaction, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(method, token)
	t, ok := r.items[k]
	if !ok {
		return entities.PaymentTransaction{}, false, nil
	}
	if slices.Contains(upd.UnlessStatus, t.Status) {
		return t, false, nil
	}
	t.Status = upd.Status
	t.Response = upd.Response
	if upd.ProviderPaymentID != "" {
		t.ProviderPaymentID = upd.ProviderPaymentID
	}
	t.UpdatedAt = r.now()
	r.items[k] = t
	return t, true, nil
}

func (r *memoryRepository) UpdateResponse(_ context.Context, method entities.PaymentMethod, token string, response json.RawMessage) (entities.PaymentTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(method, token)
	t := r.items[k]
	t.Response = response
	t.UpdatedAt = r.now()
	r.items[k] = t
	return t, nil
}

func (r *memoryRepository) MarkCancelled(_ context.Context, method entities.PaymentMethod, token, cancelledBy, reason string, at time.Time) (entities.PaymentTransaction, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(method, token)
	t, ok := r.items[k]
	if !ok || t.Status.IsFinal() {
		return t, false, nil
	}
	t.Status = entities.TransactionStatusCanceled
	t.CancelledBy = cancelledBy
	t.CancelReason = reason
	t.CancelledAt = &at
	t.UpdatedAt = at
	r.items[k] = t
	return t, true, nil
}

func (r *memoryRepository) ReplaceToken(_ context.Context, method entities.PaymentMethod, oldToken, newToken string) (entities.PaymentTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[memKey(method, newToken)]; ok {
		return entities.PaymentTransaction{}, interfaces.ErrTransactionAlreadyExists
	}
	t, ok := r.items[memKey(method, oldToken)]
	if !ok {
		return entities.PaymentTransaction{}, nil
	}
	delete(r.items, memKey(method, oldToken))
	t.Token = newToken
	r.items[memKey(method, newToken)] = t
	return t, nil
}

func (r *memoryRepository) ClaimOrderCreation(_ context.Context, method entities.PaymentMethod, token, claimID string, staleAfter time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(method, token)
	t := r.items[k]
	if t.Status != entities.TransactionStatusAuthorized || t.OrderCreated {
		return false, nil
	}
	if c, ok := r.claims[k]; ok && r.now().Sub(c.at) < staleAfter {
		return false, nil
	}
	r.claims[k] = orderClaim{id: claimID, at: r.now()}
	return true, nil
}

func (r *memoryRepository) ReleaseOrderClaim(_ context.Context, method entities.PaymentMethod, token, claimID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(method, token)
	if c, ok := r.claims[k]; ok && c.id == claimID {
		delete(r.claims, k)
	}
	return nil
}

func (r *memoryRepository) LinkOrder(_ context.Context, method entities.PaymentMethod, token string, link interfaces.OrderLink) (entities.PaymentTransaction, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(method, token)
	t := r.items[k]
	if t.Status != entities.TransactionStatusAuthorized || t.OrderCreated {
		return t, false, nil
	}
	c, claimed := r.claims[k]
	if link.ClaimID != "" && (!claimed || c.id != link.ClaimID) {
		return t, false, nil
	}
	if link.ClaimID == "" && claimed && r.now().Sub(c.at) < link.StaleAfter {
		return t, false, nil
	}
	orderID := link.OrderID
	t.OrderCreated = true
	t.OrderID = &orderID
	t.UpdatedAt = r.now()
	r.items[k] = t
	delete(r.claims, k)
	return t, true, nil
}

func (r *memoryRepository) Delete(_ context.Context, method entities.PaymentMethod, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(method, token)
	if _, ok := r.items[k]; !ok {
		return false, nil
	}
	delete(r.items, k)
	return true, nil
}
