package payments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	appconfig "delivery_payments/internal/config"
	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/merchantorder"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

type fakePreferences struct {
	created []preference.Request
	updated map[string]preference.Request
	resp    *preference.Response
	err     error
}

func (f *fakePreferences) Create(_ context.Context, request preference.Request) (*preference.Response, error) {
	f.created = append(f.created, request)
	return f.resp, f.err
}

func (f *fakePreferences) Update(_ context.Context, id string, request preference.Request) (*preference.Response, error) {
	if f.updated == nil {
		f.updated = map[string]preference.Request{}
	}
	f.updated[id] = request
	return f.resp, nil
}

type fakePayments struct {
	byID    map[int]*payment.Response
	getErr  error
	results *payment.SearchResponse
}

func (f *fakePayments) Get(_ context.Context, id int) (*payment.Response, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byID[id], nil
}

func (f *fakePayments) Search(context.Context, payment.SearchRequest) (*payment.SearchResponse, error) {
	return f.results, nil
}

type failingMerchantOrders struct{}

func (failingMerchantOrders) Get(context.Context, int) (*merchantorder.Response, error) {
	return nil, errors.New("merchant orders unavailable")
}

func (failingMerchantOrders) Search(context.Context, merchantorder.SearchRequest) (*merchantorder.SearchResponse, error) {
	return nil, errors.New("merchant orders unavailable")
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	g, err := NewMercadoPagoGateway(appconfig.MercadoPagoConfig{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if g.Configured() {
		t.Fatalf("expected unconfigured gateway")
	}
	if _, err := g.CreateIntent(context.Background(), entities.IntentRequest{}); !errors.Is(err, interfaces.ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
}

func TestNewMercadoPagoGateway_WithToken(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	g, err := NewMercadoPagoGateway(appconfig.MercadoPagoConfig{AccessToken: "TEST-token"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !g.Configured() {
		t.Fatalf("expected sdk clients to be wired")
	}
	if _, ok := g.preferences.(preference.Client); !ok {
		t.Fatalf("expected the sdk preference client, got %T", g.preferences)
	}
}

func TestMercadoPagoGateway_Invalidate(t *testing.T) {
	prefs := &fakePreferences{resp: &preference.Response{ID: "pref-1"}}
	g := &MercadoPagoGateway{preferences: prefs, payments: &fakePayments{}}

	if err := g.Invalidate(context.Background(), "pref-1"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	expired, ok := prefs.updated["pref-1"]
	if !ok {
		t.Fatalf("expected preference pref-1 to be updated, got %v", prefs.updated)
	}
	if !expired.Expires || expired.ExpirationDateTo == nil || !expired.ExpirationDateTo.Before(time.Now()) {
		t.Fatalf("expected preference expired in the past, got %+v", expired)
	}
}

func TestMercadoPagoGateway_CreateIntent(t *testing.T) {
	prefs := &fakePreferences{resp: &preference.Response{ID: "pref-1", InitPoint: "https://mp.test/checkout?pref_id=pref-1"}}
	g := &MercadoPagoGateway{preferences: prefs, payments: &fakePayments{}}

	res, err := g.CreateIntent(context.Background(), entities.IntentRequest{
		BuyOrder:        "bo-1",
		SessionID:       "sess-1",
		Amount:          decimal.RequireFromString("1990.50"),
		ReturnURL:       "https://api.test/v1/payments/mercadopago/return",
		NotificationURL: "https://api.test/v1/webhooks/mercadopago",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if res.Token != "pref-1" || !strings.HasPrefix(res.RedirectURL, "https://mp.test/checkout") {
		t.Fatalf("unexpected result %+v", res)
	}

	if len(prefs.created) != 1 {
		t.Fatalf("expected 1 preference created, got %d", len(prefs.created))
	}
	req := prefs.created[0]
	if req.ExternalReference != "bo-1" || req.NotificationURL != "https://api.test/v1/webhooks/mercadopago" {
		t.Fatalf("unexpected preference request %+v", req)
	}
	if tagged := prefs.updated["pref-1"]; tagged.Metadata[preferenceRefKey] != "pref-1" {
		t.Fatalf("expected preference metadata tagged with its id, got %+v", tagged.Metadata)
	}
}

func TestMercadoPagoGateway_CreateIntentIncomplete(t *testing.T) {
	g := &MercadoPagoGateway{
		preferences: &fakePreferences{resp: &preference.Response{ID: "pref-1"}},
		payments:    &fakePayments{},
	}
	if _, err := g.CreateIntent(context.Background(), entities.IntentRequest{BuyOrder: "bo-1"}); !errors.Is(err, interfaces.ErrGatewayResponse) {
		t.Fatalf("expected ErrGatewayResponse, got %v", err)
	}
}

func TestMercadoPagoGateway_FetchByID(t *testing.T) {
	payments := &fakePayments{byID: map[int]*payment.Response{
		42: {
			ID:                42,
			Status:            "approved",
			StatusDetail:      "accredited",
			ExternalReference: "bo-1",
			Metadata:          map[string]any{preferenceRefKey: "pref-1"},
		},
	}}
	g := &MercadoPagoGateway{preferences: &fakePreferences{}, payments: payments, merchantOrders: failingMerchantOrders{}}

	t.Run("found", func(t *testing.T) {
		p, err := g.FetchByID(context.Background(), "42")
		if err != nil || p == nil {
			t.Fatalf("expected payment, got %v err=%v", p, err)
		}
		if p.ID != "42" || !p.Matches("pref-1", "bo-1") || !p.IsAccredited() {
			t.Fatalf("unexpected payment %+v", p)
		}
	})

	t.Run("non numeric id", func(t *testing.T) {
		p, err := g.FetchByID(context.Background(), "pref-1")
		if err != nil || p != nil {
			t.Fatalf("expected nil payment, got %v err=%v", p, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		g := &MercadoPagoGateway{preferences: &fakePreferences{}, payments: &fakePayments{getErr: errors.New("resource not_found")}}
		p, err := g.FetchByID(context.Background(), "7")
		if err != nil || p != nil {
			t.Fatalf("expected nil payment and nil error, got %v err=%v", p, err)
		}
	})

	t.Run("transport error", func(t *testing.T) {
		g := &MercadoPagoGateway{preferences: &fakePreferences{}, payments: &fakePayments{getErr: errors.New("dial tcp: timeout")}}
		if _, err := g.FetchByID(context.Background(), "7"); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}

func TestMercadoPagoGateway_SearchByExternalReference(t *testing.T) {
	payments := &fakePayments{results: &payment.SearchResponse{Results: []payment.Response{
		{ID: 1, Status: "rejected", StatusDetail: "cc_rejected_other_reason", ExternalReference: "bo-1"},
		{ID: 2, Status: "approved", StatusDetail: "accredited", ExternalReference: "bo-1", Metadata: map[string]any{preferenceRefKey: "pref-1"}},
	}}}
	g := &MercadoPagoGateway{preferences: &fakePreferences{}, payments: payments}

	got, err := g.SearchByExternalReference(context.Background(), "bo-1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(got))
	}
	if got[0].PreferenceRef != "" || got[1].PreferenceRef != "pref-1" {
		t.Fatalf("unexpected preference refs %q %q", got[0].PreferenceRef, got[1].PreferenceRef)
	}
}

func TestMercadoPagoGateway_CommitNotSupported(t *testing.T) {
	g := &MercadoPagoGateway{}
	if _, err := g.Commit(context.Background(), "pref-1"); !errors.Is(err, interfaces.ErrOperationNotSupported) {
		t.Fatalf("expected ErrOperationNotSupported, got %v", err)
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	g, err := NewMercadoPagoGateway(appconfig.MercadoPagoConfig{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	ctx := context.Background()
	res, err := g.CreateIntent(ctx, entities.IntentRequest{BuyOrder: "bo-9", Amount: decimal.NewFromInt(10), ReturnURL: "https://api.test/return"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	found, err := g.SearchByExternalReference(ctx, "bo-9")
	if err != nil || len(found) != 1 {
		t.Fatalf("expected 1 mock payment, got %v err=%v", found, err)
	}
	if !found[0].Matches(res.Token, "bo-9") || !found[0].IsAccredited() {
		t.Fatalf("unexpected mock payment %+v", found[0])
	}

	byID, _ := g.FetchByID(ctx, found[0].ID)
	if byID == nil {
		t.Fatalf("expected mock payment by id")
	}

	if err := g.Invalidate(ctx, res.Token); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if left, _ := g.FetchOrderPayments(ctx, res.Token); len(left) != 0 {
		t.Fatalf("expected no payments after invalidate, got %d", len(left))
	}
}
