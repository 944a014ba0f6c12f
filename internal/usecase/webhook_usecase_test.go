package usecase

import (
	"context"
	"errors"
	"testing"

	"delivery_payments/internal/domain/entities"
	mock_interfaces "delivery_payments/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func paymentEvent(resourceID string) WebhookEvent {
	return WebhookEvent{
		Method:     entities.PaymentMethodMercadoPago,
		Type:       "payment",
		Action:     "payment.updated",
		ResourceID: resourceID,
	}
}

func TestIngestWebhook_IgnoresNonPaymentEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := newTestGateway(ctrl, entities.PaymentMethodMercadoPago)
	uc := newTestUseCase(newMemoryRepository(fixedClock), nil, GatewayBinding{Gateway: gw})

	for _, ev := range []WebhookEvent{
		{Method: entities.PaymentMethodMercadoPago, Type: "merchant_order", ResourceID: "1"},
		{Method: entities.PaymentMethodMercadoPago, Type: "subscription_preapproval", Action: "payment.created", ResourceID: "1"},
	} {
		ack, err := uc.IngestWebhook(context.Background(), ev)
		if err != nil || ack.Processed || ack.Reason != WebhookReasonIgnoredType {
			t.Fatalf("expected ignored ack, got %+v err=%v", ack, err)
		}
	}

	ack, err := uc.IngestWebhook(context.Background(), paymentEvent(" "))
	if err != nil || ack.Reason != WebhookReasonMissingResource {
		t.Fatalf("expected missing resource ack, got %+v err=%v", ack, err)
	}
}

func TestIngestWebhook_WebhookBeforePollThenLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := newTestGateway(ctrl, entities.PaymentMethodMercadoPago)
	// the order creator must never be called from the webhook path
	orders := mock_interfaces.NewMockIOrderCreator(ctrl)
	repo := newMemoryRepository(fixedClock)
	repo.seed(pendingTx(entities.PaymentMethodMercadoPago, "pref-2", "BO-2"))
	uc := newTestUseCase(repo, orders, GatewayBinding{Gateway: gw})

	gw.EXPECT().FetchByID(gomock.Any(), "700").Return(mpPayment("700", "approved", "accredited", "pref-2", "BO-2"), nil)

	ack, err := uc.IngestWebhook(context.Background(), paymentEvent("700"))
	if err != nil || !ack.Processed || ack.Transaction.Status != entities.TransactionStatusAuthorized {
		t.Fatalf("unexpected ack %+v err=%v", ack, err)
	}
	if ack.Transaction.OrderCreated {
		t.Fatalf("webhook must not create an order")
	}

	first, err := uc.LinkOrder(context.Background(), entities.PaymentMethodMercadoPago, "pref-2", "order-2")
	if err != nil || *first.OrderID != "order-2" {
		t.Fatalf("unexpected link %+v err=%v", first, err)
	}
	second, err := uc.LinkOrder(context.Background(), entities.PaymentMethodMercadoPago, "pref-2", "order-3")
	if err != nil || *second.OrderID != "order-2" {
		t.Fatalf("second link must return existing order, got %+v err=%v", second, err)
	}
}

func TestIngestWebhook_CancelIsSticky(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := newTestGateway(ctrl, entities.PaymentMethodMercadoPago)
	repo := newMemoryRepository(fixedClock)
	repo.seed(pendingTx(entities.PaymentMethodMercadoPago, "pref-3", "BO-3"))
	uc := newTestUseCase(repo, nil, GatewayBinding{Gateway: gw})

	gw.EXPECT().Invalidate(gomock.Any(), "pref-3").Return(nil)
	if _, err := uc.Cancel(context.Background(), entities.PaymentMethodMercadoPago, "pref-3", "user", "user_cancelled"); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	late := mpPayment("800", "approved", "accredited", "pref-3", "BO-3")
	gw.EXPECT().FetchByID(gomock.Any(), "800").Return(late, nil)

	ack, err := uc.IngestWebhook(context.Background(), paymentEvent("800"))
	if err != nil || ack.Reason != WebhookReasonCancelled {
		t.Fatalf("unexpected ack %+v err=%v", ack, err)
	}
	stored := repo.get(entities.PaymentMethodMercadoPago, "pref-3")
	if stored.Status != entities.TransactionStatusCanceled {
		t.Fatalf("cancellation reopened: %s", stored.Status)
	}
	if string(stored.Response) != string(late.Raw) {
		t.Fatalf("expected raw response to be stored, got %s", stored.Response)
	}

	res, err := uc.ResolveStatus(context.Background(), entities.PaymentMethodMercadoPago, "pref-3")
	if err != nil || res.Transaction.Status != entities.TransactionStatusCanceled {
		t.Fatalf("resolve changed cancelled status: %+v err=%v", res, err)
	}
}

func TestIngestWebhook_RefundOverridesAuthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := newTestGateway(ctrl, entities.PaymentMethodMercadoPago)
	repo := newMemoryRepository(fixedClock)
	tx := pendingTx(entities.PaymentMethodMercadoPago, "pref-4", "BO-4")
	tx.Status = entities.TransactionStatusAuthorized
	repo.seed(tx)
	uc := newTestUseCase(repo, nil, GatewayBinding{Gateway: gw})

	gw.EXPECT().FetchByID(gomock.Any(), "1").Return(mpPayment("1", "pending", "pending_waiting_payment", "pref-4", "BO-4"), nil)
	gw.EXPECT().FetchByID(gomock.Any(), "2").Return(mpPayment("2", "refunded", "refunded", "pref-4", "BO-4"), nil)

	if _, err := uc.IngestWebhook(context.Background(), paymentEvent("1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := repo.get(entities.PaymentMethodMercadoPago, "pref-4").Status; got != entities.TransactionStatusAuthorized {
		t.Fatalf("stale pending must not downgrade AUTHORIZED, got %s", got)
	}

	if _, err := uc.IngestWebhook(context.Background(), paymentEvent("2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := repo.get(entities.PaymentMethodMercadoPago, "pref-4").Status; got != entities.TransactionStatusRefunded {
		t.Fatalf("expected REFUNDED, got %s", got)
	}
}

func TestIngestWebhook_CreatesMissingTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := newTestGateway(ctrl, entities.PaymentMethodMercadoPago)
	repo := newMemoryRepository(fixedClock)
	uc := newTestUseCase(repo, nil, GatewayBinding{Gateway: gw})

	p := mpPayment("555", "in_process", "pending_review_manual", "pref-5", "BO-5")
	p.Amount = decimal.NewFromInt(2500)
	gw.EXPECT().FetchByID(gomock.Any(), "555").Return(p, nil)

	ack, err := uc.IngestWebhook(context.Background(), paymentEvent("555"))
	if err != nil || !ack.Processed {
		t.Fatalf("unexpected ack %+v err=%v", ack, err)
	}
	stored := repo.get(entities.PaymentMethodMercadoPago, "pref-5")
	if stored.BuyOrder != "BO-5" || stored.Status != entities.TransactionStatusPending || !stored.Amount.Equal(decimal.NewFromInt(2500)) {
		t.Fatalf("unexpected stored transaction %+v", stored)
	}
	if stored.ProviderPaymentID != "555" || stored.HasPayload() {
		t.Fatalf("unexpected stored transaction %+v", stored)
	}
}

func TestIngestWebhook_MismatchIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := newTestGateway(ctrl, entities.PaymentMethodMercadoPago)
	repo := newMemoryRepository(fixedClock)
	repo.seed(pendingTx(entities.PaymentMethodMercadoPago, "pref-6", "BO-6"))
	uc := newTestUseCase(repo, nil, GatewayBinding{Gateway: gw})

	gw.EXPECT().FetchByID(gomock.Any(), "66").Return(mpPayment("66", "approved", "accredited", "pref-6", "BO-OTHER"), nil)

	ack, err := uc.IngestWebhook(context.Background(), paymentEvent("66"))
	if err != nil || ack.Processed || ack.Reason != WebhookReasonMismatch {
		t.Fatalf("unexpected ack %+v err=%v", ack, err)
	}
	if repo.get(entities.PaymentMethodMercadoPago, "pref-6").Status != entities.TransactionStatusPending {
		t.Fatalf("mismatched webhook must not change status")
	}
}

func TestIngestWebhook_Dedupe(t *testing.T) {
	t.Run("duplicate delivery short-circuits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := newTestGateway(ctrl, entities.PaymentMethodMercadoPago)
		dedupe := mock_interfaces.NewMockIWebhookDeduper(ctrl)
		uc := NewPaymentTransactionUseCase(newMemoryRepository(fixedClock), nil, "https://api.example.test", []GatewayBinding{{Gateway: gw}}, WithClock(fixedClock), WithWebhookDeduper(dedupe))

		dedupe.EXPECT().Claim(gomock.Any(), "req-1").Return(false, nil)

		ev := paymentEvent("1")
		ev.DeliveryID = "req-1"
		ack, err := uc.IngestWebhook(context.Background(), ev)
		if err != nil || ack.Reason != WebhookReasonDuplicate {
			t.Fatalf("unexpected ack %+v err=%v", ack, err)
		}
	})

	t.Run("failed delivery releases its claim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := newTestGateway(ctrl, entities.PaymentMethodMercadoPago)
		dedupe := mock_interfaces.NewMockIWebhookDeduper(ctrl)
		uc := NewPaymentTransactionUseCase(newMemoryRepository(fixedClock), nil, "https://api.example.test", []GatewayBinding{{Gateway: gw}}, WithClock(fixedClock), WithWebhookDeduper(dedupe))

		dedupe.EXPECT().Claim(gomock.Any(), "req-2").Return(true, nil)
		gw.EXPECT().FetchByID(gomock.Any(), "2").Return(nil, errors.New("timeout"))
		dedupe.EXPECT().Release(gomock.Any(), "req-2").Return(nil)

		ev := paymentEvent("2")
		ev.DeliveryID = "req-2"
		_, err := uc.IngestWebhook(context.Background(), ev)
		if !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})
}

func TestWebhookEvent_IsPaymentNotification(t *testing.T) {
	cases := []struct {
		ev   WebhookEvent
		want bool
	}{
		{WebhookEvent{Type: "payment"}, true},
		{WebhookEvent{Type: "PAYMENT"}, true},
		{WebhookEvent{Action: "payment.created"}, true},
		{WebhookEvent{Type: "merchant_order"}, false},
		{WebhookEvent{}, false},
	}
	for _, tc := range cases {
		if got := tc.ev.IsPaymentNotification(); got != tc.want {
			t.Fatalf("%+v: expected %v, got %v", tc.ev, tc.want, got)
		}
	}
}
