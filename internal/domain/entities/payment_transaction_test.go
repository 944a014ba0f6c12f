package entities

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]TransactionStatus{
		"AUTHORIZED":   TransactionStatusAuthorized,
		"approved":     TransactionStatusAuthorized,
		"pending":      TransactionStatusPending,
		"in_process":   TransactionStatusPending,
		"in_mediation": TransactionStatusPending,
		"INITIALIZED":  TransactionStatusPending,
		"created":      TransactionStatusPending,
		"rejected":     TransactionStatusRejected,
		"cancelled":    TransactionStatusCanceled,
		"canceled":     TransactionStatusCanceled,
		"refunded":     TransactionStatusRefunded,
		"charged_back": TransactionStatusChargedBack,
		" approved ":   TransactionStatusAuthorized,
		"expired":      TransactionStatus("EXPIRED"),
	}
	for raw, want := range cases {
		if got := NormalizeStatus(raw); got != want {
			t.Fatalf("NormalizeStatus(%q): expected %s, got %s", raw, want, got)
		}
	}
}

func TestTransactionStatus_IsFinal(t *testing.T) {
	final := []TransactionStatus{TransactionStatusAuthorized, TransactionStatusCanceled, TransactionStatusRefunded, TransactionStatusChargedBack}
	for _, s := range final {
		if !s.IsFinal() {
			t.Fatalf("expected %s to be final", s)
		}
	}
	for _, s := range []TransactionStatus{TransactionStatusPending, TransactionStatusRejected, "EXPIRED"} {
		if s.IsFinal() {
			t.Fatalf("expected %s not to be final", s)
		}
	}
}

func TestParsePaymentMethod(t *testing.T) {
	if m, ok := ParsePaymentMethod(" WebPay "); !ok || m != PaymentMethodWebpay {
		t.Fatalf("expected webpay, got %q ok=%v", m, ok)
	}
	if m, ok := ParsePaymentMethod("mercadopago"); !ok || m != PaymentMethodMercadoPago {
		t.Fatalf("expected mercadopago, got %q ok=%v", m, ok)
	}
	if _, ok := ParsePaymentMethod("paypal"); ok {
		t.Fatalf("expected paypal to be rejected")
	}
}

func TestPaymentTransaction_Helpers(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("IsExpired", func(t *testing.T) {
		tx := PaymentTransaction{CreatedAt: now.Add(-11 * time.Minute)}
		if !tx.IsExpired(now, 10*time.Minute) {
			t.Fatalf("expected transaction older than the window to be expired")
		}
		tx.CreatedAt = now.Add(-9 * time.Minute)
		if tx.IsExpired(now, 10*time.Minute) {
			t.Fatalf("expected fresh transaction not to be expired")
		}
		if (PaymentTransaction{}).IsExpired(now, time.Minute) {
			t.Fatalf("expected zero creation time never to expire")
		}
	})

	t.Run("IsLinked", func(t *testing.T) {
		id := "981"
		empty := ""
		if !(PaymentTransaction{OrderCreated: true, OrderID: &id}).IsLinked() {
			t.Fatalf("expected linked transaction")
		}
		if (PaymentTransaction{OrderCreated: true, OrderID: &empty}).IsLinked() {
			t.Fatalf("expected empty order id not to count as linked")
		}
		if (PaymentTransaction{OrderID: &id}).IsLinked() {
			t.Fatalf("expected order_created=false not to count as linked")
		}
	})

	t.Run("HasPayload", func(t *testing.T) {
		for _, raw := range []string{"", "null", "{}", "  "} {
			if (PaymentTransaction{Payload: json.RawMessage(raw)}).HasPayload() {
				t.Fatalf("expected %q to count as no payload", raw)
			}
		}
		if !(PaymentTransaction{Payload: json.RawMessage(`{"items":[1]}`)}).HasPayload() {
			t.Fatalf("expected payload")
		}
	})
}

func TestGatewayPayment(t *testing.T) {
	p := GatewayPayment{Status: "approved", StatusDetail: "accredited", PreferenceRef: "pref-1", ExternalReference: "BO-1"}
	if !p.Matches("pref-1", "BO-1") {
		t.Fatalf("expected payment to match its transaction")
	}
	if p.Matches("pref-1", "BO-2") {
		t.Fatalf("expected mismatched buy order to fail")
	}
	if (GatewayPayment{ExternalReference: "BO-1"}).Matches("", "BO-1") {
		t.Fatalf("expected missing preference reference never to match")
	}
	if !p.IsAccredited() {
		t.Fatalf("expected accredited")
	}
	p.StatusDetail = "pending_capture"
	if p.IsAccredited() {
		t.Fatalf("expected approved without accreditation not to count")
	}
}
