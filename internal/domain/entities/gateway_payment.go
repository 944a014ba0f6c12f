package entities

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// GatewayPayment is the provider-neutral view of a payment returned by a
// gateway adapter. Provider field names never leave the adapter.
type GatewayPayment struct {
	ID                string
	Status            string
	StatusDetail      string
	ExternalReference string
	PreferenceRef     string
	Amount            decimal.Decimal
	Raw               json.RawMessage
}

// Matches reports whether the payment belongs to the given transaction.
// Both references must be present and equal.
func (p GatewayPayment) Matches(token, buyOrder string) bool {
	if p.PreferenceRef == "" || p.ExternalReference == "" {
		return false
	}
	return p.PreferenceRef == token && p.ExternalReference == buyOrder
}

// IsAccredited reports coarse approval confirmed by the settlement detail.
func (p GatewayPayment) IsAccredited() bool {
	return strings.EqualFold(p.Status, "approved") && strings.EqualFold(p.StatusDetail, "accredited")
}

// IntentResult is what a gateway returns when an intent is created.
// PaymentID is set when the provider id of the payment is already known.
type IntentResult struct {
	Token       string
	RedirectURL string
	PaymentID   string
	Raw         json.RawMessage
}

// IntentRequest carries what a gateway needs to open a payment intent.
type IntentRequest struct {
	BuyOrder        string
	SessionID       string
	Amount          decimal.Decimal
	ReturnURL       string
	NotificationURL string
}
