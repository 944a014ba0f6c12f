package payments

import (
	"strings"

	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase/interfaces"
)

// WebpayNormalizer maps Webpay Plus transaction states. An AUTHORIZED state
// only counts when the issuer response code is 0.
type WebpayNormalizer struct{}

var _ interfaces.IStatusNormalizer = WebpayNormalizer{}

func (WebpayNormalizer) Normalize(p entities.GatewayPayment) entities.TransactionStatus {
	switch strings.ToUpper(strings.TrimSpace(p.Status)) {
	case "INITIALIZED":
		return entities.TransactionStatusPending
	case "AUTHORIZED", "CAPTURED":
		if p.StatusDetail == "" || p.StatusDetail == "0" {
			return entities.TransactionStatusAuthorized
		}
		return entities.TransactionStatusRejected
	case "FAILED":
		return entities.TransactionStatusRejected
	case "REVERSED", "NULLIFIED":
		return entities.TransactionStatusRefunded
	case "PARTIALLY_NULLIFIED":
		// Part of the amount is still captured and the order stands.
		return entities.TransactionStatusAuthorized
	}
	return entities.NormalizeStatus(p.Status)
}

// MercadoPagoNormalizer only trusts "approved" once the payment is accredited.
type MercadoPagoNormalizer struct{}

var _ interfaces.IStatusNormalizer = MercadoPagoNormalizer{}

func (MercadoPagoNormalizer) Normalize(p entities.GatewayPayment) entities.TransactionStatus {
	status := strings.ToLower(strings.TrimSpace(p.Status))
	if status == "approved" {
		if p.IsAccredited() {
			return entities.TransactionStatusAuthorized
		}
		return entities.TransactionStatusPending
	}
	if status == "authorized" {
		// card authorized but not captured yet
		return entities.TransactionStatusPending
	}
	return entities.NormalizeStatus(p.Status)
}
