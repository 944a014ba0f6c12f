package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	appconfig "delivery_payments/internal/config"
	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase/interfaces"
	"delivery_payments/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/merchantorder"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

// preferenceRefKey is the metadata key carrying the preference id. Mercado Pago
// copies preference metadata onto every payment made through it.
const preferenceRefKey = "preference_ref"

type preferenceAPI interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
	Update(ctx context.Context, id string, request preference.Request) (*preference.Response, error)
}

type paymentAPI interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
	Search(ctx context.Context, request payment.SearchRequest) (*payment.SearchResponse, error)
}

type merchantOrderAPI interface {
	Get(ctx context.Context, id int) (*merchantorder.Response, error)
	Search(ctx context.Context, request merchantorder.SearchRequest) (*merchantorder.SearchResponse, error)
}

// The narrow views must stay assignable from the SDK clients.
var (
	_ preferenceAPI    = (preference.Client)(nil)
	_ paymentAPI       = (payment.Client)(nil)
	_ merchantOrderAPI = (merchantorder.Client)(nil)
)

// MercadoPagoGateway implements the preference/wallet flow. The intent token
// is the preference id and the buy order travels as external_reference.
type MercadoPagoGateway struct {
	preferences    preferenceAPI
	payments       paymentAPI
	merchantOrders merchantOrderAPI
	mock           *mercadoPagoMock
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway returns an unconfigured gateway when the access token
// is missing so the rest of the service keeps running.
func NewMercadoPagoGateway(cfg appconfig.MercadoPagoConfig) (*MercadoPagoGateway, error) {
	log := logger.Component(context.Background(), "payment.gateway.mercadopago")
	if isPaymentGatewayMockEnabled() {
		log.Info().Msg("mock mode enabled")
		return &MercadoPagoGateway{mock: newMercadoPagoMock()}, nil
	}

	if cfg.AccessToken == "" {
		log.Warn().Msg("missing MERCADOPAGO_ACCESS_TOKEN")
		return &MercadoPagoGateway{}, nil
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	sdkCfg, err := config.New(cfg.AccessToken, config.WithHTTPClient(&http.Client{Timeout: timeout}))
	if err != nil {
		log.Error().Err(err).Msg("failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences:    preference.NewClient(sdkCfg),
		payments:       payment.NewClient(sdkCfg),
		merchantOrders: merchantorder.NewClient(sdkCfg),
	}, nil
}

func (g *MercadoPagoGateway) Method() entities.PaymentMethod {
	return entities.PaymentMethodMercadoPago
}

func (g *MercadoPagoGateway) Configured() bool {
	return g != nil && (g.mock != nil || (g.preferences != nil && g.payments != nil))
}

func (g *MercadoPagoGateway) CreateIntent(ctx context.Context, req entities.IntentRequest) (entities.IntentResult, error) {
	if g.mock != nil {
		return g.mock.createIntent(req), nil
	}
	if !g.Configured() {
		return entities.IntentResult{}, interfaces.ErrGatewayNotConfigured
	}
	log := logger.Component(ctx, "payment.gateway.mercadopago")

	request := preference.Request{
		Items: []preference.ItemRequest{{
			ID:        req.BuyOrder,
			Title:     "Order " + req.BuyOrder,
			Quantity:  1,
			UnitPrice: req.Amount.InexactFloat64(),
		}},
		ExternalReference: req.BuyOrder,
		NotificationURL:   req.NotificationURL,
		BackURLs: &preference.BackURLsRequest{
			Success: req.ReturnURL,
			Pending: req.ReturnURL,
			Failure: req.ReturnURL,
		},
		AutoReturn: "approved",
		Metadata:   map[string]any{"session_id": req.SessionID},
	}

	resp, err := g.preferences.Create(ctx, request)
	if err != nil {
		log.Error().Err(err).Str("buy_order", req.BuyOrder).Msg("sdk preference create failed")
		return entities.IntentResult{}, err
	}
	var pref struct {
		ID        string `json:"id"`
		InitPoint string `json:"init_point"`
	}
	raw, err := decodeSDK(resp, &pref)
	if err != nil {
		return entities.IntentResult{}, err
	}
	if pref.ID == "" || pref.InitPoint == "" {
		return entities.IntentResult{}, fmt.Errorf("%w: preference without id or init_point", interfaces.ErrGatewayResponse)
	}

	// The id is only known now, so the reference goes in with a second write.
	request.Metadata[preferenceRefKey] = pref.ID
	if _, err := g.preferences.Update(ctx, pref.ID, request); err != nil {
		log.Warn().Err(err).Str("preference_id", pref.ID).Msg("failed to tag preference metadata; relying on merchant order lookup")
	}

	log.Info().Str("buy_order", req.BuyOrder).Str("preference_id", pref.ID).Msg("preference created")
	return entities.IntentResult{Token: pref.ID, RedirectURL: pref.InitPoint, Raw: raw}, nil
}

func (g *MercadoPagoGateway) Commit(context.Context, string) (entities.GatewayPayment, error) {
	return entities.GatewayPayment{}, interfaces.ErrOperationNotSupported
}

func (g *MercadoPagoGateway) FetchByID(ctx context.Context, id string) (*entities.GatewayPayment, error) {
	if g.mock != nil {
		return g.mock.fetch(id), nil
	}
	if !g.Configured() {
		return nil, interfaces.ErrGatewayNotConfigured
	}
	numeric, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return nil, nil
	}
	resp, err := g.payments.Get(ctx, numeric)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	p, err := g.toGatewayPayment(ctx, resp)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (g *MercadoPagoGateway) SearchByExternalReference(ctx context.Context, externalReference string) ([]entities.GatewayPayment, error) {
	if g.mock != nil {
		return g.mock.search(externalReference), nil
	}
	if !g.Configured() {
		return nil, interfaces.ErrGatewayNotConfigured
	}
	resp, err := g.payments.Search(ctx, payment.SearchRequest{
		Limit: 30,
		Filters: map[string]string{
			"external_reference": externalReference,
			"sort":               "date_created",
			"criteria":           "desc",
		},
	})
	if err != nil {
		return nil, err
	}
	var page struct {
		Results []json.RawMessage `json:"results"`
	}
	if _, err := decodeSDK(resp, &page); err != nil {
		return nil, err
	}
	out := make([]entities.GatewayPayment, 0, len(page.Results))
	for _, r := range page.Results {
		p, err := g.paymentFromJSON(ctx, r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// FetchOrderPayments lists the payments aggregated in the merchant order of a preference.
func (g *MercadoPagoGateway) FetchOrderPayments(ctx context.Context, token string) ([]entities.GatewayPayment, error) {
	if g.mock != nil {
		return g.mock.orderPayments(token), nil
	}
	if !g.Configured() {
		return nil, interfaces.ErrGatewayNotConfigured
	}
	if g.merchantOrders == nil {
		return nil, interfaces.ErrOperationNotSupported
	}
	resp, err := g.merchantOrders.Search(ctx, merchantorder.SearchRequest{
		Limit:   10,
		Filters: map[string]string{"preference_id": token},
	})
	if err != nil {
		return nil, err
	}
	var page struct {
		Elements []mpMerchantOrder `json:"elements"`
	}
	if _, err := decodeSDK(resp, &page); err != nil {
		return nil, err
	}
	var out []entities.GatewayPayment
	for _, mo := range page.Elements {
		for _, p := range mo.Payments {
			out = append(out, entities.GatewayPayment{
				ID:                string(p.ID),
				Status:            p.Status,
				StatusDetail:      p.StatusDetail,
				ExternalReference: mo.ExternalReference,
				PreferenceRef:     mo.PreferenceID,
				Amount:            p.TransactionAmount,
			})
		}
	}
	return out, nil
}

// Invalidate expires the preference so the wallet no longer accepts payments for it.
func (g *MercadoPagoGateway) Invalidate(ctx context.Context, token string) error {
	if g.mock != nil {
		g.mock.invalidate(token)
		return nil
	}
	if !g.Configured() {
		return interfaces.ErrGatewayNotConfigured
	}
	past := time.Now().UTC().Add(-time.Minute)
	_, err := g.preferences.Update(ctx, token, preference.Request{
		Expires:          true,
		ExpirationDateTo: &past,
	})
	return err
}

// flexID accepts ids sent as JSON numbers or strings.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		s = ""
	}
	*f = flexID(s)
	return nil
}

type mpPayment struct {
	ID                flexID          `json:"id"`
	Status            string          `json:"status"`
	StatusDetail      string          `json:"status_detail"`
	ExternalReference string          `json:"external_reference"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	Metadata          map[string]any  `json:"metadata"`
	Order             struct {
		ID flexID `json:"id"`
	} `json:"order"`
}

type mpMerchantOrder struct {
	ID                flexID `json:"id"`
	PreferenceID      string `json:"preference_id"`
	ExternalReference string `json:"external_reference"`
	Payments          []struct {
		ID                flexID          `json:"id"`
		Status            string          `json:"status"`
		StatusDetail      string          `json:"status_detail"`
		TransactionAmount decimal.Decimal `json:"transaction_amount"`
	} `json:"payments"`
}

func (g *MercadoPagoGateway) toGatewayPayment(ctx context.Context, resp *payment.Response) (entities.GatewayPayment, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	return g.paymentFromJSON(ctx, raw)
}

func (g *MercadoPagoGateway) paymentFromJSON(ctx context.Context, raw json.RawMessage) (entities.GatewayPayment, error) {
	var p mpPayment
	if err := json.Unmarshal(raw, &p); err != nil {
		return entities.GatewayPayment{}, fmt.Errorf("%w: %w", interfaces.ErrGatewayResponse, err)
	}
	ref, _ := p.Metadata[preferenceRefKey].(string)
	if ref == "" && p.Order.ID != "" && p.Order.ID != "0" {
		ref = g.preferenceOfMerchantOrder(ctx, string(p.Order.ID))
	}
	return entities.GatewayPayment{
		ID:                string(p.ID),
		Status:            p.Status,
		StatusDetail:      p.StatusDetail,
		ExternalReference: p.ExternalReference,
		PreferenceRef:     ref,
		Amount:            p.TransactionAmount,
		Raw:               raw,
	}, nil
}

// preferenceOfMerchantOrder returns "" when the lookup fails; the caller then
// falls back to the external reference.
func (g *MercadoPagoGateway) preferenceOfMerchantOrder(ctx context.Context, orderID string) string {
	if g.merchantOrders == nil {
		return ""
	}
	id, err := strconv.Atoi(orderID)
	if err != nil {
		return ""
	}
	resp, err := g.merchantOrders.Get(ctx, id)
	if err != nil {
		logger.Component(ctx, "payment.gateway.mercadopago").Warn().Err(err).Str("merchant_order_id", orderID).Msg("merchant order lookup failed")
		return ""
	}
	var mo mpMerchantOrder
	if _, err := decodeSDK(resp, &mo); err != nil {
		return ""
	}
	return mo.PreferenceID
}

// decodeSDK re-reads an SDK response through its JSON tags.
func decodeSDK(resp any, out any) (json.RawMessage, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("%w: %w", interfaces.ErrGatewayResponse, err)
	}
	return raw, nil
}

func isNotFound(err error) bool {
	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) {
		return coded.StatusCode() == http.StatusNotFound
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not_found") || strings.Contains(msg, "404")
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

// mercadoPagoMock approves every preference right away, for local development.
type mercadoPagoMock struct {
	mu       sync.Mutex
	payments map[string]entities.GatewayPayment
}

func newMercadoPagoMock() *mercadoPagoMock {
	return &mercadoPagoMock{payments: map[string]entities.GatewayPayment{}}
}

func (m *mercadoPagoMock) createIntent(req entities.IntentRequest) entities.IntentResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	nanos := time.Now().UTC().UnixNano()
	token := fmt.Sprintf("mock-pref-%d", nanos)
	id := strconv.FormatInt(nanos, 10)
	raw, _ := json.Marshal(map[string]any{
		"id":                 id,
		"status":             "approved",
		"status_detail":      "accredited",
		"external_reference": req.BuyOrder,
		"metadata":           map[string]any{preferenceRefKey: token},
	})
	m.payments[id] = entities.GatewayPayment{
		ID:                id,
		Status:            "approved",
		StatusDetail:      "accredited",
		ExternalReference: req.BuyOrder,
		PreferenceRef:     token,
		Amount:            req.Amount,
		Raw:               raw,
	}
	return entities.IntentResult{
		Token:       token,
		RedirectURL: req.ReturnURL + "?preference_id=" + token,
		Raw:         raw,
	}
}

func (m *mercadoPagoMock) fetch(id string) *entities.GatewayPayment {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[id]
	if !ok {
		return nil
	}
	return &p
}

func (m *mercadoPagoMock) search(externalReference string) []entities.GatewayPayment {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.GatewayPayment
	for _, p := range m.payments {
		if p.ExternalReference == externalReference {
			out = append(out, p)
		}
	}
	return out
}

func (m *mercadoPagoMock) orderPayments(token string) []entities.GatewayPayment {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.GatewayPayment
	for _, p := range m.payments {
		if p.PreferenceRef == token {
			out = append(out, p)
		}
	}
	return out
}

func (m *mercadoPagoMock) invalidate(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, p := range m.payments {
		if p.PreferenceRef == token {
			delete(m.payments, id)
		}
	}
}
