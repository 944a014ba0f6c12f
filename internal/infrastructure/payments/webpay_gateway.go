package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	appconfig "delivery_payments/internal/config"
	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase/interfaces"
	"delivery_payments/pkg/logger"

	"github.com/shopspring/decimal"
)

const webpayTransactionsPath = "/rswebpaytransaction/api/webpay/v1.2/transactions"

// WebpayAPIError is a non-2xx answer from Webpay.
type WebpayAPIError struct {
	StatusCode int
	Message    string
}

func (e *WebpayAPIError) Error() string {
	return fmt.Sprintf("webpay responded %d: %s", e.StatusCode, e.Message)
}

// WebpayGateway talks to the Webpay Plus REST API. The intent token doubles as
// the provider payment id.
type WebpayGateway struct {
	baseURL      string
	commerceCode string
	apiKey       string
	client       *http.Client
}

var _ interfaces.IPaymentGateway = (*WebpayGateway)(nil)

func NewWebpayGateway(cfg appconfig.WebpayConfig) *WebpayGateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WebpayGateway{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		commerceCode: cfg.CommerceCode,
		apiKey:       cfg.APIKey,
		client:       &http.Client{Timeout: timeout},
	}
}

func (g *WebpayGateway) Method() entities.PaymentMethod {
	return entities.PaymentMethodWebpay
}

func (g *WebpayGateway) Configured() bool {
	return g != nil && g.baseURL != "" && g.commerceCode != "" && g.apiKey != ""
}

type webpayCreateRequest struct {
	BuyOrder  string      `json:"buy_order"`
	SessionID string      `json:"session_id"`
	Amount    json.Number `json:"amount"`
	ReturnURL string      `json:"return_url"`
}

type webpayCreateResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type webpayTransactionResponse struct {
	VCI                string          `json:"vci"`
	Amount             decimal.Decimal `json:"amount"`
	Status             string          `json:"status"`
	BuyOrder           string          `json:"buy_order"`
	SessionID          string          `json:"session_id"`
	AuthorizationCode  string          `json:"authorization_code"`
	PaymentTypeCode    string          `json:"payment_type_code"`
	ResponseCode       *int            `json:"response_code"`
	InstallmentsNumber int             `json:"installments_number"`
	TransactionDate    string          `json:"transaction_date"`
}

func (g *WebpayGateway) CreateIntent(ctx context.Context, req entities.IntentRequest) (entities.IntentResult, error) {
	if !g.Configured() {
		return entities.IntentResult{}, interfaces.ErrGatewayNotConfigured
	}
	body := webpayCreateRequest{
		BuyOrder:  req.BuyOrder,
		SessionID: req.SessionID,
		Amount:    json.Number(req.Amount.String()),
		ReturnURL: req.ReturnURL,
	}
	var out webpayCreateResponse
	raw, err := g.do(ctx, http.MethodPost, webpayTransactionsPath, body, &out)
	if err != nil {
		return entities.IntentResult{}, err
	}
	if out.Token == "" || out.URL == "" {
		return entities.IntentResult{}, fmt.Errorf("%w: missing token or url", interfaces.ErrGatewayResponse)
	}
	logger.Component(ctx, "payment.gateway.webpay").Info().
		Str("buy_order", req.BuyOrder).
		Str("token", out.Token).
		Msg("webpay transaction created")
	return entities.IntentResult{
		Token:       out.Token,
		RedirectURL: out.URL + "?token_ws=" + url.QueryEscape(out.Token),
		PaymentID:   out.Token,
		Raw:         raw,
	}, nil
}

func (g *WebpayGateway) Commit(ctx context.Context, token string) (entities.GatewayPayment, error) {
	if !g.Configured() {
		return entities.GatewayPayment{}, interfaces.ErrGatewayNotConfigured
	}
	var out webpayTransactionResponse
	raw, err := g.do(ctx, http.MethodPut, webpayTransactionsPath+"/"+url.PathEscape(token), nil, &out)
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	if out.Status == "" {
		return entities.GatewayPayment{}, fmt.Errorf("%w: commit without status", interfaces.ErrGatewayResponse)
	}
	return webpayPayment(token, out, raw), nil
}

func (g *WebpayGateway) FetchByID(ctx context.Context, id string) (*entities.GatewayPayment, error) {
	if !g.Configured() {
		return nil, interfaces.ErrGatewayNotConfigured
	}
	var out webpayTransactionResponse
	raw, err := g.do(ctx, http.MethodGet, webpayTransactionsPath+"/"+url.PathEscape(id), nil, &out)
	if err != nil {
		var apiErr *WebpayAPIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	if out.Status == "" {
		return nil, nil
	}
	p := webpayPayment(id, out, raw)
	return &p, nil
}

func (g *WebpayGateway) SearchByExternalReference(context.Context, string) ([]entities.GatewayPayment, error) {
	return nil, interfaces.ErrOperationNotSupported
}

func (g *WebpayGateway) FetchOrderPayments(context.Context, string) ([]entities.GatewayPayment, error) {
	return nil, interfaces.ErrOperationNotSupported
}

// Invalidate is not offered by Webpay for uncommitted transactions; they expire on their own.
func (g *WebpayGateway) Invalidate(context.Context, string) error {
	return interfaces.ErrOperationNotSupported
}

func (g *WebpayGateway) do(ctx context.Context, method, path string, body any, out any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Tbk-Api-Key-Id", g.commerceCode)
	req.Header.Set("Tbk-Api-Key-Secret", g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			ErrorMessage string `json:"error_message"`
		}
		_ = json.Unmarshal(raw, &e)
		if e.ErrorMessage == "" {
			e.ErrorMessage = http.StatusText(resp.StatusCode)
		}
		logger.Component(ctx, "payment.gateway.webpay").Warn().
			Int("status_code", resp.StatusCode).
			Str("path", path).
			Str("error_message", e.ErrorMessage).
			Msg("webpay request failed")
		return nil, &WebpayAPIError{StatusCode: resp.StatusCode, Message: e.ErrorMessage}
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("%w: %w", interfaces.ErrGatewayResponse, err)
		}
	}
	return raw, nil
}

func webpayPayment(token string, out webpayTransactionResponse, raw json.RawMessage) entities.GatewayPayment {
	detail := ""
	if out.ResponseCode != nil {
		detail = strconv.Itoa(*out.ResponseCode)
	}
	return entities.GatewayPayment{
		ID:                token,
		Status:            out.Status,
		StatusDetail:      detail,
		ExternalReference: out.BuyOrder,
		PreferenceRef:     token,
		Amount:            out.Amount,
		Raw:               raw,
	}
}
