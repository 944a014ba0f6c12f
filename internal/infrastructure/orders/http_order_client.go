package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	appconfig "delivery_payments/internal/config"
	"delivery_payments/internal/usecase/interfaces"
	"delivery_payments/pkg/logger"
)

var (
	ErrOrdersServiceNotConfigured = errors.New("orders service not configured")
	ErrOrderIDMissing             = errors.New("orders service response without order id")
)

// HTTPOrderClient posts the stored order document to the orders service.
type HTTPOrderClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ interfaces.IOrderCreator = (*HTTPOrderClient)(nil)

func NewHTTPOrderClient(cfg appconfig.OrdersConfig) *HTTPOrderClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPOrderClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPOrderClient) CreateOrder(ctx context.Context, payload json.RawMessage) (string, error) {
	if c.baseURL == "" {
		return "", ErrOrdersServiceNotConfigured
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Component(ctx, "orders.client").Warn().
			Int("status_code", resp.StatusCode).
			Str("body", string(body)).
			Msg("orders service rejected order")
		return "", fmt.Errorf("orders service responded %d", resp.StatusCode)
	}

	var out struct {
		ID      json.RawMessage `json:"id"`
		OrderID json.RawMessage `json:"order_id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode orders response: %w", err)
	}
	id := rawID(out.OrderID)
	if id == "" {
		id = rawID(out.ID)
	}
	if id == "" {
		return "", ErrOrderIDMissing
	}
	return id, nil
}

// rawID accepts numeric or string ids.
func rawID(raw json.RawMessage) string {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "null" {
		return ""
	}
	return s
}
