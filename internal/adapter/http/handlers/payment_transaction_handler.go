package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"delivery_payments/internal/adapter/http/dto/request"
	"delivery_payments/internal/adapter/http/dto/response"
	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase"
	"delivery_payments/pkg"
	"delivery_payments/pkg/logger"

	"github.com/gin-gonic/gin"
)

const defaultFreshnessWindow = 10 * time.Minute

// PaymentTransactionHandler handles HTTP requests for payment transactions.
type PaymentTransactionHandler struct {
	usecase           usecase.IPaymentTransactionUseCase
	frontendReturnURL string
	freshnessWindow   time.Duration
	now               func() time.Time
}

// NewPaymentTransactionHandler builds the handler. With a frontendReturnURL the
// gateway return endpoints redirect the browser there instead of answering JSON.
func NewPaymentTransactionHandler(uc usecase.IPaymentTransactionUseCase, frontendReturnURL string, freshnessWindow time.Duration) *PaymentTransactionHandler {
	if freshnessWindow <= 0 {
		freshnessWindow = defaultFreshnessWindow
	}
	return &PaymentTransactionHandler{
		usecase:           uc,
		frontendReturnURL: strings.TrimSpace(frontendReturnURL),
		freshnessWindow:   freshnessWindow,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

// CreateTransaction godoc
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        method  path  string  true  "webpay | mercadopago"
// @Param        body    body  request.CreateTransactionRequest  true  "intent"
// @Success      201  {object}  response.CreateTransactionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /payments/{method}/transactions [post]
func (h *PaymentTransactionHandler) CreateTransaction(c *gin.Context) {
	method, ok := h.method(c)
	if !ok {
		return
	}
	var req request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Component(c.Request.Context(), "payment.handler").Warn().Err(err).Msg("invalid create payload")
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	out, err := h.usecase.CreateIntent(c.Request.Context(), usecase.CreateIntentInput{
		Method:    method,
		Amount:    req.Amount,
		BuyOrder:  req.BuyOrder,
		SessionID: req.SessionID,
		Payload:   req.Payload,
	})
	if err != nil {
		h.fail(c, "create", "", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCreateIntent(out, h.now(), h.freshnessWindow))
}

// CommitTransaction godoc
// @Summary      Commit a redirect-style payment (webpay)
// @Tags         payments
// @Produce      json
// @Param        method  path  string  true  "webpay"
// @Param        token   path  string  true  "transaction token"
// @Success      200  {object}  response.TransactionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{method}/transactions/{token}/commit [post]
func (h *PaymentTransactionHandler) CommitTransaction(c *gin.Context) {
	method, ok := h.method(c)
	if !ok {
		return
	}
	token := c.Param("token")
	tx, err := h.usecase.Commit(c.Request.Context(), method, token)
	if err != nil {
		h.fail(c, "commit", token, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTransaction(tx, h.now(), h.freshnessWindow))
}

// GatewayReturn handles the browser coming back from the gateway.
//
// Webpay posts token_ws on completion and TBK_TOKEN alone when the buyer
// aborted. Mercado Pago appends payment_id and preference_id to the back url.
func (h *PaymentTransactionHandler) GatewayReturn(c *gin.Context) {
	method, ok := h.method(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var (
		tx  entities.PaymentTransaction
		err error
	)
	switch method {
	case entities.PaymentMethodWebpay:
		token := formOrQuery(c, "token_ws")
		aborted := formOrQuery(c, "TBK_TOKEN")
		switch {
		case token != "":
			tx, err = h.usecase.Commit(ctx, method, token)
		case aborted != "":
			tx, err = h.usecase.Cancel(ctx, method, aborted, "user", "user_aborted")
		default:
			err = usecase.ErrInvalidToken
		}
	default:
		id := firstNonEmpty(c.Query("payment_id"), c.Query("collection_id"), c.Query("preference_id"))
		var res usecase.StatusResult
		res, err = h.usecase.ResolveStatus(ctx, method, id)
		tx = res.Transaction
	}
	if err != nil {
		h.fail(c, "return", "", err)
		return
	}

	if h.frontendReturnURL != "" {
		c.Redirect(http.StatusSeeOther, h.frontendRedirect(tx))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTransaction(tx, h.now(), h.freshnessWindow))
}

// GetStatus godoc
// @Summary      Resolve the current status against the gateway
// @Description  Accepts the transaction token or a raw provider payment id.
// @Tags         payments
// @Produce      json
// @Param        method  path  string  true  "webpay | mercadopago"
// @Param        token   path  string  true  "token or provider payment id"
// @Success      200  {object}  response.StatusResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{method}/transactions/{token}/status [get]
func (h *PaymentTransactionHandler) GetStatus(c *gin.Context) {
	method, ok := h.method(c)
	if !ok {
		return
	}
	token := c.Param("token")
	res, err := h.usecase.ResolveStatus(c.Request.Context(), method, token)
	if err != nil {
		h.fail(c, "status", token, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatusResult(res, h.now(), h.freshnessWindow))
}

// GetTransaction godoc
// @Summary      Get the stored transaction
// @Tags         payments
// @Produce      json
// @Param        method  path  string  true  "webpay | mercadopago"
// @Param        token   path  string  true  "transaction token"
// @Success      200  {object}  response.TransactionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{method}/transactions/{token} [get]
func (h *PaymentTransactionHandler) GetTransaction(c *gin.Context) {
	method, ok := h.method(c)
	if !ok {
		return
	}
	token := c.Param("token")
	tx, err := h.usecase.GetInfo(c.Request.Context(), method, token)
	if err != nil {
		h.fail(c, "get", token, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTransaction(tx, h.now(), h.freshnessWindow))
}

// DeleteTransaction godoc
// @Summary      Delete a transaction (administrative)
// @Tags         payments
// @Param        method  path  string  true  "webpay | mercadopago"
// @Param        token   path  string  true  "transaction token"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{method}/transactions/{token} [delete]
func (h *PaymentTransactionHandler) DeleteTransaction(c *gin.Context) {
	method, ok := h.method(c)
	if !ok {
		return
	}
	token := c.Param("token")
	if err := h.usecase.Delete(c.Request.Context(), method, token); err != nil {
		h.fail(c, "delete", token, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CancelTransaction godoc
// @Summary      Cancel a transaction
// @Description  Cancellation is sticky: later gateway signals never revive the transaction.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        method  path  string  true  "webpay | mercadopago"
// @Param        token   path  string  true  "transaction token"
// @Param        body    body  request.CancelTransactionRequest  false  "who and why"
// @Success      200  {object}  response.TransactionResponse
// @Router       /payments/{method}/transactions/{token}/cancel [post]
func (h *PaymentTransactionHandler) CancelTransaction(c *gin.Context) {
	method, ok := h.method(c)
	if !ok {
		return
	}
	token := c.Param("token")
	var req request.CancelTransactionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
			return
		}
	}
	tx, err := h.usecase.Cancel(c.Request.Context(), method, token, req.CancelledBy, req.Reason)
	if err != nil {
		h.fail(c, "cancel", token, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTransaction(tx, h.now(), h.freshnessWindow))
}

// LinkOrder godoc
// @Summary      Attach an externally created order
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        method  path  string  true  "webpay | mercadopago"
// @Param        token   path  string  true  "transaction token"
// @Param        body    body  request.LinkOrderRequest  true  "order"
// @Success      200  {object}  response.TransactionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /payments/{method}/transactions/{token}/order [post]
func (h *PaymentTransactionHandler) LinkOrder(c *gin.Context) {
	method, ok := h.method(c)
	if !ok {
		return
	}
	token := c.Param("token")
	var req request.LinkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	tx, err := h.usecase.LinkOrder(c.Request.Context(), method, token, req.OrderID)
	if err != nil {
		h.fail(c, "link-order", token, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTransaction(tx, h.now(), h.freshnessWindow))
}

// ListPendingBySession godoc
// @Summary      List non-final transactions of a checkout session
// @Tags         payments
// @Produce      json
// @Param        method      path  string  true  "webpay | mercadopago"
// @Param        session_id  path  string  true  "session id"
// @Success      200  {object}  response.TransactionListResponse
// @Router       /payments/{method}/sessions/{session_id}/pending [get]
func (h *PaymentTransactionHandler) ListPendingBySession(c *gin.Context) {
	method, ok := h.method(c)
	if !ok {
		return
	}
	list, err := h.usecase.ListPendingBySession(c.Request.Context(), method, c.Param("session_id"))
	if err != nil {
		h.fail(c, "list-pending", "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTransactions(list, h.now(), h.freshnessWindow))
}

// ListUnlinkedAuthorized godoc
// @Summary      List authorized transactions still without an order
// @Tags         payments
// @Produce      json
// @Param        method  path   string  true   "webpay | mercadopago"
// @Param        limit   query  int     false  "max results"
// @Success      200  {object}  response.TransactionListResponse
// @Router       /payments/{method}/unlinked [get]
func (h *PaymentTransactionHandler) ListUnlinkedAuthorized(c *gin.Context) {
	method, ok := h.method(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid limit", http.StatusBadRequest))
			return
		}
		limit = n
	}
	list, err := h.usecase.ListUnlinkedAuthorized(c.Request.Context(), method, limit)
	if err != nil {
		h.fail(c, "list-unlinked", "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTransactions(list, h.now(), h.freshnessWindow))
}

func (h *PaymentTransactionHandler) method(c *gin.Context) (entities.PaymentMethod, bool) {
	m, ok := entities.ParsePaymentMethod(c.Param("method"))
	if !ok {
		writeError(c, mapPaymentTransactionError(usecase.ErrInvalidPaymentMethod))
		return "", false
	}
	return m, true
}

func (h *PaymentTransactionHandler) fail(c *gin.Context, op, token string, err error) {
	appErr := mapPaymentTransactionError(err)
	ev := logger.Component(c.Request.Context(), "payment.handler").Warn()
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		ev = logger.Component(c.Request.Context(), "payment.handler").Error()
	}
	ev.Err(err).Str("op", op).Str("token", token).Str("code", appErr.Code).Msg("request failed")
	writeError(c, appErr)
}

func (h *PaymentTransactionHandler) frontendRedirect(tx entities.PaymentTransaction) string {
	q := url.Values{}
	q.Set("token", tx.Token)
	q.Set("buy_order", tx.BuyOrder)
	q.Set("status", string(tx.Status))
	sep := "?"
	if strings.Contains(h.frontendReturnURL, "?") {
		sep = "&"
	}
	return h.frontendReturnURL + sep + q.Encode()
}

func formOrQuery(c *gin.Context, key string) string {
	if v := strings.TrimSpace(c.PostForm(key)); v != "" {
		return v
	}
	return strings.TrimSpace(c.Query(key))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" && v != "null" {
			return v
		}
	}
	return ""
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPaymentTransactionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidBuyOrder),
		errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidToken),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidPayload),
		errors.Is(err, usecase.ErrOperationNotSupported):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest).WithMessage(err.Error())
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Payment transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStateConflict):
		return pkg.NewDomainError("TRANSACTION_STATE_CONFLICT", "Payment transaction state does not allow this operation", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrGatewayResponse):
		return pkg.NewDomainError("PAYMENT_GATEWAY_BAD_RESPONSE", "Payment gateway returned an invalid response", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
