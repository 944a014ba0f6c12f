package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery_payments/internal/adapter/http/handlers/mocks"
	"delivery_payments/internal/domain/entities"
	"delivery_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_Receive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IPaymentTransactionUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/webhooks/:method", NewWebhookHandler(uc).Receive)
		return r
	}

	t.Run("payment notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentTransactionUseCase(ctrl)

		tx := sampleTx(entities.TransactionStatusAuthorized)
		uc.EXPECT().IngestWebhook(gomock.Any(), usecase.WebhookEvent{
			Method:     entities.PaymentMethodMercadoPago,
			Type:       "payment",
			Action:     "payment.updated",
			ResourceID: "123456",
			DeliveryID: "delivery-1",
		}).Return(usecase.WebhookAck{Processed: true, Reason: usecase.WebhookReasonProcessed, Transaction: &tx}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","action":"payment.updated","data":{"id":"123456"}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-request-id", "delivery-1")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["processed"] != true || body["status"] != "AUTHORIZED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("query string notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentTransactionUseCase(ctrl)

		uc.EXPECT().IngestWebhook(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, ev usecase.WebhookEvent) (usecase.WebhookAck, error) {
			if ev.Type != "payment" || ev.ResourceID != "777" {
				t.Fatalf("unexpected event %+v", ev)
			}
			return usecase.WebhookAck{Reason: usecase.WebhookReasonDuplicate}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago?type=payment&data.id=777", nil)
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("processing failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentTransactionUseCase(ctrl)

		uc.EXPECT().IngestWebhook(gomock.Any(), gomock.Any()).
			Return(usecase.WebhookAck{}, fmt.Errorf("%w: %w", usecase.ErrGatewayUnavailable, errors.New("timeout")))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":"1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentTransactionUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", nil)
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
