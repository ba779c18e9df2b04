package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"konveksi_checkout/internal/adapter/http/handlers/mocks"
	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_GetPaymentActions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("down payment recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIPaymentStateResolver(ctrl)
		h := NewPaymentHandler(resolver, mocks.NewMockIGatewayCoordinatorUseCase(ctrl))

		r := newShopperRouter()
		r.GET("/v1/orders/:order_id/payment-actions", h.GetPaymentActions)

		order := entities.Order{ID: "ord-1", Total: 200000, DPStatus: entities.SettlementPaid, SettlementStatus: entities.SettlementUnpaid}
		resolver.EXPECT().ResolveFresh(gomock.Any(), shopperPrincipal(), "ord-1").Return(order, entities.PaymentActions{
			OrderID: "ord-1",
			Actions: []entities.PaymentAction{
				{Kind: entities.PaymentKindDP, Reason: entities.ReasonDownPaymentRecorded},
				{Kind: entities.PaymentKindFull, Reason: entities.ReasonDownPaymentRecorded},
				{Kind: entities.PaymentKindRemainder, Enabled: true, Amount: 100000, AmountKnown: true},
			},
		}, nil)

		req := authorize(t, httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/payment-actions", nil))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Actions []struct {
				Kind    string `json:"kind"`
				Enabled bool   `json:"enabled"`
			} `json:"actions"`
			DPStatus string `json:"dp_status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(resp.Actions) != 3 || !resp.Actions[2].Enabled || resp.Actions[0].Enabled {
			t.Fatalf("unexpected actions: %+v", resp.Actions)
		}
		if resp.DPStatus != "PAID" {
			t.Fatalf("expected dp_status PAID, got %q", resp.DPStatus)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIPaymentStateResolver(ctrl)
		h := NewPaymentHandler(resolver, nil)

		r := newShopperRouter()
		r.GET("/v1/orders/:order_id/payment-actions", h.GetPaymentActions)

		resolver.EXPECT().ResolveFresh(gomock.Any(), gomock.Any(), "missing").Return(entities.Order{}, entities.PaymentActions{}, usecase.ErrOrderNotFound)

		req := authorize(t, httptest.NewRequest(http.MethodGet, "/v1/orders/missing/payment-actions", nil))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_StartPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coordinator := mocks.NewMockIGatewayCoordinatorUseCase(ctrl)
		h := NewPaymentHandler(nil, coordinator)

		r := newShopperRouter()
		r.POST("/v1/orders/:order_id/payments", h.StartPayment)

		req := authorize(t, httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", bytes.NewBufferString(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("conflict carries refreshed actions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coordinator := mocks.NewMockIGatewayCoordinatorUseCase(ctrl)
		h := NewPaymentHandler(nil, coordinator)

		r := newShopperRouter()
		r.POST("/v1/orders/:order_id/payments", h.StartPayment)

		coordinator.EXPECT().StartPayment(gomock.Any(), shopperPrincipal(), "ord-1", entities.PaymentKindDP).Return(entities.PaymentSession{}, &usecase.ConflictError{
			OrderID: "ord-1",
			Kind:    entities.PaymentKindDP,
			Reason:  entities.ReasonDownPaymentRecorded,
			Actions: entities.PaymentActions{OrderID: "ord-1", Actions: []entities.PaymentAction{{Kind: entities.PaymentKindRemainder, Enabled: true, Amount: 100000, AmountKnown: true}}},
		})

		req := authorize(t, httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", bytes.NewBufferString(`{"kind":"dp"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp struct {
			Code    string `json:"code"`
			Details struct {
				Reason  string `json:"reason"`
				Actions struct {
					Actions []map[string]any `json:"actions"`
				} `json:"actions"`
			} `json:"details"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp.Code != "PAYMENT_NOT_ALLOWED" || resp.Details.Reason != entities.ReasonDownPaymentRecorded {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if len(resp.Details.Actions.Actions) != 1 {
			t.Fatalf("expected refreshed actions in details: %s", w.Body.String())
		}
	})

	t.Run("in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coordinator := mocks.NewMockIGatewayCoordinatorUseCase(ctrl)
		h := NewPaymentHandler(nil, coordinator)

		r := newShopperRouter()
		r.POST("/v1/orders/:order_id/payments", h.StartPayment)

		coordinator.EXPECT().StartPayment(gomock.Any(), gomock.Any(), "ord-1", entities.PaymentKindFull).Return(entities.PaymentSession{}, usecase.ErrPaymentInProgress)

		req := authorize(t, httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", bytes.NewBufferString(`{"kind":"FULL"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coordinator := mocks.NewMockIGatewayCoordinatorUseCase(ctrl)
		h := NewPaymentHandler(nil, coordinator)

		r := newShopperRouter()
		r.POST("/v1/orders/:order_id/payments", h.StartPayment)

		coordinator.EXPECT().StartPayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.PaymentSession{}, usecase.ErrGatewayUnavailable)

		req := authorize(t, httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", bytes.NewBufferString(`{"kind":"FULL"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("session opened", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		coordinator := mocks.NewMockIGatewayCoordinatorUseCase(ctrl)
		h := NewPaymentHandler(nil, coordinator)

		r := newShopperRouter()
		r.POST("/v1/orders/:order_id/payments", h.StartPayment)

		session := entities.PaymentSession{OrderID: "ord-1", Kind: entities.PaymentKindRemainder, SessionToken: "snap-1", Amount: 100000, CreatedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
		coordinator.EXPECT().StartPayment(gomock.Any(), shopperPrincipal(), "ord-1", entities.PaymentKindRemainder).Return(session, nil)

		req := authorize(t, httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/payments", bytes.NewBufferString(`{"kind":"remainder"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp["session_token"] != "snap-1" || resp["kind"] != "REMAINDER" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}
