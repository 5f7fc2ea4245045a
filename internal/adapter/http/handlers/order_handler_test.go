package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"varejo_xpto/internal/domain/entities"
	"varejo_xpto/internal/domain/events"

	"github.com/gin-gonic/gin"
)

type stubSubmitUseCase struct {
	orderID string
	err     error
	called  bool
}

func (s *stubSubmitUseCase) Submit(_ context.Context, _ entities.Customer, _ entities.CardData, _ entities.Address, _ []events.RequestedItem) (string, error) {
	s.called = true
	return s.orderID, s.err
}

func newTestRouter(uc *stubSubmitUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewOrderHandler(uc, nil)
	router.POST("/v1/orders", handler.SubmitOrder)
	return router
}

func validBody() map[string]any {
	return map[string]any{
		"customerData": map[string]any{"cpf": "123.456.789-09", "email": "ana@example.com", "name": "Ana"},
		"items":        []map[string]any{{"id": "p1", "quantity": 2}},
		"paymentData": map[string]any{
			"cardNumber":     "4111111111111111",
			"cardHolderName": "ANA SILVA",
			"expiryMonth":    8,
			"expiryYear":     time.Now().Year() + 1,
			"cvv":            "123",
		},
		"addressData": map[string]any{
			"street":       "Rua A",
			"number":       "10",
			"neighborhood": "Centro",
			"city":         "Sao Paulo",
			"state":        "SP",
			"zipCode":      "01234-567",
			"country":      "BR",
		},
	}
}

func doRequest(router *gin.Engine, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestOrderHandler_SubmitOrder(t *testing.T) {
	t.Run("valid submission returns 202", func(t *testing.T) {
		uc := &stubSubmitUseCase{orderID: "ord-123"}
		rec := doRequest(newTestRouter(uc), validBody())

		if rec.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d body=%s", rec.Code, rec.Body.String())
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["orderId"] != "ord-123" || resp["status"] != "submitted" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("missing customerData returns 400", func(t *testing.T) {
		uc := &stubSubmitUseCase{orderID: "ord-123"}
		body := validBody()
		delete(body, "customerData")
		rec := doRequest(newTestRouter(uc), body)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if uc.called {
			t.Fatalf("usecase must not be reached on validation failure")
		}
	})

	t.Run("invalid cpf surfaces the message", func(t *testing.T) {
		uc := &stubSubmitUseCase{orderID: "ord-123"}
		body := validBody()
		body["customerData"].(map[string]any)["cpf"] = "123"
		rec := doRequest(newTestRouter(uc), body)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "cpf must contain 11 digits") {
			t.Fatalf("expected verbatim validation message, got %s", rec.Body.String())
		}
	})

	t.Run("publish failure returns 500 with fixed message", func(t *testing.T) {
		uc := &stubSubmitUseCase{err: errors.New("sns down")}
		rec := doRequest(newTestRouter(uc), validBody())

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Internal server error") {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
		if strings.Contains(rec.Body.String(), "sns down") {
			t.Fatalf("internal detail leaked: %s", rec.Body.String())
		}
	})
}
