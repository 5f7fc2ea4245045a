package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"varejo_xpto/internal/adapter/messaging"
	"varejo_xpto/internal/domain/events"
	"varejo_xpto/internal/metrics"
	"varejo_xpto/internal/usecase"
)

type stubUpdateUseCase struct{ err error }

func (s *stubUpdateUseCase) ProcessUpdateOrder(context.Context, events.UpdateOrder) error {
	return s.err
}

type stubStockUseCase struct{ err error }

func (s *stubStockUseCase) ProcessStockUpdate(context.Context, events.StockUpdate) error {
	return s.err
}

func TestHandlers_ErrorClassification(t *testing.T) {
	reg := metrics.NewRegistry()

	t.Run("malformed json is fatal", func(t *testing.T) {
		handler := NewUpdateHandler(&stubUpdateUseCase{}, reg)
		err := handler(context.Background(), []byte("not json"))
		if !errors.Is(err, messaging.ErrFatalRecord) {
			t.Fatalf("expected fatal record, got %v", err)
		}
	})

	t.Run("invalid transition is fatal", func(t *testing.T) {
		cause := fmt.Errorf("ord-1: %w", usecase.ErrInvalidTransition)
		handler := NewUpdateHandler(&stubUpdateUseCase{err: cause}, reg)
		err := handler(context.Background(), []byte(`{"orderId":"ord-1","status":"PROCESSED"}`))
		if !errors.Is(err, messaging.ErrFatalRecord) {
			t.Fatalf("expected fatal record, got %v", err)
		}
	})

	t.Run("store failure is released for redrive", func(t *testing.T) {
		cause := errors.New("dynamodb 500")
		handler := NewStockHandler(&stubStockUseCase{err: cause}, reg)
		err := handler(context.Background(), []byte(`{"productId":"p1","quantity":1,"operation":"INCREASE"}`))
		if err == nil || errors.Is(err, messaging.ErrFatalRecord) {
			t.Fatalf("transient failure must not be fatal, got %v", err)
		}
	})

	t.Run("insufficient stock is released for redrive", func(t *testing.T) {
		cause := fmt.Errorf("p1: %w", usecase.ErrInsufficientStock)
		handler := NewStockHandler(&stubStockUseCase{err: cause}, reg)
		err := handler(context.Background(), []byte(`{"productId":"p1","quantity":9,"operation":"DECREASE"}`))
		if err == nil || errors.Is(err, messaging.ErrFatalRecord) {
			t.Fatalf("insufficient stock must be retried, got %v", err)
		}
	})

	t.Run("success deletes the record", func(t *testing.T) {
		handler := NewStockHandler(&stubStockUseCase{}, reg)
		if err := handler(context.Background(), []byte(`{"productId":"p1","quantity":1,"operation":"INCREASE"}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
