package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"varejo_xpto/internal/adapter/messaging"
	"varejo_xpto/internal/domain/events"
	"varejo_xpto/internal/metrics"
	"varejo_xpto/internal/usecase"
)

// Record handlers decode one queue message and delegate to the stage's use
// case. Errors that can never succeed on redelivery (malformed payloads,
// missing required references, illegal transitions) are marked fatal so the
// consumer discards them; everything else is released for redrive.

func NewLeadHandler(leads usecase.ILeadUseCase, reg *metrics.Registry) messaging.RecordHandler {
	return func(ctx context.Context, body []byte) error {
		var event events.InitializeOrder
		if err := json.Unmarshal(body, &event); err != nil {
			reg.RecordOutcome("lead", "fatal")
			return fmt.Errorf("decode initialize-order: %v: %w", err, messaging.ErrFatalRecord)
		}

		_, err := leads.FindOrCreate(ctx, event.CustomerData)
		return classify(reg, "lead", err,
			usecase.ErrInvalidCPF,
			usecase.ErrInvalidEmail,
		)
	}
}

func NewOrderHandler(orders usecase.IOrderUseCase, reg *metrics.Registry) messaging.RecordHandler {
	return func(ctx context.Context, body []byte) error {
		var event events.InitializeOrder
		if err := json.Unmarshal(body, &event); err != nil {
			reg.RecordOutcome("order", "fatal")
			return fmt.Errorf("decode initialize-order: %v: %w", err, messaging.ErrFatalRecord)
		}

		err := orders.ProcessInitializeOrder(ctx, event)
		return classify(reg, "order", err,
			usecase.ErrMissingOrderID,
			usecase.ErrNoItems,
			usecase.ErrInvalidCPF,
			usecase.ErrInvalidEmail,
			usecase.ErrProductInactive,
		)
	}
}

func NewStockHandler(stock usecase.IStockUseCase, reg *metrics.Registry) messaging.RecordHandler {
	return func(ctx context.Context, body []byte) error {
		var event events.StockUpdate
		if err := json.Unmarshal(body, &event); err != nil {
			reg.RecordOutcome("stock", "fatal")
			return fmt.Errorf("decode stock-update: %v: %w", err, messaging.ErrFatalRecord)
		}

		err := stock.ProcessStockUpdate(ctx, event)
		return classify(reg, "stock", err,
			usecase.ErrInvalidStockMessage,
			usecase.ErrProductNotFound,
			usecase.ErrProductInactive,
		)
	}
}

func NewPaymentHandler(payments usecase.IPaymentUseCase, reg *metrics.Registry) messaging.RecordHandler {
	return func(ctx context.Context, body []byte) error {
		var event events.ProcessTransaction
		if err := json.Unmarshal(body, &event); err != nil {
			reg.RecordOutcome("payment", "fatal")
			return fmt.Errorf("decode process-transaction: %v: %w", err, messaging.ErrFatalRecord)
		}

		err := payments.ProcessPayment(ctx, event)
		return classify(reg, "payment", err,
			usecase.ErrInvalidPaymentMessage,
			usecase.ErrOrderNotFound,
		)
	}
}

func NewUpdateHandler(updates usecase.IUpdateOrderUseCase, reg *metrics.Registry) messaging.RecordHandler {
	return func(ctx context.Context, body []byte) error {
		var event events.UpdateOrder
		if err := json.Unmarshal(body, &event); err != nil {
			reg.RecordOutcome("update", "fatal")
			return fmt.Errorf("decode update-order: %v: %w", err, messaging.ErrFatalRecord)
		}

		err := updates.ProcessUpdateOrder(ctx, event)
		return classify(reg, "update", err,
			usecase.ErrInvalidUpdateMessage,
			usecase.ErrOrderNotFound,
			usecase.ErrInvalidTransition,
		)
	}
}

// classify maps a use-case error onto the consumer's retry semantics and
// records the outcome.
func classify(reg *metrics.Registry, worker string, err error, fatal ...error) error {
	if err == nil {
		reg.RecordOutcome(worker, "ok")
		return nil
	}
	for _, sentinel := range fatal {
		if errors.Is(err, sentinel) {
			reg.RecordOutcome(worker, "fatal")
			return fmt.Errorf("%v: %w", err, messaging.ErrFatalRecord)
		}
	}
	reg.RecordOutcome(worker, "retry")
	return err
}
