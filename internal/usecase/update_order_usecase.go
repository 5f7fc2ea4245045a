package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"varejo_xpto/internal/domain/entities"
	"varejo_xpto/internal/domain/events"
	"varejo_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidUpdateMessage = errors.New("invalid update message")
	ErrInvalidTransition    = errors.New("invalid order status transition")
)

// IUpdateOrderUseCase applies one status transition to an order.
//
// Only PENDING -> {PROCESSED, CANCELLED} is legal; both targets are
// terminal. The repository patch re-checks the stored status, so a racing
// update loses cleanly instead of overwriting a terminal state.

type IUpdateOrderUseCase interface {
	ProcessUpdateOrder(ctx context.Context, event events.UpdateOrder) error
}

type UpdateOrderUseCase struct {
	orderRepo interfaces.IOrderRepository
}

var _ IUpdateOrderUseCase = (*UpdateOrderUseCase)(nil)

func NewUpdateOrderUseCase(orderRepo interfaces.IOrderRepository) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{orderRepo: orderRepo}
}

func (u *UpdateOrderUseCase) ProcessUpdateOrder(ctx context.Context, event events.UpdateOrder) error {
	if event.OrderID == "" {
		return fmt.Errorf("missing orderId: %w", ErrInvalidUpdateMessage)
	}
	target := entities.OrderStatus(event.Status)
	if target != entities.OrderStatusProcessed && target != entities.OrderStatusCancelled {
		return fmt.Errorf("status %q: %w", event.Status, ErrInvalidUpdateMessage)
	}

	order, err := u.orderRepo.GetByID(ctx, event.OrderID)
	if err != nil {
		return err
	}
	if order.ID == "" {
		return fmt.Errorf("order %s: %w", event.OrderID, ErrOrderNotFound)
	}
	if !order.Status.CanTransitionTo(target) {
		return fmt.Errorf("order %s: %s -> %s: %w", order.ID, order.Status, target, ErrInvalidTransition)
	}

	updated, err := u.orderRepo.UpdateStatus(ctx, order.ID, target, event.Reason, event.TransactionID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			// Lost the race to another update; the stored state is terminal.
			return fmt.Errorf("order %s: concurrent transition: %w", order.ID, ErrInvalidTransition)
		}
		return err
	}
	log.Printf("[update][usecase] order updated order_id=%s status=%s transaction_id=%s", updated.ID, updated.Status, updated.TransactionID)
	return nil
}
