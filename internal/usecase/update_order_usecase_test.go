package usecase

import (
	"context"
	"errors"
	"testing"

	"varejo_xpto/internal/domain/entities"
	"varejo_xpto/internal/domain/events"
	"varejo_xpto/internal/usecase/interfaces"
	mock_interfaces "varejo_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUpdateOrderUseCase_Validations(t *testing.T) {
	uc := NewUpdateOrderUseCase(nil)

	t.Run("missing orderId", func(t *testing.T) {
		err := uc.ProcessUpdateOrder(context.Background(), events.UpdateOrder{Status: "PROCESSED"})
		if !errors.Is(err, ErrInvalidUpdateMessage) {
			t.Fatalf("expected ErrInvalidUpdateMessage, got %v", err)
		}
	})

	t.Run("pending is not a valid target", func(t *testing.T) {
		err := uc.ProcessUpdateOrder(context.Background(), events.UpdateOrder{OrderID: "ord-1", Status: "PENDING"})
		if !errors.Is(err, ErrInvalidUpdateMessage) {
			t.Fatalf("expected ErrInvalidUpdateMessage, got %v", err)
		}
	})
}

func TestUpdateOrderUseCase_Transitions(t *testing.T) {
	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewUpdateOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		err := uc.ProcessUpdateOrder(context.Background(), events.UpdateOrder{OrderID: "ord-1", Status: "PROCESSED"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("terminal order rejects further updates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewUpdateOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusCancelled}, nil)

		err := uc.ProcessUpdateOrder(context.Background(), events.UpdateOrder{OrderID: "ord-1", Status: "PROCESSED"})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("pending to processed applies the patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewUpdateOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusProcessed, "", "txn-ord-1").
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusProcessed, TransactionID: "txn-ord-1"}, nil)

		err := uc.ProcessUpdateOrder(context.Background(), events.UpdateOrder{OrderID: "ord-1", Status: "PROCESSED", TransactionID: "txn-ord-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("concurrent transition loses cleanly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewUpdateOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusCancelled, "Payment declined: card", "").
			Return(entities.Order{}, interfaces.ErrConflict)

		err := uc.ProcessUpdateOrder(context.Background(), events.UpdateOrder{OrderID: "ord-1", Status: "CANCELLED", Reason: "Payment declined: card"})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}
