package usecase

import (
	"context"
	"errors"
	"testing"

	"varejo_xpto/internal/domain/entities"
	"varejo_xpto/internal/domain/events"
	mock_interfaces "varejo_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestStockUseCase_Validations(t *testing.T) {
	uc := NewStockUseCase(nil, nil)

	cases := []struct {
		name  string
		event events.StockUpdate
	}{
		{"missing product", events.StockUpdate{Quantity: 1, Operation: "INCREASE"}},
		{"zero quantity", events.StockUpdate{ProductID: "p1", Quantity: 0, Operation: "INCREASE"}},
		{"negative quantity", events.StockUpdate{ProductID: "p1", Quantity: -2, Operation: "DECREASE"}},
		{"unknown operation", events.StockUpdate{ProductID: "p1", Quantity: 1, Operation: "RESET"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := uc.ProcessStockUpdate(context.Background(), tc.event); !errors.Is(err, ErrInvalidStockMessage) {
				t.Fatalf("expected ErrInvalidStockMessage, got %v", err)
			}
		})
	}
}

func TestStockUseCase_ProductChecks(t *testing.T) {
	t.Run("missing product is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewStockUseCase(stockRepo, productRepo)

		productRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Product{}, nil)

		err := uc.ProcessStockUpdate(context.Background(), events.StockUpdate{ProductID: "ghost", Quantity: 1, Operation: "INCREASE"})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("inactive product is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewStockUseCase(stockRepo, productRepo)

		productRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", IsActive: false}, nil)

		err := uc.ProcessStockUpdate(context.Background(), events.StockUpdate{ProductID: "p1", Quantity: 1, Operation: "INCREASE"})
		if !errors.Is(err, ErrProductInactive) {
			t.Fatalf("expected ErrProductInactive, got %v", err)
		}
	})
}

func TestStockUseCase_Decrease(t *testing.T) {
	t.Run("insufficient ledger sum is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewStockUseCase(stockRepo, productRepo)

		productRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", IsActive: true, Price: decimal.NewFromInt(10)}, nil)
		stockRepo.EXPECT().ListByProductID(gomock.Any(), "p1").Return([]entities.StockEntry{
			{Type: entities.StockEntryTypeIncrease, Quantity: 2},
		}, nil)

		err := uc.ProcessStockUpdate(context.Background(), events.StockUpdate{ProductID: "p1", Quantity: 10, Operation: "DECREASE", OrderID: "ord-1"})
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("valid decrease appends an entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewStockUseCase(stockRepo, productRepo)

		productRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", IsActive: true}, nil)
		stockRepo.EXPECT().ListByProductID(gomock.Any(), "p1").Return([]entities.StockEntry{
			{Type: entities.StockEntryTypeIncrease, Quantity: 100},
		}, nil)
		stockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry entities.StockEntry) error {
				if entry.ID == "" {
					t.Fatalf("expected a generated entry id")
				}
				if entry.Type != entities.StockEntryTypeDecrease || entry.Quantity != 2 {
					t.Fatalf("unexpected entry: %+v", entry)
				}
				if entry.OrderID != "ord-1" || entry.Reason != "Order sale" {
					t.Fatalf("unexpected entry metadata: %+v", entry)
				}
				return nil
			})

		err := uc.ProcessStockUpdate(context.Background(), events.StockUpdate{
			ProductID: "p1", Quantity: 2, Operation: "DECREASE", OrderID: "ord-1", Reason: "Order sale",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("increase skips the availability check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stockRepo := mock_interfaces.NewMockIStockRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewStockUseCase(stockRepo, productRepo)

		productRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", IsActive: true}, nil)
		stockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		err := uc.ProcessStockUpdate(context.Background(), events.StockUpdate{
			ProductID: "p1", Quantity: 50, Operation: "INCREASE", Reason: "Restock",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
