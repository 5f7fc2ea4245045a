package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"varejo_xpto/internal/domain/entities"
	"varejo_xpto/internal/domain/events"
	"varejo_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidStockMessage = errors.New("invalid stock message")
	ErrProductNotFound     = errors.New("product not found")
)

// IStockUseCase appends one ledger movement per StockUpdate message.
//
// The append is the commit point; entries are never updated. The DECREASE
// availability check is advisory here (the order worker already checked) and
// exists because messages may interleave with unrelated operations.

type IStockUseCase interface {
	ProcessStockUpdate(ctx context.Context, event events.StockUpdate) error
}

type StockUseCase struct {
	stockRepo   interfaces.IStockRepository
	productRepo interfaces.IProductRepository
}

var _ IStockUseCase = (*StockUseCase)(nil)

func NewStockUseCase(stockRepo interfaces.IStockRepository, productRepo interfaces.IProductRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, productRepo: productRepo}
}

func (u *StockUseCase) ProcessStockUpdate(ctx context.Context, event events.StockUpdate) error {
	if event.ProductID == "" || event.Quantity <= 0 {
		return fmt.Errorf("productId and positive quantity are required: %w", ErrInvalidStockMessage)
	}
	entryType := entities.StockEntryType(event.Operation)
	if entryType != entities.StockEntryTypeIncrease && entryType != entities.StockEntryTypeDecrease {
		return fmt.Errorf("operation %q: %w", event.Operation, ErrInvalidStockMessage)
	}

	product, err := u.productRepo.GetByID(ctx, event.ProductID)
	if err != nil {
		return err
	}
	if product.ID == "" {
		return fmt.Errorf("product %s: %w", event.ProductID, ErrProductNotFound)
	}
	if !product.IsActive {
		return fmt.Errorf("product %s: %w", product.ID, ErrProductInactive)
	}

	if entryType == entities.StockEntryTypeDecrease {
		entries, err := u.stockRepo.ListByProductID(ctx, product.ID)
		if err != nil {
			return err
		}
		if current := entities.LedgerSum(entries); current < event.Quantity {
			return fmt.Errorf("product %s: available %d, requested %d: %w", product.ID, current, event.Quantity, ErrInsufficientStock)
		}
	}

	entry := entities.StockEntry{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Type:      entryType,
		Quantity:  event.Quantity,
		Reason:    event.Reason,
		OrderID:   event.OrderID,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.stockRepo.Create(ctx, entry); err != nil {
		return err
	}
	log.Printf("[stock][usecase] entry appended entry_id=%s product_id=%s type=%s quantity=%d order_id=%s", entry.ID, entry.ProductID, entry.Type, entry.Quantity, entry.OrderID)
	return nil
}
