package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"varejo_xpto/internal/domain/entities"
	"varejo_xpto/internal/usecase/interfaces"
)

const reconcileReason = "Stock reconciliation"

// IStockReconcileUseCase repairs orphaned stock reservations.
//
// A sale DECREASE published in Phase B whose order never reached Phase D
// leaves the ledger short. One sweep scans sale DECREASEs older than the
// grace period, and for every entry without a matching order appends a
// compensating INCREASE. The compensation id is derived from the original
// entry id, so repeated sweeps resolve as Conflict no-ops.

type IStockReconcileUseCase interface {
	Sweep(ctx context.Context) (int, error)
}

type StockReconcileUseCase struct {
	stockRepo interfaces.IStockRepository
	orderRepo interfaces.IOrderRepository
	grace     time.Duration
}

var _ IStockReconcileUseCase = (*StockReconcileUseCase)(nil)

func NewStockReconcileUseCase(stockRepo interfaces.IStockRepository, orderRepo interfaces.IOrderRepository, grace time.Duration) *StockReconcileUseCase {
	return &StockReconcileUseCase{stockRepo: stockRepo, orderRepo: orderRepo, grace: grace}
}

// Sweep returns the number of compensations written.
func (u *StockReconcileUseCase) Sweep(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-u.grace)
	entries, err := u.stockRepo.ListSaleDecreasesBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	compensated := 0
	for _, entry := range entries {
		order, err := u.orderRepo.GetByID(ctx, entry.OrderID)
		if err != nil {
			return compensated, err
		}
		if order.ID != "" {
			continue
		}

		compensation := entities.StockEntry{
			ID:        "comp-" + entry.ID,
			ProductID: entry.ProductID,
			Type:      entities.StockEntryTypeIncrease,
			Quantity:  entry.Quantity,
			Reason:    reconcileReason,
			OrderID:   entry.OrderID,
			CreatedAt: time.Now().UTC(),
		}
		if err := u.stockRepo.Create(ctx, compensation); err != nil {
			if errors.Is(err, interfaces.ErrConflict) {
				continue
			}
			return compensated, err
		}
		compensated++
		log.Printf("[stock][reconcile] compensated entry_id=%s product_id=%s quantity=%d order_id=%s", entry.ID, entry.ProductID, entry.Quantity, entry.OrderID)
	}

	if compensated > 0 || len(entries) > 0 {
		log.Printf("[stock][reconcile] sweep done scanned=%d compensated=%d", len(entries), compensated)
	}
	return compensated, nil
}
