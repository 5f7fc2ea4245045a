package interfaces

import (
	"context"
	"time"

	"varejo_xpto/internal/domain/entities"
)

// IStockRepository abstracts the append-only stock ledger.
//
// Create is a conditional insert on id; the ledger never updates or deletes
// entries. ListByProductID queries the product GSI. ListSaleDecreasesBefore
// feeds the reconciler: DECREASE entries carrying an order id created before
// the cutoff.

type IStockRepository interface {
	Create(ctx context.Context, entry entities.StockEntry) error
	ListByProductID(ctx context.Context, productID string) ([]entities.StockEntry, error)
	ListSaleDecreasesBefore(ctx context.Context, cutoff time.Time) ([]entities.StockEntry, error)
}
