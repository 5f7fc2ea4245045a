package interfaces

import (
	"context"

	"varejo_xpto/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Create is a conditional insert on id (ErrConflict on duplicates).
// UpdateStatus is a conditional patch that only succeeds while the stored
// status still allows the transition; reason/transactionID are set when
// non-empty. GetByID returns a zero-value Order when the id is unknown.

type IOrderRepository interface {
	Create(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, reason, transactionID string) (entities.Order, error)
}
