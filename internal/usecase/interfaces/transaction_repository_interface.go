package interfaces

import (
	"context"

	"varejo_xpto/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
// Create is a conditional insert on id (ErrConflict on duplicates).

type ITransactionRepository interface {
	Create(ctx context.Context, txn entities.Transaction) error
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
}
