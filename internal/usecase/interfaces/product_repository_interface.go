package interfaces

import (
	"context"

	"varejo_xpto/internal/domain/entities"
)

// IProductRepository abstracts read-only catalog access. GetByID returns a
// zero-value Product when the id is unknown.

type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
}
