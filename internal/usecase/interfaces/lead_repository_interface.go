package interfaces

import (
	"context"

	"varejo_xpto/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.
//
// FindByEmail queries the email GSI; callers filter the result set by
// normalized cpf to resolve the (email, cpf) identity. Create is a
// conditional insert on id.

type ILeadRepository interface {
	FindByEmail(ctx context.Context, email string) ([]entities.Lead, error)
	Create(ctx context.Context, lead entities.Lead) (entities.Lead, error)
}
