package interfaces

import (
	"context"

	"varejo_xpto/internal/domain/events"
)

// IInitializeOrderPublisher publishes the order-submission event to the
// fan-out topic (one delivery per subscribed queue).

type IInitializeOrderPublisher interface {
	PublishInitializeOrder(ctx context.Context, event events.InitializeOrder) error
}

// IPipelinePublisher publishes the point-to-point messages between workers.
type IPipelinePublisher interface {
	PublishStockUpdate(ctx context.Context, event events.StockUpdate) error
	PublishProcessTransaction(ctx context.Context, event events.ProcessTransaction) error
	PublishUpdateOrder(ctx context.Context, event events.UpdateOrder) error
}
