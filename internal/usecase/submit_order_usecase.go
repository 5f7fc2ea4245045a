package usecase

import (
	"context"
	"errors"
	"log"

	"varejo_xpto/internal/domain/entities"
	"varejo_xpto/internal/domain/events"
	"varejo_xpto/internal/usecase/interfaces"
	"varejo_xpto/pkg"
)

var ErrNoItems = errors.New("order must contain at least one item")

// ISubmitOrderUseCase is the synchronous ingress operation: assign an order
// id and hand the submission to the fan-out topic. Nothing is written to the
// store on this path, so a failed publish leaves no partial state behind.

type ISubmitOrderUseCase interface {
	Submit(ctx context.Context, customer entities.Customer, payment entities.CardData, address entities.Address, items []events.RequestedItem) (string, error)
}

type SubmitOrderUseCase struct {
	publisher interfaces.IInitializeOrderPublisher
}

var _ ISubmitOrderUseCase = (*SubmitOrderUseCase)(nil)

func NewSubmitOrderUseCase(publisher interfaces.IInitializeOrderPublisher) *SubmitOrderUseCase {
	return &SubmitOrderUseCase{publisher: publisher}
}

func (u *SubmitOrderUseCase) Submit(ctx context.Context, customer entities.Customer, payment entities.CardData, address entities.Address, items []events.RequestedItem) (string, error) {
	if len(items) == 0 {
		return "", ErrNoItems
	}

	orderID := pkg.NewOrderID()
	event := events.InitializeOrder{
		OrderID:      orderID,
		CustomerData: customer,
		PaymentData:  payment,
		AddressData:  address,
		Items:        items,
	}

	if err := u.publisher.PublishInitializeOrder(ctx, event); err != nil {
		log.Printf("[ingress][usecase] publish failed order_id=%s err=%v", orderID, err)
		return "", err
	}
	log.Printf("[ingress][usecase] order submitted order_id=%s email=%s items=%d", orderID, pkg.MaskEmail(customer.Email), len(items))
	return orderID, nil
}
