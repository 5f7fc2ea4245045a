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
	"varejo_xpto/pkg"
)

var (
	ErrInvalidPaymentMessage = errors.New("invalid payment message")
	ErrOrderNotFound         = errors.New("order not found")
)

// IPaymentUseCase charges one order through the gateway and records the
// authoritative Transaction.
//
// The transaction id is derived from the order id, so a redelivered message
// resolves as Conflict; the stored outcome is then re-announced to the
// update queue and the record succeeds without a second Transaction row.
// The gateway is still called on redelivery; its new result is discarded.

type IPaymentUseCase interface {
	ProcessPayment(ctx context.Context, event events.ProcessTransaction) error
}

type PaymentUseCase struct {
	orderRepo interfaces.IOrderRepository
	txnRepo   interfaces.ITransactionRepository
	gateway   interfaces.IPaymentGateway
	publisher interfaces.IPipelinePublisher
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	orderRepo interfaces.IOrderRepository,
	txnRepo interfaces.ITransactionRepository,
	gateway interfaces.IPaymentGateway,
	publisher interfaces.IPipelinePublisher,
) *PaymentUseCase {
	return &PaymentUseCase{orderRepo: orderRepo, txnRepo: txnRepo, gateway: gateway, publisher: publisher}
}

func (u *PaymentUseCase) ProcessPayment(ctx context.Context, event events.ProcessTransaction) error {
	if err := validatePaymentMessage(event); err != nil {
		return err
	}
	log.Printf("[payment][usecase] processing order_id=%s amount=%s", event.OrderID, event.OrderTotalValue.String())

	err := u.process(ctx, event)
	if err == nil {
		return nil
	}

	// Best-effort compensation: record the failure and push the order to
	// CANCELLED, then propagate the original error.
	u.recordProcessingError(ctx, event, err)
	return err
}

func (u *PaymentUseCase) process(ctx context.Context, event events.ProcessTransaction) error {
	order, err := u.orderRepo.GetByID(ctx, event.OrderID)
	if err != nil {
		return err
	}
	if order.ID == "" {
		return fmt.Errorf("order %s: %w", event.OrderID, ErrOrderNotFound)
	}

	result, err := u.gateway.Process(ctx, event.OrderTotalValue, event.PaymentData)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	txn := entities.Transaction{
		ID:             entities.TransactionID(order.ID),
		OrderID:        order.ID,
		Amount:         event.OrderTotalValue,
		PaymentStatus:  result.Status,
		AuthCode:       result.AuthCode,
		GatewayMessage: result.Message,
		ProcessingTime: result.ProcessingTime.Milliseconds(),
		CardData:       maskCard(event.PaymentData),
		Customer:       maskCustomer(event.CustomerData),
		AddressData:    event.AddressData,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := u.txnRepo.Create(ctx, txn); err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return u.republishExisting(ctx, txn.ID, order.ID)
		}
		return err
	}
	log.Printf("[payment][usecase] transaction recorded txn_id=%s order_id=%s status=%s elapsed_ms=%d", txn.ID, order.ID, txn.PaymentStatus, txn.ProcessingTime)

	return u.publisher.PublishUpdateOrder(ctx, updateFor(order.ID, txn))
}

// republishExisting handles redelivery after a crash between the insert and
// the update publish: announce the stored outcome instead of the result of
// the gateway call that preceded the conflicting insert.
func (u *PaymentUseCase) republishExisting(ctx context.Context, txnID, orderID string) error {
	existing, err := u.txnRepo.GetByID(ctx, txnID)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return fmt.Errorf("transaction %s vanished after conflict", txnID)
	}
	log.Printf("[payment][usecase] transaction already recorded, republishing txn_id=%s order_id=%s status=%s", txnID, orderID, existing.PaymentStatus)
	return u.publisher.PublishUpdateOrder(ctx, updateFor(orderID, existing))
}

func (u *PaymentUseCase) recordProcessingError(ctx context.Context, event events.ProcessTransaction, cause error) {
	now := time.Now().UTC()
	txn := entities.Transaction{
		ID:             entities.ErrorTransactionID(event.OrderID),
		OrderID:        event.OrderID,
		Amount:         event.OrderTotalValue,
		PaymentStatus:  entities.PaymentStatusError,
		GatewayMessage: cause.Error(),
		CardData:       maskCard(event.PaymentData),
		Customer:       maskCustomer(event.CustomerData),
		AddressData:    event.AddressData,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.txnRepo.Create(ctx, txn); err != nil && !errors.Is(err, interfaces.ErrConflict) {
		log.Printf("[payment][usecase] error-transaction insert failed order_id=%s err=%v", event.OrderID, err)
	}

	update := events.UpdateOrder{
		OrderID: event.OrderID,
		Status:  string(entities.OrderStatusCancelled),
		Reason:  "Payment processing error: " + cause.Error(),
	}
	if err := u.publisher.PublishUpdateOrder(ctx, update); err != nil {
		log.Printf("[payment][usecase] cancel publish failed order_id=%s err=%v", event.OrderID, err)
	}
}

func updateFor(orderID string, txn entities.Transaction) events.UpdateOrder {
	update := events.UpdateOrder{OrderID: orderID, TransactionID: txn.ID}
	switch txn.PaymentStatus {
	case entities.PaymentStatusApproved:
		update.Status = string(entities.OrderStatusProcessed)
	case entities.PaymentStatusDeclined:
		update.Status = string(entities.OrderStatusCancelled)
		update.Reason = "Payment declined: " + txn.GatewayMessage
	default:
		update.Status = string(entities.OrderStatusCancelled)
		update.Reason = "Payment processing error: " + txn.GatewayMessage
	}
	return update
}

func validatePaymentMessage(event events.ProcessTransaction) error {
	if event.OrderID == "" {
		return fmt.Errorf("missing orderId: %w", ErrInvalidPaymentMessage)
	}
	if event.OrderTotalValue.IsNegative() {
		return fmt.Errorf("negative orderTotalValue: %w", ErrInvalidPaymentMessage)
	}
	card := event.PaymentData
	if card.CardNumber == "" || card.CardHolderName == "" || card.ExpiryMonth == "" || card.ExpiryYear == "" || card.CVV == "" {
		return fmt.Errorf("incomplete paymentData: %w", ErrInvalidPaymentMessage)
	}
	return nil
}

func maskCard(card entities.CardData) entities.MaskedCard {
	return entities.MaskedCard{
		CardNumber:     pkg.MaskCardNumber(card.CardNumber),
		CardHolderName: card.CardHolderName,
		ExpiryMonth:    card.ExpiryMonth,
		ExpiryYear:     card.ExpiryYear,
		CVV:            pkg.MaskCVV(card.CVV),
	}
}

func maskCustomer(customer entities.Customer) entities.Customer {
	return entities.Customer{
		CPF:   pkg.MaskCPF(customer.CPF),
		Email: customer.Email,
		Name:  customer.Name,
	}
}
