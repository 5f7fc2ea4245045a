package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"varejo_xpto/internal/domain/entities"
	"varejo_xpto/internal/domain/events"
	"varejo_xpto/internal/usecase/interfaces"
	mock_interfaces "varejo_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	orderRepo *mock_interfaces.MockIOrderRepository
	txnRepo   *mock_interfaces.MockITransactionRepository
	gateway   *mock_interfaces.MockIPaymentGateway
	publisher *mock_interfaces.MockIPipelinePublisher
}

func newPaymentUseCaseUnderTest(ctrl *gomock.Controller) (*PaymentUseCase, paymentMocks) {
	m := paymentMocks{
		orderRepo: mock_interfaces.NewMockIOrderRepository(ctrl),
		txnRepo:   mock_interfaces.NewMockITransactionRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
		publisher: mock_interfaces.NewMockIPipelinePublisher(ctrl),
	}
	return NewPaymentUseCase(m.orderRepo, m.txnRepo, m.gateway, m.publisher), m
}

func validProcessTransaction() events.ProcessTransaction {
	return events.ProcessTransaction{
		OrderID:         "ord-1",
		OrderTotalValue: decimal.RequireFromString("59.98"),
		PaymentData: entities.CardData{
			CardNumber:     "4111111111111111",
			CardHolderName: "ANA SILVA",
			ExpiryMonth:    "08",
			ExpiryYear:     "2027",
			CVV:            "123",
		},
		AddressData:  entities.Address{Street: "Rua A", Number: "10", Neighborhood: "Centro", City: "Sao Paulo", State: "SP", ZipCode: "01234-567", Country: "BR"},
		CustomerData: entities.Customer{CPF: "12345678909", Email: "ana@example.com", Name: "Ana"},
	}
}

func TestPaymentUseCase_Validations(t *testing.T) {
	uc, _ := newPaymentUseCaseUnderTest(gomock.NewController(t))

	t.Run("missing orderId", func(t *testing.T) {
		event := validProcessTransaction()
		event.OrderID = ""
		if err := uc.ProcessPayment(context.Background(), event); !errors.Is(err, ErrInvalidPaymentMessage) {
			t.Fatalf("expected ErrInvalidPaymentMessage, got %v", err)
		}
	})

	t.Run("incomplete card", func(t *testing.T) {
		event := validProcessTransaction()
		event.PaymentData.CVV = ""
		if err := uc.ProcessPayment(context.Background(), event); !errors.Is(err, ErrInvalidPaymentMessage) {
			t.Fatalf("expected ErrInvalidPaymentMessage, got %v", err)
		}
	})
}

func TestPaymentUseCase_Approved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newPaymentUseCaseUnderTest(ctrl)
	event := validProcessTransaction()

	m.orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPending}, nil)
	m.gateway.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.GatewayResult{
		Status:         entities.PaymentStatusApproved,
		AuthCode:       "AUTH-123",
		ProcessingTime: 250 * time.Millisecond,
	}, nil)
	m.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn entities.Transaction) error {
			if txn.ID != "txn-ord-1" {
				t.Fatalf("expected deterministic id, got %s", txn.ID)
			}
			if txn.PaymentStatus != entities.PaymentStatusApproved || txn.AuthCode != "AUTH-123" {
				t.Fatalf("unexpected transaction: %+v", txn)
			}
			if txn.CardData.CardNumber != "****-****-****-1111" {
				t.Fatalf("card number not masked: %s", txn.CardData.CardNumber)
			}
			if txn.CardData.CVV != "***" {
				t.Fatalf("cvv not masked: %s", txn.CardData.CVV)
			}
			if strings.Contains(txn.Customer.CPF, "12345678909") {
				t.Fatalf("cpf not masked: %s", txn.Customer.CPF)
			}
			if txn.ProcessingTime != 250 {
				t.Fatalf("expected processing time 250ms, got %d", txn.ProcessingTime)
			}
			return nil
		})
	m.publisher.EXPECT().PublishUpdateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update events.UpdateOrder) error {
			if update.Status != string(entities.OrderStatusProcessed) || update.TransactionID != "txn-ord-1" {
				t.Fatalf("unexpected update: %+v", update)
			}
			return nil
		})

	if err := uc.ProcessPayment(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPaymentUseCase_Declined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newPaymentUseCaseUnderTest(ctrl)
	event := validProcessTransaction()

	m.orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPending}, nil)
	m.gateway.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.GatewayResult{
		Status:  entities.PaymentStatusDeclined,
		Message: "Card declined by issuer",
	}, nil)
	m.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().PublishUpdateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update events.UpdateOrder) error {
			if update.Status != string(entities.OrderStatusCancelled) {
				t.Fatalf("expected CANCELLED, got %s", update.Status)
			}
			if !strings.HasPrefix(update.Reason, "Payment declined") {
				t.Fatalf("unexpected reason: %s", update.Reason)
			}
			return nil
		})

	if err := uc.ProcessPayment(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPaymentUseCase_RedeliveryConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newPaymentUseCaseUnderTest(ctrl)
	event := validProcessTransaction()

	m.orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPending}, nil)
	m.gateway.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.GatewayResult{
		Status:   entities.PaymentStatusApproved,
		AuthCode: "AUTH-999",
	}, nil)
	m.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(interfaces.ErrConflict)
	m.txnRepo.EXPECT().GetByID(gomock.Any(), "txn-ord-1").Return(entities.Transaction{
		ID: "txn-ord-1", OrderID: "ord-1", PaymentStatus: entities.PaymentStatusApproved,
	}, nil)
	m.publisher.EXPECT().PublishUpdateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update events.UpdateOrder) error {
			if update.Status != string(entities.OrderStatusProcessed) {
				t.Fatalf("expected republished PROCESSED, got %s", update.Status)
			}
			return nil
		})

	if err := uc.ProcessPayment(context.Background(), event); err != nil {
		t.Fatalf("expected conflict-as-success, got %v", err)
	}
}

func TestPaymentUseCase_OrderMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newPaymentUseCaseUnderTest(ctrl)
	event := validProcessTransaction()

	m.orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)
	m.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn entities.Transaction) error {
			if txn.ID != "txn-err-ord-1" || txn.PaymentStatus != entities.PaymentStatusError {
				t.Fatalf("unexpected error transaction: %+v", txn)
			}
			return nil
		})
	m.publisher.EXPECT().PublishUpdateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update events.UpdateOrder) error {
			if update.Status != string(entities.OrderStatusCancelled) {
				t.Fatalf("expected CANCELLED, got %s", update.Status)
			}
			if !strings.HasPrefix(update.Reason, "Payment processing error: ") {
				t.Fatalf("unexpected reason: %s", update.Reason)
			}
			return nil
		})

	if err := uc.ProcessPayment(context.Background(), event); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestPaymentUseCase_GatewayErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newPaymentUseCaseUnderTest(ctrl)
	event := validProcessTransaction()

	m.orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1"}, nil)
	m.gateway.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.GatewayResult{}, errors.New("context deadline exceeded"))
	m.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().PublishUpdateOrder(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.ProcessPayment(context.Background(), event)
	if err == nil || !strings.Contains(err.Error(), "deadline") {
		t.Fatalf("expected gateway error, got %v", err)
	}
}
