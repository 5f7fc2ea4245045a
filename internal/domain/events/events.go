package events

import (
	"varejo_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Queue and topic payloads exchanged between the pipeline workers. All
// messages are JSON; the field names here are the wire contract.

// SubjectNewOrderRequest is the SNS subject used on the initialize topic.
const SubjectNewOrderRequest = "New Order Request"

// RequestedItem is an unenriched line item as submitted by the client.
type RequestedItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// InitializeOrder is published by the ingress to the initialize topic and
// fans out to the lead and order queues.
type InitializeOrder struct {
	OrderID      string            `json:"orderId"`
	CustomerData entities.Customer `json:"customerData"`
	PaymentData  entities.CardData `json:"paymentData"`
	AddressData  entities.Address  `json:"addressData"`
	Items        []RequestedItem   `json:"items"`
}

// StockOperation mirrors entities.StockEntryType on the wire.
const (
	StockOperationIncrease = "INCREASE"
	StockOperationDecrease = "DECREASE"
)

// StockUpdate asks the stock worker to append one ledger entry.
type StockUpdate struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Operation string `json:"operation"`
	OrderID   string `json:"orderId,omitempty"`
	Reason    string `json:"reason"`
}

// ProcessTransaction asks the payment worker to charge one order.
type ProcessTransaction struct {
	OrderID         string            `json:"orderId"`
	OrderTotalValue decimal.Decimal   `json:"orderTotalValue"`
	PaymentData     entities.CardData `json:"paymentData"`
	AddressData     entities.Address  `json:"addressData"`
	CustomerData    entities.Customer `json:"customerData"`
}

// UpdateOrder asks the update worker to move an order through its state
// machine.
type UpdateOrder struct {
	OrderID       string `json:"orderId"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}
