package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the gateway outcome recorded on a transaction.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusDeclined PaymentStatus = "DECLINED"
	PaymentStatusError    PaymentStatus = "ERROR"
)

// MaskedCard is the persisted projection of the payment instrument: PAN
// reduced to last-four, CVV replaced with a fixed sentinel.
type MaskedCard struct {
	CardNumber     string `json:"card_number"`
	CardHolderName string `json:"card_holder_name"`
	ExpiryMonth    string `json:"expiry_month"`
	ExpiryYear     string `json:"expiry_year"`
	CVV            string `json:"cvv"`
}

// Transaction is the authoritative payment record for one order attempt.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The id is derived from the order id ("txn-<orderId>"), so a redelivered
// payment message hits the conditional insert and resolves as an idempotent
// no-op. No unmasked card data is ever persisted.
type Transaction struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"order_id"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
	AuthCode       string          `json:"auth_code,omitempty"`
	GatewayMessage string          `json:"gateway_message,omitempty"`
	ProcessingTime int64           `json:"processing_time_ms"`
	CardData       MaskedCard      `json:"card_data"`
	Customer       Customer        `json:"customer_data"`
	AddressData    Address         `json:"address_data"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TransactionID derives the deterministic transaction id for an order.
func TransactionID(orderID string) string { return "txn-" + orderID }

// ErrorTransactionID derives the id used when persisting a processing
// failure, kept distinct so it never blocks the success-path record.
func ErrorTransactionID(orderID string) string { return "txn-err-" + orderID }
