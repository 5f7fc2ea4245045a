package interfaces

import (
	"context"
	"time"

	"varejo_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// GatewayResult is the gateway's answer for one charge attempt. Status is
// APPROVED, DECLINED or ERROR; AuthCode is set only on approval; Message
// carries the decline/error detail.
type GatewayResult struct {
	Status         entities.PaymentStatus
	AuthCode       string
	Message        string
	ProcessingTime time.Duration
}

// IPaymentGateway abstracts the payment provider. The pipeline ships a
// deterministic simulator; the port keeps the worker independent of it.
type IPaymentGateway interface {
	Process(ctx context.Context, amount decimal.Decimal, card entities.CardData) (GatewayResult, error)
}
