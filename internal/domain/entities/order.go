package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the order state machine: PENDING is initial, PROCESSED and
// CANCELLED are terminal.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusProcessed OrderStatus = "PROCESSED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// CanTransitionTo validates a status change against the transition table
// {PENDING -> {PROCESSED, CANCELLED}}. Terminal states accept nothing.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s != OrderStatusPending {
		return false
	}
	return next == OrderStatusProcessed || next == OrderStatusCancelled
}

// OrderItem is a catalog-enriched line item. TotalPrice = UnitPrice x Quantity
// at enrichment time and never changes afterwards.
type OrderItem struct {
	ID              string          `json:"id"`
	Quantity        int             `json:"quantity"`
	ProductName     string          `json:"product_name"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	HasStockControl bool            `json:"has_stock_control"`
}

// Order is the purchase aggregate.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Created by the order worker with status PENDING; mutated only by the
// update worker; never deleted. TotalValue is the sum over item totals at
// creation time and is immutable after.
type Order struct {
	ID            string          `json:"id"`
	LeadID        string          `json:"lead_id"`
	Customer      Customer        `json:"customer"`
	Items         []OrderItem     `json:"items"`
	TotalItems    int             `json:"total_items"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Status        OrderStatus     `json:"status"`
	AddressData   Address         `json:"address_data"`
	Reason        string          `json:"reason,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
