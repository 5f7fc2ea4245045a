package entities

import "github.com/shopspring/decimal"

// Product is a catalog entry, read-only from the pipeline's perspective.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Orders may only reference products that are active at enrichment time.
// HasStockControl gates the ledger pre-check and the sale DECREASE fan-out.

type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Description     string          `json:"description,omitempty"`
	IsActive        bool            `json:"is_active"`
	HasStockControl bool            `json:"has_stock_control"`
}
