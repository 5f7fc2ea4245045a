package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"varejo_xpto/internal/domain/entities"
	"varejo_xpto/internal/domain/events"
	"varejo_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingOrderID    = errors.New("missing orderId")
	ErrProductInactive   = errors.New("product is inactive")
	ErrInsufficientStock = errors.New("insufficient stock")
)

const unknownProductName = "Unknown Product"

// IOrderUseCase creates the order aggregate from an InitializeOrder event.
//
// Phases, in order:
//
//	A. enrich items against the catalog, pre-check ledger stock
//	B. fan out sale DECREASEs to the stock queue (concurrent, first error wins)
//	C. find-or-create the lead
//	D. conditional insert of the PENDING order (duplicate -> no-op success)
//	E. dispatch the payment request (failure logged, never fails the record)
//
// Published DECREASEs are not rolled back on later-phase failure; the stock
// reconciler repairs entries whose order never materialized.

type IOrderUseCase interface {
	ProcessInitializeOrder(ctx context.Context, event events.InitializeOrder) error
}

type OrderUseCase struct {
	orderRepo   interfaces.IOrderRepository
	productRepo interfaces.IProductRepository
	stockRepo   interfaces.IStockRepository
	leads       ILeadUseCase
	publisher   interfaces.IPipelinePublisher
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orderRepo interfaces.IOrderRepository,
	productRepo interfaces.IProductRepository,
	stockRepo interfaces.IStockRepository,
	leads ILeadUseCase,
	publisher interfaces.IPipelinePublisher,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		leads:       leads,
		publisher:   publisher,
	}
}

func (u *OrderUseCase) ProcessInitializeOrder(ctx context.Context, event events.InitializeOrder) error {
	if event.OrderID == "" {
		return ErrMissingOrderID
	}
	if len(event.Items) == 0 {
		return ErrNoItems
	}
	log.Printf("[order][usecase] processing order_id=%s items=%d", event.OrderID, len(event.Items))

	// Phase A - enrichment.
	enriched, totalValue, totalItems, err := u.enrichItems(ctx, event.Items)
	if err != nil {
		log.Printf("[order][usecase] enrichment failed order_id=%s err=%v", event.OrderID, err)
		return err
	}

	// Phase B - stock reservation fan-out.
	if err := u.publishStockDecreases(ctx, event.OrderID, enriched); err != nil {
		log.Printf("[order][usecase] stock fan-out failed order_id=%s err=%v", event.OrderID, err)
		return err
	}

	// Phase C - lead association.
	lead, err := u.leads.FindOrCreate(ctx, event.CustomerData)
	if err != nil {
		log.Printf("[order][usecase] lead association failed order_id=%s err=%v", event.OrderID, err)
		return err
	}

	// Phase D - conditional order creation.
	now := time.Now().UTC()
	order := entities.Order{
		ID:     event.OrderID,
		LeadID: lead.ID,
		Customer: entities.Customer{
			CPF:   lead.CPF,
			Email: lead.Email,
			Name:  event.CustomerData.Name,
		},
		Items:       enriched,
		TotalItems:  totalItems,
		TotalValue:  totalValue,
		Status:      entities.OrderStatusPending,
		AddressData: event.AddressData,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			// Duplicate delivery after a completed first run: the order
			// exists and payment was already dispatched once.
			log.Printf("[order][usecase] order already exists, skipping order_id=%s", event.OrderID)
			return nil
		}
		log.Printf("[order][usecase] order create failed order_id=%s err=%v", event.OrderID, err)
		return err
	}
	log.Printf("[order][usecase] order created order_id=%s lead_id=%s total=%s", order.ID, lead.ID, totalValue.String())

	// Phase E - payment dispatch. The order already exists in PENDING; a
	// failed publish is re-driven out of band.
	if event.PaymentData != (entities.CardData{}) && event.AddressData != (entities.Address{}) {
		err := u.publisher.PublishProcessTransaction(ctx, events.ProcessTransaction{
			OrderID:         order.ID,
			OrderTotalValue: totalValue,
			PaymentData:     event.PaymentData,
			AddressData:     event.AddressData,
			CustomerData:    order.Customer,
		})
		if err != nil {
			log.Printf("[order][usecase] payment dispatch failed order_id=%s err=%v", order.ID, err)
		}
	}
	return nil
}

func (u *OrderUseCase) enrichItems(ctx context.Context, requested []events.RequestedItem) ([]entities.OrderItem, decimal.Decimal, int, error) {
	enriched := make([]entities.OrderItem, 0, len(requested))
	totalValue := decimal.Zero
	totalItems := 0

	for _, item := range requested {
		product, err := u.productRepo.GetByID(ctx, item.ID)
		if err != nil {
			return nil, decimal.Zero, 0, err
		}

		if product.ID == "" {
			// Unknown products price at zero and skip stock control.
			enriched = append(enriched, entities.OrderItem{
				ID:          item.ID,
				Quantity:    item.Quantity,
				ProductName: unknownProductName,
				UnitPrice:   decimal.Zero,
				TotalPrice:  decimal.Zero,
			})
			totalItems += item.Quantity
			continue
		}
		if !product.IsActive {
			return nil, decimal.Zero, 0, fmt.Errorf("product %s: %w", product.ID, ErrProductInactive)
		}

		if product.HasStockControl {
			entries, err := u.stockRepo.ListByProductID(ctx, product.ID)
			if err != nil {
				return nil, decimal.Zero, 0, err
			}
			if current := entities.LedgerSum(entries); current < item.Quantity {
				return nil, decimal.Zero, 0, fmt.Errorf("product %s: available %d, requested %d: %w", product.ID, current, item.Quantity, ErrInsufficientStock)
			}
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		enriched = append(enriched, entities.OrderItem{
			ID:              product.ID,
			Quantity:        item.Quantity,
			ProductName:     product.Name,
			UnitPrice:       product.Price,
			TotalPrice:      lineTotal,
			HasStockControl: product.HasStockControl,
		})
		totalValue = totalValue.Add(lineTotal)
		totalItems += item.Quantity
	}
	return enriched, totalValue, totalItems, nil
}

func (u *OrderUseCase) publishStockDecreases(ctx context.Context, orderID string, items []entities.OrderItem) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, item := range items {
		if !item.HasStockControl || item.Quantity <= 0 {
			continue
		}
		wg.Add(1)
		go func(item entities.OrderItem) {
			defer wg.Done()
			err := u.publisher.PublishStockUpdate(ctx, events.StockUpdate{
				ProductID: item.ID,
				Quantity:  item.Quantity,
				Operation: events.StockOperationDecrease,
				OrderID:   orderID,
				Reason:    "Order sale",
			})
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(item)
	}
	wg.Wait()
	return firstErr
}
