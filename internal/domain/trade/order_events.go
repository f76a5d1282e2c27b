package trade

import (
	"github.com/erp/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderPlaced = "OrderPlaced"
)

// OrderPlacedEventItem is an item snapshot in the OrderPlaced event
type OrderPlacedEventItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// OrderPlacedEvent is published when an order is recorded
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderID      uuid.UUID              `json:"order_id"`
	CustomerID   uuid.UUID              `json:"customer_id"`
	CustomerName string                 `json:"customer_name"`
	Items        []OrderPlacedEventItem `json:"items"`
	TotalAmount  decimal.Decimal        `json:"total_amount"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent
func NewOrderPlacedEvent(order *Order) *OrderPlacedEvent {
	items := make([]OrderPlacedEventItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderPlacedEventItem{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice(),
		}
	}

	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		CustomerID:      order.CustomerID(),
		CustomerName:    order.Customer.Name,
		Items:           items,
		TotalAmount:     order.Total(),
	}
}
