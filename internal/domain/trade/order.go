package trade

import (
	"time"

	"github.com/erp/storefront/internal/domain/catalog"
	"github.com/erp/storefront/internal/domain/partner"
	"github.com/erp/storefront/internal/domain/shared"
	"github.com/erp/storefront/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order. The product is keyed by its ID;
// the pointer is a shared reference owned by the catalog.
type OrderItem struct {
	ProductID uuid.UUID
	Product   *catalog.Product
	Quantity  int
}

// UnitPrice returns the product's current unit price
func (i OrderItem) UnitPrice() decimal.Decimal {
	return i.Product.Price
}

// LineTotal returns quantity times unit price
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// GetLineTotalMoney returns the line total as Money
func (i OrderItem) GetLineTotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(i.LineTotal())
}

// Order is a customer's purchase. It is fully populated when placed and
// not modified afterwards.
type Order struct {
	shared.BaseAggregateRoot
	Customer *partner.Customer
	Items    []OrderItem // Insertion order, at most one item per product
	PlacedAt time.Time
}

// NewOrder creates an empty order for a customer
func NewOrder(customer *partner.Customer) (*Order, error) {
	if customer == nil {
		return nil, shared.NewValidationError("Order requires a customer")
	}

	base := shared.NewBaseAggregateRoot()
	return &Order{
		BaseAggregateRoot: base,
		Customer:          customer,
		Items:             make([]OrderItem, 0),
		PlacedAt:          base.CreatedAt,
	}, nil
}

// RestoreOrder rebuilds an order loaded from storage
func RestoreOrder(id uuid.UUID, customer *partner.Customer, placedAt time.Time) (*Order, error) {
	if id == uuid.Nil {
		return nil, shared.NewValidationError("Order ID cannot be empty")
	}
	if customer == nil {
		return nil, shared.NewValidationError("Order requires a customer")
	}

	return &Order{
		BaseAggregateRoot: shared.RestoreBaseAggregateRoot(shared.RestoreBaseEntity(id, placedAt)),
		Customer:          customer,
		Items:             make([]OrderItem, 0),
		PlacedAt:          placedAt,
	}, nil
}

// AddProduct adds quantity units of product to the order.
// Adding a product that is already on the order accumulates its quantity.
func (o *Order) AddProduct(product *catalog.Product, quantity int) error {
	if product == nil {
		return shared.NewValidationError("Order item requires a product")
	}
	if quantity <= 0 {
		return shared.NewValidationError("Quantity must be positive")
	}

	if item := o.GetItemByProduct(product.ID); item != nil {
		item.Quantity += quantity
		return nil
	}

	o.Items = append(o.Items, OrderItem{
		ProductID: product.ID,
		Product:   product,
		Quantity:  quantity,
	})
	return nil
}

// MarkPlaced records the OrderPlaced event once all items are added
func (o *Order) MarkPlaced() {
	o.AddDomainEvent(NewOrderPlacedEvent(o))
}

// CustomerID returns the owning customer's ID
func (o *Order) CustomerID() uuid.UUID {
	return o.Customer.ID
}

// BelongsTo reports whether the order was placed by customerID
func (o *Order) BelongsTo(customerID uuid.UUID) bool {
	return o.Customer != nil && o.Customer.ID == customerID
}

// GetItemByProduct returns the item for a product ID
func (o *Order) GetItemByProduct(productID uuid.UUID) *OrderItem {
	for idx := range o.Items {
		if o.Items[idx].ProductID == productID {
			return &o.Items[idx]
		}
	}
	return nil
}

// Quantity returns the ordered quantity of a product, zero if absent
func (o *Order) Quantity(productID uuid.UUID) int {
	if item := o.GetItemByProduct(productID); item != nil {
		return item.Quantity
	}
	return 0
}

// ItemCount returns the number of distinct products
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// TotalQuantity returns the sum of all item quantities
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// Total returns the sum of all line totals at current prices
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// GetTotalMoney returns the order total as Money
func (o *Order) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.Total())
}
