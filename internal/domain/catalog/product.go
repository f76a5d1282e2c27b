package catalog

import (
	"fmt"
	"strings"

	"github.com/erp/storefront/internal/domain/shared"
	"github.com/erp/storefront/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item in the catalog.
// Name is the business identity but is not unique; callers that need
// precision use the ID.
type Product struct {
	shared.BaseAggregateRoot
	Name     string
	Category string
	Stock    int
	Price    decimal.Decimal // Unit price in valueobject.DefaultCurrency
}

// NewProduct creates a new product
func NewProduct(name, category string, stock int, price decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, shared.NewValidationError("Stock cannot be negative")
	}
	if price.IsNegative() {
		return nil, shared.NewValidationError("Price cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Category:          category,
		Stock:             stock,
		Price:             price,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// RestoreProduct rebuilds a product loaded from storage without emitting events
func RestoreProduct(id uuid.UUID, name, category string, stock int, price decimal.Decimal) (*Product, error) {
	if id == uuid.Nil {
		return nil, shared.NewValidationError("Product ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, shared.NewValidationError(fmt.Sprintf("Stock of product %s cannot be negative", name))
	}
	if price.IsNegative() {
		return nil, shared.NewValidationError(fmt.Sprintf("Price of product %s cannot be negative", name))
	}

	return &Product{
		BaseAggregateRoot: shared.RestoreBaseAggregateRoot(shared.BaseEntity{ID: id}),
		Name:              name,
		Category:          strings.TrimSpace(category),
		Stock:             stock,
		Price:             price,
	}, nil
}

// Update updates the product's name and category
func (p *Product) Update(name, category string) error {
	name = strings.TrimSpace(name)
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Category = strings.TrimSpace(category)
	p.Touch()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetPrice sets the unit price
func (p *Product) SetPrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewValidationError("Price cannot be negative")
	}
	if price.Currency() != valueobject.DefaultCurrency {
		return shared.NewValidationError("Price must be in " + string(valueobject.DefaultCurrency))
	}

	p.Price = price.Amount()
	p.Touch()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// DecreaseStock removes quantity units from stock.
// Stock never goes negative: asking for more than is available fails and
// leaves stock unchanged.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewValidationError("Quantity must be positive")
	}
	if quantity > p.Stock {
		return shared.NewInsufficientStockError(fmt.Sprintf("Not enough stock for %s (requested %d, available %d)", p.Name, quantity, p.Stock))
	}

	oldStock := p.Stock
	p.Stock -= quantity
	p.Touch()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStockChangedEvent(p, oldStock, StockChangeReasonSale))

	return nil
}

// IncreaseStock adds quantity units to stock
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewValidationError("Quantity must be positive")
	}

	oldStock := p.Stock
	p.Stock += quantity
	p.Touch()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductStockChangedEvent(p, oldStock, StockChangeReasonRestock))

	return nil
}

// HasStock returns true if at least quantity units are available
func (p *Product) HasStock(quantity int) bool {
	return quantity <= p.Stock
}

// HasName reports whether the product's name equals name, ignoring case
func (p *Product) HasName(name string) bool {
	return shared.EqualFold(p.Name, name)
}

// MatchesKeyword reports whether keyword occurs in the name or the category,
// ignoring case. An empty keyword matches every product.
func (p *Product) MatchesKeyword(keyword string) bool {
	return shared.ContainsFold(p.Name, keyword) || shared.ContainsFold(p.Category, keyword)
}

// GetPriceMoney returns the unit price as Money
func (p *Product) GetPriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.Price)
}

// StockValue returns price times stock on hand
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewValidationError("Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewValidationError("Product name cannot exceed 200 characters")
	}
	return nil
}
