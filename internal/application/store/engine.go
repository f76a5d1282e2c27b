package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/erp/storefront/internal/domain/catalog"
	"github.com/erp/storefront/internal/domain/partner"
	"github.com/erp/storefront/internal/domain/shared"
	"github.com/erp/storefront/internal/domain/shared/valueobject"
	"github.com/erp/storefront/internal/domain/trade"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNoSnapshotStore is returned by Save and Load when the engine was built without a store
var ErrNoSnapshotStore = errors.New("no snapshot store configured")

// EngineConfig holds engine behavior settings
type EngineConfig struct {
	// AtomicOrders validates every order line before any stock is touched.
	// When false, lines are committed one by one and a failing line leaves
	// the stock of earlier lines decremented with no order recorded.
	AtomicOrders bool
}

// DefaultEngineConfig returns the default engine configuration
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{AtomicOrders: false}
}

// Engine owns the product, customer and order collections and enforces
// order placement rules. It is not safe for concurrent use.
type Engine struct {
	cfg            EngineConfig
	products       []*catalog.Product
	customers      []*partner.Customer
	orders         []*trade.Order
	snapshots      SnapshotStore
	eventPublisher shared.EventPublisher
	validate       *validator.Validate
}

// NewEngine creates an empty engine. snapshots may be nil when Save/Load are not needed.
func NewEngine(cfg EngineConfig, snapshots SnapshotStore) *Engine {
	return &Engine{
		cfg:       cfg,
		products:  make([]*catalog.Product, 0),
		customers: make([]*partner.Customer, 0),
		orders:    make([]*trade.Order, 0),
		snapshots: snapshots,
		validate:  newValidator(),
	}
}

// SetEventPublisher sets the publisher that receives domain events
func (e *Engine) SetEventPublisher(publisher shared.EventPublisher) {
	e.eventPublisher = publisher
}

// AddProduct appends a product to the catalog. Names are not required to be unique.
func (e *Engine) AddProduct(ctx context.Context, product *catalog.Product) error {
	if product == nil {
		return shared.NewValidationError("Product cannot be nil")
	}

	e.products = append(e.products, product)
	e.publish(ctx, product)
	return nil
}

// CreateProduct validates the request, builds the product and adds it
func (e *Engine) CreateProduct(ctx context.Context, req CreateProductRequest) (*catalog.Product, error) {
	if err := e.validateStruct(req); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, req.Category, req.Stock, req.Price)
	if err != nil {
		return nil, err
	}
	if err := e.AddProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// RegisterCustomer appends a customer
func (e *Engine) RegisterCustomer(ctx context.Context, customer *partner.Customer) error {
	if customer == nil {
		return shared.NewValidationError("Customer cannot be nil")
	}

	e.customers = append(e.customers, customer)
	e.publish(ctx, customer)
	return nil
}

// RegisterCustomerByName creates and registers a customer
func (e *Engine) RegisterCustomerByName(ctx context.Context, name string) (*partner.Customer, error) {
	if err := e.validateStruct(RegisterCustomerRequest{Name: name}); err != nil {
		return nil, err
	}

	customer, err := partner.NewCustomer(name)
	if err != nil {
		return nil, err
	}
	if err := e.RegisterCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// PlaceOrder creates an order for a customer from the requested lines.
//
// A line with a ProductID is resolved to that product. Otherwise the product
// is resolved by case-insensitive exact name match, first match wins.
// Lines resolving to the same product accumulate on one item.
// Fails with a NotFound error for an unknown customer or product and an
// InsufficientStock error when a quantity exceeds stock. See
// EngineConfig.AtomicOrders for what a failure leaves behind.
func (e *Engine) PlaceOrder(ctx context.Context, customerID uuid.UUID, lines []OrderLine) (*trade.Order, error) {
	customer := e.FindCustomer(customerID)
	if customer == nil {
		return nil, shared.NewNotFoundError(fmt.Sprintf("Customer %s not found", customerID))
	}
	if err := e.validateStruct(placeOrderInput{Lines: lines}); err != nil {
		return nil, err
	}

	order, err := trade.NewOrder(customer)
	if err != nil {
		return nil, err
	}

	var touched []*catalog.Product
	if e.cfg.AtomicOrders {
		touched, err = e.fillOrderAtomically(order, lines)
	} else {
		touched, err = e.fillOrder(order, lines)
	}
	if err != nil {
		e.publishProducts(ctx, touched)
		return nil, err
	}

	order.MarkPlaced()
	e.orders = append(e.orders, order)

	e.publishProducts(ctx, touched)
	e.publish(ctx, order)

	return order, nil
}

// fillOrder commits lines one at a time in request order
func (e *Engine) fillOrder(order *trade.Order, lines []OrderLine) ([]*catalog.Product, error) {
	touched := make([]*catalog.Product, 0, len(lines))

	for _, line := range lines {
		product, err := e.resolveLine(line)
		if err != nil {
			return touched, err
		}
		if err := product.DecreaseStock(line.Quantity); err != nil {
			return touched, err
		}
		touched = append(touched, product)

		if err := order.AddProduct(product, line.Quantity); err != nil {
			return touched, err
		}
	}

	return touched, nil
}

// fillOrderAtomically resolves every line and checks the summed demand per
// product before decrementing anything
func (e *Engine) fillOrderAtomically(order *trade.Order, lines []OrderLine) ([]*catalog.Product, error) {
	resolved := make([]*catalog.Product, len(lines))
	demand := make(map[uuid.UUID]int, len(lines))

	for i, line := range lines {
		product, err := e.resolveLine(line)
		if err != nil {
			return nil, err
		}
		resolved[i] = product
		demand[product.ID] += line.Quantity

		if !product.HasStock(demand[product.ID]) {
			return nil, shared.NewInsufficientStockError(fmt.Sprintf(
				"Not enough stock for %s (requested %d, available %d)",
				product.Name, demand[product.ID], product.Stock))
		}
	}

	touched := make([]*catalog.Product, 0, len(lines))
	for i, line := range lines {
		product := resolved[i]
		if err := product.DecreaseStock(line.Quantity); err != nil {
			return touched, err
		}
		touched = append(touched, product)

		if err := order.AddProduct(product, line.Quantity); err != nil {
			return touched, err
		}
	}

	return touched, nil
}

// RestockProduct adds quantity units to a product's stock
func (e *Engine) RestockProduct(ctx context.Context, productID uuid.UUID, quantity int) (*catalog.Product, error) {
	product := e.FindProduct(productID)
	if product == nil {
		return nil, shared.NewNotFoundError(fmt.Sprintf("Product %s not found", productID))
	}
	if err := product.IncreaseStock(quantity); err != nil {
		return nil, err
	}

	e.publish(ctx, product)
	return product, nil
}

// UpdateProduct changes a product's name, category and price.
// Stock is left alone; use RestockProduct or PlaceOrder to move it.
func (e *Engine) UpdateProduct(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*catalog.Product, error) {
	product := e.FindProduct(productID)
	if product == nil {
		return nil, shared.NewNotFoundError(fmt.Sprintf("Product %s not found", productID))
	}
	if err := e.validateStruct(req); err != nil {
		return nil, err
	}

	if product.Name != strings.TrimSpace(req.Name) || product.Category != strings.TrimSpace(req.Category) {
		if err := product.Update(req.Name, req.Category); err != nil {
			return nil, err
		}
	}
	if !product.Price.Equal(req.Price) {
		if err := product.SetPrice(valueobject.NewMoneyUSD(req.Price)); err != nil {
			return nil, err
		}
	}

	e.publish(ctx, product)
	return product, nil
}

// RenameCustomer changes a customer's name. Past orders and invoices show the new name.
func (e *Engine) RenameCustomer(ctx context.Context, customerID uuid.UUID, name string) (*partner.Customer, error) {
	customer := e.FindCustomer(customerID)
	if customer == nil {
		return nil, shared.NewNotFoundError(fmt.Sprintf("Customer %s not found", customerID))
	}
	if err := e.validateStruct(RenameCustomerRequest{Name: name}); err != nil {
		return nil, err
	}
	if err := customer.Rename(name); err != nil {
		return nil, err
	}

	e.publish(ctx, customer)
	return customer, nil
}

// SearchProducts returns products whose name or category contains keyword,
// ignoring case, in catalog order. An empty keyword matches every product.
func (e *Engine) SearchProducts(keyword string) []*catalog.Product {
	result := make([]*catalog.Product, 0)
	for _, p := range e.products {
		if p.MatchesKeyword(keyword) {
			result = append(result, p)
		}
	}
	return result
}

// MatchProducts returns products whose name contains fragment, ignoring case
func (e *Engine) MatchProducts(fragment string) []*catalog.Product {
	fragment = strings.TrimSpace(fragment)
	result := make([]*catalog.Product, 0)
	for _, p := range e.products {
		if shared.ContainsFold(p.Name, fragment) {
			result = append(result, p)
		}
	}
	return result
}

// FindProductsByName returns every product whose name equals name, ignoring case
func (e *Engine) FindProductsByName(name string) []*catalog.Product {
	name = strings.TrimSpace(name)
	result := make([]*catalog.Product, 0)
	for _, p := range e.products {
		if p.HasName(name) {
			result = append(result, p)
		}
	}
	return result
}

// FindProduct returns the product with the given ID, or nil
func (e *Engine) FindProduct(id uuid.UUID) *catalog.Product {
	for _, p := range e.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindCustomer returns the customer with the given ID, or nil
func (e *Engine) FindCustomer(id uuid.UUID) *partner.Customer {
	for _, c := range e.customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FindCustomersByName returns every customer whose name equals name, ignoring case
func (e *Engine) FindCustomersByName(name string) []*partner.Customer {
	result := make([]*partner.Customer, 0)
	for _, c := range e.customers {
		if c.HasName(name) {
			result = append(result, c)
		}
	}
	return result
}

// FindOrder returns the order with the given ID, or nil
func (e *Engine) FindOrder(id uuid.UUID) *trade.Order {
	for _, o := range e.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// GetOrdersByCustomer returns the customer's orders in placement order
func (e *Engine) GetOrdersByCustomer(customerID uuid.UUID) []*trade.Order {
	result := make([]*trade.Order, 0)
	for _, o := range e.orders {
		if o.BelongsTo(customerID) {
			result = append(result, o)
		}
	}
	return result
}

// GenerateInvoice builds the invoice of an order
func (e *Engine) GenerateInvoice(orderID uuid.UUID) (*trade.Invoice, error) {
	order := e.FindOrder(orderID)
	if order == nil {
		return nil, shared.NewNotFoundError(fmt.Sprintf("Order %s not found", orderID))
	}
	return order.Invoice(), nil
}

// Products returns the catalog in insertion order
func (e *Engine) Products() []*catalog.Product {
	return append([]*catalog.Product(nil), e.products...)
}

// Customers returns registered customers in insertion order
func (e *Engine) Customers() []*partner.Customer {
	return append([]*partner.Customer(nil), e.customers...)
}

// Orders returns placed orders in insertion order
func (e *Engine) Orders() []*trade.Order {
	return append([]*trade.Order(nil), e.orders...)
}

// Stats summarizes the current collections
func (e *Engine) Stats() Stats {
	stats := Stats{
		Products:       len(e.products),
		Customers:      len(e.customers),
		Orders:         len(e.orders),
		InventoryValue: decimal.Zero,
		Revenue:        decimal.Zero,
	}
	for _, p := range e.products {
		stats.UnitsInStock += p.Stock
		stats.InventoryValue = stats.InventoryValue.Add(p.StockValue())
	}
	for _, o := range e.orders {
		stats.Revenue = stats.Revenue.Add(o.Total())
	}
	return stats
}

// Snapshot returns the current collections as a dataset
func (e *Engine) Snapshot() *Dataset {
	return &Dataset{
		Products:  e.Products(),
		Customers: e.Customers(),
		Orders:    e.Orders(),
	}
}

// Restore replaces all three collections with the dataset's contents
func (e *Engine) Restore(dataset *Dataset) {
	e.products = append(make([]*catalog.Product, 0, len(dataset.Products)), dataset.Products...)
	e.customers = append(make([]*partner.Customer, 0, len(dataset.Customers)), dataset.Customers...)
	e.orders = append(make([]*trade.Order, 0, len(dataset.Orders)), dataset.Orders...)
}

// Save writes the current state to path, overwriting any existing data
func (e *Engine) Save(ctx context.Context, path string) error {
	if e.snapshots == nil {
		return ErrNoSnapshotStore
	}
	return e.snapshots.Save(ctx, path, e.Snapshot())
}

// Load replaces the current state with the data stored at path.
// A missing file leaves the current state untouched.
func (e *Engine) Load(ctx context.Context, path string) error {
	if e.snapshots == nil {
		return ErrNoSnapshotStore
	}

	dataset, err := e.snapshots.Load(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	e.Restore(dataset)
	return nil
}

// resolveLine finds the product an order line refers to
func (e *Engine) resolveLine(line OrderLine) (*catalog.Product, error) {
	if line.ProductID != uuid.Nil {
		product := e.FindProduct(line.ProductID)
		if product == nil {
			return nil, productNotFound(line.ProductID.String())
		}
		return product, nil
	}

	product := e.findFirstProductByName(line.ProductName)
	if product == nil {
		return nil, productNotFound(line.ProductName)
	}
	return product, nil
}

func (e *Engine) findFirstProductByName(name string) *catalog.Product {
	name = strings.TrimSpace(name)
	for _, p := range e.products {
		if p.HasName(name) {
			return p
		}
	}
	return nil
}

func productNotFound(name string) error {
	return shared.NewNotFoundError(fmt.Sprintf("Product %s not found", name))
}

type eventSource interface {
	PullDomainEvents() []shared.DomainEvent
}

// publish hands pending events to the publisher. Publishing never fails the
// operation; the bus logs handler errors itself.
func (e *Engine) publish(ctx context.Context, sources ...eventSource) {
	for _, source := range sources {
		events := source.PullDomainEvents()
		if e.eventPublisher == nil || len(events) == 0 {
			continue
		}
		_ = e.eventPublisher.Publish(ctx, events...)
	}
}

func (e *Engine) publishProducts(ctx context.Context, products []*catalog.Product) {
	for _, p := range products {
		e.publish(ctx, p)
	}
}
