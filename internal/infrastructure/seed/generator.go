// Package seed fills an empty store with generated demo products and customers.
package seed

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/erp/storefront/internal/application/store"
	"github.com/erp/storefront/internal/domain/catalog"
	"github.com/erp/storefront/internal/domain/partner"
	"github.com/erp/storefront/internal/domain/shared"
	"github.com/erp/storefront/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Price and stock bounds for generated products
const (
	minPrice = 1.0
	maxPrice = 500.0
	maxStock = 100

	// attempts per product before accepting a duplicate name
	maxNameAttempts = 5
)

// Catalog is the subset of the engine the generator writes to
type Catalog interface {
	CreateProduct(ctx context.Context, req store.CreateProductRequest) (*catalog.Product, error)
	RegisterCustomerByName(ctx context.Context, name string) (*partner.Customer, error)
}

// Config controls how much data is generated
type Config struct {
	Products  int
	Customers int
	Seed      uint64 // 0 picks a random seed
}

// Result reports what was generated
type Result struct {
	Products  []*catalog.Product
	Customers []*partner.Customer
}

// Generator produces demo data with gofakeit
type Generator struct {
	faker  *gofakeit.Faker
	config Config
}

// NewGenerator creates a new generator. The same non-zero seed always
// produces the same data.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.Products < 0 || cfg.Customers < 0 {
		return nil, fmt.Errorf("seed counts cannot be negative: products=%d customers=%d", cfg.Products, cfg.Customers)
	}
	return &Generator{
		faker:  gofakeit.New(cfg.Seed),
		config: cfg,
	}, nil
}

// Populate adds the configured number of products and customers to c
func (g *Generator) Populate(ctx context.Context, c Catalog) (*Result, error) {
	result := &Result{
		Products:  make([]*catalog.Product, 0, g.config.Products),
		Customers: make([]*partner.Customer, 0, g.config.Customers),
	}

	seen := make(map[string]struct{}, g.config.Products)
	for i := 0; i < g.config.Products; i++ {
		product, err := c.CreateProduct(ctx, g.productRequest(seen))
		if err != nil {
			return result, fmt.Errorf("failed to create demo product: %w", err)
		}
		result.Products = append(result.Products, product)
	}

	for i := 0; i < g.config.Customers; i++ {
		customer, err := c.RegisterCustomerByName(ctx, g.faker.Name())
		if err != nil {
			return result, fmt.Errorf("failed to register demo customer: %w", err)
		}
		result.Customers = append(result.Customers, customer)
	}

	logger.L(ctx).Info("Demo data generated",
		zap.Int("products", len(result.Products)),
		zap.Int("customers", len(result.Customers)),
	)
	return result, nil
}

// productRequest builds a request with a name not yet generated in this run when possible
func (g *Generator) productRequest(seen map[string]struct{}) store.CreateProductRequest {
	name := g.faker.ProductName()
	for attempt := 1; attempt < maxNameAttempts; attempt++ {
		if _, dup := seen[shared.FoldCase(name)]; !dup {
			break
		}
		name = g.faker.ProductName()
	}
	seen[shared.FoldCase(name)] = struct{}{}

	return store.CreateProductRequest{
		Name:     name,
		Category: g.faker.ProductCategory(),
		Stock:    g.faker.IntRange(0, maxStock),
		Price:    decimal.NewFromFloat(g.faker.Price(minPrice, maxPrice)).Round(2),
	}
}
