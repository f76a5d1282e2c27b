package models

import (
	"errors"

	"github.com/erp/storefront/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRecord is the persisted form of a Product.
// Pointer fields distinguish a missing or null value from a zero value.
type ProductRecord struct {
	ID       *uuid.UUID       `json:"id"`
	Name     *string          `json:"name"`
	Category string           `json:"category"`
	Stock    *int             `json:"stock"`
	Price    *decimal.Decimal `json:"price"`
}

// ToDomain converts the record to a Product without emitting events
func (r *ProductRecord) ToDomain() (*catalog.Product, error) {
	id, err := requireID("id", r.ID)
	if err != nil {
		return nil, err
	}
	if r.Name == nil {
		return nil, errors.New("missing name")
	}
	if r.Stock == nil {
		return nil, errors.New("missing stock")
	}
	if r.Price == nil {
		return nil, errors.New("missing price")
	}

	return catalog.RestoreProduct(id, *r.Name, r.Category, *r.Stock, *r.Price)
}

// ProductRecordFromDomain creates a record from a domain Product
func ProductRecordFromDomain(p *catalog.Product) ProductRecord {
	id := p.ID
	name := p.Name
	stock := p.Stock
	price := p.Price
	return ProductRecord{
		ID:       &id,
		Name:     &name,
		Category: p.Category,
		Stock:    &stock,
		Price:    &price,
	}
}
