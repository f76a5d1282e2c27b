package store

import (
	"context"

	"github.com/erp/storefront/internal/domain/catalog"
	"github.com/erp/storefront/internal/domain/partner"
	"github.com/erp/storefront/internal/domain/trade"
)

// Dataset is the full state of an engine: products, customers and orders.
// Orders reference customers and products contained in the same dataset.
type Dataset struct {
	Products  []*catalog.Product
	Customers []*partner.Customer
	Orders    []*trade.Order
}

// SnapshotStore persists and restores datasets.
// Load must return an error wrapping fs.ErrNotExist when nothing is stored at path.
type SnapshotStore interface {
	Save(ctx context.Context, path string, dataset *Dataset) error
	Load(ctx context.Context, path string) (*Dataset, error)
}
