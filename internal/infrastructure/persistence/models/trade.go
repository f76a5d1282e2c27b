package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/erp/storefront/internal/domain/catalog"
	"github.com/erp/storefront/internal/domain/partner"
	"github.com/erp/storefront/internal/domain/trade"
	"github.com/google/uuid"
)

// OrderRecord is the persisted form of an Order
type OrderRecord struct {
	OrderID    *uuid.UUID        `json:"orderId"`
	CustomerID *uuid.UUID        `json:"customerId"`
	Date       *time.Time        `json:"date"`
	Items      []OrderItemRecord `json:"items"`
}

// OrderItemRecord references a product of the same document by ID
type OrderItemRecord struct {
	ProductID *uuid.UUID `json:"productId"`
	Quantity  int        `json:"quantity"`
}

// ToDomain converts the record to an Order linked to already loaded
// customers and products. Dangling references are rejected.
func (r *OrderRecord) ToDomain(customers map[uuid.UUID]*partner.Customer, products map[uuid.UUID]*catalog.Product) (*trade.Order, error) {
	id, err := requireID("orderId", r.OrderID)
	if err != nil {
		return nil, err
	}
	customerID, err := requireID("customerId", r.CustomerID)
	if err != nil {
		return nil, err
	}
	if r.Date == nil {
		return nil, errors.New("missing date")
	}

	customer, ok := customers[customerID]
	if !ok {
		return nil, fmt.Errorf("unknown customer %s", customerID)
	}

	order, err := trade.RestoreOrder(id, customer, *r.Date)
	if err != nil {
		return nil, err
	}

	for i, item := range r.Items {
		productID, err := requireID(fmt.Sprintf("items[%d].productId", i), item.ProductID)
		if err != nil {
			return nil, err
		}
		product, ok := products[productID]
		if !ok {
			return nil, fmt.Errorf("items[%d]: unknown product %s", i, productID)
		}
		if err := order.AddProduct(product, item.Quantity); err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
	}

	return order, nil
}

// OrderRecordFromDomain creates a record from a domain Order
func OrderRecordFromDomain(o *trade.Order) OrderRecord {
	id := o.ID
	customerID := o.CustomerID()
	date := o.PlacedAt

	items := make([]OrderItemRecord, 0, len(o.Items))
	for _, item := range o.Items {
		productID := item.ProductID
		items = append(items, OrderItemRecord{
			ProductID: &productID,
			Quantity:  item.Quantity,
		})
	}

	return OrderRecord{
		OrderID:    &id,
		CustomerID: &customerID,
		Date:       &date,
		Items:      items,
	}
}
