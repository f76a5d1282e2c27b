package models

import (
	"fmt"

	"github.com/erp/storefront/internal/application/store"
	"github.com/erp/storefront/internal/domain/catalog"
	"github.com/erp/storefront/internal/domain/partner"
	"github.com/erp/storefront/internal/domain/shared"
	"github.com/erp/storefront/internal/domain/trade"
	"github.com/google/uuid"
)

// SchemaVersion is the document layout written by this version
const SchemaVersion = 1

// Document is the top-level JSON object of a data file
type Document struct {
	SchemaVersion int              `json:"schemaVersion"`
	Products      []ProductRecord  `json:"products"`
	Customers     []CustomerRecord `json:"customers"`
	Orders        []OrderRecord    `json:"orders"`
}

// DocumentFromDataset creates a document from an engine dataset
func DocumentFromDataset(ds *store.Dataset) *Document {
	doc := &Document{
		SchemaVersion: SchemaVersion,
		Products:      make([]ProductRecord, 0, len(ds.Products)),
		Customers:     make([]CustomerRecord, 0, len(ds.Customers)),
		Orders:        make([]OrderRecord, 0, len(ds.Orders)),
	}
	for _, p := range ds.Products {
		doc.Products = append(doc.Products, ProductRecordFromDomain(p))
	}
	for _, c := range ds.Customers {
		doc.Customers = append(doc.Customers, CustomerRecordFromDomain(c))
	}
	for _, o := range ds.Orders {
		doc.Orders = append(doc.Orders, OrderRecordFromDomain(o))
	}
	return doc
}

// ToDataset converts the document to domain entities, re-linking orders to the
// loaded customers and products. Any structural problem is a ParseError.
func (d *Document) ToDataset() (*store.Dataset, error) {
	if d.SchemaVersion > SchemaVersion {
		return nil, shared.NewParseError(fmt.Sprintf("Unsupported schema version %d", d.SchemaVersion), nil)
	}

	ds := &store.Dataset{
		Products:  make([]*catalog.Product, 0, len(d.Products)),
		Customers: make([]*partner.Customer, 0, len(d.Customers)),
		Orders:    make([]*trade.Order, 0, len(d.Orders)),
	}

	products := make(map[uuid.UUID]*catalog.Product, len(d.Products))
	for i := range d.Products {
		p, err := d.Products[i].ToDomain()
		if err != nil {
			return nil, recordError("products", i, err)
		}
		if _, dup := products[p.ID]; dup {
			return nil, recordError("products", i, fmt.Errorf("duplicate id %s", p.ID))
		}
		products[p.ID] = p
		ds.Products = append(ds.Products, p)
	}

	customers := make(map[uuid.UUID]*partner.Customer, len(d.Customers))
	for i := range d.Customers {
		c, err := d.Customers[i].ToDomain()
		if err != nil {
			return nil, recordError("customers", i, err)
		}
		if _, dup := customers[c.ID]; dup {
			return nil, recordError("customers", i, fmt.Errorf("duplicate id %s", c.ID))
		}
		customers[c.ID] = c
		ds.Customers = append(ds.Customers, c)
	}

	for i := range d.Orders {
		o, err := d.Orders[i].ToDomain(customers, products)
		if err != nil {
			return nil, recordError("orders", i, err)
		}
		ds.Orders = append(ds.Orders, o)
	}

	return ds, nil
}

func recordError(collection string, index int, err error) error {
	return shared.NewParseError(fmt.Sprintf("Invalid %s[%d]", collection, index), err)
}

func requireID(field string, id *uuid.UUID) (uuid.UUID, error) {
	if id == nil || *id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("missing %s", field)
	}
	return *id, nil
}
