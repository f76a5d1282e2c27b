package models

import (
	"github.com/erp/storefront/internal/domain/partner"
	"github.com/google/uuid"
)

// CustomerRecord is the persisted form of a Customer
type CustomerRecord struct {
	ID   *uuid.UUID `json:"id"`
	Name string     `json:"name"`
}

// ToDomain converts the record to a Customer. A blank name is rejected.
func (r *CustomerRecord) ToDomain() (*partner.Customer, error) {
	id, err := requireID("id", r.ID)
	if err != nil {
		return nil, err
	}
	return partner.RestoreCustomer(id, r.Name)
}

// CustomerRecordFromDomain creates a record from a domain Customer
func CustomerRecordFromDomain(c *partner.Customer) CustomerRecord {
	id := c.ID
	return CustomerRecord{
		ID:   &id,
		Name: c.Name,
	}
}
