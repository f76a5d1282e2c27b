package partner

import (
	"strings"

	"github.com/erp/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer represents a registered buyer
type Customer struct {
	shared.BaseAggregateRoot
	Name string
}

// NewCustomer creates a new customer with a generated ID.
// An empty or whitespace-only name is rejected.
func NewCustomer(name string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}

	customer := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}

	customer.AddDomainEvent(NewCustomerRegisteredEvent(customer))

	return customer, nil
}

// RestoreCustomer rebuilds a customer loaded from storage without emitting events
func RestoreCustomer(id uuid.UUID, name string) (*Customer, error) {
	if id == uuid.Nil {
		return nil, shared.NewValidationError("Customer ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}

	return &Customer{
		BaseAggregateRoot: shared.RestoreBaseAggregateRoot(shared.BaseEntity{ID: id}),
		Name:              name,
	}, nil
}

// Rename changes the customer's name
func (c *Customer) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateCustomerName(name); err != nil {
		return err
	}

	oldName := c.Name
	c.Name = name
	c.Touch()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerRenamedEvent(c, oldName))

	return nil
}

// HasName reports whether the customer's name equals name, ignoring case
func (c *Customer) HasName(name string) bool {
	return shared.EqualFold(c.Name, strings.TrimSpace(name))
}

func validateCustomerName(name string) error {
	if name == "" {
		return shared.NewValidationError("Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewValidationError("Customer name cannot exceed 200 characters")
	}
	return nil
}
