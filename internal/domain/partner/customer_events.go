package partner

import (
	"github.com/erp/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeCustomer = "Customer"

// Event type constants
const (
	EventTypeCustomerRegistered = "CustomerRegistered"
	EventTypeCustomerRenamed    = "CustomerRenamed"
)

// CustomerRegisteredEvent is published when a new customer is created
type CustomerRegisteredEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
}

// NewCustomerRegisteredEvent creates a new CustomerRegisteredEvent
func NewCustomerRegisteredEvent(customer *Customer) *CustomerRegisteredEvent {
	return &CustomerRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerRegistered, AggregateTypeCustomer, customer.ID),
		CustomerID:      customer.ID,
		Name:            customer.Name,
	}
}

// CustomerRenamedEvent is published when a customer's name changes
type CustomerRenamedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	OldName    string    `json:"old_name"`
	NewName    string    `json:"new_name"`
}

// NewCustomerRenamedEvent creates a new CustomerRenamedEvent
func NewCustomerRenamedEvent(customer *Customer, oldName string) *CustomerRenamedEvent {
	return &CustomerRenamedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerRenamed, AggregateTypeCustomer, customer.ID),
		CustomerID:      customer.ID,
		OldName:         oldName,
		NewName:         customer.Name,
	}
}
