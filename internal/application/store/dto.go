package store

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest carries the fields needed to add a product
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,max=200"`
	Category string          `json:"category" validate:"max=100"`
	Stock    int             `json:"stock" validate:"gte=0"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
}

// UpdateProductRequest carries the new name, category and price of a product
type UpdateProductRequest struct {
	Name     string          `json:"name" validate:"required,max=200"`
	Category string          `json:"category" validate:"max=100"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
}

// RegisterCustomerRequest carries the fields needed to register a customer
type RegisterCustomerRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// RenameCustomerRequest carries a customer's new name
type RenameCustomerRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// OrderLine is one requested product and quantity.
// A non-nil ProductID selects that exact product; otherwise ProductName is
// matched against the catalog. Lines are processed in slice order.
type OrderLine struct {
	ProductID   uuid.UUID `json:"product_id,omitempty"`
	ProductName string    `json:"product_name" validate:"required_without=ProductID"`
	Quantity    int       `json:"quantity" validate:"gt=0"`
}

type placeOrderInput struct {
	Lines []OrderLine `json:"items" validate:"required,min=1,dive"`
}

// Stats summarizes the engine's collections
type Stats struct {
	Products       int
	Customers      int
	Orders         int
	UnitsInStock   int
	InventoryValue decimal.Decimal
	Revenue        decimal.Decimal
}
