package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/erp/storefront/internal/application/store"
	"github.com/erp/storefront/internal/domain/catalog"
	"github.com/erp/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

const doneKeyword = "done"

func (c *Console) placeOrder(ctx context.Context) error {
	customer, err := c.selectCustomer(ctx)
	if err != nil {
		return err
	}

	lines, err := c.collectOrderLines(ctx)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return shared.NewValidationError("No products were added.")
	}

	order, err := c.engine.PlaceOrder(ctx, customer.ID, lines)
	if err != nil {
		return err
	}

	c.printf("Order placed successfully! Order ID: %s\n", order.ID)
	c.printf("%s", order.Invoice().String())
	return nil
}

// collectOrderLines reads product/quantity pairs until "done". Quantities
// for the same chosen product accumulate on one line, in first-entry order.
func (c *Console) collectOrderLines(ctx context.Context) ([]store.OrderLine, error) {
	lines := make([]store.OrderLine, 0)
	for {
		fragment, err := c.prompt(ctx, "Product name (or 'done'): ")
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(fragment, doneKeyword) {
			return lines, nil
		}
		if fragment == "" {
			continue
		}

		product, err := c.selectProduct(ctx, fragment)
		if errors.Is(err, shared.ErrNotFound) {
			c.printError(err)
			continue
		}
		if err != nil {
			return nil, err
		}

		quantity, err := c.promptPositiveInt(ctx, "Quantity: ")
		if err != nil {
			return nil, err
		}
		lines = addOrderLine(lines, product, quantity)
	}
}

func addOrderLine(lines []store.OrderLine, product *catalog.Product, quantity int) []store.OrderLine {
	for i := range lines {
		if lines[i].ProductID == product.ID {
			lines[i].Quantity += quantity
			return lines
		}
	}
	return append(lines, store.OrderLine{ProductID: product.ID, ProductName: product.Name, Quantity: quantity})
}

func (c *Console) generateInvoice(ctx context.Context) error {
	input, err := c.prompt(ctx, "Enter Order ID: ")
	if err != nil {
		return err
	}
	orderID, err := uuid.Parse(input)
	if err != nil {
		return shared.NewValidationError("Invalid order ID")
	}

	invoice, err := c.engine.GenerateInvoice(orderID)
	if err != nil {
		return err
	}

	c.printf("%s", invoice.String())
	return nil
}

func (c *Console) listOrders(ctx context.Context) error {
	customer, err := c.selectCustomer(ctx)
	if err != nil {
		return err
	}

	orders := c.engine.GetOrdersByCustomer(customer.ID)
	if len(orders) == 0 {
		c.println("No orders found.")
		return nil
	}

	c.printf("Orders for %s:\n", customer.Name)
	for _, o := range orders {
		c.printf("%s  %s  %3d item(s) %12s\n",
			o.ID, o.PlacedAt.Format(time.DateTime), o.ItemCount(), o.GetTotalMoney().Format())
	}
	return nil
}
