package cli

import (
	"context"
	"fmt"

	"github.com/erp/storefront/internal/domain/partner"
	"github.com/erp/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

func (c *Console) registerCustomer(ctx context.Context) error {
	name, err := c.promptCustomerName(ctx, "Customer Name: ")
	if err != nil {
		return err
	}

	customer, err := c.engine.RegisterCustomerByName(ctx, name)
	if err != nil {
		return err
	}

	c.printf("Customer registered successfully! ID: %s\n", customer.ID)
	return nil
}

func (c *Console) renameCustomer(ctx context.Context) error {
	customer, err := c.selectCustomer(ctx)
	if err != nil {
		return err
	}
	name, err := c.promptCustomerName(ctx, "New Name: ")
	if err != nil {
		return err
	}

	oldName := customer.Name
	customer, err = c.engine.RenameCustomer(ctx, customer.ID, name)
	if err != nil {
		return err
	}

	c.printf("Customer %s renamed to %s.\n", oldName, customer.Name)
	return nil
}

// promptCustomerName re-prompts until the name is not blank
func (c *Console) promptCustomerName(ctx context.Context, label string) (string, error) {
	for {
		name, err := c.prompt(ctx, label)
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
		c.println("[Error] Name cannot be empty.")
	}
}

// selectCustomer asks for a customer ID or name. Names are matched exactly,
// ignoring case, and the user picks when several customers share one.
func (c *Console) selectCustomer(ctx context.Context) (*partner.Customer, error) {
	input, err := c.prompt(ctx, "Enter Customer ID or Name: ")
	if err != nil {
		return nil, err
	}

	if id, parseErr := uuid.Parse(input); parseErr == nil {
		customer := c.engine.FindCustomer(id)
		if customer == nil {
			return nil, shared.NewNotFoundError(fmt.Sprintf("Customer %s not found", id))
		}
		return customer, nil
	}

	matches := c.engine.FindCustomersByName(input)
	switch len(matches) {
	case 0:
		return nil, shared.NewNotFoundError(fmt.Sprintf("Customer %q not found", input))
	case 1:
		return matches[0], nil
	}

	c.println("Multiple customers found:")
	for i, customer := range matches {
		c.printf("  %d. %s (%s)\n", i+1, customer.Name, customer.ID)
	}
	idx, err := c.promptSelection(ctx, "Select customer number: ", len(matches))
	if err != nil {
		return nil, err
	}
	return matches[idx], nil
}
