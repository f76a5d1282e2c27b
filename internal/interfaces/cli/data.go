package cli

import (
	"context"
	"errors"

	"github.com/erp/storefront/internal/application/store"
)

// ErrSeedingDisabled is returned by the demo data command when no seeder is configured
var ErrSeedingDisabled = errors.New("demo data generation is not configured")

func (c *Console) save(ctx context.Context) error {
	if err := c.engine.Save(ctx, c.dataFile); err != nil {
		return err
	}
	c.println(">> Data saved.")
	return nil
}

func (c *Console) load(ctx context.Context) error {
	if err := c.engine.Load(ctx, c.dataFile); err != nil {
		return err
	}
	c.println(">> Data loaded.")
	return nil
}

func (c *Console) seedDemo(ctx context.Context) error {
	if c.seeder == nil {
		return ErrSeedingDisabled
	}
	result, err := c.seeder.Populate(ctx, c.engine)
	if err != nil {
		return err
	}
	c.printf("Generated %d product(s) and %d customer(s).\n", len(result.Products), len(result.Customers))
	return nil
}

// SendAlert prints a stock alert raised while an order is placed
func (c *Console) SendAlert(_ context.Context, alert store.StockAlert) error {
	if alert.AlertType == store.AlertTypeOutOfStock {
		c.printf("[!] %s is now out of stock.\n", alert.ProductName)
		return nil
	}
	c.printf("[!] Low stock: %s has %d left.\n", alert.ProductName, alert.Stock)
	return nil
}

var _ store.StockAlertNotifier = (*Console)(nil)
