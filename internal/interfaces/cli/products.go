package cli

import (
	"context"
	"fmt"

	"github.com/erp/storefront/internal/application/store"
	"github.com/erp/storefront/internal/domain/catalog"
	"github.com/erp/storefront/internal/domain/shared"
	"github.com/erp/storefront/internal/domain/shared/valueobject"
)

const (
	productHeaderFormat = "%-20s %-15s %11s %8s\n"
	productRowFormat    = "%-20s %-15s %11s %8d\n"
)

func (c *Console) addProduct(ctx context.Context) error {
	name, err := c.prompt(ctx, "Product Name: ")
	if err != nil {
		return err
	}
	category, err := c.prompt(ctx, "Category: ")
	if err != nil {
		return err
	}
	stock, err := c.promptNonNegativeInt(ctx, "Stock Quantity: ", "[Error] Please enter a non-negative number for stock.")
	if err != nil {
		return err
	}
	price, err := c.promptPrice(ctx)
	if err != nil {
		return err
	}

	product, err := c.engine.CreateProduct(ctx, store.CreateProductRequest{
		Name:     name,
		Category: category,
		Stock:    stock,
		Price:    price,
	})
	if err != nil {
		return err
	}

	c.printf("Product added successfully! ID: %s\n", product.ID)
	return nil
}

func (c *Console) searchProducts(ctx context.Context) error {
	keyword, err := c.prompt(ctx, "Enter keyword (name or category): ")
	if err != nil {
		return err
	}

	results := c.engine.SearchProducts(keyword)
	if len(results) == 0 {
		c.println("No products found.")
		return nil
	}

	c.printf("Found %d product(s):\n", len(results))
	c.printProducts(results)
	return nil
}

func (c *Console) listProducts(_ context.Context) error {
	products := c.engine.Products()
	if len(products) == 0 {
		c.println("No products in inventory.")
		return nil
	}

	c.printProducts(products)
	stats := c.engine.Stats()
	c.printf("%d product(s), %d unit(s) in stock, inventory value %s\n",
		stats.Products, stats.UnitsInStock, valueobject.NewMoneyUSD(stats.InventoryValue).Format())
	return nil
}

func (c *Console) restockProduct(ctx context.Context) error {
	fragment, err := c.prompt(ctx, "Product name: ")
	if err != nil {
		return err
	}
	product, err := c.selectProduct(ctx, fragment)
	if err != nil {
		return err
	}
	quantity, err := c.promptPositiveInt(ctx, "Quantity to add: ")
	if err != nil {
		return err
	}

	product, err = c.engine.RestockProduct(ctx, product.ID, quantity)
	if err != nil {
		return err
	}

	c.printf("Stock of %s is now %d.\n", product.Name, product.Stock)
	return nil
}

func (c *Console) editProduct(ctx context.Context) error {
	fragment, err := c.prompt(ctx, "Product name: ")
	if err != nil {
		return err
	}
	product, err := c.selectProduct(ctx, fragment)
	if err != nil {
		return err
	}

	name, err := c.promptOrKeep(ctx, "Name", product.Name)
	if err != nil {
		return err
	}
	category, err := c.promptOrKeep(ctx, "Category", product.Category)
	if err != nil {
		return err
	}
	price, err := c.promptPriceOrKeep(ctx, product.Price)
	if err != nil {
		return err
	}

	product, err = c.engine.UpdateProduct(ctx, product.ID, store.UpdateProductRequest{
		Name:     name,
		Category: category,
		Price:    price,
	})
	if err != nil {
		return err
	}

	c.printf("Product updated: %s (%s) %s\n", product.Name, product.Category, product.GetPriceMoney().Format())
	return nil
}

// selectProduct resolves a name fragment to one product, asking the user
// to pick when several names contain it
func (c *Console) selectProduct(ctx context.Context, fragment string) (*catalog.Product, error) {
	matches := c.engine.MatchProducts(fragment)
	switch len(matches) {
	case 0:
		return nil, shared.NewNotFoundError(fmt.Sprintf("No product matches %q", fragment))
	case 1:
		return matches[0], nil
	}

	c.println("[!] Multiple matches:")
	for i, p := range matches {
		c.printf("  %d. %s (%s) %s, %d in stock\n", i+1, p.Name, p.Category, p.GetPriceMoney().Format(), p.Stock)
	}
	idx, err := c.promptSelection(ctx, "Select product number: ", len(matches))
	if err != nil {
		return nil, err
	}
	return matches[idx], nil
}

func (c *Console) printProducts(products []*catalog.Product) {
	c.printf(productHeaderFormat, "Name", "Category", "Price", "Stock")
	for _, p := range products {
		c.printf(productRowFormat, p.Name, p.Category, p.GetPriceMoney().Format(), p.Stock)
	}
}
