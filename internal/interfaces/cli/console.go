// Package cli implements the interactive menu console over the store engine.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/erp/storefront/internal/application/store"
	"github.com/erp/storefront/internal/infrastructure/logger"
	"github.com/erp/storefront/internal/infrastructure/seed"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultDataFile is used by save and load when no data file is configured
const DefaultDataFile = "data.json"

// Seeder generates demo data into the engine
type Seeder interface {
	Populate(ctx context.Context, c seed.Catalog) (*seed.Result, error)
}

// Option configures a Console
type Option func(*Console)

// WithDataFile sets the file used by the save and load commands
func WithDataFile(path string) Option {
	return func(c *Console) {
		if strings.TrimSpace(path) != "" {
			c.dataFile = path
		}
	}
}

// WithSeeder enables the demo data command
func WithSeeder(s Seeder) Option {
	return func(c *Console) {
		c.seeder = s
	}
}

// Console reads menu selections and prompts from in and writes to out
type Console struct {
	engine   *store.Engine
	in       io.Reader
	out      io.Writer
	lines    <-chan string
	dataFile string
	seeder   Seeder
}

// NewConsole creates a console bound to an engine
func NewConsole(engine *store.Engine, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		engine:   engine,
		in:       in,
		out:      out,
		dataFile: DefaultDataFile,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type command struct {
	key   string
	label string
	name  string
	run   func(ctx context.Context) error
}

func (c *Console) commands() []command {
	return []command{
		{"1", "Add Product", "add-product", c.addProduct},
		{"2", "Register Customer", "register-customer", c.registerCustomer},
		{"3", "Place Order", "place-order", c.placeOrder},
		{"4", "Generate Invoice", "generate-invoice", c.generateInvoice},
		{"5", "Search Products", "search-products", c.searchProducts},
		{"6", "View All Products", "list-products", c.listProducts},
		{"7", "List Orders by Customer", "list-orders", c.listOrders},
		{"8", "Save Data", "save", c.save},
		{"9", "Load Data", "load", c.load},
		{"10", "Restock Product", "restock-product", c.restockProduct},
		{"11", "Generate Demo Data", "seed", c.seedDemo},
		{"12", "Edit Product", "edit-product", c.editProduct},
		{"13", "Rename Customer", "rename-customer", c.renameCustomer},
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// End of input is a normal exit; cancellation returns ctx.Err().
func (c *Console) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	c.lines = scanLines(c.in, done)
	commands := c.commands()

	for {
		c.printMenu(commands)
		choice, err := c.prompt(ctx, "Selection: ")
		if err != nil {
			return c.inputEnded(ctx, err)
		}
		if choice == "0" {
			c.println("Goodbye.")
			return nil
		}

		cmd, ok := findCommand(commands, choice)
		if !ok {
			c.println("[Error] Invalid choice. Please try again.")
			continue
		}

		cmdCtx := logger.WithCommand(ctx, cmd.name)
		if err := cmd.run(cmdCtx); err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return c.inputEnded(ctx, err)
			}
			c.printError(err)
			logger.L(cmdCtx).Debug("command failed", zap.Error(err))
		}
	}
}

func (c *Console) inputEnded(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func findCommand(commands []command, key string) (command, bool) {
	for _, cmd := range commands {
		if cmd.key == key {
			return cmd, true
		}
	}
	return command{}, false
}

func (c *Console) printMenu(commands []command) {
	c.println()
	c.println("--- E-Commerce System ---")
	for _, cmd := range commands {
		c.printf("%s. %s\n", cmd.key, cmd.label)
	}
	c.println("0. Exit")
}

// scanLines feeds lines of r to the returned channel and closes it at end of input.
// Closing done stops delivery; a Read already blocked on r is abandoned.
func scanLines(r io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}

// prompt writes label and returns the next trimmed input line
func (c *Console) prompt(ctx context.Context, label string) (string, error) {
	c.printf("%s", label)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// promptNonNegativeInt re-prompts until the input is an integer >= 0
func (c *Console) promptNonNegativeInt(ctx context.Context, label, invalid string) (int, error) {
	for {
		text, err := c.prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err == nil && n >= 0 {
			return n, nil
		}
		c.println(invalid)
	}
}

// promptPositiveInt re-prompts until the input is an integer > 0
func (c *Console) promptPositiveInt(ctx context.Context, label string) (int, error) {
	for {
		text, err := c.prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err == nil && n > 0 {
			return n, nil
		}
		c.println("[Error] Please enter a positive whole number.")
	}
}

func (c *Console) promptPrice(ctx context.Context) (decimal.Decimal, error) {
	for {
		text, err := c.prompt(ctx, "Price: $")
		if err != nil {
			return decimal.Zero, err
		}
		price, err := decimal.NewFromString(text)
		if err == nil && !price.IsNegative() {
			return price, nil
		}
		c.println("[Error] Please enter a valid, non-negative price.")
	}
}

// promptOrKeep shows current in brackets and returns it when the input is blank
func (c *Console) promptOrKeep(ctx context.Context, label, current string) (string, error) {
	text, err := c.prompt(ctx, fmt.Sprintf("%s [%s]: ", label, current))
	if err != nil {
		return "", err
	}
	if text == "" {
		return current, nil
	}
	return text, nil
}

// promptPriceOrKeep is promptPrice where a blank line keeps current
func (c *Console) promptPriceOrKeep(ctx context.Context, current decimal.Decimal) (decimal.Decimal, error) {
	for {
		text, err := c.prompt(ctx, fmt.Sprintf("Price [%s]: $", current.StringFixed(2)))
		if err != nil {
			return decimal.Zero, err
		}
		if text == "" {
			return current, nil
		}
		price, err := decimal.NewFromString(text)
		if err == nil && !price.IsNegative() {
			return price, nil
		}
		c.println("[Error] Please enter a valid, non-negative price.")
	}
}

// promptSelection re-prompts until the input is a number between 1 and count
// and returns the zero-based index
func (c *Console) promptSelection(ctx context.Context, label string, count int) (int, error) {
	for {
		text, err := c.prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err == nil && n >= 1 && n <= count {
			return n - 1, nil
		}
		c.printf("[Error] Please enter a number between 1 and %d.\n", count)
	}
}

func (c *Console) printError(err error) {
	c.printf("[Error] %s\n", err.Error())
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(args ...any) {
	_, _ = fmt.Fprintln(c.out, args...)
}
