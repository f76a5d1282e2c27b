package trade

import (
	"fmt"
	"strings"
	"time"

	"github.com/erp/storefront/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// InvoiceLine is one priced line of an invoice
type InvoiceLine struct {
	ProductName string
	Quantity    int
	UnitPrice   valueobject.Money
	LineTotal   valueobject.Money
}

// Invoice is a priced summary of an order
type Invoice struct {
	OrderID      uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	Date         time.Time
	Lines        []InvoiceLine
	Total        valueobject.Money
}

// Invoice builds an invoice from the order at current product prices
func (o *Order) Invoice() *Invoice {
	lines := make([]InvoiceLine, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, InvoiceLine{
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.Product.GetPriceMoney(),
			LineTotal:   item.GetLineTotalMoney(),
		})
	}

	return &Invoice{
		OrderID:      o.ID,
		CustomerID:   o.CustomerID(),
		CustomerName: o.Customer.Name,
		Date:         o.PlacedAt,
		Lines:        lines,
		Total:        o.GetTotalMoney(),
	}
}

// String renders the invoice as plain text
func (inv *Invoice) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Invoice for Order %s\n", inv.OrderID)
	fmt.Fprintf(&sb, "Customer: %s\n", inv.CustomerName)
	fmt.Fprintf(&sb, "Date: %s\n", inv.Date.Format(time.DateTime))
	for _, line := range inv.Lines {
		fmt.Fprintf(&sb, "%-25s %5d %12s %12s\n",
			line.ProductName, line.Quantity, line.UnitPrice.Format(), line.LineTotal.Format())
	}
	fmt.Fprintf(&sb, "%44s %12s\n", "TOTAL:", inv.Total.Format())

	return sb.String()
}
