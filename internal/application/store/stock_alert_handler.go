package store

import (
	"context"
	"fmt"

	"github.com/erp/storefront/internal/domain/catalog"
	"github.com/erp/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Alert types
const (
	AlertTypeLowStock   = "low_stock"
	AlertTypeOutOfStock = "out_of_stock"
)

// StockAlert describes a product whose stock fell to or below the threshold
type StockAlert struct {
	ProductID   uuid.UUID
	ProductName string
	Stock       int
	Threshold   int
	AlertType   string
}

// StockAlertNotifier delivers stock alerts
type StockAlertNotifier interface {
	SendAlert(ctx context.Context, alert StockAlert) error
}

// StockAlertHandler watches ProductStockChanged events and raises an alert
// when a sale takes stock from above the threshold to at or below it.
type StockAlertHandler struct {
	logger    *zap.Logger
	threshold int
	notifier  StockAlertNotifier
}

// NewStockAlertHandler creates a new handler for stock changes
func NewStockAlertHandler(logger *zap.Logger, threshold int) *StockAlertHandler {
	return &StockAlertHandler{
		logger:    logger,
		threshold: threshold,
	}
}

// WithNotifier sets the notifier for sending alerts
func (h *StockAlertHandler) WithNotifier(notifier StockAlertNotifier) *StockAlertHandler {
	h.notifier = notifier
	return h
}

// EventTypes returns the event types this handler is interested in
func (h *StockAlertHandler) EventTypes() []string {
	return []string{catalog.EventTypeProductStockChanged}
}

// Handle processes a ProductStockChangedEvent
func (h *StockAlertHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	changed, ok := event.(*catalog.ProductStockChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			catalog.EventTypeProductStockChanged, event.EventType())
	}

	if changed.Reason != catalog.StockChangeReasonSale {
		return nil
	}
	if changed.NewStock > h.threshold || changed.OldStock <= h.threshold {
		return nil
	}

	alert := StockAlert{
		ProductID:   changed.ProductID,
		ProductName: changed.Name,
		Stock:       changed.NewStock,
		Threshold:   h.threshold,
		AlertType:   AlertTypeLowStock,
	}
	if changed.NewStock == 0 {
		alert.AlertType = AlertTypeOutOfStock
	}

	h.logger.Warn("stock below threshold",
		zap.String("product_id", alert.ProductID.String()),
		zap.String("product", alert.ProductName),
		zap.Int("stock", alert.Stock),
		zap.Int("threshold", alert.Threshold),
		zap.String("alert_type", alert.AlertType),
	)

	if h.notifier != nil {
		if err := h.notifier.SendAlert(ctx, alert); err != nil {
			// Notification failure shouldn't fail the event handling
			h.logger.Error("failed to send stock alert", zap.Error(err))
		}
	}

	return nil
}

// Ensure StockAlertHandler implements shared.EventHandler
var _ shared.EventHandler = (*StockAlertHandler)(nil)
