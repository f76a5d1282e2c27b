package catalog

import (
	"strings"
	"testing"

	"github.com/erp/storefront/internal/domain/shared"
	"github.com/erp/storefront/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWidget(t *testing.T) *Product {
	t.Helper()
	product, err := NewProduct("Widget", "Tools", 10, decimal.RequireFromString("2.50"))
	require.NoError(t, err)
	product.ClearDomainEvents()
	return product
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Widget", "Tools", 10, decimal.RequireFromString("2.50"))
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.Equal(t, "Widget", product.Name)
		assert.Equal(t, "Tools", product.Category)
		assert.Equal(t, 10, product.Stock)
		assert.True(t, product.Price.Equal(decimal.RequireFromString("2.5")))
		assert.Equal(t, 1, product.GetVersion())
	})

	t.Run("trims name and category", func(t *testing.T) {
		product, err := NewProduct("  Widget ", " Tools ", 0, decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, "Widget", product.Name)
		assert.Equal(t, "Tools", product.Category)
	})

	t.Run("publishes ProductCreated event", func(t *testing.T) {
		product, err := NewProduct("Widget", "Tools", 10, decimal.NewFromInt(2))
		require.NoError(t, err)

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductCreated, events[0].EventType())

		event, ok := events[0].(*ProductCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, product.ID, event.ProductID)
		assert.Equal(t, 10, event.Stock)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("   ", "Tools", 1, decimal.Zero)
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrValidation)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with name too long", func(t *testing.T) {
		_, err := NewProduct(strings.Repeat("x", 201), "Tools", 1, decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 200 characters")
	})

	t.Run("fails with negative stock", func(t *testing.T) {
		_, err := NewProduct("Widget", "Tools", -1, decimal.Zero)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct("Widget", "Tools", 1, decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("accepts empty category", func(t *testing.T) {
		product, err := NewProduct("Widget", "", 1, decimal.Zero)
		require.NoError(t, err)
		assert.Empty(t, product.Category)
	})
}

func TestRestoreProduct(t *testing.T) {
	id := uuid.New()

	t.Run("keeps identifier and emits no events", func(t *testing.T) {
		product, err := RestoreProduct(id, "Widget", "Tools", 7, decimal.RequireFromString("2.5"))
		require.NoError(t, err)
		assert.Equal(t, id, product.ID)
		assert.Equal(t, 7, product.Stock)
		assert.Empty(t, product.GetDomainEvents())
	})

	t.Run("rejects nil id", func(t *testing.T) {
		_, err := RestoreProduct(uuid.Nil, "Widget", "Tools", 7, decimal.Zero)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := RestoreProduct(id, "Widget", "Tools", -3, decimal.Zero)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("trims name and category", func(t *testing.T) {
		product, err := RestoreProduct(id, "  Widget ", " Tools ", 1, decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, "Widget", product.Name)
		assert.Equal(t, "Tools", product.Category)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := RestoreProduct(id, "   ", "Tools", 1, decimal.Zero)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestProduct_DecreaseStock(t *testing.T) {
	t.Run("decreases by quantity", func(t *testing.T) {
		product := newWidget(t)
		originalVersion := product.GetVersion()

		require.NoError(t, product.DecreaseStock(3))
		assert.Equal(t, 7, product.Stock)
		assert.Equal(t, originalVersion+1, product.GetVersion())
	})

	t.Run("allows draining stock to zero", func(t *testing.T) {
		product := newWidget(t)
		require.NoError(t, product.DecreaseStock(10))
		assert.Equal(t, 0, product.Stock)
	})

	t.Run("publishes stock changed event", func(t *testing.T) {
		product := newWidget(t)
		require.NoError(t, product.DecreaseStock(4))

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		event, ok := events[0].(*ProductStockChangedEvent)
		require.True(t, ok)
		assert.Equal(t, 10, event.OldStock)
		assert.Equal(t, 6, event.NewStock)
		assert.Equal(t, -4, event.Delta())
		assert.Equal(t, StockChangeReasonSale, event.Reason)
	})

	t.Run("fails when quantity exceeds stock and leaves stock unchanged", func(t *testing.T) {
		product := newWidget(t)
		err := product.DecreaseStock(11)
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.Equal(t, 10, product.Stock)
		assert.Empty(t, product.GetDomainEvents())
	})

	t.Run("fails with non-positive quantity", func(t *testing.T) {
		product := newWidget(t)
		assert.ErrorIs(t, product.DecreaseStock(0), shared.ErrValidation)
		assert.ErrorIs(t, product.DecreaseStock(-2), shared.ErrValidation)
		assert.Equal(t, 10, product.Stock)
	})
}

func TestProduct_IncreaseStock(t *testing.T) {
	product := newWidget(t)

	require.NoError(t, product.IncreaseStock(5))
	assert.Equal(t, 15, product.Stock)

	events := product.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, StockChangeReasonRestock, events[0].(*ProductStockChangedEvent).Reason)

	assert.ErrorIs(t, product.IncreaseStock(0), shared.ErrValidation)
}

func TestProduct_Update(t *testing.T) {
	product := newWidget(t)

	require.NoError(t, product.Update(" Gadget ", "Gizmos"))
	assert.Equal(t, "Gadget", product.Name)
	assert.Equal(t, "Gizmos", product.Category)

	events := product.PullDomainEvents()
	require.Len(t, events, 1)
	updated := events[0].(*ProductUpdatedEvent)
	assert.Equal(t, EventTypeProductUpdated, updated.EventType())
	assert.Equal(t, "Gadget", updated.Name)

	err := product.Update("", "Gizmos")
	assert.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, "Gadget", product.Name)
	assert.Empty(t, product.GetDomainEvents())
}

func TestProduct_SetPrice(t *testing.T) {
	product := newWidget(t)

	require.NoError(t, product.SetPrice(valueobject.NewMoneyUSD(decimal.RequireFromString("3.75"))))
	assert.Equal(t, "$3.75", product.GetPriceMoney().Format())
	events := product.PullDomainEvents()
	require.Len(t, events, 1)
	assert.True(t, events[0].(*ProductUpdatedEvent).Price.Equal(decimal.RequireFromString("3.75")))

	assert.ErrorIs(t, product.SetPrice(valueobject.NewMoneyUSD(decimal.NewFromInt(-1))), shared.ErrValidation)
	assert.ErrorIs(t, product.SetPrice(valueobject.Zero(valueobject.EUR)), shared.ErrValidation)
}

func TestProduct_Matching(t *testing.T) {
	product := newWidget(t)

	t.Run("HasName ignores case but requires exact match", func(t *testing.T) {
		assert.True(t, product.HasName("widget"))
		assert.True(t, product.HasName("WIDGET"))
		assert.False(t, product.HasName("widg"))
	})

	t.Run("MatchesKeyword checks name and category", func(t *testing.T) {
		assert.True(t, product.MatchesKeyword("dge"))
		assert.True(t, product.MatchesKeyword("TOOL"))
		assert.True(t, product.MatchesKeyword(""))
		assert.False(t, product.MatchesKeyword("garden"))
	})
}

func TestProduct_StockValue(t *testing.T) {
	product := newWidget(t)
	assert.Equal(t, "25.00", product.StockValue().StringFixed(2))
	assert.True(t, product.HasStock(10))
	assert.False(t, product.HasStock(11))
}
