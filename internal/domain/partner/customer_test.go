package partner

import (
	"strings"
	"testing"

	"github.com/erp/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with generated id", func(t *testing.T) {
		customer, err := NewCustomer("Ada Lovelace")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, customer.ID)
		assert.Equal(t, "Ada Lovelace", customer.Name)
		assert.False(t, customer.CreatedAt.IsZero())
	})

	t.Run("ids are unique", func(t *testing.T) {
		a, err := NewCustomer("Ada")
		require.NoError(t, err)
		b, err := NewCustomer("Ada")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		customer, err := NewCustomer("  Ada  ")
		require.NoError(t, err)
		assert.Equal(t, "Ada", customer.Name)
	})

	t.Run("publishes CustomerRegistered event", func(t *testing.T) {
		customer, err := NewCustomer("Ada")
		require.NoError(t, err)

		events := customer.GetDomainEvents()
		require.Len(t, events, 1)
		event, ok := events[0].(*CustomerRegisteredEvent)
		require.True(t, ok)
		assert.Equal(t, customer.ID, event.CustomerID)
		assert.Equal(t, AggregateTypeCustomer, event.AggregateType())
	})

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t\n"},
	}
	for _, tt := range tests {
		t.Run("fails with "+tt.name+" name", func(t *testing.T) {
			customer, err := NewCustomer(tt.input)
			require.Error(t, err)
			assert.Nil(t, customer)
			assert.ErrorIs(t, err, shared.ErrValidation)
			assert.Contains(t, err.Error(), "name cannot be empty")
		})
	}

	t.Run("fails with name too long", func(t *testing.T) {
		_, err := NewCustomer(strings.Repeat("a", 201))
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestRestoreCustomer(t *testing.T) {
	id := uuid.New()

	customer, err := RestoreCustomer(id, "Ada")
	require.NoError(t, err)
	assert.Equal(t, id, customer.ID)
	assert.Empty(t, customer.GetDomainEvents())

	_, err = RestoreCustomer(uuid.Nil, "Ada")
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = RestoreCustomer(id, " ")
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestCustomer_Rename(t *testing.T) {
	customer, err := NewCustomer("Ada")
	require.NoError(t, err)
	customer.ClearDomainEvents()

	require.NoError(t, customer.Rename("Ada King"))
	assert.Equal(t, "Ada King", customer.Name)

	events := customer.GetDomainEvents()
	require.Len(t, events, 1)
	renamed := events[0].(*CustomerRenamedEvent)
	assert.Equal(t, "Ada", renamed.OldName)
	assert.Equal(t, "Ada King", renamed.NewName)

	assert.ErrorIs(t, customer.Rename(""), shared.ErrValidation)
	assert.Equal(t, "Ada King", customer.Name)
}

func TestCustomer_HasName(t *testing.T) {
	customer, err := NewCustomer("Ada")
	require.NoError(t, err)

	assert.True(t, customer.HasName("ada"))
	assert.True(t, customer.HasName(" ADA "))
	assert.False(t, customer.HasName("Adam"))
}
