package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), EUR)
		require.NoError(t, err)
		assert.Equal(t, EUR, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45", USD)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.RequireFromString("123.45")))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", USD)
		assert.Error(t, err)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("same currency", func(t *testing.T) {
		a := NewMoneyUSD(decimal.RequireFromString("2.50"))
		b := NewMoneyUSD(decimal.RequireFromString("5.00"))

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Equals(NewMoneyUSD(decimal.RequireFromString("7.5"))))
	})

	t.Run("currency mismatch", func(t *testing.T) {
		_, err := NewMoneyUSD(decimal.NewFromInt(1)).Add(Zero(EUR))
		assert.ErrorIs(t, err, ErrCurrencyMismatch)
	})
}

func TestMoney_MultiplyByInt(t *testing.T) {
	m := NewMoneyUSD(decimal.RequireFromString("2.50")).MultiplyByInt(3)
	assert.Equal(t, "7.50", m.Amount().StringFixed(2))
	assert.Equal(t, USD, m.Currency())
}

func TestMoney_Format(t *testing.T) {
	tests := []struct {
		name string
		m    Money
		want string
	}{
		{"usd", NewMoneyUSD(decimal.RequireFromString("7.5")), "$7.50"},
		{"zero", Zero(USD), "$0.00"},
		{"negative", NewMoneyUSD(decimal.RequireFromString("-1.25")), "-$1.25"},
		{"euro", Money{amount: decimal.NewFromInt(3), currency: EUR}, "€3.00"},
		{"unknown symbol", Money{amount: decimal.NewFromInt(3), currency: "CHF"}, "3.00 CHF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.Format())
		})
	}
}
