package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/money"
)

func TestFormat(t *testing.T) {
	t.Run("usd_en", func(t *testing.T) {
		got, err := money.Format(1999, "USD", "en")
		require.NoError(t, err)
		assert.Equal(t, "$19.99", got)
	})

	t.Run("uah_uk", func(t *testing.T) {
		got, err := money.Format(150000, "UAH", "uk")
		require.NoError(t, err)
		assert.Contains(t, got, "1 500,00")
		assert.Contains(t, got, "₴")
	})

	t.Run("grouping_large_amount", func(t *testing.T) {
		got, err := money.Format(123456789, "EUR", "en")
		require.NoError(t, err)
		assert.Equal(t, "€1,234,567.89", got)
	})

	t.Run("negative_amount", func(t *testing.T) {
		got, err := money.Format(-500, "GBP", "en")
		require.NoError(t, err)
		assert.Equal(t, "-£5.00", got)
	})

	t.Run("region_qualified_locale", func(t *testing.T) {
		got, err := money.Format(1999, "USD", "en-GB")
		require.NoError(t, err)
		assert.Equal(t, "$19.99", got)
	})

	t.Run("unknown_currency", func(t *testing.T) {
		_, err := money.Format(100, "XXX", "en")
		assert.Error(t, err)
	})

	t.Run("unknown_locale", func(t *testing.T) {
		_, err := money.Format(100, "USD", "fr")
		assert.Error(t, err)
	})
}
