package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/address"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/i18n"
)

func TestValidateAddress(t *testing.T) {
	msg := i18n.Lookup("en")

	t.Run("plausible_addresses_pass", func(t *testing.T) {
		for _, s := range []string{
			"12 Baker Street",
			"Khreshchatyk 22, Kyiv",
			"Flat 4, 221B Baker St",
		} {
			assert.Empty(t, address.ValidateAddress(s, msg), s)
		}
	})

	t.Run("empty_address_is_required", func(t *testing.T) {
		violations := address.ValidateAddress("   ", msg)
		require.Len(t, violations, 1)
		assert.Equal(t, "required", violations[0].Rule)
	})

	t.Run("implausible_addresses_fail", func(t *testing.T) {
		for _, s := range []string{
			"abc",       // too short
			"no number", // no digit
			"12345",     // no letters
		} {
			violations := address.ValidateAddress(s, msg)
			require.Len(t, violations, 1, s)
			assert.Equal(t, "implausible", violations[0].Rule, s)
		}
	})
}
