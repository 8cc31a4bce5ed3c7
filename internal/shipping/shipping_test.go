package shipping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/shipping"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		code string
		want shipping.Zone
	}{
		{"DE", shipping.ZoneEU},
		{"fr", shipping.ZoneEU},
		{"GB", shipping.ZoneGB},
		{"gb", shipping.ZoneGB},
		{"UA", shipping.ZoneROW},
		{"US", shipping.ZoneROW},
		{" pl ", shipping.ZoneEU},
	}

	for _, tc := range cases {
		zone, err := shipping.Classify(tc.code)
		require.NoError(t, err, tc.code)
		assert.Equal(t, tc.want, zone, tc.code)
	}
}

func TestClassify_Invalid(t *testing.T) {
	for _, code := range []string{"", "D", "DEU", "1A", "d3"} {
		_, err := shipping.Classify(code)
		assert.Error(t, err, code)
	}
}

func TestRateMinor(t *testing.T) {
	rate, ok := shipping.RateMinor(shipping.ZoneEU, "EUR")
	require.True(t, ok)
	assert.EqualValues(t, 500, rate)

	_, ok = shipping.RateMinor(shipping.ZoneEU, "JPY")
	assert.False(t, ok)
}
