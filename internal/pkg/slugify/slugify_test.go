package slugify_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/slugify"
)

func TestMake(t *testing.T) {
	t.Run("descriptive_title_no_suffix", func(t *testing.T) {
		got := slugify.Make("A Fully Descriptive Title")
		assert.Equal(t, "a-fully-descriptive-title", got)
	})

	t.Run("short_input_gets_padded", func(t *testing.T) {
		got := slugify.Make("Hi")
		require.GreaterOrEqual(t, len(got), 10)
		assert.True(t, strings.HasPrefix(got, "hi-"), "got %q", got)
		assert.Regexp(t, regexp.MustCompile(`^hi-[a-z0-9]{8}$`), got)
	})

	t.Run("short_inputs_unlikely_to_collide", func(t *testing.T) {
		a := slugify.Make("Hi")
		b := slugify.Make("Hi")
		assert.NotEqual(t, a, b)
	})

	t.Run("joins_multiple_parts", func(t *testing.T) {
		got := slugify.Make("Kyiv Coffee", "Podil Branch")
		assert.Equal(t, "kyiv-coffee-podil-branch", got)
	})

	t.Run("skips_empty_parts", func(t *testing.T) {
		got := slugify.Make("", "Independent Bookshop", "  ")
		assert.Equal(t, "independent-bookshop", got)
	})

	t.Run("empty_input_is_pure_suffix", func(t *testing.T) {
		got := slugify.Make()
		assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{8}$`), got)
	})
}
