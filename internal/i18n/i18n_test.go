package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/i18n"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, "uk", i18n.Match("uk-UA,uk;q=0.9,en;q=0.8"))
	assert.Equal(t, "en", i18n.Match("en-US,en;q=0.9"))
	assert.Equal(t, "en", i18n.Match("fr-FR"))
	assert.Equal(t, "en", i18n.Match(""))
	assert.Equal(t, "en", i18n.Match(";;;"))
}

func TestLookup(t *testing.T) {
	t.Run("localized_message", func(t *testing.T) {
		msg := i18n.Lookup("uk")
		assert.Equal(t, "Вкажіть ім'я", msg("contact.name.required"))
	})

	t.Run("falls_back_to_english", func(t *testing.T) {
		msg := i18n.Lookup("de")
		assert.Equal(t, "Name is required", msg("contact.name.required"))
	})

	t.Run("missing_key_returns_key", func(t *testing.T) {
		msg := i18n.Lookup("en")
		assert.Equal(t, "no.such.key", msg("no.such.key"))
	})

	t.Run("region_qualified_locale", func(t *testing.T) {
		msg := i18n.Lookup("uk-UA")
		assert.Equal(t, "Недійсна адреса електронної пошти", msg("contact.email.invalid"))
	})
}
