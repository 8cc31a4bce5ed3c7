package contact_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/contact"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/i18n"
)

func TestValidateContact(t *testing.T) {
	msg := i18n.Lookup("en")

	t.Run("valid_request", func(t *testing.T) {
		violations := contact.ValidateContact(contact.ContactRequest{
			Name:    "Andrii",
			Email:   "andrii@example.com",
			Message: "Hello from the site",
		}, msg)
		assert.Empty(t, violations)
	})

	t.Run("collects_all_violations_in_order", func(t *testing.T) {
		violations := contact.ValidateContact(contact.ContactRequest{
			Name:    " ",
			Email:   "not-an-email",
			Message: "",
		}, msg)

		require.Len(t, violations, 3)
		assert.Equal(t, "name", violations[0].Field)
		assert.Equal(t, "email", violations[1].Field)
		assert.Equal(t, "message", violations[2].Field)
	})

	t.Run("message_length_bounds", func(t *testing.T) {
		ok := contact.ValidateContact(contact.ContactRequest{
			Name:    "A",
			Email:   "a@b.co",
			Message: strings.Repeat("x", 1000),
		}, msg)
		assert.Empty(t, ok)

		tooLong := contact.ValidateContact(contact.ContactRequest{
			Name:    "A",
			Email:   "a@b.co",
			Message: strings.Repeat("x", 1001),
		}, msg)
		require.Len(t, tooLong, 1)
		assert.Equal(t, "message", tooLong[0].Field)
	})

	t.Run("localized_messages", func(t *testing.T) {
		violations := contact.ValidateContact(contact.ContactRequest{
			Email:   "a@b.co",
			Message: "hi",
		}, i18n.Lookup("uk"))
		require.Len(t, violations, 1)
		assert.Equal(t, "Вкажіть ім'я", violations[0].Message)
	})
}
