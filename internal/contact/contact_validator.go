package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/i18n"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/validate"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const maxMessageLength = 1000

// ValidateContact reports every violation at once, in a fixed order
// (name, email, message) so clients see deterministic output. Messages come
// from the injected lookup, keeping the validator locale-agnostic.
func ValidateContact(req ContactRequest, msg i18n.MessageFunc) []validate.FieldError {
	var violations []validate.FieldError

	if strings.TrimSpace(req.Name) == "" {
		violations = append(violations, validate.FieldError{
			Field:   "name",
			Rule:    "required",
			Message: msg("contact.name.required"),
		})
	}

	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		violations = append(violations, validate.FieldError{
			Field:   "email",
			Rule:    "email",
			Message: msg("contact.email.invalid"),
		})
	}

	length := utf8.RuneCountInString(strings.TrimSpace(req.Message))
	if length < 1 || length > maxMessageLength {
		violations = append(violations, validate.FieldError{
			Field:   "message",
			Rule:    "length",
			Message: msg("contact.message.length"),
		})
	}

	return violations
}
