package address

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/i18n"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/validate"
)

// MinLength is policy, not contract; tune it without touching the validator.
var MinLength = 5

// ValidateAddress applies the "looks like a real address" heuristic:
// non-blank, at least MinLength runes, and containing both a letter token
// and a digit (the street number).
func ValidateAddress(s string, msg i18n.MessageFunc) []validate.FieldError {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return []validate.FieldError{{
			Field:   "address",
			Rule:    "required",
			Message: msg("address.required"),
		}}
	}

	if utf8.RuneCountInString(trimmed) < MinLength || !looksLikeAddress(trimmed) {
		return []validate.FieldError{{
			Field:   "address",
			Rule:    "implausible",
			Message: msg("address.implausible"),
		}}
	}

	return nil
}

func looksLikeAddress(s string) bool {
	hasLetter := false
	hasDigit := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if hasLetter && hasDigit {
			return true
		}
	}
	return false
}
