package account

import (
	"strings"

	"github.com/google/uuid"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/i18n"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/validate"
)

// ValidateUser checks the user record invariants: a well-formed identifier
// and a non-empty display name. Violations are reported together.
func ValidateUser(id, name string, msg i18n.MessageFunc) []validate.FieldError {
	var violations []validate.FieldError

	if _, err := uuid.Parse(id); err != nil {
		violations = append(violations, validate.FieldError{
			Field:   "id",
			Rule:    "uuid",
			Message: msg("account.id.invalid"),
		})
	}

	if strings.TrimSpace(name) == "" {
		violations = append(violations, validate.FieldError{
			Field:   "name",
			Rule:    "required",
			Message: msg("account.name.required"),
		})
	}

	return violations
}
