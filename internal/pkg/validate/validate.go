// Package validate is the JSON-body-against-schema gate used by API routes.
// Malformed input is an expected condition: callers always get back the full
// violation list, never a panic.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the json names the client actually sent.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return val
}

// Body decodes r into T and validates it against T's tags.
func Body[T any](r io.Reader) (*T, []FieldError) {
	var target T
	if err := json.NewDecoder(r).Decode(&target); err != nil {
		return nil, []FieldError{{
			Field:   "body",
			Rule:    "json",
			Message: "malformed JSON body",
		}}
	}
	if violations := Struct(&target); len(violations) > 0 {
		return nil, violations
	}
	return &target, nil
}

// Struct reports every violation in declaration order, not just the first.
func Struct(val any) []FieldError {
	err := v.Struct(val)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{
			Field:   "body",
			Rule:    "invalid",
			Message: "invalid payload",
		}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe),
			Rule:    fe.Tag(),
			Message: messageFor(fe),
		})
	}
	return out
}

// fieldPath strips the root struct name from "CheckoutRequest.items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "uuid":
		return "must be a valid identifier"
	case "len":
		return fmt.Sprintf("must have length %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation rule %q", fe.Tag())
	}
}
