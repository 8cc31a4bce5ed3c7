package checkout

import (
	"fmt"
	"net/http"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/apperror"
)

type ErrorKind string

const (
	KindEmptyCart         ErrorKind = "EMPTY_CART"
	KindProductNotFound   ErrorKind = "PRODUCT_NOT_FOUND"
	KindVariantNotFound   ErrorKind = "VARIANT_NOT_FOUND"
	KindPriceUnavailable  ErrorKind = "PRICE_UNAVAILABLE"
	KindInvalidQuantity   ErrorKind = "INVALID_QUANTITY"
	KindInsufficientStock ErrorKind = "INSUFFICIENT_STOCK"
	KindCurrencyMismatch  ErrorKind = "CURRENCY_MISMATCH"
)

// LineError is a typed validation failure. Line is the offending cart index,
// or -1 for cart-level failures, so callers can render per-line feedback.
type LineError struct {
	Kind      ErrorKind
	Line      int
	ProductID string
}

func (e *LineError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("cart validation failed: %s", e.Kind)
	}
	return fmt.Sprintf("cart line %d (%s): %s", e.Line, e.ProductID, e.Kind)
}

// ToApp maps a line failure onto the shared error taxonomy.
func (e *LineError) ToApp() *apperror.AppError {
	switch e.Kind {
	case KindProductNotFound, KindVariantNotFound:
		return apperror.New(apperror.CodeNotFound, e.Error(), http.StatusNotFound)
	case KindInvalidQuantity, KindEmptyCart:
		return apperror.New(apperror.CodeValidation, e.Error(), http.StatusBadRequest)
	default:
		return apperror.New(apperror.CodeBusinessRule, e.Error(), http.StatusUnprocessableEntity)
	}
}
