package order

import (
	"net/http"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/apperror"
)

var (
	ErrOrderNotFound            = apperror.New(apperror.CodeNotFound, "order not found", http.StatusNotFound)
	ErrInvalidOrderID           = apperror.New(apperror.CodeValidation, "invalid order id", http.StatusBadRequest)
	ErrCaptchaFailed            = apperror.New(apperror.CodeSecurity, "captcha verification failed", http.StatusForbidden)
	ErrCheckoutInProgress       = apperror.New(apperror.CodeBusinessRule, "a checkout for this cart is already in progress", http.StatusConflict)
	ErrShippingUnavailable      = apperror.New(apperror.CodeBusinessRule, "no shipping rate for this destination", http.StatusUnprocessableEntity)
	ErrInvalidCountry           = apperror.New(apperror.CodeValidation, "invalid destination country", http.StatusBadRequest)
	ErrInvalidPaymentStatus     = apperror.New(apperror.CodeValidation, "unknown payment status", http.StatusBadRequest)
	ErrInvalidPaymentTransition = apperror.New(apperror.CodeBusinessRule, "payment status transition not allowed", http.StatusConflict)
	ErrOutOfStock               = apperror.New(apperror.CodeBusinessRule, "insufficient stock for one of the items", http.StatusUnprocessableEntity)
	ErrOrderFailed              = apperror.New(apperror.CodeInternal, "failed to place order", http.StatusInternalServerError)
)
