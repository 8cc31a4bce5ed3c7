package contact

import (
	"net/http"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/apperror"
)

var (
	ErrCaptchaFailed = apperror.New(
		apperror.CodeSecurity,
		"captcha verification failed",
		http.StatusForbidden,
	)

	ErrDeliveryFailed = apperror.New(
		apperror.CodeInternal,
		"failed to deliver message",
		http.StatusInternalServerError,
	)
)
