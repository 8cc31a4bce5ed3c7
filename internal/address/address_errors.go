package address

import (
	"net/http"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/apperror"
)

var (
	ErrAddressNotFound = apperror.New(
		apperror.CodeNotFound,
		"address not found",
		http.StatusNotFound,
	)

	ErrInvalidAddressID = apperror.New(
		apperror.CodeValidation,
		"invalid address id format",
		http.StatusBadRequest,
	)
)
