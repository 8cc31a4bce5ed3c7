package account

import (
	"net/http"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/apperror"
)

var ErrUserNotFound = apperror.New(
	apperror.CodeNotFound,
	"user not found",
	http.StatusNotFound,
)
