package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/i18n"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/apperror"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/response"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/validate"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// POST /contact
func (h *Handler) Submit(c *gin.Context) {
	req, violations := validate.Body[ContactRequest](c.Request.Body)
	if len(violations) > 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "invalid payload", violations)
		return
	}

	// An explicit locale in the payload wins over content negotiation.
	locale := req.Locale
	if locale == "" {
		locale = i18n.Match(c.GetHeader("Accept-Language"))
	}
	if violations := ValidateContact(*req, i18n.Lookup(locale)); len(violations) > 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "invalid payload", violations)
		return
	}

	if err := h.service.Submit(c.Request.Context(), *req); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Message sent", nil)
}
