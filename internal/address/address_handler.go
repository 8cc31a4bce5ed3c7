package address

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

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// POST /addresses
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	req, violations := validate.Body[CreateAddressRequest](c.Request.Body)
	if len(violations) > 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "invalid payload", violations)
		return
	}

	locale := i18n.Match(c.GetHeader("Accept-Language"))
	res, violations, err := h.service.Create(c.Request.Context(), userID, *req, i18n.Lookup(locale))
	if err != nil {
		response.FromError(c, err)
		return
	}
	if len(violations) > 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "invalid address", violations)
		return
	}

	response.Success(c, http.StatusCreated, "", res)
}

// GET /addresses
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	res, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// DELETE /addresses/:id
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Address deleted", nil)
}
