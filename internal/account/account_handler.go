package account

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

// GET /account/profile
func (h *Handler) Profile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeSecurity, "user not authenticated", nil)
		return
	}

	res, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// PUT /account/profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeSecurity, "user not authenticated", nil)
		return
	}

	req, violations := validate.Body[UpdateProfileRequest](c.Request.Body)
	if len(violations) > 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "invalid payload", violations)
		return
	}

	locale := i18n.Match(c.GetHeader("Accept-Language"))
	res, violations, err := h.service.UpdateProfile(c.Request.Context(), userID, *req, i18n.Lookup(locale))
	if err != nil {
		response.FromError(c, err)
		return
	}
	if len(violations) > 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "invalid profile", violations)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", res)
}
