package slack

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/apperror"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/response"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/validate"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

type NotifyRequest struct {
	Topic string `json:"topic" validate:"required"`
	URL   string `json:"url" validate:"omitempty,url"`
}

func NewHandler(svc Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: svc, logger: logger.Named("slack.handler")}
}

// POST /slack/notify
func (h *Handler) Notify(c *gin.Context) {
	req, violations := validate.Body[NotifyRequest](c.Request.Body)
	if len(violations) > 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "invalid payload", violations)
		return
	}

	if err := h.service.Notify(c.Request.Context(), req.Topic, req.URL); err != nil {
		h.logger.Error("slack notify failed", zap.Error(err))
		response.Error(c, http.StatusBadGateway, apperror.CodeInternal, "failed to deliver notification", nil)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"ok": true})
}
