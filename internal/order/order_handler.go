package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/checkout"
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

// POST /orders
func (h *Handler) Checkout(c *gin.Context) {
	req, violations := validate.Body[CheckoutRequest](c.Request.Body)
	if len(violations) > 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "invalid payload", violations)
		return
	}

	locale := i18n.Match(c.GetHeader("Accept-Language"))
	userID := c.GetString("user_id")

	res, err := h.service.Checkout(c.Request.Context(), userID, *req, locale)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Order placed", res)
}

// GET /orders/:id
func (h *Handler) Detail(c *gin.Context) {
	locale := i18n.Match(c.GetHeader("Accept-Language"))

	res, err := h.service.Detail(c.Request.Context(), c.Param("id"), locale)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// GET /orders
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeSecurity, "user not authenticated", nil)
		return
	}

	locale := i18n.Match(c.GetHeader("Accept-Language"))

	res, err := h.service.List(c.Request.Context(), userID, locale)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// PATCH /orders/:id/payment-status
func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	input, violations := validate.Body[UpdatePaymentStatusInput](c.Request.Body)
	if len(violations) > 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "invalid payload", violations)
		return
	}

	res, err := h.service.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), *input)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Payment status updated", res)
}

// respondOrderError also maps cart line failures, which carry their own
// status taxonomy, onto the shared envelope.
func respondOrderError(c *gin.Context, err error) {
	var lineErr *checkout.LineError
	if errors.As(err, &lineErr) {
		response.FromError(c, lineErr.ToApp())
		return
	}
	response.FromError(c, err)
}
