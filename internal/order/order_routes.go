package order

import (
	"github.com/gin-gonic/gin"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	orders := rg.Group("/orders")
	{
		// Guest checkout is allowed; an authenticated user gets the
		// order attached to their account.
		orders.POST("", middleware.AuthOptional(), h.Checkout)
		orders.GET("", middleware.Auth(), h.List)
		orders.GET("/:id", middleware.Auth(), h.Detail)
		orders.PATCH("/:id/payment-status", middleware.Auth(), h.UpdatePaymentStatus)
	}
}
