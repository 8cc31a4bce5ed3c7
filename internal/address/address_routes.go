package address

import (
	"github.com/gin-gonic/gin"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	addresses := rg.Group("/addresses")
	addresses.Use(middleware.Auth())
	{
		addresses.POST("", h.Create)
		addresses.GET("", h.List)
		addresses.DELETE("/:id", h.Delete)
	}
}
