package account

import (
	"github.com/gin-gonic/gin"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	profile := rg.Group("/account")
	profile.Use(middleware.Auth())
	{
		profile.GET("/profile", h.Profile)
		profile.PUT("/profile", h.UpdateProfile)
	}
}
