package catalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.Detail)
	}
}
