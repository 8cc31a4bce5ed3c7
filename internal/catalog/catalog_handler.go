package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/apperror"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GET /products
func (h *Handler) List(c *gin.Context) {
	status := c.DefaultQuery("status", StatusActive)

	products, err := h.service.List(c.Request.Context(), status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if products == nil {
		products = []Product{}
	}

	response.Success(c, http.StatusOK, "", products)
}

// GET /products/:id
func (h *Handler) Detail(c *gin.Context) {
	p, err := h.service.ProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	if p == nil {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "product not found", nil)
		return
	}

	response.Success(c, http.StatusOK, "", p)
}
