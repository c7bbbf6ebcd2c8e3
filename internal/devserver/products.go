package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloomshop/internal/domain"
	"bloomshop/internal/repository/product"
)

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.Products.List(c.Request.Context(), product.Filter{
		Category: c.Query("category"),
		ID:       c.Query("id"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// createProduct exists for seeding a fresh backend from the command line.
func (h *handlers) createProduct(c *gin.Context) {
	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid body")
		return
	}
	if p.Title == "" {
		badRequest(c, "title is required")
		return
	}

	created, err := h.deps.Products.Create(c.Request.Context(), p)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
