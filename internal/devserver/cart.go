package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloomshop/internal/domain"
)

func (h *handlers) listCart(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, "email query parameter is required")
		return
	}
	items, err := h.deps.CartLines.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) addCartItem(c *gin.Context) {
	var item domain.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, "invalid body")
		return
	}
	if item.Email == "" || item.ProductID == "" {
		badRequest(c, "email and productId are required")
		return
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	item.ID = ""

	created, err := h.deps.CartLines.Create(c.Request.Context(), item)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type quantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "quantity is required")
		return
	}
	if req.Quantity < 1 {
		badRequest(c, "quantity must be at least 1")
		return
	}

	updated, err := h.deps.CartLines.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	if err := h.deps.CartLines.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

type clearCartRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *handlers) clearCart(c *gin.Context) {
	var req clearCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email is required")
		return
	}
	if err := h.deps.CartLines.DeleteByEmail(c.Request.Context(), req.Email); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
