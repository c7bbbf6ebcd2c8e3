package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloomshop/internal/domain"
)

func (h *handlers) listWishlist(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, "email query parameter is required")
		return
	}
	items, err := h.deps.Wishlist.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) addWishlistItem(c *gin.Context) {
	var item domain.WishlistItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, "invalid body")
		return
	}
	if item.Email == "" || item.ProductID == "" {
		badRequest(c, "email and productId are required")
		return
	}
	item.ID = ""

	created, err := h.deps.Wishlist.Create(c.Request.Context(), item)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) removeWishlistItem(c *gin.Context) {
	if err := h.deps.Wishlist.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
