package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloomshop/internal/domain"
)

func (h *handlers) createOrder(c *gin.Context) {
	var o domain.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		badRequest(c, "invalid body")
		return
	}
	if o.Email == "" {
		badRequest(c, "email is required")
		return
	}
	if len(o.Cart) == 0 {
		badRequest(c, "cart must not be empty")
		return
	}
	o.ID = ""

	created, err := h.deps.Orders.Create(c.Request.Context(), o)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) listOrders(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, "email query parameter is required")
		return
	}
	orders, err := h.deps.Orders.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *handlers) getOrder(c *gin.Context) {
	o, err := h.deps.Orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}
