package devserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"bloomshop/internal/domain"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type signupRequest struct {
	UserName string `json:"userName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type passwordChangeRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (h *handlers) checkPassword(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email and password are required")
		return
	}

	u, err := h.deps.Users.GetByEmail(c.Request.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.fail(c, domain.ErrInvalidCredentials)
			return
		}
		h.fail(c, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		h.fail(c, domain.ErrInvalidCredentials)
		return
	}

	c.JSON(http.StatusOK, domain.SessionFromUser(*u))
}

func (h *handlers) signUp(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "userName, email and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.fail(c, err)
		return
	}

	created, err := h.deps.Users.Create(c.Request.Context(), domain.User{
		UserName:     strings.TrimSpace(req.UserName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Settings:     map[string]interface{}{},
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, domain.SessionFromUser(*created))
}

func (h *handlers) getUser(c *gin.Context) {
	u, err := h.deps.Users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.SessionFromUser(*u))
}

func (h *handlers) updateUser(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		badRequest(c, "invalid body")
		return
	}

	updated, err := h.deps.Users.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.SessionFromUser(*updated))
}

func (h *handlers) deleteUser(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	u, err := h.deps.Users.GetByID(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	// Account rows go together with the account.
	if err := h.deps.CartLines.DeleteByEmail(ctx, u.Email); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.deps.Wishlist.DeleteByEmail(ctx, u.Email); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.deps.Users.Delete(ctx, id); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *handlers) changePassword(c *gin.Context) {
	var req passwordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "currentPassword and newPassword are required")
		return
	}

	ctx := c.Request.Context()
	u, err := h.deps.Users.GetByID(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)) != nil {
		h.fail(c, domain.ErrInvalidCredentials)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.deps.Users.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *handlers) exportUser(c *gin.Context) {
	ctx := c.Request.Context()
	u, err := h.deps.Users.GetByID(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	cart, err := h.deps.CartLines.ListByEmail(ctx, u.Email)
	if err != nil {
		h.fail(c, err)
		return
	}
	wish, err := h.deps.Wishlist.ListByEmail(ctx, u.Email)
	if err != nil {
		h.fail(c, err)
		return
	}
	orders, err := h.deps.Orders.ListByEmail(ctx, u.Email)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     domain.SessionFromUser(*u),
		"cart":     cart,
		"wishlist": wish,
		"orders":   orders,
	})
}

func (h *handlers) userStats(c *gin.Context) {
	ctx := c.Request.Context()
	u, err := h.deps.Users.GetByID(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	cart, err := h.deps.CartLines.ListByEmail(ctx, u.Email)
	if err != nil {
		h.fail(c, err)
		return
	}
	wish, err := h.deps.Wishlist.ListByEmail(ctx, u.Email)
	if err != nil {
		h.fail(c, err)
		return
	}
	orders, err := h.deps.Orders.ListByEmail(ctx, u.Email)
	if err != nil {
		h.fail(c, err)
		return
	}

	cartValue := 0.0
	cartItems := 0
	for _, item := range cart {
		cartValue += item.Price * float64(item.Quantity)
		cartItems += item.Quantity
	}
	totalSpent := 0.0
	for _, o := range orders {
		totalSpent += o.Total
	}

	c.JSON(http.StatusOK, gin.H{
		"cartItems":     cartItems,
		"cartValue":     cartValue,
		"wishlistItems": len(wish),
		"orders":        len(orders),
		"totalSpent":    totalSpent,
		"memberSince":   u.CreatedAt,
	})
}
