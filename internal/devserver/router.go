package devserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"bloomshop/internal/domain"
)

// buildRouter wires the storefront API routes.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{logger: logger, deps: deps}

	router.POST("/checkpassword", h.checkPassword)
	router.POST("/signup", h.signUp)
	router.GET("/users/:id", h.getUser)
	router.PUT("/users/:id", h.updateUser)
	router.DELETE("/users/:id", h.deleteUser)
	router.PUT("/users/:id/password", h.changePassword)
	router.GET("/users/:id/export", h.exportUser)
	router.GET("/users/:id/stats", h.userStats)

	router.GET("/carts", h.listCart)
	router.POST("/carts", h.addCartItem)
	router.PUT("/carts/:id", h.updateCartItem)
	router.DELETE("/carts/:id", h.removeCartItem)
	router.DELETE("/cart/clear", h.clearCart)

	router.GET("/wishlist", h.listWishlist)
	router.POST("/wishlist", h.addWishlistItem)
	router.DELETE("/wishlist/:id", h.removeWishlistItem)

	router.GET("/products", h.listProducts)
	router.POST("/products", h.createProduct)

	router.POST("/orders", h.createOrder)
	router.GET("/orders", h.listOrders)
	router.GET("/orders/:id", h.getOrder)

	return router
}

type handlers struct {
	logger *log.Logger
	deps   Deps
}

// fail maps repository errors onto the wire's {"message": ...} body.
func (h *handlers) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"message": "Email already in use"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
	default:
		h.logger.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}
