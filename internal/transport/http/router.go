package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
)

// RouterConfig carries what NewRouter needs besides the handler.
type RouterConfig struct {
	Identity    contracts.IdentityProvider
	Logger      *zap.Logger
	CORSOrigins []string
}

// NewRouter wires middleware and routes. The caller sets gin's mode.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(
		RequestID(),
		AccessLog(cfg.Logger),
		Recovery(cfg.Logger),
	)
	if len(cfg.CORSOrigins) > 0 {
		router.Use(CORS(cfg.CORSOrigins))
	}

	router.GET("/healthz", h.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/categories", h.ListCategories)
	}

	authed := api.Group("")
	authed.Use(Auth(cfg.Identity))
	{
		authed.GET("/cart", h.GetCart)
		authed.POST("/cart/items", h.AddToCart)
		authed.PATCH("/cart/items/:product_id", h.UpdateCartItem)
		authed.DELETE("/cart/items/:product_id", h.RemoveCartItem)
		authed.DELETE("/cart", h.ClearCart)
		authed.POST("/orders", h.PlaceOrder)
	}

	return router
}
