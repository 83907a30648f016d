package httpserver

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"narie-storefront/internal/cart"
	"narie-storefront/internal/catalog"
	"narie-storefront/internal/checkout"
	"narie-storefront/internal/domain"
	"narie-storefront/internal/i18n"
)

// recommender is the slice of the recommendation gateway the handlers need.
type recommender interface {
	Recommend(ctx context.Context, mood string, lang domain.Language, inventory []domain.InventoryItem) (*domain.AIRecommendation, error)
}

// Deps carries the wired stores and services. Recommender is nil when the AI
// credential is not configured; the rest of the storefront stays usable.
type Deps struct {
	Catalog     *catalog.Store
	Cart        *cart.Store
	Checkout    *checkout.Manager
	Setting     *i18n.Setting
	Recommender recommender
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, deps Deps, allowedOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler)

	h := &handlers{deps: deps, logger: logger}

	api := router.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)

		api.GET("/language", h.getLanguage)
		api.PUT("/language", h.setLanguage)
		api.GET("/translations/:lang", h.getTranslations)
		api.GET("/legal/:doc", h.getLegal)

		api.GET("/cart", h.getCart)
		api.POST("/cart/items", h.addCartItem)
		api.PATCH("/cart/items", h.updateCartItem)
		api.DELETE("/cart/items", h.removeCartItem)
		api.POST("/cart/toggle", h.toggleCart)

		api.POST("/checkout", h.beginCheckout)
		api.GET("/checkout", h.getCheckout)
		api.POST("/checkout/information", h.submitInformation)
		api.POST("/checkout/back", h.backToInformation)
		api.POST("/checkout/order", h.placeOrder)
		api.DELETE("/checkout", h.closeCheckout)

		api.POST("/recommendations", h.recommend)
	}

	return router, nil
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}
