// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/atelierluna/jewelry-backend/internal/config"
	"github.com/atelierluna/jewelry-backend/internal/handlers"
	"github.com/atelierluna/jewelry-backend/internal/middleware"
	"github.com/atelierluna/jewelry-backend/internal/services"
	"github.com/atelierluna/jewelry-backend/internal/store"
)

func Initialize(st store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(st)
	cartService := services.NewCartService(st)
	checkoutService := services.NewCheckoutService(cartService)
	userService := services.NewUserService(st)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	userHandler := handlers.NewUserHandler(userService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	r.Use(limiter.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Catalog
		api.GET("/categories", catalogHandler.GetCategories)
		api.GET("/categories/:slug", catalogHandler.GetCategoryBySlug)
		api.GET("/subcategories", catalogHandler.GetSubcategories)
		api.GET("/products", catalogHandler.GetProducts)
		api.GET("/products/:slug", catalogHandler.GetProductBySlug)

		// Cart
		cart := api.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("", cartHandler.AddToCart)
			cart.PUT("/:id", cartHandler.UpdateCartItem)
			cart.DELETE("/:id", cartHandler.RemoveCartItem)
			cart.DELETE("", cartHandler.ClearCart)
		}

		// Checkout (simulated)
		api.POST("/checkout", checkoutHandler.PlaceOrder)

		// Accounts
		users := api.Group("/users")
		{
			users.POST("", userHandler.Register)
			users.GET("/:id", userHandler.GetUser)
		}
	}

	return r
}
