package server

import (
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/skinglow/skinglow-backend/internal/handlers"
	"github.com/skinglow/skinglow-backend/internal/middleware"
	"github.com/skinglow/skinglow-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	CORSOrigins    []string
	ProductHandler *handlers.ProductHandler
	CartHandler    *handlers.CartHandler
	ContactHandler *handlers.ContactHandler
	HealthHandler  *handlers.HealthHandler
	// StaticDir serves the bundled storefront when non-empty.
	StaticDir string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(cfg.Log))

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", "X-Request-ID"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	{
		api.GET("/products", cfg.ProductHandler.ListProducts)
		api.GET("/products/:id", cfg.ProductHandler.GetProduct)

		api.GET("/cart", cfg.CartHandler.ListCart)
		api.POST("/cart", cfg.CartHandler.AddToCart)
		api.PUT("/cart/:id", cfg.CartHandler.UpdateCartItem)
		api.DELETE("/cart/:id", cfg.CartHandler.DeleteCartItem)

		api.POST("/contact", cfg.ContactHandler.SubmitContact)
		api.GET("/contact", cfg.ContactHandler.ListContacts)
		api.GET("/contact/:id", cfg.ContactHandler.GetContact)
		api.PUT("/contact/:id", cfg.ContactHandler.UpdateContact)
		api.DELETE("/contact/:id", cfg.ContactHandler.DeleteContact)

		api.GET("/health", cfg.HealthHandler.Health)
	}

	if cfg.StaticDir != "" {
		router.StaticFile("/", filepath.Join(cfg.StaticDir, "index.html"))
		router.StaticFile("/styles.css", filepath.Join(cfg.StaticDir, "styles.css"))
		router.StaticFile("/app.js", filepath.Join(cfg.StaticDir, "app.js"))
	}

	return router
}
