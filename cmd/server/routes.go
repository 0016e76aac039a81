package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	domainerrors "dye-kulture.backend/internal/domain/errors"
	"dye-kulture.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	cartHandler    *handlers.CartHandler
	productHandler *handlers.ProductHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/verify-email", d.authHandler.VerifyEmail)
			auth.GET("/profile", d.authMiddleware, d.authHandler.GetProfile)
		}

		// Cart routes (protected)
		cart := v1.Group("/cart")
		cart.Use(d.authMiddleware)
		{
			cart.GET("", d.cartHandler.GetCart)
			cart.POST("/add", d.cartHandler.AddToCart)
			cart.PUT("/:productId", d.cartHandler.UpdateCartItem)
			cart.DELETE("/:productId", d.cartHandler.RemoveFromCart)
			cart.DELETE("", d.cartHandler.ClearCart)
		}

		// Catalog routes (public)
		products := v1.Group("/products")
		{
			products.GET("", d.productHandler.GetAllProducts)
			products.GET("/search", d.productHandler.SearchProducts)
			products.GET("/category/:category", d.productHandler.GetProductsByCategory)
			products.GET("/:id", d.productHandler.GetProductByID)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine, allowedOrigin string) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowedOrigin == "*" || origin == allowedOrigin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "dye-kulture-backend",
			"version": "1.0.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerNotFoundHandler(r *gin.Engine) {
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    domainerrors.CodeNotFound,
			"message": "Route not found",
		})
	})
}
