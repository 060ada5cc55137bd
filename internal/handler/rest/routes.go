package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrient-solver/internal/handler/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, handlers *Handlers) {
	// Add global middleware first
	r.Use(middleware.LoggingMiddleware(handlers.Health.logger))
	r.Use(middleware.RecoveryMiddleware(handlers.Health.logger))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.ContextMiddleware(handlers.Health.logger))  // Add context middleware
	r.Use(middleware.ResponseMiddleware(handlers.Health.logger)) // Add response middleware

	r.HEAD("/health/liveness", handlers.Health.Liveness)
	r.GET("/health/readiness", handlers.Health.Readiness)

	// API v1 routes. There is no per-account data in this service, so
	// nothing here sits behind auth - the catalog is a shared reference
	// table and the solver is a pure function of its request body.
	v1 := r.Group("/api/v1")
	{
		foods := v1.Group("/foods")
		{
			foods.POST("", handlers.Food.Create)
			foods.GET("/search", handlers.Food.Search)
			foods.GET("/:id", handlers.Food.Get)
			foods.PUT("/:id", handlers.Food.Update)
			foods.DELETE("/:id", handlers.Food.Delete)
		}

		meals := v1.Group("/meals")
		{
			meals.POST("/solve", handlers.Solver.Solve)
		}
	}

	// 404 handler
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
