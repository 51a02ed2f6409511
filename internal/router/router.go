package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookifyai/backend/internal/api"
	"github.com/cookifyai/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	llmHandler *api.LLMHandler,
	mealPlanHandler *api.MealPlanHandler,
	detectHandler *api.DetectHandler,
	imageHandler *api.ImageHandler,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	recipeHandler.RegisterRoutes(v1)
	llmHandler.RegisterRoutes(v1)
	mealPlanHandler.RegisterRoutes(v1)
	detectHandler.RegisterRoutes(v1)
	imageHandler.RegisterRoutes(v1)

	return router
}
