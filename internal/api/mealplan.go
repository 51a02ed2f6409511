package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookifyai/backend/internal/model"
	"github.com/cookifyai/backend/internal/service"
)

// MealPlanHandler serves weekly meal plan generation.
type MealPlanHandler struct {
	planner service.MealPlanner
}

func NewMealPlanHandler(planner service.MealPlanner) *MealPlanHandler {
	return &MealPlanHandler{planner: planner}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/mealplan", h.GeneratePlan)
}

// GeneratePlan builds a 7-day meal plan from a daily macro target. A
// partial week is never returned: if any meal fails, the request fails.
func (h *MealPlanHandler) GeneratePlan(c *gin.Context) {
	var req struct {
		Macros      model.MacroTarget `json:"macros"`
		Ingredients []string          `json:"ingredients"`
		Preference  string            `json:"preference"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Macros.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Macros.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Daily macro targets are required"})
		return
	}

	ingredients := model.NormalizeIngredients(req.Ingredients)
	plan, err := h.planner.GeneratePlan(c.Request.Context(), req.Macros, ingredients, req.Preference)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate meal plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}
