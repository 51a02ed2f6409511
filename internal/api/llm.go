package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookifyai/backend/internal/model"
	"github.com/cookifyai/backend/internal/service"
)

// LLMHandler serves the model-backed endpoints: recipe generation, macro
// suggestions and free-text search.
type LLMHandler struct {
	generator service.RecipeGenerator
	analyzer  service.QueryAnalyzer
	suggester service.Suggester
	search    service.RecipeSearcher
}

func NewLLMHandler(
	generator service.RecipeGenerator,
	analyzer service.QueryAnalyzer,
	suggester service.Suggester,
	search service.RecipeSearcher,
) *LLMHandler {
	return &LLMHandler{
		generator: generator,
		analyzer:  analyzer,
		suggester: suggester,
		search:    search,
	}
}

func (h *LLMHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/generate", h.GenerateRecipes)
	router.POST("/recipes/search/ai", h.SearchWithAI)
	router.POST("/suggestions", h.Suggestions)
}

// GenerateRecipes asks the model to invent recipes for the submitted
// constraints.
func (h *LLMHandler) GenerateRecipes(c *gin.Context) {
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

	ingredients := model.NormalizeIngredients(req.Ingredients)
	recipes, err := h.generator.GenerateRecipes(c.Request.Context(), req.Macros, ingredients, req.Preference)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// SearchWithAI analyzes a free-text query into structured intent and runs
// the most specific search the intent supports: ingredients first, then
// macros, then the cleaned query text.
func (h *LLMHandler) SearchWithAI(c *gin.Context) {
	var req struct {
		Query  string `json:"query"`
		Number int    `json:"number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A search query is required"})
		return
	}

	intent, err := h.analyzer.AnalyzeSearchQuery(c.Request.Context(), req.Query)
	if err != nil {
		// Fall back to using the raw query as-is.
		intent = &model.SearchIntent{Query: req.Query}
	}

	ctx := c.Request.Context()
	var recipes []model.Recipe
	switch {
	case len(intent.Ingredients) > 0:
		recipes = h.search.SearchRecipesByIngredients(ctx, intent.Ingredients, req.Number)
	case !intent.Macros.IsEmpty():
		recipes = h.search.SearchRecipesByMacros(ctx, intent.Macros, req.Number)
	case intent.Query != "":
		recipes = h.search.SearchRecipes(ctx, intent.Query, req.Number)
	default:
		recipes = h.search.SearchRecipes(ctx, req.Query, req.Number)
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes, "intent": intent})
}

// Suggestions returns recipe ideas for a macro target. The service never
// fails: with no macros it returns a prompt to enter some, and on model
// trouble it falls back to a templated set.
func (h *LLMHandler) Suggestions(c *gin.Context) {
	var req struct {
		Macros model.MacroTarget `json:"macros"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Macros.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.suggester.SuggestRecipes(c.Request.Context(), req.Macros)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to build suggestions"})
		return
	}

	c.JSON(http.StatusOK, result)
}
