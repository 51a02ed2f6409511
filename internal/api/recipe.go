package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cookifyai/backend/internal/model"
	"github.com/cookifyai/backend/internal/service"
)

// RecipeHandler serves recipe browsing, search and favorites.
type RecipeHandler struct {
	search    service.RecipeSearcher
	favorites service.FavoritesStore
}

func NewRecipeHandler(search service.RecipeSearcher, favorites service.FavoritesStore) *RecipeHandler {
	return &RecipeHandler{
		search:    search,
		favorites: favorites,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/popular", h.PopularRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/search/ingredients", h.SearchByIngredients)
		recipes.POST("/search/macros", h.SearchByMacros)
		recipes.POST("/:id/favorite", h.FavoriteRecipe)
		recipes.DELETE("/:id/favorite", h.UnfavoriteRecipe)
	}
	router.GET("/favorites", h.ListFavorites)
}

// ListRecipes searches by free-text query, category or meal type. With no
// filters at all it returns the popular set.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	number := queryNumber(c)

	var recipes []model.Recipe
	switch {
	case c.Query("q") != "":
		recipes = h.search.SearchRecipes(c.Request.Context(), c.Query("q"), number)
	case c.Query("category") != "":
		recipes = h.search.FetchRecipesByCategory(c.Request.Context(), c.Query("category"), number)
	case c.Query("type") != "":
		recipes = h.search.FetchRecipesByMealType(c.Request.Context(), c.Query("type"), number)
	default:
		recipes = h.search.FetchPopularRecipes(c.Request.Context(), number)
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// PopularRecipes returns the popular recipe set.
func (h *RecipeHandler) PopularRecipes(c *gin.Context) {
	recipes := h.search.FetchPopularRecipes(c.Request.Context(), queryNumber(c))
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRecipe looks up a single recipe with full nutrition.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	recipe := h.search.FetchRecipeByID(c.Request.Context(), id)
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	favorite, _ := h.favorites.IsFavorite(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"recipe": recipe, "is_favorite": favorite})
}

// SearchByIngredients finds recipes that use the submitted ingredients.
func (h *RecipeHandler) SearchByIngredients(c *gin.Context) {
	var req struct {
		Ingredients []string `json:"ingredients"`
		Number      int      `json:"number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ingredients := model.NormalizeIngredients(req.Ingredients)
	if len(ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one ingredient is required"})
		return
	}

	recipes := h.search.SearchRecipesByIngredients(c.Request.Context(), ingredients, req.Number)
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// SearchByMacros finds recipes bounded by the submitted macro targets.
func (h *RecipeHandler) SearchByMacros(c *gin.Context) {
	var req struct {
		Macros model.MacroTarget `json:"macros"`
		Number int               `json:"number"`
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
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one macro value is required"})
		return
	}

	recipes := h.search.SearchRecipesByMacros(c.Request.Context(), req.Macros, req.Number)
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// FavoriteRecipe toggles a recipe's favorite state.
func (h *RecipeHandler) FavoriteRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	favorite, err := h.favorites.Toggle(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe_id": id, "is_favorite": favorite})
}

// UnfavoriteRecipe removes a recipe from favorites. Removing a recipe that
// is not a favorite is a no-op.
func (h *RecipeHandler) UnfavoriteRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	favorite, err := h.favorites.IsFavorite(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
		return
	}
	if favorite {
		if _, err := h.favorites.Toggle(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"recipe_id": id, "is_favorite": false})
}

// ListFavorites returns all favorite recipe IDs.
func (h *RecipeHandler) ListFavorites(c *gin.Context) {
	ids, err := h.favorites.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list favorites"})
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, gin.H{"favorites": ids})
}

func queryNumber(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("number", "0"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
