package service

import (
	"context"

	"github.com/cookifyai/backend/internal/model"
)

// RecipeSearcher is the consumer-side view of the Spoonacular wrapper.
type RecipeSearcher interface {
	SearchRecipes(ctx context.Context, query string, number int) []model.Recipe
	FetchPopularRecipes(ctx context.Context, number int) []model.Recipe
	FetchRecipesByCategory(ctx context.Context, category string, number int) []model.Recipe
	FetchRecipesByMealType(ctx context.Context, mealType string, number int) []model.Recipe
	FetchRecipeByID(ctx context.Context, id int64) *model.Recipe
	SearchRecipesByIngredients(ctx context.Context, ingredients []string, number int) []model.Recipe
	SearchRecipesByMacros(ctx context.Context, target model.MacroTarget, number int) []model.Recipe
}

// RecipeGenerator asks the model service to invent recipes matching
// constraints.
type RecipeGenerator interface {
	GenerateRecipes(ctx context.Context, target model.MacroTarget, ingredients []string, preference string) ([]model.SimpleRecipe, error)
}

// QueryAnalyzer extracts structured search intent from free text.
type QueryAnalyzer interface {
	AnalyzeSearchQuery(ctx context.Context, input string) (*model.SearchIntent, error)
}

// Suggester produces recipe ideas for a macro target.
type Suggester interface {
	SuggestRecipes(ctx context.Context, target model.MacroTarget) (*SuggestionResult, error)
}

// MealPlanner assembles a week of meals.
type MealPlanner interface {
	GeneratePlan(ctx context.Context, daily model.MacroTarget, ingredients []string, preference string) ([]model.MealPlanDay, error)
}

// FoodDetector converts an image into food item guesses.
type FoodDetector interface {
	Detect(ctx context.Context, imageB64 string) *model.FoodDetectionResult
}

// ImageGenerator produces a hosted image URL for a recipe.
type ImageGenerator interface {
	GenerateFoodImage(ctx context.Context, title, description string) (string, error)
}

// VisionModel describes an image in text form; implemented by the LLM
// service's image-input call.
type VisionModel interface {
	DescribeFoodImage(ctx context.Context, prompt, imageB64 string) (string, error)
}
