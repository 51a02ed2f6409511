package model

import (
	"fmt"
	"strings"
)

// SimpleRecipe is a recipe invented by the LLM: a title, an ordered
// ingredient list and required macro totals. Consumed read-only by clients.
type SimpleRecipe struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Macros      Macros   `json:"macros"`
}

// Validate enforces the boundary invariants on a recipe parsed from an
// external response.
func (r SimpleRecipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("recipe title must not be empty")
	}
	if err := r.Macros.Validate(); err != nil {
		return fmt.Errorf("recipe %q: %w", r.Title, err)
	}
	return nil
}

// MealPlanDay is one weekday's worth of generated meals plus the actual
// aggregated totals of the kept meals (not the requested target).
type MealPlanDay struct {
	Day         string         `json:"day"`
	Meals       []SimpleRecipe `json:"meals"`
	DailyMacros Macros         `json:"daily_macros"`
}

// Recipe is the Spoonacular recipe shape, treated as an opaque DTO. Field
// names follow the external API's camelCase wire format.
type Recipe struct {
	ID                   int64                `json:"id"`
	Title                string               `json:"title"`
	Image                string               `json:"image"`
	ImageType            string               `json:"imageType,omitempty"`
	ReadyInMinutes       int                  `json:"readyInMinutes,omitempty"`
	Servings             int                  `json:"servings,omitempty"`
	SourceURL            string               `json:"sourceUrl,omitempty"`
	Nutrition            *Nutrition           `json:"nutrition,omitempty"`
	AnalyzedInstructions []InstructionSet     `json:"analyzedInstructions,omitempty"`
	DishTypes            []string             `json:"dishTypes,omitempty"`
	ExtendedIngredients  []ExtendedIngredient `json:"extendedIngredients,omitempty"`
}

type Nutrition struct {
	Nutrients []Nutrient `json:"nutrients"`
}

type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type InstructionSet struct {
	Steps []InstructionStep `json:"steps"`
}

type InstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

type ExtendedIngredient struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// RecipeSearchResult is Spoonacular's complex-search envelope.
type RecipeSearchResult struct {
	Results      []Recipe `json:"results"`
	Offset       int      `json:"offset"`
	Number       int      `json:"number"`
	TotalResults int      `json:"totalResults"`
}

// NutrientValue looks up a named nutrient on a search-result recipe.
func (r *Recipe) NutrientValue(name string) (Nutrient, bool) {
	if r == nil || r.Nutrition == nil {
		return Nutrient{}, false
	}
	for _, n := range r.Nutrition.Nutrients {
		if strings.EqualFold(n.Name, name) {
			return n, true
		}
	}
	return Nutrient{}, false
}
