package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutrientValue(t *testing.T) {
	recipe := &Recipe{
		ID:    1,
		Title: "Protein Bowl",
		Nutrition: &Nutrition{Nutrients: []Nutrient{
			{Name: "Calories", Amount: 520, Unit: "kcal"},
			{Name: "Protein", Amount: 38, Unit: "g"},
		}},
	}

	n, ok := recipe.NutrientValue("protein")
	require.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, 38.0, n.Amount)
	assert.Equal(t, "g", n.Unit)

	_, ok = recipe.NutrientValue("Sugar")
	assert.False(t, ok)
}

func TestNutrientValueMissingNutrition(t *testing.T) {
	_, ok := (&Recipe{ID: 2}).NutrientValue("Calories")
	assert.False(t, ok)

	var recipe *Recipe
	_, ok = recipe.NutrientValue("Calories")
	assert.False(t, ok)
}

func TestSimpleRecipeValidate(t *testing.T) {
	valid := SimpleRecipe{
		Title:       "Oatmeal Bowl",
		Ingredients: []string{"1 cup oats"},
		Macros:      Macros{Calories: 350, Protein: 12, Carbs: 60, Fat: 8},
	}
	assert.NoError(t, valid.Validate())

	assert.Error(t, SimpleRecipe{Title: "  "}.Validate())
	assert.Error(t, SimpleRecipe{Title: "Bad", Macros: Macros{Calories: -1}}.Validate())
}
