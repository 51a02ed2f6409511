package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngredientEntryValidate(t *testing.T) {
	valid := IngredientEntry{Name: "tomato", Quantity: 2, Unit: UnitCount}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		entry IngredientEntry
	}{
		{"empty name", IngredientEntry{Name: "  ", Quantity: 2, Unit: UnitCount}},
		{"zero quantity", IngredientEntry{Name: "tomato", Quantity: 0, Unit: UnitCount}},
		{"negative quantity", IngredientEntry{Name: "tomato", Quantity: -1, Unit: UnitGrams}},
		{"unknown unit", IngredientEntry{Name: "tomato", Quantity: 2, Unit: "liters"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.entry.Validate())
		})
	}
}

func TestIngredientEntryDisplay(t *testing.T) {
	assert.Equal(t, "3 tomato", IngredientEntry{Name: "tomato", Quantity: 3, Unit: UnitCount}.Display())
	assert.Equal(t, "250g chicken breast", IngredientEntry{Name: "chicken breast", Quantity: 250, Unit: UnitGrams}.Display())
}

func TestFoodDetectionResultIngredientStrings(t *testing.T) {
	result := &FoodDetectionResult{Foods: []DetectedFoodItem{
		{IngredientEntry: IngredientEntry{Name: "tomato", Quantity: 3, Unit: UnitCount}, Confidence: 0.9},
		{IngredientEntry: IngredientEntry{Name: "chicken breast", Quantity: 250, Unit: UnitGrams}, Confidence: 0.8},
	}}

	assert.Equal(t, []string{"3 tomato", "250g chicken breast"}, result.IngredientStrings())
	assert.Equal(t, []string{}, (&FoodDetectionResult{}).IngredientStrings())
}

func TestNormalizeIngredients(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "trims and drops empties",
			in:   []string{" tomato ", "", "  ", "rice"},
			want: []string{"tomato", "rice"},
		},
		{
			name: "drops consecutive duplicates case-insensitively",
			in:   []string{"Tomato", "tomato", "rice", "TOMATO"},
			want: []string{"Tomato", "rice", "TOMATO"},
		},
		{
			name: "preserves order",
			in:   []string{"c", "a", "b"},
			want: []string{"c", "a", "b"},
		},
		{
			name: "empty input",
			in:   nil,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIngredients(tt.in))
		})
	}
}
