package service

import (
	"sort"
	"strings"
)

// foodCategories maps common food names to a category tag. The detector's
// mock strategy draws from it and the vision strategy uses it to tag the
// names the model returns.
var foodCategories = map[string]string{
	// Vegetables
	"tomato":      "vegetable",
	"onion":       "vegetable",
	"garlic":      "vegetable",
	"bell pepper": "vegetable",
	"carrot":      "vegetable",
	"broccoli":    "vegetable",
	"spinach":     "vegetable",
	"lettuce":     "vegetable",
	"cucumber":    "vegetable",
	"potato":      "vegetable",

	// Fruits
	"apple":      "fruit",
	"banana":     "fruit",
	"orange":     "fruit",
	"lemon":      "fruit",
	"strawberry": "fruit",
	"grape":      "fruit",

	// Meat
	"chicken breast": "meat",
	"ground beef":    "meat",
	"salmon":         "meat",
	"bacon":          "meat",
	"pork chop":      "meat",

	// Dairy
	"milk":   "dairy",
	"cheese": "dairy",
	"butter": "dairy",
	"yogurt": "dairy",
	"eggs":   "dairy",

	// Grains
	"rice":  "grain",
	"pasta": "grain",
	"bread": "grain",

	// Herbs
	"basil":    "herb",
	"parsley":  "herb",
	"cilantro": "herb",
	"rosemary": "herb",

	// Pantry
	"olive oil": "pantry",
	"salt":      "pantry",
	"pepper":    "pantry",
	"flour":     "pantry",
	"sugar":     "pantry",

	// Condiments
	"ketchup":    "condiment",
	"mustard":    "condiment",
	"mayonnaise": "condiment",
	"soy sauce":  "condiment",
}

// foodNames is the sorted key list of foodCategories, for random draws.
var foodNames = func() []string {
	names := make([]string, 0, len(foodCategories))
	for name := range foodCategories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// lookupFoodCategory returns the category tag for a food name, or
// "unknown" when the name is not in the table.
func lookupFoodCategory(name string) string {
	if category, ok := foodCategories[strings.ToLower(strings.TrimSpace(name))]; ok {
		return category
	}
	return "unknown"
}
