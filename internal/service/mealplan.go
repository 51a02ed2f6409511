package service

import (
	"context"
	"fmt"

	"github.com/cookifyai/backend/internal/model"
)

var weekdays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var mealPreferences = [3]string{
	"Breakfast meal with typical breakfast foods",
	"Lunch meal that is filling and balanced",
	"Dinner meal that works as the main meal of the day",
}

// MealPlanService assembles a 7-day meal plan from one daily macro target
// and one ingredient list.
type MealPlanService struct {
	generator RecipeGenerator
}

// NewMealPlanService creates a new MealPlanService instance.
func NewMealPlanService(generator RecipeGenerator) *MealPlanService {
	return &MealPlanService{generator: generator}
}

// GeneratePlan produces one MealPlanDay per weekday, Monday through Sunday.
// Each day's target is split by the allocator and one generation call is
// issued per meal, sequentially. Only the first recipe of each call is
// kept; a call returning zero recipes leaves that slot empty. Any
// generation error aborts the whole plan.
func (s *MealPlanService) GeneratePlan(ctx context.Context, daily model.MacroTarget, ingredients []string, preference string) ([]model.MealPlanDay, error) {
	plan := make([]model.MealPlanDay, 0, len(weekdays))

	for _, weekday := range weekdays {
		targets := AllocateMealTargets(daily)
		day := model.MealPlanDay{Day: weekday, Meals: make([]model.SimpleRecipe, 0, len(targets))}

		for i, target := range targets {
			mealPref := mealPreferences[i]
			if preference != "" {
				mealPref += ". " + preference
			}

			recipes, err := s.generator.GenerateRecipes(ctx, target, ingredients, mealPref)
			if err != nil {
				return nil, fmt.Errorf("failed to generate %s meal %d: %w", weekday, i+1, err)
			}
			if len(recipes) == 0 {
				continue
			}

			meal := recipes[0]
			day.Meals = append(day.Meals, meal)
			day.DailyMacros.Add(meal.Macros)
		}

		plan = append(plan, day)
	}

	return plan, nil
}
