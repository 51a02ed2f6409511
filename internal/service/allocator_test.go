package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookifyai/backend/internal/model"
)

func TestDrawMealShares(t *testing.T) {
	for i := 0; i < 200; i++ {
		shares := drawMealShares()

		assert.GreaterOrEqual(t, shares.Breakfast, breakfastShareMin)
		assert.LessOrEqual(t, shares.Breakfast, breakfastShareMax)
		assert.GreaterOrEqual(t, shares.Lunch, lunchShareMin)
		assert.LessOrEqual(t, shares.Lunch, lunchShareMax)
		assert.GreaterOrEqual(t, shares.Dinner, dinnerShareMin)
		assert.LessOrEqual(t, shares.Dinner, dinnerShareMax)

		assert.InDelta(t, 1.0, shares.Breakfast+shares.Lunch+shares.Dinner, 1e-9)
	}
}

func TestFallbackShares(t *testing.T) {
	shares := fallbackShares()

	assert.InDelta(t, 0.225, shares.Breakfast, 1e-9)
	assert.InDelta(t, 0.325, shares.Lunch, 1e-9)
	assert.InDelta(t, 0.45, shares.Dinner, 1e-9)
}

func TestAllocateMealTargets(t *testing.T) {
	daily := model.MacroTarget{
		Calories: model.Float(2000),
		Protein:  model.Float(150),
	}

	targets := AllocateMealTargets(daily)

	var calories, protein float64
	for _, target := range targets {
		require.NotNil(t, target.Calories)
		require.NotNil(t, target.Protein)
		assert.Nil(t, target.Carbs)
		assert.Nil(t, target.Fat)
		assert.Nil(t, target.Sugar)
		assert.Nil(t, target.Sodium)
		assert.Nil(t, target.Fiber)

		calories += *target.Calories
		protein += *target.Protein
	}

	// Rounding each share independently can drift by a point or two.
	assert.InDelta(t, 2000, calories, 3)
	assert.InDelta(t, 150, protein, 3)
}

func TestAllocateMealTargetsEmpty(t *testing.T) {
	targets := AllocateMealTargets(model.MacroTarget{})
	for _, target := range targets {
		assert.True(t, target.IsEmpty())
	}
}

func TestAllocateMealTargetsOrdering(t *testing.T) {
	daily := model.MacroTarget{Calories: model.Float(2000)}

	for i := 0; i < 50; i++ {
		targets := AllocateMealTargets(daily)
		b, l, d := *targets[0].Calories, *targets[1].Calories, *targets[2].Calories
		assert.Less(t, b, l, "breakfast should be the smallest meal")
		assert.Less(t, l, d, "dinner should be the largest meal")
	}
}
