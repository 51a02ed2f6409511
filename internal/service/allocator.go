package service

import (
	"math"
	"math/rand"

	"github.com/cookifyai/backend/internal/model"
)

const (
	breakfastShareMin = 0.20
	breakfastShareMax = 0.25
	lunchShareMin     = 0.30
	lunchShareMax     = 0.35
	dinnerShareMin    = 0.40
	dinnerShareMax    = 0.45

	// Rejection sampling is bounded so a pathological RNG cannot loop
	// forever; on exhaustion the midpoint split is used.
	maxShareDraws = 1000
)

// MealShares holds the calorie fractions assigned to the three meals of a
// day. The fields always sum to 1.
type MealShares struct {
	Breakfast float64
	Lunch     float64
	Dinner    float64
}

// drawMealShares draws breakfast and lunch shares uniformly from their
// bands and accepts the triple only when the dinner remainder lands in its
// band. Acceptance probability is about one half, so the loop terminates
// almost immediately in practice.
func drawMealShares() MealShares {
	for i := 0; i < maxShareDraws; i++ {
		b := breakfastShareMin + rand.Float64()*(breakfastShareMax-breakfastShareMin)
		l := lunchShareMin + rand.Float64()*(lunchShareMax-lunchShareMin)
		d := 1 - b - l
		if d >= dinnerShareMin && d <= dinnerShareMax {
			return MealShares{Breakfast: b, Lunch: l, Dinner: d}
		}
	}
	return fallbackShares()
}

// fallbackShares is the fixed midpoint split used when sampling exhausts
// its draw budget.
func fallbackShares() MealShares {
	b := (breakfastShareMin + breakfastShareMax) / 2
	l := (lunchShareMin + lunchShareMax) / 2
	return MealShares{Breakfast: b, Lunch: l, Dinner: 1 - b - l}
}

// AllocateMealTargets splits a daily macro target into breakfast, lunch and
// dinner sub-targets. Every field present in the daily target receives
// round(dailyValue * share) in each sub-target; absent fields stay absent.
// The field-wise sum of the three outputs approximates the daily target
// within rounding.
func AllocateMealTargets(daily model.MacroTarget) [3]model.MacroTarget {
	shares := drawMealShares()
	return [3]model.MacroTarget{
		scaleTarget(daily, shares.Breakfast),
		scaleTarget(daily, shares.Lunch),
		scaleTarget(daily, shares.Dinner),
	}
}

func scaleTarget(daily model.MacroTarget, share float64) model.MacroTarget {
	scale := func(v *float64) *float64 {
		if v == nil {
			return nil
		}
		return model.Float(math.Round(*v * share))
	}
	return model.MacroTarget{
		Calories: scale(daily.Calories),
		Protein:  scale(daily.Protein),
		Carbs:    scale(daily.Carbs),
		Fat:      scale(daily.Fat),
		Sugar:    scale(daily.Sugar),
		Sodium:   scale(daily.Sodium),
		Fiber:    scale(daily.Fiber),
	}
}
