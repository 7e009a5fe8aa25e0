package services

import (
	"math"

	"github.com/nutrivision-app/nutrivision/internal/models"
)

// Activity multipliers for the TDEE estimate. Unknown levels fall back to
// sedentary.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary: 1.20,
	models.ActivityLight:     1.375,
	models.ActivityModerate:  1.55,
	models.ActivityActive:    1.725,
	models.ActivityAthlete:   1.90,
}

// ComputeGoals derives daily macro targets from body stats:
//
//  1. BMR via Mifflin-St Jeor: 10*kg + 6.25*cm - 5*age, +5 male / -161 female.
//  2. TDEE = BMR * activity multiplier.
//  3. Target calories = TDEE, -500 for a cut, +500 for a bulk.
//  4. Protein 2 g/kg, fat 0.9 g/kg; carbs fill the calories left after
//     protein (4 kcal/g) and fat (9 kcal/g), floored at zero.
//
// All outputs are rounded to the nearest integer. Pure and deterministic.
func ComputeGoals(stats models.UserStats) models.UserGoals {
	bmr := 10*stats.WeightKg + 6.25*stats.HeightCm - 5*float64(stats.Age)
	if stats.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[stats.ActivityLevel]
	if !ok {
		multiplier = activityMultipliers[models.ActivitySedentary]
	}
	tdee := bmr * multiplier

	targetCalories := tdee
	switch stats.Goal {
	case models.GoalLose:
		targetCalories -= 500
	case models.GoalGain:
		targetCalories += 500
	}

	protein := 2 * stats.WeightKg
	fat := 0.9 * stats.WeightKg
	remainingCalories := math.Max(0, targetCalories-(protein*4+fat*9))
	carbs := remainingCalories / 4

	return models.UserGoals{
		Calories: int(math.Round(targetCalories)),
		Protein:  int(math.Round(protein)),
		Carbs:    int(math.Round(carbs)),
		Fat:      int(math.Round(fat)),
	}
}
