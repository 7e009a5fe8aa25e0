package services

import "github.com/nutrivision-app/nutrivision/internal/models"

// SumMacros folds a day's food items into macro totals. An empty list sums
// to the zero value; the fold is order-independent.
func SumMacros(items []models.FoodItem) models.MacroNutrients {
	var totals models.MacroNutrients
	for _, item := range items {
		totals.Calories += item.Calories
		totals.Protein += item.Protein
		totals.Carbs += item.Carbs
		totals.Fat += item.Fat
	}
	return totals
}

// WeeklyHistory projects the trailing 7 days ending at `today` into
// per-day macro totals, oldest first. Days without a log contribute zeros,
// so the result always has exactly 7 entries.
func WeeklyHistory(logsByDate map[string]models.DailyLog, today string) []models.HistoryDay {
	dates := TrailingDates(today, 7)
	history := make([]models.HistoryDay, 0, len(dates))
	for _, date := range dates {
		totals := SumMacros(logsByDate[date].Items)
		history = append(history, models.HistoryDay{
			Date:     date,
			Label:    WeekdayLabel(date),
			Calories: totals.Calories,
			Protein:  totals.Protein,
			Carbs:    totals.Carbs,
			Fat:      totals.Fat,
		})
	}
	return history
}

// RemainingMacros reports goals minus totals per field. Values are not
// clamped: a negative delta means the goal was exceeded, and it is up to
// the presentation side to floor at zero for display.
func RemainingMacros(goals models.UserGoals, totals models.MacroNutrients) models.MacroNutrients {
	return models.MacroNutrients{
		Calories: float64(goals.Calories) - totals.Calories,
		Protein:  float64(goals.Protein) - totals.Protein,
		Carbs:    float64(goals.Carbs) - totals.Carbs,
		Fat:      float64(goals.Fat) - totals.Fat,
	}
}

// ClampMacrosForDisplay floors each field at zero without touching the
// input value.
func ClampMacrosForDisplay(remaining models.MacroNutrients) models.MacroNutrients {
	clamped := remaining
	if clamped.Calories < 0 {
		clamped.Calories = 0
	}
	if clamped.Protein < 0 {
		clamped.Protein = 0
	}
	if clamped.Carbs < 0 {
		clamped.Carbs = 0
	}
	if clamped.Fat < 0 {
		clamped.Fat = 0
	}
	return clamped
}
