package api

import (
	"regexp"
	"strings"

	"github.com/nutrivision-app/nutrivision/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateRegistrationInput(input credentialsInput) string {
	if strings.TrimSpace(input.Email) == "" || !emailPattern.MatchString(input.Email) {
		return "valid email is required"
	}
	if strings.TrimSpace(input.Name) == "" {
		return "name is required"
	}
	return ""
}

func validateLoginInput(input credentialsInput) string {
	if strings.TrimSpace(input.Email) == "" {
		return "email is required"
	}
	return ""
}

func validateFoodItemInput(input foodItemInput) string {
	if strings.TrimSpace(input.Name) == "" {
		return "name is required"
	}
	if !models.IsValidMealType(input.MealType) {
		return "mealType must be one of breakfast, lunch, dinner, snack"
	}
	return ""
}

func validateStatsInput(stats models.UserStats) string {
	if stats.Age <= 0 {
		return "age must be positive"
	}
	if stats.Gender != models.GenderMale && stats.Gender != models.GenderFemale {
		return "gender must be male or female"
	}
	if stats.HeightCm <= 0 || stats.WeightKg <= 0 {
		return "height and weight must be positive"
	}
	switch stats.ActivityLevel {
	case models.ActivitySedentary, models.ActivityLight, models.ActivityModerate, models.ActivityActive, models.ActivityAthlete:
	default:
		return "unknown activity level"
	}
	switch stats.Goal {
	case models.GoalLose, models.GoalMaintain, models.GoalGain:
	default:
		return "goal must be lose, maintain or gain"
	}
	return ""
}
