package models

import "time"

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

func IsValidMealType(value string) bool {
	switch value {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// DailyLog is one user's food diary for one calendar date. Dates are stored
// as YYYY-MM-DD strings so day arithmetic stays stable across timezones.
type DailyLog struct {
	ID            uint       `gorm:"primaryKey"`
	UserID        uint       `gorm:"not null;uniqueIndex:uidx_user_date"`
	Date          string     `gorm:"not null;uniqueIndex:uidx_user_date"`
	Items         []FoodItem `gorm:"serializer:jsonfallback"`
	WaterML       int        `gorm:"not null;default:0"`
	Steps         int        `gorm:"not null;default:0"`
	DailyAnalysis string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func EmptyDailyLog(userID uint, date string) DailyLog {
	return DailyLog{
		UserID: userID,
		Date:   date,
		Items:  []FoodItem{},
	}
}

// FoodItem is one logged entry. Items are immutable once added; the only
// mutation is removal by id.
type FoodItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize string  `json:"servingSize"`
	Timestamp   int64   `json:"timestamp"`
	MealType    string  `json:"mealType"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	HealthTips  string  `json:"healthTips,omitempty"`
}

func (item FoodItem) Macros() MacroNutrients {
	return MacroNutrients{
		Calories: item.Calories,
		Protein:  item.Protein,
		Carbs:    item.Carbs,
		Fat:      item.Fat,
	}
}

// MacroNutrients is a measured or derived macro quadruple. Measured values
// keep the precision the analysis produced.
type MacroNutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// HistoryDay is one derived entry of the trailing 7-day history. Never
// persisted; recomputed on every request.
type HistoryDay struct {
	Date     string  `json:"date"`
	Label    string  `json:"label"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
