package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	ActivitySedentary = "sedentary"
	ActivityLight     = "light"
	ActivityModerate  = "moderate"
	ActivityActive    = "active"
	ActivityAthlete   = "athlete"
)

const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

type User struct {
	ID                  uint   `gorm:"primaryKey"`
	Email               string `gorm:"uniqueIndex;not null"`
	Name                string `gorm:"not null"`
	AvatarURL           string
	PasswordHash        string
	Streak              int           `gorm:"not null;default:1"`
	LastLoginDate       string        `gorm:"not null"`
	Goals               UserGoals     `gorm:"embedded;embeddedPrefix:goal_"`
	Stats               *UserStats    `gorm:"serializer:jsonfallback"`
	OnboardingCompleted bool          `gorm:"not null;default:false"`
	ChatHistory         []ChatMessage `gorm:"serializer:jsonfallback"`
	CreatedAt           time.Time     `gorm:"not null"`
}

// UserGoals holds daily targets. Macro targets are integer amounts (kcal for
// calories, grams otherwise); negative or zero values are stored as given.
type UserGoals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Steps    int `json:"steps"`
}

func DefaultGoals() UserGoals {
	return UserGoals{
		Calories: 2000,
		Protein:  150,
		Carbs:    200,
		Fat:      65,
		Steps:    10000,
	}
}

// UserStats are the body measurements onboarding collects for the goal
// calculator.
type UserStats struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	HeightCm      float64 `json:"height"`
	WeightKg      float64 `json:"weight"`
	ActivityLevel string  `json:"activityLevel"`
	Goal          string  `json:"goal"`
}
