package api

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nutrivision-app/nutrivision/internal/db"
	"github.com/nutrivision-app/nutrivision/internal/models"
	"github.com/nutrivision-app/nutrivision/internal/services"
)

// InsightGateway is the AI side of the app as the handlers see it: eight
// single-shot operations, each either typed-or-failed or degrading to a
// fallback value.
type InsightGateway interface {
	AnalyzeFoodImage(ctx context.Context, imageData []byte, mimeType string) (models.FoodAnalysis, error)
	AnalyzeFoodText(ctx context.Context, description string) (models.FoodAnalysis, error)
	SearchFood(ctx context.Context, query string) (models.FoodAnalysis, error)
	CoachReply(ctx context.Context, logContext string, question string) string
	DailySummary(ctx context.Context, dayLog models.DailyLog, goals models.UserGoals) models.DailyAnalysisResult
	MealSuggestions(ctx context.Context, remaining models.MacroNutrients, mealType string) []models.MealSuggestion
	GenerateRecipe(ctx context.Context, mealName string) (models.Recipe, error)
	SousChefReply(ctx context.Context, recipeName string, question string, imageData []byte, mimeType string) string
}

type Handler struct {
	repositories   *db.Repositories
	authService    *services.AuthService
	logService     *services.LogService
	profileService *services.ProfileService
	gateway        InsightGateway
	secretKey      []byte
	location       *time.Location
	cookieSecure   bool
}

const (
	authCookieName  = "nutrivision_session"
	contextUserKey  = "currentUser"
	defaultTokenTTL = 7 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
}

type foodItemInput struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize string  `json:"servingSize"`
	MealType    string  `json:"mealType"`
	ImageURL    string  `json:"imageUrl"`
	HealthTips  string  `json:"healthTips"`
}

type waterPayload struct {
	DeltaML int `json:"deltaMl"`
}

type stepsPayload struct {
	Steps int `json:"steps"`
	Delta int `json:"delta"`
}

type imagePayload struct {
	Image    string `json:"image"`
	MIMEType string `json:"mimeType"`
}
