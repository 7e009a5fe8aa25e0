package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nutrivision-app/nutrivision/internal/db"
	"github.com/nutrivision-app/nutrivision/internal/models"
	"gorm.io/gorm"
)

// stubGateway satisfies InsightGateway with canned responses so handler
// tests never touch the network. Zero-value fields fall back to fixed
// defaults; set fail to exercise the error paths.
type stubGateway struct {
	fail bool

	analysis    models.FoodAnalysis
	coachReply  string
	summary     models.DailyAnalysisResult
	suggestions []models.MealSuggestion
	recipe      models.Recipe

	lastLogContext string
	lastMealType   string
	lastImageMIME  string
}

func (stub *stubGateway) AnalyzeFoodImage(ctx context.Context, imageData []byte, mimeType string) (models.FoodAnalysis, error) {
	stub.lastImageMIME = mimeType
	if stub.fail {
		return models.FoodAnalysis{}, fmt.Errorf("stub failure")
	}
	return stub.foodAnalysis(), nil
}

func (stub *stubGateway) AnalyzeFoodText(ctx context.Context, description string) (models.FoodAnalysis, error) {
	if stub.fail {
		return models.FoodAnalysis{}, fmt.Errorf("stub failure")
	}
	return stub.foodAnalysis(), nil
}

func (stub *stubGateway) SearchFood(ctx context.Context, query string) (models.FoodAnalysis, error) {
	if stub.fail {
		return models.FoodAnalysis{}, fmt.Errorf("stub failure")
	}
	return stub.foodAnalysis(), nil
}

func (stub *stubGateway) CoachReply(ctx context.Context, logContext string, question string) string {
	stub.lastLogContext = logContext
	if stub.coachReply != "" {
		return stub.coachReply
	}
	return "Sounds like a solid plan!"
}

func (stub *stubGateway) DailySummary(ctx context.Context, dayLog models.DailyLog, goals models.UserGoals) models.DailyAnalysisResult {
	if stub.summary.Headline != "" {
		return stub.summary
	}
	return models.DailyAnalysisResult{
		Score:        8,
		Headline:     "Strong day!",
		Positives:    []string{"Hit protein target"},
		Improvements: []string{"Drink more water"},
		Tip:          "Add a veggie side at dinner.",
	}
}

func (stub *stubGateway) MealSuggestions(ctx context.Context, remaining models.MacroNutrients, mealType string) []models.MealSuggestion {
	stub.lastMealType = mealType
	if stub.suggestions != nil {
		return stub.suggestions
	}
	return []models.MealSuggestion{{Name: "Salmon Bowl", Calories: 550}}
}

func (stub *stubGateway) GenerateRecipe(ctx context.Context, mealName string) (models.Recipe, error) {
	if stub.fail {
		return models.Recipe{}, fmt.Errorf("stub failure")
	}
	if stub.recipe.Name != "" {
		return stub.recipe, nil
	}
	return models.Recipe{
		Name:         mealName,
		Ingredients:  []models.RecipeIngredient{{Item: "salmon", Amount: "300g"}},
		Instructions: []string{"Roast the salmon", "Assemble the bowl"},
	}, nil
}

func (stub *stubGateway) SousChefReply(ctx context.Context, recipeName string, question string, imageData []byte, mimeType string) string {
	stub.lastImageMIME = mimeType
	return "Flip it now!"
}

func (stub *stubGateway) foodAnalysis() models.FoodAnalysis {
	if stub.analysis.Name != "" {
		return stub.analysis
	}
	return models.FoodAnalysis{
		Name:        "Grilled Chicken Breast",
		Calories:    284,
		Protein:     53.4,
		ServingSize: "1 breast (172g)",
		HealthTips:  "Great lean protein source.",
	}
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *stubGateway) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "nutrivision-api.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	gateway := &stubGateway{}
	handler, err := NewHandler(database, "test-secret", time.UTC, gateway, false)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, gateway
}

// performJSON sends one JSON request and decodes the JSON response body
// into a generic map. A nil payload sends an empty body.
func performJSON(t *testing.T, app *fiber.App, method string, path string, authCookie string, payload any) (int, map[string]any, *http.Response) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("%s %s encode payload: %v", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body: %v", method, path, err)
	}

	decoded := make(map[string]any)
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("%s %s decode body %q: %v", method, path, raw, err)
		}
	}
	return response.StatusCode, decoded, response
}

// registerTestUser creates an account and returns the session cookie.
func registerTestUser(t *testing.T, app *fiber.App, email string, name string, password string) string {
	t.Helper()

	status, _, response := performJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"name":     name,
		"password": password,
	})
	if status != http.StatusCreated {
		t.Fatalf("register expected 201, got %d", status)
	}
	return sessionCookie(t, response)
}

func sessionCookie(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return fmt.Sprintf("%s=%s", cookie.Name, cookie.Value)
		}
	}
	t.Fatal("expected a session cookie on the response")
	return ""
}
