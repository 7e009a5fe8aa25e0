package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nutrivision-app/nutrivision/internal/models"
)

var (
	ErrAnalysisFailed = errors.New("food analysis failed")
	ErrRecipeFailed   = errors.New("recipe generation failed")
)

// Fixed degradation strings for the chat-style operations, which never
// surface errors to the caller.
const (
	coachApology    = "Sorry, I couldn't connect to the nutrition database right now."
	sousChefApology = "Sorry, I can't help with that right now."
)

// Gateway wraps the generative service behind typed, schema-validated
// operations. Structured operations fail whole on malformed output; the
// chat and summary operations degrade to fixed fallbacks instead.
type Gateway struct {
	client *Client
}

func NewGateway(client *Client) *Gateway {
	return &Gateway{client: client}
}

// AnalyzeFoodImage estimates nutrition for the main food item in a photo.
func (gateway *Gateway) AnalyzeFoodImage(ctx context.Context, imageData []byte, mimeType string) (models.FoodAnalysis, error) {
	p := textPrompt(
		"You are an expert nutritionist. Analyze the food in the image. Be precise with portions. If the portion looks large, adjust calories accordingly. Provide values for the entire visible portion.",
		"Analyze this image and identify the main food item. Estimate nutritional values with high precision. If there are multiple items, sum them up.",
	).withImage(imageData, mimeType).withSchema(foodAnalysisSchema)

	return gateway.decodeFoodAnalysis(ctx, p)
}

// AnalyzeFoodText estimates nutrition from a free-text meal description.
func (gateway *Gateway) AnalyzeFoodText(ctx context.Context, description string) (models.FoodAnalysis, error) {
	p := textPrompt(
		"You are an expert nutritionist. Provide nutritional estimates for the described food. If quantity isn't specified, assume a standard medium serving.",
		fmt.Sprintf("Analyze this food description: %q. Estimate nutritional values.", description),
	).withSchema(foodAnalysisSchema)

	return gateway.decodeFoodAnalysis(ctx, p)
}

// SearchFood returns standard nutrition data for a food search query.
func (gateway *Gateway) SearchFood(ctx context.Context, query string) (models.FoodAnalysis, error) {
	p := textPrompt(
		"You are a nutrition database. Return accurate standard values for the queried food item. Do not hallucinate. If vague, pick the most common variation.",
		fmt.Sprintf("Search for standard nutritional data for: %q. Return the most common serving size.", query),
	).withSchema(foodAnalysisSchema)

	return gateway.decodeFoodAnalysis(ctx, p)
}

// CoachReply answers a nutrition question against today's log context.
// It never fails outward: any error degrades to a fixed apology so the
// conversation is not interrupted.
func (gateway *Gateway) CoachReply(ctx context.Context, logContext string, question string) string {
	p := textPrompt(
		"You are NutriVision, a friendly, encouraging, and knowledgeable nutrition coach. Keep answers concise, actionable, and scientifically accurate. Use emojis occasionally to be friendly.",
		fmt.Sprintf("User Context (Today's Log):\n%s\n\nUser Question: %s", logContext, question),
	)

	reply, err := gateway.client.generate(ctx, p)
	if err != nil || strings.TrimSpace(reply) == "" {
		if err != nil {
			log.Printf("coach reply failed: %v", err)
		}
		return coachApology
	}
	return reply
}

// DailySummary scores the day's log against goals. On any failure it
// returns a fixed neutral fallback record instead of an error.
func (gateway *Gateway) DailySummary(ctx context.Context, dayLog models.DailyLog, goals models.UserGoals) models.DailyAnalysisResult {
	var itemLines strings.Builder
	for _, item := range dayLog.Items {
		fmt.Fprintf(&itemLines, "- %s: %.0fkcal, %.0fg protein, %.0fg carbs, %.0fg fat\n",
			item.Name, item.Calories, item.Protein, item.Carbs, item.Fat)
	}

	p := textPrompt(
		"You are a supportive nutrition coach. Analyze the data strictly. Score out of 10 based on closeness to goals. Be encouraging but honest.",
		fmt.Sprintf(
			"Analyze this daily food log against goals:\nGoals: %d kcal, %dg P, %dg C, %dg F.\n\nLog:\n%sWater: %dml\n\nProvide a structured summary.",
			goals.Calories, goals.Protein, goals.Carbs, goals.Fat, itemLines.String(), dayLog.WaterML,
		),
	).withSchema(dailySummarySchema)

	raw, err := gateway.client.generate(ctx, p)
	if err != nil {
		log.Printf("daily summary failed: %v", err)
		return FallbackDailySummary()
	}

	var result models.DailyAnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil || !validDailySummary(result) {
		log.Printf("daily summary returned malformed payload")
		return FallbackDailySummary()
	}
	return result
}

// MealSuggestions recommends meals fitting the remaining macro budget.
// Failures yield an empty list.
func (gateway *Gateway) MealSuggestions(ctx context.Context, remaining models.MacroNutrients, mealType string) []models.MealSuggestion {
	p := textPrompt(
		"You are a creative chef and nutritionist. Suggest meals that strictly fit within the remaining macro budget. Be specific.",
		fmt.Sprintf(
			"Recommend 3 healthy %s options that fit within these remaining macros:\nCalories: %.0f\nProtein: %.0fg\nCarbs: %.0fg\nFat: %.0fg\n\nMake them simple to cook and varied.",
			mealType, remaining.Calories, remaining.Protein, remaining.Carbs, remaining.Fat,
		),
	).withSchema(mealSuggestionSchema)

	raw, err := gateway.client.generate(ctx, p)
	if err != nil {
		log.Printf("meal suggestions failed: %v", err)
		return []models.MealSuggestion{}
	}

	var payload struct {
		Suggestions []models.MealSuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil || payload.Suggestions == nil {
		log.Printf("meal suggestions returned malformed payload")
		return []models.MealSuggestion{}
	}
	return payload.Suggestions
}

// GenerateRecipe builds a full recipe for a meal name.
func (gateway *Gateway) GenerateRecipe(ctx context.Context, mealName string) (models.Recipe, error) {
	p := textPrompt(
		"You are an expert chef. Provide clear, easy-to-follow recipes.",
		fmt.Sprintf("Generate a detailed recipe for: %q. Include precise ingredients and step-by-step cooking instructions.", mealName),
	).withSchema(recipeSchema)

	raw, err := gateway.client.generate(ctx, p)
	if err != nil {
		log.Printf("recipe generation failed: %v", err)
		return models.Recipe{}, ErrRecipeFailed
	}

	var recipe models.Recipe
	if err := json.Unmarshal([]byte(raw), &recipe); err != nil {
		return models.Recipe{}, ErrRecipeFailed
	}
	if recipe.Name == "" || len(recipe.Ingredients) == 0 || len(recipe.Instructions) == 0 {
		return models.Recipe{}, ErrRecipeFailed
	}
	return recipe, nil
}

// SousChefReply answers a cooking question in the context of a recipe,
// optionally grounded on a photo of the dish. Degrades to an apology.
func (gateway *Gateway) SousChefReply(ctx context.Context, recipeName string, question string, imageData []byte, mimeType string) string {
	p := textPrompt(
		"You are a helpful AI sous chef assisting a user while they cook. Keep answers short, encouraging, and focused on the cooking task. If the user sends an image, analyze it to give specific advice.",
		fmt.Sprintf("Recipe Context: %s\nUser Question: %s", recipeName, question),
	).withImage(imageData, mimeType)

	reply, err := gateway.client.generate(ctx, p)
	if err != nil || strings.TrimSpace(reply) == "" {
		if err != nil {
			log.Printf("sous chef reply failed: %v", err)
		}
		return sousChefApology
	}
	return reply
}

// FallbackDailySummary is the neutral record returned when the summary
// operation cannot produce a real analysis.
func FallbackDailySummary() models.DailyAnalysisResult {
	return models.DailyAnalysisResult{
		Score:        5,
		Headline:     "Analysis Unavailable",
		Positives:    []string{"Logged meals today"},
		Improvements: []string{"Check connection for details"},
		Tip:          "Try again later!",
	}
}

func (gateway *Gateway) decodeFoodAnalysis(ctx context.Context, p prompt) (models.FoodAnalysis, error) {
	raw, err := gateway.client.generate(ctx, p)
	if err != nil {
		log.Printf("food analysis failed: %v", err)
		return models.FoodAnalysis{}, ErrAnalysisFailed
	}

	var analysis models.FoodAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return models.FoodAnalysis{}, ErrAnalysisFailed
	}
	if strings.TrimSpace(analysis.Name) == "" || strings.TrimSpace(analysis.ServingSize) == "" {
		return models.FoodAnalysis{}, ErrAnalysisFailed
	}
	return analysis, nil
}

func validDailySummary(result models.DailyAnalysisResult) bool {
	if result.Score < 1 || result.Score > 10 {
		return false
	}
	if strings.TrimSpace(result.Headline) == "" || strings.TrimSpace(result.Tip) == "" {
		return false
	}
	return result.Positives != nil && result.Improvements != nil
}
