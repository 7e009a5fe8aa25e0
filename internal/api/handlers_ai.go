package api

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nutrivision-app/nutrivision/internal/models"
	"github.com/nutrivision-app/nutrivision/internal/services"
)

func (handler *Handler) AnalyzeFoodImage(c *fiber.Ctx) error {
	var payload imagePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	imageData, mimeType, ok := decodeImagePayload(payload)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "image is required")
	}

	analysis, err := handler.gateway.AnalyzeFoodImage(c.UserContext(), imageData, mimeType)
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "failed to analyze image")
	}
	return c.JSON(analysis)
}

func (handler *Handler) AnalyzeFoodText(c *fiber.Ctx) error {
	var payload struct {
		Description string `json:"description"`
	}
	if err := c.BodyParser(&payload); err != nil || strings.TrimSpace(payload.Description) == "" {
		return apiError(c, fiber.StatusBadRequest, "description is required")
	}

	analysis, err := handler.gateway.AnalyzeFoodText(c.UserContext(), payload.Description)
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "failed to analyze description")
	}
	return c.JSON(analysis)
}

func (handler *Handler) SearchFood(c *fiber.Ctx) error {
	var payload struct {
		Query string `json:"query"`
	}
	if err := c.BodyParser(&payload); err != nil || strings.TrimSpace(payload.Query) == "" {
		return apiError(c, fiber.StatusBadRequest, "query is required")
	}

	analysis, err := handler.gateway.SearchFood(c.UserContext(), payload.Query)
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "failed to search food")
	}
	return c.JSON(analysis)
}

func (handler *Handler) CoachChat(c *fiber.Ctx) error {
	var payload struct {
		Question string `json:"question"`
	}
	if err := c.BodyParser(&payload); err != nil || strings.TrimSpace(payload.Question) == "" {
		return apiError(c, fiber.StatusBadRequest, "question is required")
	}

	user := currentUser(c)
	entry, err := handler.logService.TodayLog(user.ID, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load today's log")
	}

	reply := handler.gateway.CoachReply(c.UserContext(), describeDayLog(entry), payload.Question)
	return c.JSON(fiber.Map{"reply": reply})
}

// DailySummary asks the model to score today against the user's goals and
// stores the serialized result on today's log. The gateway never fails
// this operation; at worst the stored summary is the neutral fallback.
func (handler *Handler) DailySummary(c *fiber.Ctx) error {
	user := currentUser(c)
	now := time.Now()
	entry, err := handler.logService.TodayLog(user.ID, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load today's log")
	}

	result := handler.gateway.DailySummary(c.UserContext(), entry, user.Goals)

	serialized, err := json.Marshal(result)
	if err == nil {
		if err := handler.logService.SaveDailyAnalysis(user.ID, string(serialized), now); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to store summary")
		}
	}
	return c.JSON(result)
}

func (handler *Handler) MealSuggestions(c *fiber.Ctx) error {
	var payload struct {
		MealType string `json:"mealType"`
	}
	if err := c.BodyParser(&payload); err != nil || !models.IsValidMealType(payload.MealType) {
		return apiError(c, fiber.StatusBadRequest, "mealType must be one of breakfast, lunch, dinner, snack")
	}

	user := currentUser(c)
	entry, err := handler.logService.TodayLog(user.ID, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load today's log")
	}

	remaining := services.RemainingMacros(user.Goals, services.SumMacros(entry.Items))
	suggestions := handler.gateway.MealSuggestions(c.UserContext(), remaining, payload.MealType)
	return c.JSON(fiber.Map{"suggestions": suggestions})
}

func (handler *Handler) GenerateRecipe(c *fiber.Ctx) error {
	var payload struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&payload); err != nil || strings.TrimSpace(payload.Name) == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	recipe, err := handler.gateway.GenerateRecipe(c.UserContext(), payload.Name)
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "failed to generate recipe")
	}
	return c.JSON(recipe)
}

func (handler *Handler) SousChefChat(c *fiber.Ctx) error {
	var payload struct {
		RecipeName string `json:"recipeName"`
		Question   string `json:"question"`
		Image      string `json:"image"`
		MIMEType   string `json:"mimeType"`
	}
	if err := c.BodyParser(&payload); err != nil || strings.TrimSpace(payload.Question) == "" {
		return apiError(c, fiber.StatusBadRequest, "question is required")
	}

	imageData, mimeType, _ := decodeImagePayload(imagePayload{Image: payload.Image, MIMEType: payload.MIMEType})
	reply := handler.gateway.SousChefReply(c.UserContext(), payload.RecipeName, payload.Question, imageData, mimeType)
	return c.JSON(fiber.Map{"reply": reply})
}

// decodeImagePayload accepts either a bare base64 string or a data URI and
// returns the raw bytes with their mime type.
func decodeImagePayload(payload imagePayload) ([]byte, string, bool) {
	raw := strings.TrimSpace(payload.Image)
	if raw == "" {
		return nil, "", false
	}

	mimeType := payload.MIMEType
	if strings.HasPrefix(raw, "data:") {
		separator := strings.Index(raw, ";base64,")
		if separator < 0 {
			return nil, "", false
		}
		if mimeType == "" {
			mimeType = raw[len("data:"):separator]
		}
		raw = raw[separator+len(";base64,"):]
	}

	imageData, err := base64.StdEncoding.DecodeString(raw)
	if err != nil || len(imageData) == 0 {
		return nil, "", false
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return imageData, mimeType, true
}

func describeDayLog(entry models.DailyLog) string {
	if len(entry.Items) == 0 {
		return fmt.Sprintf("No meals logged yet. Water: %dml, Steps: %d", entry.WaterML, entry.Steps)
	}

	var description strings.Builder
	for _, item := range entry.Items {
		fmt.Fprintf(&description, "- %s (%s): %.0fkcal, %.0fg protein, %.0fg carbs, %.0fg fat\n",
			item.Name, item.MealType, item.Calories, item.Protein, item.Carbs, item.Fat)
	}
	fmt.Fprintf(&description, "Water: %dml, Steps: %d", entry.WaterML, entry.Steps)
	return description.String()
}
