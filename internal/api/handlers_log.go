package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nutrivision-app/nutrivision/internal/models"
	"github.com/nutrivision-app/nutrivision/internal/services"
)

func (handler *Handler) GetLogs(c *fiber.Ctx) error {
	user := currentUser(c)
	logs, err := handler.logService.Logs(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load logs")
	}
	return c.JSON(logs)
}

func (handler *Handler) GetToday(c *fiber.Ctx) error {
	user := currentUser(c)
	entry, err := handler.logService.TodayLog(user.ID, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load today's log")
	}
	return c.JSON(todayResponse(user, entry))
}

func (handler *Handler) AddFoodItem(c *fiber.Ctx) error {
	var input foodItemInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if validationError := validateFoodItemInput(input); validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	user := currentUser(c)
	item := models.FoodItem{
		Name:        input.Name,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
		ServingSize: input.ServingSize,
		MealType:    input.MealType,
		ImageURL:    input.ImageURL,
		HealthTips:  input.HealthTips,
	}
	entry, err := handler.logService.SaveFoodItem(user.ID, item, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save food item")
	}
	return c.Status(fiber.StatusCreated).JSON(todayResponse(user, entry))
}

func (handler *Handler) DeleteFoodItem(c *fiber.Ctx) error {
	user := currentUser(c)
	entry, err := handler.logService.DeleteFoodItem(user.ID, c.Params("id"), time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete food item")
	}
	return c.JSON(todayResponse(user, entry))
}

func (handler *Handler) UpdateWater(c *fiber.Ctx) error {
	var payload waterPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user := currentUser(c)
	entry, err := handler.logService.AddWater(user.ID, payload.DeltaML, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update water")
	}
	return c.JSON(todayResponse(user, entry))
}

func (handler *Handler) SetSteps(c *fiber.Ctx) error {
	var payload stepsPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user := currentUser(c)
	entry, err := handler.logService.SetSteps(user.ID, payload.Steps, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to set steps")
	}
	return c.JSON(todayResponse(user, entry))
}

func (handler *Handler) QuickAddSteps(c *fiber.Ctx) error {
	var payload stepsPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user := currentUser(c)
	entry, err := handler.logService.AddSteps(user.ID, payload.Delta, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to add steps")
	}
	return c.JSON(todayResponse(user, entry))
}

func (handler *Handler) GetHistory(c *fiber.Ctx) error {
	user := currentUser(c)
	history, err := handler.logService.History(user.ID, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load history")
	}
	return c.JSON(history)
}

// todayResponse bundles the log with its derived totals and the macro
// budget left. `remaining` carries the true deltas (negative when a goal
// is exceeded); `remainingDisplay` is the zero-floored view for widgets.
func todayResponse(user models.User, entry models.DailyLog) fiber.Map {
	totals := services.SumMacros(entry.Items)
	remaining := services.RemainingMacros(user.Goals, totals)
	return fiber.Map{
		"log":              entry,
		"totals":           totals,
		"remaining":        remaining,
		"remainingDisplay": services.ClampMacrosForDisplay(remaining),
	}
}
