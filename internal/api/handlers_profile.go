package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nutrivision-app/nutrivision/internal/models"
)

func (handler *Handler) UpdateGoals(c *fiber.Ctx) error {
	var goals models.UserGoals
	if err := c.BodyParser(&goals); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user := currentUser(c)
	updated, err := handler.profileService.UpdateGoals(user.ID, goals)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update goals")
	}
	return c.JSON(profileResponse(updated))
}

func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	var stats models.UserStats
	if err := c.BodyParser(&stats); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if validationError := validateStatsInput(stats); validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	user := currentUser(c)
	updated, err := handler.profileService.CompleteOnboarding(user.ID, stats)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to complete onboarding")
	}
	return c.JSON(profileResponse(updated))
}

func (handler *Handler) ReplaceChatHistory(c *fiber.Ctx) error {
	var messages []models.ChatMessage
	if err := c.BodyParser(&messages); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user := currentUser(c)
	if err := handler.profileService.ReplaceChatHistory(user.ID, messages); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save chat history")
	}
	return c.JSON(fiber.Map{"ok": true})
}
