package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nutrivision-app/nutrivision/internal/models"
)

// profileResponse shapes a user for the wire: everything the client needs,
// never the credential hash.
func profileResponse(user models.User) fiber.Map {
	chatHistory := user.ChatHistory
	if chatHistory == nil {
		chatHistory = []models.ChatMessage{}
	}

	return fiber.Map{
		"name":                user.Name,
		"email":               user.Email,
		"avatar":              user.AvatarURL,
		"streak":              user.Streak,
		"lastLoginDate":       user.LastLoginDate,
		"goals":               user.Goals,
		"stats":               user.Stats,
		"onboardingCompleted": user.OnboardingCompleted,
		"chatHistory":         chatHistory,
	}
}
