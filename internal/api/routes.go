package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	api.Get("/logs", handler.AuthRequired, handler.GetLogs)
	api.Get("/history", handler.AuthRequired, handler.GetHistory)

	today := api.Group("/log", handler.AuthRequired)
	today.Get("/today", handler.GetToday)
	today.Post("/items", handler.AddFoodItem)
	today.Delete("/items/:id", handler.DeleteFoodItem)
	today.Post("/water", handler.UpdateWater)
	today.Put("/steps", handler.SetSteps)
	today.Post("/steps", handler.QuickAddSteps)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Put("/goals", handler.UpdateGoals)
	profile.Post("/onboarding", handler.CompleteOnboarding)
	profile.Put("/chat", handler.ReplaceChatHistory)

	insights := api.Group("/ai", handler.AuthRequired)
	insights.Post("/food/image", handler.AnalyzeFoodImage)
	insights.Post("/food/text", handler.AnalyzeFoodText)
	insights.Post("/food/search", handler.SearchFood)
	insights.Post("/coach", handler.CoachChat)
	insights.Post("/summary", handler.DailySummary)
	insights.Post("/suggestions", handler.MealSuggestions)
	insights.Post("/recipe", handler.GenerateRecipe)
	insights.Post("/sous-chef", handler.SousChefChat)
}
