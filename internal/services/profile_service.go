package services

import "github.com/nutrivision-app/nutrivision/internal/models"

type ProfileUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateGoals(userID uint, goals models.UserGoals) error
	CompleteOnboarding(userID uint, stats models.UserStats, goals models.UserGoals) error
	UpdateChatHistory(userID uint, messages []models.ChatMessage) error
}

type ProfileService struct {
	users ProfileUserRepository
}

func NewProfileService(users ProfileUserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// UpdateGoals overwrites the user's daily targets. Values are stored as
// given; nothing beyond integer coercion is enforced.
func (service *ProfileService) UpdateGoals(userID uint, goals models.UserGoals) (models.User, error) {
	if err := service.users.UpdateGoals(userID, goals); err != nil {
		return models.User{}, err
	}
	return service.users.FindByID(userID)
}

// CompleteOnboarding stores body stats, folds the computed macro targets
// over the existing goals (the step target is kept) and marks onboarding
// done.
func (service *ProfileService) CompleteOnboarding(userID uint, stats models.UserStats) (models.User, error) {
	current, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}

	goals := ComputeGoals(stats)
	goals.Steps = current.Goals.Steps

	if err := service.users.CompleteOnboarding(userID, stats, goals); err != nil {
		return models.User{}, err
	}
	return service.users.FindByID(userID)
}

// ReplaceChatHistory persists the conversation as sent by the client,
// trimmed to the retention cap.
func (service *ProfileService) ReplaceChatHistory(userID uint, messages []models.ChatMessage) error {
	return service.users.UpdateChatHistory(userID, messages)
}
