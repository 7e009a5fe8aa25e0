package db

import (
	"github.com/nutrivision-app/nutrivision/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Emails identify users exactly as typed; no normalization is applied.
func (repo *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("email = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) UpdateStreak(userID uint, streak int, lastLoginDate string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"streak":          streak,
		"last_login_date": lastLoginDate,
	}).Error
}

func (repo *UserRepository) UpdateGoals(userID uint, goals models.UserGoals) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"goal_calories": goals.Calories,
		"goal_protein":  goals.Protein,
		"goal_carbs":    goals.Carbs,
		"goal_fat":      goals.Fat,
		"goal_steps":    goals.Steps,
	}).Error
}

func (repo *UserRepository) CompleteOnboarding(userID uint, stats models.UserStats, goals models.UserGoals) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		user.Stats = &stats
		user.Goals = goals
		user.OnboardingCompleted = true
		return tx.Save(&user).Error
	})
}

func (repo *UserRepository) UpdateChatHistory(userID uint, messages []models.ChatMessage) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		user.ChatHistory = models.TrimChatHistory(messages)
		return tx.Save(&user).Error
	})
}
