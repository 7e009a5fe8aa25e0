package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nutrivision-app/nutrivision/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserExists        = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidCredential = errors.New("invalid credential")
)

type AuthUserRepository interface {
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (models.User, error)
	Create(user *models.User) error
	UpdateStreak(userID uint, streak int, lastLoginDate string) error
}

type AuthService struct {
	users    AuthUserRepository
	location *time.Location
}

func NewAuthService(users AuthUserRepository, location *time.Location) *AuthService {
	if location == nil {
		location = time.UTC
	}
	return &AuthService{users: users, location: location}
}

// Register creates a user with a fresh streak, default goals and a seeded
// welcome message. The password is optional; when present it is stored as a
// bcrypt hash. Registering an email twice fails with ErrUserExists and
// leaves the existing record untouched.
func (service *AuthService) Register(email string, name string, password string, now time.Time) (models.User, error) {
	exists, err := service.users.ExistsByEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrUserExists
	}

	passwordHash := ""
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, fmt.Errorf("hash password: %w", err)
		}
		passwordHash = string(hash)
	}

	now = now.In(service.location)
	user := models.User{
		Email:         email,
		Name:          name,
		AvatarURL:     DefaultAvatarURL(name),
		PasswordHash:  passwordHash,
		Streak:        1,
		LastLoginDate: Today(now, service.location),
		Goals:         models.DefaultGoals(),
		ChatHistory:   []models.ChatMessage{welcomeMessage(name, now)},
		CreatedAt:     now,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login looks the user up by email and applies the streak transition for
// today. A wrong password fails with ErrInvalidCredential before any
// mutation; a password is only checked when one was set at registration.
// Only a genuinely missing record maps to ErrUserNotFound; storage failures
// propagate as-is.
func (service *AuthService) Login(email string, password string, now time.Time) (models.User, error) {
	user, err := service.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("load user: %w", err)
	}

	if password != "" && user.PasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return models.User{}, ErrInvalidCredential
		}
	}

	today := Today(now, service.location)
	if streak, changed := NextStreak(user.Streak, user.LastLoginDate, today); changed {
		user.Streak = streak
		user.LastLoginDate = today
		if err := service.users.UpdateStreak(user.ID, streak, today); err != nil {
			return models.User{}, err
		}
	}

	return user, nil
}

// DefaultAvatarURL builds a ui-avatars.com image for a freshly registered
// user.
func DefaultAvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=059669&color=fff", url.QueryEscape(name))
}

func welcomeMessage(name string, now time.Time) models.ChatMessage {
	firstName := name
	if index := strings.IndexByte(firstName, ' '); index > 0 {
		firstName = firstName[:index]
	}
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.ChatRoleAssistant,
		Text:      fmt.Sprintf("Hi %s! I'm your NutriVision coach. **Ask me anything** about your meals, nutrition goals, or health tips!", firstName),
		Timestamp: now.UnixMilli(),
	}
}
