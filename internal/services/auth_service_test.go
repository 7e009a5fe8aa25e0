package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nutrivision-app/nutrivision/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubUserRepository struct {
	users        map[string]models.User
	nextID       uint
	streakWrites int
	findErr      error
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{users: make(map[string]models.User), nextID: 1}
}

func (repo *stubUserRepository) ExistsByEmail(email string) (bool, error) {
	_, ok := repo.users[email]
	return ok, nil
}

func (repo *stubUserRepository) FindByEmail(email string) (models.User, error) {
	if repo.findErr != nil {
		return models.User{}, repo.findErr
	}
	user, ok := repo.users[email]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (repo *stubUserRepository) Create(user *models.User) error {
	user.ID = repo.nextID
	repo.nextID++
	repo.users[user.Email] = *user
	return nil
}

func (repo *stubUserRepository) UpdateStreak(userID uint, streak int, lastLoginDate string) error {
	repo.streakWrites++
	for email, user := range repo.users {
		if user.ID == userID {
			user.Streak = streak
			user.LastLoginDate = lastLoginDate
			repo.users[email] = user
		}
	}
	return nil
}

func TestRegisterSeedsNewUser(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepository()
	service := NewAuthService(repo, time.UTC)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	user, err := service.Register("maria@example.com", "Maria Silva", "hunter2", now)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if user.Streak != 1 {
		t.Fatalf("expected streak 1 for a new user, got %d", user.Streak)
	}
	if user.LastLoginDate != "2026-03-10" {
		t.Fatalf("expected last login 2026-03-10, got %s", user.LastLoginDate)
	}
	if user.Goals != models.DefaultGoals() {
		t.Fatalf("expected default goals, got %+v", user.Goals)
	}
	if !strings.Contains(user.AvatarURL, "ui-avatars.com") {
		t.Fatalf("expected a generated avatar url, got %s", user.AvatarURL)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")) != nil {
		t.Fatal("expected stored hash to match the password")
	}

	if len(user.ChatHistory) != 1 {
		t.Fatalf("expected a single welcome message, got %d", len(user.ChatHistory))
	}
	welcome := user.ChatHistory[0]
	if welcome.Role != models.ChatRoleAssistant {
		t.Fatalf("expected welcome message from the assistant, got role %q", welcome.Role)
	}
	if !strings.Contains(welcome.Text, "Hi Maria!") {
		t.Fatalf("expected welcome addressed to the first name, got %q", welcome.Text)
	}
}

func TestRegisterWithoutPasswordStoresNoHash(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepository()
	service := NewAuthService(repo, time.UTC)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	user, err := service.Register("guest@example.com", "Guest", "", now)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("expected empty hash for passwordless user, got %q", user.PasswordHash)
	}

	// A passwordless account logs in with any password input.
	if _, err := service.Login("guest@example.com", "anything", now); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestRegisterDuplicateEmailFails(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepository()
	service := NewAuthService(repo, time.UTC)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	if _, err := service.Register("maria@example.com", "Maria", "pw", now); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := service.Register("maria@example.com", "Impostor", "other", now)
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if repo.users["maria@example.com"].Name != "Maria" {
		t.Fatal("expected existing record untouched by duplicate register")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()

	service := NewAuthService(newStubUserRepository(), time.UTC)
	_, err := service.Login("nobody@example.com", "pw", time.Now())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLoginStorageFailureIsNotUserNotFound(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepository()
	repo.findErr = errors.New("disk I/O error")
	service := NewAuthService(repo, time.UTC)

	_, err := service.Login("maria@example.com", "pw", time.Now())
	if err == nil {
		t.Fatal("expected an error when the lookup fails")
	}
	if errors.Is(err, ErrUserNotFound) {
		t.Fatalf("storage failure must not surface as ErrUserNotFound: %v", err)
	}
	if errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("storage failure must not surface as ErrInvalidCredential: %v", err)
	}
}

func TestLoginWrongPasswordMutatesNothing(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepository()
	service := NewAuthService(repo, time.UTC)
	registeredAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	if _, err := service.Register("maria@example.com", "Maria", "correct", registeredAt); err != nil {
		t.Fatalf("register: %v", err)
	}

	nextDay := registeredAt.AddDate(0, 0, 1)
	_, err := service.Login("maria@example.com", "wrong", nextDay)
	if !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
	if repo.streakWrites != 0 {
		t.Fatalf("expected no streak writes on failed login, got %d", repo.streakWrites)
	}
	if got := repo.users["maria@example.com"].Streak; got != 1 {
		t.Fatalf("expected streak untouched, got %d", got)
	}
}

func TestLoginStreakTransitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		loginAt      time.Time
		wantStreak   int
		wantWrites   int
		wantLastDate string
	}{
		{
			name:         "same day keeps streak",
			loginAt:      time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC),
			wantStreak:   1,
			wantWrites:   0,
			wantLastDate: "2026-03-10",
		},
		{
			name:         "next day increments",
			loginAt:      time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC),
			wantStreak:   2,
			wantWrites:   1,
			wantLastDate: "2026-03-11",
		},
		{
			name:         "gap resets to one",
			loginAt:      time.Date(2026, 3, 13, 8, 0, 0, 0, time.UTC),
			wantStreak:   1,
			wantWrites:   1,
			wantLastDate: "2026-03-13",
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			repo := newStubUserRepository()
			service := NewAuthService(repo, time.UTC)
			registeredAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
			if _, err := service.Register("maria@example.com", "Maria", "pw", registeredAt); err != nil {
				t.Fatalf("register: %v", err)
			}

			user, err := service.Login("maria@example.com", "pw", testCase.loginAt)
			if err != nil {
				t.Fatalf("login: %v", err)
			}
			if user.Streak != testCase.wantStreak {
				t.Fatalf("expected streak %d, got %d", testCase.wantStreak, user.Streak)
			}
			if user.LastLoginDate != testCase.wantLastDate {
				t.Fatalf("expected last login %s, got %s", testCase.wantLastDate, user.LastLoginDate)
			}
			if repo.streakWrites != testCase.wantWrites {
				t.Fatalf("expected %d streak writes, got %d", testCase.wantWrites, repo.streakWrites)
			}
		})
	}
}

func TestDefaultAvatarURLEscapesName(t *testing.T) {
	t.Parallel()

	got := DefaultAvatarURL("Maria Silva")
	if got != "https://ui-avatars.com/api/?name=Maria+Silva&background=059669&color=fff" {
		t.Fatalf("unexpected avatar url %s", got)
	}
}
