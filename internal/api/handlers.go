package api

import (
	"errors"
	"time"

	"github.com/nutrivision-app/nutrivision/internal/db"
	"github.com/nutrivision-app/nutrivision/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, gateway InsightGateway, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secretKey == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		gateway:      gateway,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}

	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users, location)
	handler.logService = services.NewLogService(handler.repositories.DailyLogs, location)
	handler.profileService = services.NewProfileService(handler.repositories.Users)
	return handler, nil
}
