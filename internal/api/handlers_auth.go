package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nutrivision-app/nutrivision/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if validationError := validateRegistrationInput(input); validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	user, err := handler.authService.Register(input.Email, input.Name, input.Password, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			return apiError(c, fiber.StatusConflict, "user already exists")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(fiber.StatusCreated).JSON(profileResponse(user))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if validationError := validateLoginInput(input); validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	user, err := handler.authService.Login(input.Email, input.Password, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return apiError(c, fiber.StatusNotFound, "user not found")
		case errors.Is(err, services.ErrInvalidCredential):
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		default:
			return apiError(c, fiber.StatusInternalServerError, "login failed")
		}
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(profileResponse(user))
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	return c.JSON(profileResponse(currentUser(c)))
}
