package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Manav933/Feedback/internal/api/dto"
	"github.com/Manav933/Feedback/internal/service"
	apperrors "github.com/Manav933/Feedback/pkg/util"
)

// UsersHandler exposes the auth endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, pair, err := h.auth.Register(c.Context(), req.Username, req.Email, req.Password, req.PasswordConfirm)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
			"auth": dto.AuthResponse{Access: pair.Access, Refresh: pair.Refresh, ExpiresAt: pair.AccessExpiresAt},
		},
	})
}

// Login handles POST /auth/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("Username and password are required.", nil)
	}

	user, pair, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
			"auth": dto.AuthResponse{Access: pair.Access, Refresh: pair.Refresh, ExpiresAt: pair.AccessExpiresAt},
		},
	})
}

// Refresh handles POST /auth/refresh.
func (h *UsersHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Refresh == "" {
		return apperrors.NewValidationError("refresh token required", nil)
	}

	pair, err := h.auth.Refresh(c.Context(), req.Refresh)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.AuthResponse{Access: pair.Access, Refresh: pair.Refresh, ExpiresAt: pair.AccessExpiresAt},
	})
}

// Logout handles POST /auth/logout.
func (h *UsersHandler) Logout(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.auth.Logout(c.Context(), req.Refresh); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
