package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/group-allocator/internal/api/dto"
	"github.com/spec-kit/group-allocator/internal/service"
	apperrors "github.com/spec-kit/group-allocator/pkg/util/errorutil"
)

// AuthHandler exposes organizer login.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/organizer/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.OrganizerLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Password == "" {
		return apperrors.NewValidationError("password required", map[string]any{"field": "password"})
	}

	token, err := h.auth.LoginOrganizer(c.UserContext(), req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.AuthResponse{Token: token.Value, ExpiresAt: token.ExpiresAt},
	})
}
