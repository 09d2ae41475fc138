package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Manav933/Feedback/internal/domain"
	"github.com/Manav933/Feedback/internal/repository"
	apperrors "github.com/Manav933/Feedback/pkg/util"
)

const authContextKey = "auth_context"

// AuthContext is the explicit authentication state of one request. There are
// two states: Anonymous (zero value) and Authenticated with a loaded user.
type AuthContext struct {
	Authenticated bool
	User          *domain.User
}

// AuthMiddleware classifies requests from bearer tokens and enforces the
// action policy.
type AuthMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// classify extracts and validates the bearer token. Missing, malformed,
// expired or refresh-kind tokens all classify the request as Anonymous; the
// policy decides whether that state may perform the action.
func (m *AuthMiddleware) classify(c *fiber.Ctx) AuthContext {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return AuthContext{}
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return AuthContext{}
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil || claims.Kind != TokenKindAccess {
		return AuthContext{}
	}

	user, err := m.users.GetByID(c.Context(), claims.Subject)
	if err != nil {
		return AuthContext{}
	}
	return AuthContext{Authenticated: true, User: user}
}

// Require classifies the request and applies the policy for the action.
func (m *AuthMiddleware) Require(action Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx := m.classify(c)
		c.Locals(authContextKey, authCtx)
		if !Allow(action, authCtx) {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// FromContext retrieves the request's AuthContext, Anonymous when absent.
func FromContext(c *fiber.Ctx) AuthContext {
	if val, ok := c.Locals(authContextKey).(AuthContext); ok {
		return val
	}
	return AuthContext{}
}
