package middleware

import (
	"strings"

	"quizforge/internal/auth"
	"quizforge/internal/domain"
	"quizforge/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID"   // Key for storing the user ID in fiber.Ctx locals
	UserRoleKey         = "userRole" // Key for storing the role in fiber.Ctx locals
)

// TokenVerifier verifies a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

// Protected requires a valid bearer token and stores the caller's ID and role
// in the request locals.
func Protected(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			logger.Get().Debug("Token verification failed", zap.Error(err), zap.String("path", c.Path()))
			return domain.NewUnauthorizedError("Invalid or expired token")
		}

		c.Locals(UserIDKey, claims.Principal())
		c.Locals(UserRoleKey, claims.Role)
		return c.Next()
	}
}

// AuthorizeRoles allows the request only when the caller's role is one of
// roles. It must run after Protected.
func AuthorizeRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(UserRoleKey).(string)
		if !allowed[role] {
			return domain.NewForbiddenError("Your role is not allowed to access this resource")
		}
		return c.Next()
	}
}

// UserID returns the authenticated caller's ID, or "" on public routes.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
