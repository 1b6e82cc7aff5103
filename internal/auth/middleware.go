package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/socialdev/internal/domain"
	"github.com/spec-kit/socialdev/internal/repository"
	apperrors "github.com/spec-kit/socialdev/pkg/util"
)

const identityKey = "auth_identity"

// Identity is the resolved caller attached to a request. It never carries the
// password hash.
type Identity struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}

// IdentityOf projects a stored user into an Identity.
func IdentityOf(u *domain.User) Identity {
	return Identity{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

// UserResolver loads users by id.
type UserResolver interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// AuthMiddleware validates bearer tokens and loads the caller.
type AuthMiddleware struct {
	tokens *TokenManager
	users  UserResolver
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Authenticate runs the bearer checks against a raw Authorization header
// value and returns the resolved identity.
func (m *AuthMiddleware) Authenticate(ctx context.Context, authHeader string) (Identity, error) {
	if authHeader == "" {
		return Identity{}, apperrors.NewUnauthorized("Unauthorized")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return Identity{}, apperrors.NewUnauthorized("Unauthorized")
	}

	claims, err := m.tokens.ParseToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return Identity{}, apperrors.NewUnauthorized("Unauthorized")
	}

	user, err := m.users.GetByID(ctx, claims.SubjectID())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Identity{}, apperrors.NewUnauthorized("Usuario no encontrado")
		}
		return Identity{}, apperrors.NewInternalError(err)
	}
	return IdentityOf(user), nil
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	identity, err := m.Authenticate(c.UserContext(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return err
	}
	c.Locals(identityKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated caller.
func IdentityFromContext(c *fiber.Ctx) (Identity, bool) {
	identity, ok := c.Locals(identityKey).(Identity)
	return identity, ok
}
