package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/socialdev/internal/auth"
	apperrors "github.com/spec-kit/socialdev/pkg/util"
)

func callerOf(c *fiber.Ctx) (auth.Identity, error) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return auth.Identity{}, apperrors.NewUnauthorized("Unauthorized")
	}
	return identity, nil
}
