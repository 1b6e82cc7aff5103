package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/socialdev/internal/api/http/handlers"
	"github.com/spec-kit/socialdev/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Posts          *handlers.PostsHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes under /api.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/", cfg.Health.Welcome)
	api.Get("/health", cfg.Health.Live)
	api.Get("/health/ready", cfg.Health.Ready)
	api.Get("/metrics", cfg.Health.Metrics)

	api.Post("/auth/login", cfg.Auth.Login)

	posts := api.Group("/posts", cfg.AuthMiddleware.Handle)
	posts.Get("/", cfg.Posts.List)
	posts.Post("/", cfg.Posts.Create)
	posts.Get("/user/:userId", cfg.Posts.ListByUser)
	posts.Get("/:id", cfg.Posts.Get)
	posts.Post("/:id", cfg.Posts.Update)
	posts.Delete("/:id", cfg.Posts.Delete)

	users := api.Group("/users", cfg.AuthMiddleware.Handle)
	users.Get("/", cfg.Users.List)
	users.Get("/profile", cfg.Users.Profile)
	users.Get("/:id", cfg.Users.Get)
}
