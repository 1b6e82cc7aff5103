package main

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/socialdev/internal/api/http"
	"github.com/spec-kit/socialdev/internal/api/http/handlers"
	"github.com/spec-kit/socialdev/internal/auth"
	"github.com/spec-kit/socialdev/internal/events"
	"github.com/spec-kit/socialdev/internal/observability"
	"github.com/spec-kit/socialdev/internal/persistence"
	"github.com/spec-kit/socialdev/internal/service"
	"github.com/spec-kit/socialdev/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "seed",
				Usage: "create demo users and posts before serving",
			},
		},
		Action: func(c *cli.Context) error {
			rt, err := newBootstrap(c.Context, true)
			if err != nil {
				return err
			}
			defer rt.Close()
			if c.Bool("seed") {
				res, err := service.NewSeedService(rt.users, rt.posts, rt.cfg.Auth.BcryptCost, rt.logger).Run(c.Context)
				if err != nil {
					return err
				}
				rt.logger.Info("seeded", zap.Int("users_created", res.UsersCreated), zap.Int("posts_created", res.PostsCreated))
			}
			return serve(c.Context, rt)
		},
	}
}

func serve(ctx context.Context, rt *bootstrap) error {
	cfg, logger := rt.cfg, rt.logger

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher()
	var forward events.EventHandler
	if redis.Enabled() {
		forward = events.NewRedisPublisher(redis.Client, cfg.Redis.EventsChannel).Forward
	}
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, forward))

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)
	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo:     rt.users,
		TokenManager: tokens,
		BcryptCost:   cfg.Auth.BcryptCost,
		Dispatcher:   dispatcher,
	})
	postService := service.NewPostService(service.PostDependencies{PostRepo: rt.posts, Dispatcher: dispatcher})
	userService := service.NewUserService(rt.users, rt.posts)

	deps := map[string]handlers.Pinger{"redis": redis}
	if rt.postgres != nil {
		deps["postgres"] = rt.postgres
	}

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:         logger,
		Metrics:        metrics,
		Timeout:        cfg.App.RequestTimeout(),
		AllowedOrigins: cfg.App.AllowedOrigins,
	})
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, deps, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Posts:          handlers.NewPostsHandler(postService),
		Users:          handlers.NewUsersHandler(userService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), rt.users),
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("store", cfg.Store.Driver))
		listenErr <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Error(context.Cause(ctx)))
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
