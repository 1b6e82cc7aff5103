package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/socialdev/internal/config"
	"github.com/spec-kit/socialdev/internal/observability"
	"github.com/spec-kit/socialdev/internal/persistence"
	"github.com/spec-kit/socialdev/internal/repository"
)

// bootstrap is the state shared by all commands. The record store is chosen
// by STORE_DRIVER.
type bootstrap struct {
	cfg      *config.Config
	logger   *zap.Logger
	postgres *persistence.Postgres
	users    repository.UserRepository
	posts    repository.PostRepository
}

func newBootstrap(ctx context.Context, migrate bool) (*bootstrap, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	rt := &bootstrap{cfg: cfg, logger: logger}
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		logger.Warn("using in-memory store; data is lost on exit")
		store := repository.NewMemoryStore()
		rt.users, rt.posts = store.Users(), store.Posts()
	default:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if migrate {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				pg.Close()
				return nil, fmt.Errorf("run migrations: %w", err)
			}
		}
		rt.postgres = pg
		rt.users = repository.NewUserRepository(pg.PoolHandle())
		rt.posts = repository.NewPostRepository(pg.PoolHandle())
	}
	return rt, nil
}

func (rt *bootstrap) Close() {
	rt.postgres.Close()
	_ = rt.logger.Sync()
}
