package setup

import (
	"context"
	"errors"

	"github.com/itchan-dev/forum/backend/internal/handler"
	"github.com/itchan-dev/forum/backend/internal/markdown"
	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/backend/internal/storage/cache"
	"github.com/itchan-dev/forum/backend/internal/storage/pg"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/jwt"
	"github.com/itchan-dev/forum/shared/logger"
	mw "github.com/itchan-dev/forum/shared/middleware"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Cache          *cache.ThreadCache // nil when caching is disabled
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
}

// SetupDependencies initializes all dependencies required for the application.
// Migrations are applied before the handler is built.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := storage.MigrateUp(); err != nil {
		storage.Cleanup()
		return nil, err
	}

	var threads service.ThreadRepository = storage
	health := handler.HealthCheckers{storage}

	var threadCache *cache.ThreadCache
	if cfg.CacheEnabled() {
		threadCache, err = cache.New(ctx, cfg)
		if err != nil {
			storage.Cleanup()
			return nil, err
		}
		threads = service.NewCachedThreadRepository(storage, threadCache)
		health = append(health, threadCache)
	} else {
		logger.Log.Info("thread cache disabled")
	}

	thread := service.NewThread(threads, storage)
	comment := service.NewComment(threads, storage)

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	h := handler.New(thread, comment, markdown.New(), health)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Cache:          threadCache,
		Handler:        h,
		AuthMiddleware: mw.NewAuth(jwtService),
	}, nil
}

// Cleanup closes every connection opened by SetupDependencies.
func (d *Dependencies) Cleanup() error {
	var errs []error
	if d.Cache != nil {
		errs = append(errs, d.Cache.Close())
	}
	errs = append(errs, d.Storage.Cleanup())
	return errors.Join(errs...)
}
