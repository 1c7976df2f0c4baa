// ABOUTME: Builds the runtime graph shared by every command
// ABOUTME: Config, logger, status cache backend, HTTP client, repository and controller

package main

import (
	"context"
	"fmt"
	"io"

	"recipes-app-api/core/interfaces"
	"recipes-app-api/core/recipes"
	"recipes-app-api/core/status"
	"recipes-app-api/infrastructure/cache/memory"
	"recipes-app-api/infrastructure/cache/redis"
	"recipes-app-api/infrastructure/cache/sqlite"
	stdhttp "recipes-app-api/infrastructure/http/standard"
	logruslogger "recipes-app-api/infrastructure/logger/logrus"
	"recipes-app-api/pkg/config"
	"recipes-app-api/pkg/featureflags"
)

// runtime owns everything a command needs and releases it on Close
type runtime struct {
	cfg        *config.Config
	logger     *logruslogger.Logger
	flags      featureflags.Manager
	cache      interfaces.Cache
	recorder   *status.Recorder
	controller *recipes.ListController

	closers []io.Closer
}

// wiringOptions adjusts the runtime per command. A nil logOutput means stderr.
type wiringOptions struct {
	logOutput io.Writer
}

func newRuntime(flags *globalFlags, opts wiringOptions) (*runtime, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if flags.endpoint != "" {
		cfg.Recipes.Endpoint = flags.endpoint
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logruslogger.New(logruslogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Output: opts.logOutput,
	})

	rt := &runtime{
		cfg:     cfg,
		logger:  logger,
		flags:   featureflags.NewEnvManager(""),
		closers: []io.Closer{logger},
	}

	rt.cache = rt.openCache()

	deps := interfaces.Dependencies{
		Cache:      rt.cache,
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.HTTPTimeoutDuration(), stdhttp.WithLogger(logger)),
		Logger:     logger,
	}

	repo := recipes.NewRepository(deps,
		recipes.WithCollectionKey(cfg.Recipes.CollectionKey),
		recipes.WithIDKey(cfg.RecipeIDKey()),
	)

	ctrlOpts := []recipes.ControllerOption{recipes.WithLogger(logger)}
	if rt.flags.IsEnabled(context.Background(), featureflags.StatusJournal) {
		rt.recorder = status.NewRecorder(deps, cfg.StatusTTLDuration())
		ctrlOpts = append(ctrlOpts, recipes.WithRecorder(rt.recorder))
	}
	rt.controller = recipes.NewListController(repo, cfg.Recipes.Endpoint, ctrlOpts...)

	return rt, nil
}

// openCache selects the status backend, falling back to memory when the
// configured one cannot be opened
func (rt *runtime) openCache() interfaces.Cache {
	switch rt.cfg.Cache.Type {
	case config.CacheRedis:
		c, err := redis.NewRedisCache(rt.cfg.Cache.Redis)
		if err != nil {
			rt.logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		rt.closers = append(rt.closers, c)
		rt.logger.Info("Using Redis cache", map[string]interface{}{"address": rt.cfg.Cache.Redis.Address})
		return c

	case config.CacheSQLite:
		c, err := sqlite.NewSQLiteCacheWithLogger(rt.cfg.Cache.SQLite.Path, rt.logger)
		if err != nil {
			rt.logger.Error("Failed to open SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		rt.closers = append(rt.closers, c)
		rt.logger.Info("Using SQLite cache", map[string]interface{}{"path": rt.cfg.Cache.SQLite.Path})
		return c
	}

	rt.logger.Debug("Using memory cache", nil)
	return memory.NewMemoryCache()
}

// Close stops the controller and releases backends in reverse order
func (rt *runtime) Close() {
	rt.controller.Close()
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i].Close(); err != nil {
			rt.logger.Warn("Failed to close resource", map[string]interface{}{"error": err.Error()})
		}
	}
}
