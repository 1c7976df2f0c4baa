// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - cache/memory: in-process cache on patrickmn/go-cache
// - cache/redis: Redis cache on go-redis
// - cache/sqlite: file-backed cache on mattn/go-sqlite3
// - http/standard: net/http client, one attempt per call, optional request logging
// - logger/logrus: logrus logger with optional lumberjack file rotation
//
// All three caches satisfy interfaces.Cache and return interfaces.ErrCacheMiss
// for absent or expired keys. They back the load status journal.
//
// # HTTP Client
//
// The client never retries; a reload is always an explicit caller action:
//
//	client := standard.NewStandardHTTPClient(30*time.Second, standard.WithLogger(logger))
//	resp, err := client.Get(ctx, "https://example.com/recipes.json")
//	if err != nil {
//	    // transport failure
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := logrus.New(logrus.Config{Level: "debug", Format: "json"})
//	logger.Info("Recipes loaded", map[string]interface{}{
//	    "endpoint": endpoint,
//	    "recipes":  63,
//	})
package infrastructure
