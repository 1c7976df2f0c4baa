// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the recipe source, server, cache and logging

package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	coreerrors "recipes-app-api/core/errors"
)

// DefaultEndpoint is the public recipe collection used when none is configured
const DefaultEndpoint = "https://d3jbb8n5wk0qxi.cloudfront.net/recipes.json"

// defaultHostIDKey is the id member used by the host serving DefaultEndpoint
const defaultHostIDKey = "uuid"

// Cache backend names
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheSQLite = "sqlite"
)

// Config holds all application configuration
type Config struct {
	// Recipes describes where the collection comes from
	Recipes RecipesConfig

	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains status journal backend configuration
	Cache CacheConfig

	// Log contains logger configuration
	Log LogConfig
}

// RecipesConfig holds recipe source configuration
type RecipesConfig struct {
	// Endpoint is the absolute URL of the recipe collection
	Endpoint string

	// CollectionKey is the top-level JSON member holding the array
	CollectionKey string

	// IDKey is the record member holding each recipe id. Empty selects
	// the key for the configured endpoint.
	IDKey string

	// HTTPTimeout bounds one fetch, in seconds
	HTTPTimeout int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per minute per client IP
	RateLimit int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// StatusTTL is how long a load record is kept, in seconds
	StatusTTL int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Recipes: RecipesConfig{
			Endpoint:      getEnvOrDefault("RECIPES_ENDPOINT", DefaultEndpoint),
			CollectionKey: getEnvOrDefault("RECIPES_COLLECTION_KEY", "recipes"),
			IDKey:         getEnvOrDefault("RECIPES_ID_KEY", ""),
			HTTPTimeout:   getEnvAsIntOrDefault("HTTP_TIMEOUT", 30),
		},
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 100),
		},
		Cache: CacheConfig{
			Type:      strings.ToLower(getEnvOrDefault("CACHE_TYPE", CacheMemory)),
			StatusTTL: getEnvAsIntOrDefault("STATUS_TTL", 86400),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "recipes-status.db"),
			},
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// HTTPTimeoutDuration returns the fetch timeout as a duration
func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.Recipes.HTTPTimeout) * time.Second
}

// RecipeIDKey returns the configured id member, or "uuid" for the default
// endpoint's host and "id" for any other endpoint
func (c *Config) RecipeIDKey() string {
	if c.Recipes.IDKey != "" {
		return c.Recipes.IDKey
	}
	u, err := url.Parse(c.Recipes.Endpoint)
	def, _ := url.Parse(DefaultEndpoint)
	if err == nil && strings.EqualFold(u.Host, def.Host) {
		return defaultHostIDKey
	}
	return "id"
}

// StatusTTLDuration returns the status record TTL as a duration
func (c *Config) StatusTTLDuration() time.Duration {
	return time.Duration(c.Cache.StatusTTL) * time.Second
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	u, err := url.Parse(c.Recipes.Endpoint)
	if c.Recipes.Endpoint == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &coreerrors.ValidationError{Field: "RECIPES_ENDPOINT", Message: "must be an absolute http(s) URL"}
	}

	if c.Recipes.CollectionKey == "" {
		return &coreerrors.ValidationError{Field: "RECIPES_COLLECTION_KEY", Message: "cannot be empty"}
	}

	if c.Recipes.HTTPTimeout < 1 {
		return &coreerrors.ValidationError{Field: "HTTP_TIMEOUT", Message: "must be at least 1 second"}
	}

	if c.Server.Port == "" {
		return &coreerrors.ValidationError{Field: "PORT", Message: "cannot be empty"}
	}

	if c.Server.RateLimit < 1 {
		return &coreerrors.ValidationError{Field: "RATE_LIMIT", Message: "must be at least 1 request per minute"}
	}

	switch c.Cache.Type {
	case CacheMemory:
	case CacheRedis:
		if c.Cache.Redis.Address == "" {
			return &coreerrors.ValidationError{Field: "REDIS_ADDRESS", Message: "cannot be empty when using redis cache"}
		}
	case CacheSQLite:
		if c.Cache.SQLite.Path == "" {
			return &coreerrors.ValidationError{Field: "SQLITE_PATH", Message: "cannot be empty when using sqlite cache"}
		}
	default:
		return &coreerrors.ValidationError{
			Field:   "CACHE_TYPE",
			Message: fmt.Sprintf("must be %q, %q or %q", CacheMemory, CacheRedis, CacheSQLite),
		}
	}

	if c.Cache.StatusTTL < 1 {
		return &coreerrors.ValidationError{Field: "STATUS_TTL", Message: "must be at least 1 second"}
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return &coreerrors.ValidationError{Field: "LOG_FORMAT", Message: "must be \"text\" or \"json\""}
	}

	return nil
}
