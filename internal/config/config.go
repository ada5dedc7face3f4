package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDiskv    = "diskv"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config is parsed from ZENHABIT_-prefixed environment variables.
type Config struct {
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Storage selects the document-store backend.
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"diskv"`
	DataDir       string `envconfig:"DATA_DIR" default:"./data"`

	// Redis is optional outside the redis storage driver; when reachable it
	// also powers the rate limiter and the dashboard summary cache.
	RedisHost     string `envconfig:"REDIS_HOST" default:""`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	GeminiAPIKey  string        `envconfig:"GEMINI_API_KEY" default:""`
	GeminiBaseURL string        `envconfig:"GEMINI_BASE_URL" default:""`
	GeminiModel   string        `envconfig:"GEMINI_MODEL" default:"gemini-3-flash-preview"`
	GeminiTimeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("zenhabit", &cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	switch cfg.StorageDriver {
	case StorageDiskv, StorageRedis, StoragePostgres, StorageMemory:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if cfg.StorageDriver == StorageRedis && cfg.RedisHost == "" {
		return nil, fmt.Errorf("redis storage driver requires ZENHABIT_REDIS_HOST")
	}
	if cfg.StorageDriver == StoragePostgres && cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("postgres storage driver requires ZENHABIT_POSTGRES_DSN")
	}

	return &cfg, nil
}
