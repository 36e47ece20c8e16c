package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendDynamoDB = "dynamodb"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// StorageConfig selects and configures the key/value backend.
type StorageConfig struct {
	Backend     string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"contractor_pro.db"`
	DatabaseDSN string `env:"DATABASE_DSN"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"contractor_pro:"`
	KVTable     string `env:"KV_TABLE" envDefault:"kv_store"`
}

// PersistConfig tunes retries of collection writes.
type PersistConfig struct {
	MaxAttempts    int           `env:"PERSIST_MAX_ATTEMPTS" envDefault:"3"`
	InitialBackoff time.Duration `env:"PERSIST_INITIAL_BACKOFF" envDefault:"100ms"`
	MaxBackoff     time.Duration `env:"PERSIST_MAX_BACKOFF" envDefault:"2s"`
}

type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Format      string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

// Config is the process configuration, read from the environment.
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	BindAddress string `env:"BIND_ADDRESS" envDefault:"127.0.0.1"`

	Storage StorageConfig
	Persist PersistConfig
	Log     LogConfig
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case BackendMemory, BackendSQLite, BackendRedis, BackendDynamoDB:
	case BackendPostgres:
		if strings.TrimSpace(c.Storage.DatabaseDSN) == "" {
			return errors.New("DATABASE_DSN is required for the postgres backend")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	if c.Persist.MaxAttempts < 1 {
		c.Persist.MaxAttempts = 1
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.BindAddress, c.Port)
}
