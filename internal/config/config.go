package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backends accepted in STORE_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	HTTPAddr     string        `env:"HTTP_ADDR" envDefault:":8080"`
	StoreBackend string        `env:"STORE_BACKEND" envDefault:"sqlite"`
	DBPath       string        `env:"DB_PATH" envDefault:"./data/courtsplit.db"`
	RedisURL     string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisPrefix  string        `env:"REDIS_PREFIX" envDefault:"courtsplit:"`
	StoreKey     string        `env:"STORE_KEY" envDefault:"data_completa"`
	Currency     string        `env:"CURRENCY" envDefault:"S/"`
	AuthSecret   string        `env:"AUTH_SECRET"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
	LogLevel     slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Load reads the configuration from the environment, after applying a .env
// file from the working directory when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	switch cfg.StoreBackend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
	return &cfg, nil
}
