package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	StoreMongo  = "mongo"
	StoreSQLite = "sqlite"
)

// Config holds every setting read from the environment
type Config struct {
	StoreDriver       string `koanf:"store_driver" validate:"required,oneof=mongo sqlite"`
	MongoDBURL        string `koanf:"mongodb_url" validate:"required_if=StoreDriver mongo"`
	SQLitePath        string `koanf:"sqlite_path" validate:"required_if=StoreDriver sqlite"`
	DatabaseName      string `koanf:"database_name" validate:"required"`
	CollectionName    string `koanf:"collection_name" validate:"required"`
	LogCollectionName string `koanf:"log_collection_name" validate:"required"`

	Port              string        `koanf:"port" validate:"required"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	TrustProxyHeaders bool          `koanf:"trust_proxy_headers"`

	LogLevel        string        `koanf:"log_level" validate:"required"`
	LogFormat       string        `koanf:"log_format" validate:"oneof=json console"`
	LogWriteTimeout time.Duration `koanf:"log_write_timeout" validate:"gt=0"`
}

// Default returns the configuration used for any key left unset
func Default() *Config {
	return &Config{
		StoreDriver:       StoreMongo,
		SQLitePath:        "enterprise.db",
		DatabaseName:      "enterprise",
		CollectionName:    "enterprises",
		LogCollectionName: "logs",
		Port:              "8080",
		ShutdownTimeout:   10 * time.Second,
		LogLevel:          "info",
		LogFormat:         "json",
		LogWriteTimeout:   5 * time.Second,
	}
}

// Load reads the configuration from environment variables. Keys are the
// upper-case field names, e.g. MONGODB_URL or LOG_COLLECTION_NAME.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
