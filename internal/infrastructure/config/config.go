package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Upstream UpstreamConfig
	Redis    RedisConfig
	Session  SessionConfig
}

// UpstreamConfig points at the remote catalog/auth API and the separate
// file-upload host.
type UpstreamConfig struct {
	CatalogURL string        `env:"CATALOG_API_URL,  default=https://api.escuelajs.co/api/v1"`
	UploadURL  string        `env:"UPLOAD_API_URL,   default=http://localhost:8081/api/files/upload"`
	Timeout    time.Duration `env:"UPSTREAM_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SessionConfig controls the session cookie and how long a stored token
// survives before Redis expires it.
type SessionConfig struct {
	Cookie string        `env:"SESSION_COOKIE, default=storefront_session"`
	TTL    time.Duration `env:"SESSION_TTL,    default=24h"`
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
