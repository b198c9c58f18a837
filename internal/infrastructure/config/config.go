package config

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all process configuration. It is loaded once at startup and
// treated as immutable; components receive it (or slices of it) explicitly
// instead of reading ambient global state.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	SecretKey                string `env:"SECRET_KEY, required"`
	Algorithm                string `env:"ALGORITHM,  default=HS256"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=60"`

	DB DBConfig
}

type DBConfig struct {
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME,     default=clientes"`
	SSLMode  string `env:"DB_SSLMODE,  default=disable"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing SECRET_KEY is an error; callers treat it as fatal at startup.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// TokenTTL returns the configured access token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// URL builds the Postgres connection URL, escaping credentials.
func (d DBConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}
