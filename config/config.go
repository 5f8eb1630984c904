// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/michal-p/bloglist"
)

type Config struct {
	Port       string        `json:"port"`
	DSN        string        `json:"dsn"`
	SigningKey string        `json:"-"`
	TokenTTL   time.Duration `json:"token_ttl"`
	AuthScheme string        `json:"auth_scheme"`
	ContextKey string        `json:"context_key"`
}

var _ bloglist.Config = (*Config)(nil)

// Load reads the environment. SECRET has no default: a process without a
// signing key must not start.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "3003"),
		DSN:        getEnv("DATABASE_DSN", "file:bloglist.db?cache=shared&_pragma=foreign_keys(1)"),
		SigningKey: getEnv("SECRET", ""),
		TokenTTL:   getDuration("TOKEN_TTL", bloglist.DefaultTokenTTL),
		AuthScheme: getEnv("AUTH_SCHEME", "Bearer"),
		ContextKey: getEnv("AUTH_CONTEXT_KEY", "user"),
	}

	if cfg.SigningKey == "" {
		return nil, errors.New("SECRET is required")
	}

	return cfg, nil
}

func (c *Config) GetSigningKey() string      { return c.SigningKey }
func (c *Config) GetTokenTTL() time.Duration { return c.TokenTTL }
func (c *Config) GetAuthScheme() string      { return c.AuthScheme }
func (c *Config) GetContextKey() string      { return c.ContextKey }

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	return fallback
}
