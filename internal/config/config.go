// Package config loads application configuration from the environment.
// A .env file in the working directory is read first when present;
// variables already set in the process take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds all runtime configuration values.  Top-level fields map
// to the environment variable named by their koanf tag, upper-cased.
// RATE_LIMIT_* and REDIS_* variables fill the nested blocks, e.g.
// RATE_LIMIT_CAPACITY -> rate_limit.capacity.
type Config struct {
	Env  string `koanf:"app_env" validate:"required,oneof=dev test prod"`
	Port string `koanf:"app_port" validate:"required,numeric"`

	DBUser string `koanf:"db_user" validate:"required"`
	DBPass string `koanf:"db_pass"` // empty allowed
	DBHost string `koanf:"db_host" validate:"required"`
	DBPort string `koanf:"db_port" validate:"required,numeric"`
	DBName string `koanf:"db_name" validate:"required"`

	// RabbitMQURL is the AMQP endpoint for directory events.  Events are
	// not published when it is empty.
	RabbitMQURL     string `koanf:"rabbitmq_url" validate:"omitempty,url"`
	ConsumerEnabled bool   `koanf:"event_consumer_enabled"`
	EventLogDir     string `koanf:"event_log_dir" validate:"required"`

	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=trace debug info warn error"`

	Redis     RedisConfig     `koanf:"redis"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

// nested lists the variable prefixes that map into a sub-struct.
var nested = []string{"rate_limit_", "redis_"}

// envKey turns an environment variable name into a koanf key.
func envKey(name string) string {
	k := strings.ToLower(name)
	for _, p := range nested {
		if rest, ok := strings.CutPrefix(k, p); ok {
			return strings.TrimSuffix(p, "_") + "." + rest
		}
	}
	return k
}

// defaults returns the values used for variables that are not set.
func defaults() *Config {
	return &Config{
		EventLogDir: "logs",
		LogLevel:    "info",
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		RateLimit: RateLimitConfig{
			Enabled:        true,
			Capacity:       60,
			RefillTokens:   1,
			RefillInterval: time.Second,
			TTL:            10 * time.Minute,
			KeyStrategy:    "ip_route",
			Prefix:         "rl",
		},
	}
}

// Load reads .env (if any) and the process environment into a Config and
// validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.RateLimit = cfg.RateLimit.withOverrides()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// EventsEnabled reports whether a broker is configured.
func (c *Config) EventsEnabled() bool { return c.RabbitMQURL != "" }
