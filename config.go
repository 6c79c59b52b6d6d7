package lazyval

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config describes an expiration policy, usually loaded from the environment.
//
// Example, with prefix "TOKEN_":
//
//	TOKEN_POLICY=idle_lifetime
//	TOKEN_IDLE=30s
//	TOKEN_LIFETIME=10m
type Config struct {
	Policy   string        `env:"POLICY" envDefault:"never"`
	Idle     time.Duration `env:"IDLE"`
	Lifetime time.Duration `env:"LIFETIME"`
}

// Build returns the policy the config describes.
func (c Config) Build() (Policy, error) {
	return ParsePolicy(c.Policy, c.Idle, c.Lifetime)
}

// LoadConfig reads a Config from environment variables named prefix+field.
func LoadConfig(prefix string) (Config, error) {
	return parseConfig(env.Options{Prefix: prefix})
}

// LoadConfigFile reads a Config from dotenv files. Later files override earlier
// ones, the process environment is not consulted.
func LoadConfigFile(prefix string, paths ...string) (Config, error) {
	vars, err := godotenv.Read(paths...)
	if err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return parseConfig(env.Options{Prefix: prefix, Environment: vars})
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	if _, err := cfg.Build(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}
