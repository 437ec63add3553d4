// Package config loads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Host           string        `env:"KICKER_HOST" envDefault:"127.0.0.1"`
	Port           int           `env:"KICKER_PORT" envDefault:"8080"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	AssetsDir      string        `env:"KICKER_ASSETS"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	StatsInterval  time.Duration `env:"KICKER_STATS_INTERVAL" envDefault:"5m"`
	LogLevel       string        `env:"KICKER_LOG_LEVEL" envDefault:"info"`
}

// Load reads the optional .env files, then the environment. Variables that
// are already set win over .env entries.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("KICKER_PORT out of range: %d", c.Port)
	}
	if c.StatsInterval < 0 {
		return fmt.Errorf("KICKER_STATS_INTERVAL must not be negative: %s", c.StatsInterval)
	}
	return nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
