package config

import (
	"errors"
	"fmt"
	"grid-route-client/internal/adapters/routing"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Runtime settings shared by the gateway and the CLI.
// Precedence: defaults < TOML file < environment.
type Config struct {
	BaseURL       string        `toml:"base_url"`
	Timeout       time.Duration `toml:"-"`
	TimeoutRaw    string        `toml:"timeout"`
	Port          string        `toml:"port"`
	HistoryDriver string        `toml:"history_driver"`
	HistoryDSN    string        `toml:"history_dsn"`
	LogLevel      string        `toml:"log_level"`
}

func Default() Config {
	return Config{
		BaseURL:  routing.DefaultBaseURL,
		Timeout:  10 * time.Second,
		Port:     "8080",
		LogLevel: "info",
	}
}

// LoadDotEnv loads a .env file if present. It reports whether one was found.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load builds a Config from defaults, the optional TOML file at path and
// the environment. An empty path skips the file. Overrides run last, before
// validation, so a command-line value replaces a bad environment value.
func Load(path string, overrides ...func(*Config)) (Config, error) {
	cfg := Default()

	if path != "" {
		var file Config
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return Config{}, fmt.Errorf("load config %q: %w", path, err)
		}
		cfg.merge(file)
	}

	cfg.BaseURL = Get("ROUTING_BASE_URL", cfg.BaseURL)
	cfg.TimeoutRaw = Get("ROUTING_TIMEOUT", cfg.TimeoutRaw)
	cfg.Port = Get("PORT", cfg.Port)
	cfg.HistoryDriver = Get("HISTORY_DRIVER", cfg.HistoryDriver)
	cfg.HistoryDSN = Get("HISTORY_DSN", cfg.HistoryDSN)
	cfg.LogLevel = Get("LOG_LEVEL", cfg.LogLevel)

	for _, override := range overrides {
		override(&cfg)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (c *Config) merge(o Config) {
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.TimeoutRaw != "" {
		c.TimeoutRaw = o.TimeoutRaw
	}
	if o.Port != "" {
		c.Port = o.Port
	}
	if o.HistoryDriver != "" {
		c.HistoryDriver = o.HistoryDriver
	}
	if o.HistoryDSN != "" {
		c.HistoryDSN = o.HistoryDSN
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

func (c *Config) validate() error {
	u, err := routing.ParseBaseURL(c.BaseURL)
	if err != nil {
		return err
	}
	c.BaseURL = u.String()

	if c.TimeoutRaw != "" {
		d, err := time.ParseDuration(c.TimeoutRaw)
		if err != nil {
			return fmt.Errorf("timeout %q: %w", c.TimeoutRaw, err)
		}
		if d < 0 {
			return fmt.Errorf("timeout %q must not be negative", c.TimeoutRaw)
		}
		c.Timeout = d
	}

	switch c.HistoryDriver {
	case "":
	case "sqlite", "pgx":
		if strings.TrimSpace(c.HistoryDSN) == "" {
			return fmt.Errorf("history driver %q requires HISTORY_DSN", c.HistoryDriver)
		}
	default:
		return errors.New("history driver must be sqlite, pgx or empty")
	}

	return nil
}
