package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port            string         `env:"PORT" env-default:"4000"`
	RefreshInterval time.Duration  `env:"REFRESH_INTERVAL" env-default:"15m"`
	Provider        string         `env:"PROVIDER" env-default:"fixture"`
	CollationLocale string         `env:"COLLATION_LOCALE" env-default:"es"`
	Worldcup        WorldcupConfig `env-prefix:"WORLDCUP_"`
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables.
// Values that parse but are out of range fall back to their defaults.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Description renders the supported environment variables, used by CLI help output.
func Description() string {
	var cfg Config
	help, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return help
}

func (c *Config) normalize() {
	if c.Port == "" {
		c.Port = defaultPort
	}
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = defaultRefreshInterval
	}
	if c.Provider == "" {
		c.Provider = defaultProvider
	}
	if c.CollationLocale == "" {
		c.CollationLocale = defaultCollation
	}
	c.Worldcup.normalize()
	c.Metrics.normalize()
}
