// Package config reads the application settings from the environment.
// Provider settings live in the llm package.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DBPath    string     `env:"MATHSTORY_DB"`
	DataHome  string     `env:"XDG_DATA_HOME"`
	StateHome string     `env:"XDG_STATE_HOME"`
	LogLevel  slog.Level `env:"MATHSTORY_LOG_LEVEL" envDefault:"INFO"`
	LogFile   string     `env:"MATHSTORY_LOG_FILE"`
}

func Load() (*Config, error) {
	return load(nil)
}

func load(environ map[string]string) (*Config, error) {
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// LogPath is LogFile, or mathstory/mathstory.log under the XDG state
// directory.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	base := c.StateHome
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, "mathstory", "mathstory.log"), nil
}
