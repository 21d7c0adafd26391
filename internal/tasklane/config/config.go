package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DetailSourceStore = "store"
	DetailSourceSeed  = "seed"
)

type TUIConfig struct {
	AltScreen bool `toml:"alt_screen"`
}

type FormConfig struct {
	RequireName bool `toml:"require_name"`
}

type DetailConfig struct {
	Source string `toml:"source"`
}

type SeedConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type Config struct {
	TUI    TUIConfig    `toml:"tui"`
	Form   FormConfig   `toml:"form"`
	Detail DetailConfig `toml:"detail"`
	Seed   SeedConfig   `toml:"seed"`
	Log    LogConfig    `toml:"log"`
}

func defaultConfig() Config {
	return Config{
		TUI:    TUIConfig{AltScreen: true},
		Form:   FormConfig{RequireName: false},
		Detail: DetailConfig{Source: DetailSourceStore},
		Log:    LogConfig{Level: "info"},
	}
}

// ProjectPath is where LoadFromProject looks for the config file.
func ProjectPath(projectDir string) string {
	return filepath.Join(projectDir, ".tasklane", "config.toml")
}

// LoadFromProject reads .tasklane/config.toml under projectDir. A missing
// file yields the defaults.
func LoadFromProject(projectDir string) (Config, error) {
	return Load(ProjectPath(projectDir))
}

func Load(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Detail.Source {
	case DetailSourceStore, DetailSourceSeed:
	default:
		return fmt.Errorf("detail.source must be %q or %q, got %q", DetailSourceStore, DetailSourceSeed, c.Detail.Source)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// ApplyEnv loads envFile when it exists and then applies TASKLANE_*
// overrides from the environment. The result is not validated; callers
// layer their own overrides on top and call Validate last.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if v := os.Getenv("TASKLANE_SEED"); v != "" {
		c.Seed.Path = v
	}
	if v := os.Getenv("TASKLANE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("TASKLANE_DETAIL_SOURCE"); v != "" {
		c.Detail.Source = v
	}
	return nil
}
