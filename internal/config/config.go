// Package config loads the optional YAML settings file.
//
// Values from flags and environment variables win over the file, which wins
// over DefaultConfig.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
)

// ChartConfig sets the canvas size of generated charts in pixels.
type ChartConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

type Config struct {
	DataPath   string      `yaml:"data_path,omitempty"`
	MaxBackups int         `yaml:"max_backups,omitempty"`
	Debug      bool        `yaml:"debug,omitempty"`
	Chart      ChartConfig `yaml:"chart,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DataPath:   ExpandHome(constants.DefaultDataPath),
		MaxBackups: constants.MaxBackups,
		Chart: ChartConfig{
			Width:  720,
			Height: 360,
		},
	}
}

// Load reads config from path. A missing file yields DefaultConfig.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.DataPath = ExpandHome(cfg.DataPath)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("data_path must not be empty")
	}
	if c.MaxBackups < 1 {
		return fmt.Errorf("max_backups must be at least 1, got %d", c.MaxBackups)
	}
	if c.Chart.Width < 200 || c.Chart.Height < 120 {
		return fmt.Errorf("chart size %dx%d is too small (minimum 200x120)", c.Chart.Width, c.Chart.Height)
	}
	return nil
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// LogDir is where the rotating log file lives, next to the config file.
func LogDir(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "logs")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
