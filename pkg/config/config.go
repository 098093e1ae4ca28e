// Package config handles loading and saving prefnav configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/prefnav/config.yaml
//   - State:  ~/.local/state/prefnav/ (setting-value store)
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UIConfig holds UI preference settings.
type UIConfig struct {
	InitialCategory string  `yaml:"initial_category,omitempty"` // category pre-selected on startup
	SplitRatio      float64 `yaml:"split_ratio,omitempty"`      // nav/content pane ratio (0.2-0.8)
	ShowBreadcrumb  *bool   `yaml:"show_breadcrumb,omitempty"`  // breadcrumb bar above content pane
}

// Config is the top-level configuration for prefnav.
type Config struct {
	Definition string   `yaml:"definition,omitempty"` // default preferences definition file
	Locale     string   `yaml:"locale,omitempty"`     // locale bundle name, empty = raw keys
	LocaleDir  string   `yaml:"locale_dir,omitempty"` // directory of locale YAML bundles
	UI         UIConfig `yaml:"ui,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	showBreadcrumb := true
	return Config{
		UI: UIConfig{
			SplitRatio:     0.35,
			ShowBreadcrumb: &showBreadcrumb,
		},
	}
}

// ConfigDir returns the XDG config directory for prefnav.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "prefnav")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "prefnav")
}

// StateDir returns the XDG state directory for prefnav.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "prefnav")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "prefnav")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// StorePath returns the default path of the setting-value store.
func StorePath() string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "values.db")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path. A missing file yields the
// defaults without error; a malformed file is an error.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.clamp()
	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes config to a specific path, creating directories as needed.
func SaveTo(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) clamp() {
	if c.UI.SplitRatio < 0.2 || c.UI.SplitRatio > 0.8 {
		c.UI.SplitRatio = DefaultConfig().UI.SplitRatio
	}
}
