// Package config loads and merges the editor configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the full Vellum configuration
type Config struct {
	Editor  EditorConfig  `json:"editor"`
	UI      UIConfig      `json:"ui"`
	Storage StorageConfig `json:"storage"`
}

// EditorConfig contains editing behavior settings
type EditorConfig struct {
	TabWidth    int  `json:"tabWidth"`
	RulerColumn int  `json:"rulerColumn"`
	WordWrap    bool `json:"wordWrap"`
}

// UIConfig contains presentation settings
type UIConfig struct {
	Theme       string `json:"theme"`
	NarrowWidth int    `json:"narrowWidth"` // below this width the layout collapses to one pane
	ToastTTLMs  int    `json:"toastTtlMs"`
	ErrorTTLMs  int    `json:"errorTtlMs"`
}

// StorageConfig contains document store settings
type StorageConfig struct {
	Dir string `json:"dir"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:    4,
			RulerColumn: 80,
			WordWrap:    true,
		},
		UI: UIConfig{
			Theme:       "macchiato",
			NarrowWidth: 100,
			ToastTTLMs:  3000,
			ErrorTTLMs:  8000,
		},
		Storage: StorageConfig{
			Dir: ".vellum",
		},
	}
}

// LoadConfig loads configuration from the given directory with priority:
// 1. .vellum.json in the directory
// 2. Defaults
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".vellum.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return MergeWithDefaults(&cfg), nil
}

// SaveConfig writes the configuration to the given path
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Editor.TabWidth == 0 {
		cfg.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if cfg.Editor.RulerColumn == 0 {
		cfg.Editor.RulerColumn = defaults.Editor.RulerColumn
	}

	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.NarrowWidth == 0 {
		cfg.UI.NarrowWidth = defaults.UI.NarrowWidth
	}
	if cfg.UI.ToastTTLMs == 0 {
		cfg.UI.ToastTTLMs = defaults.UI.ToastTTLMs
	}
	if cfg.UI.ErrorTTLMs == 0 {
		cfg.UI.ErrorTTLMs = defaults.UI.ErrorTTLMs
	}

	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = defaults.Storage.Dir
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
