// Package config loads the persisted color-scheme/theme configuration.
// The rest of the program only consumes the resolved colors; nothing else
// reads the file format.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// configFileName is the name of the config file
const configFileName = "config.json"

// Config holds the user-facing appearance configuration.
type Config struct {
	ColorScheme ColorScheme `json:"color_scheme"`
	Theme       string      `json:"theme"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		ColorScheme: DefaultColorScheme(),
		Theme:       "default",
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// ConfigDir returns the directory containing mactweaks config files
func ConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "mactweaks")
}

// Load reads the configuration, creating the file with defaults on first
// run. A malformed file or missing keys fall back to defaults per key;
// loading never fails the program.
func Load() *Config {
	return loadFrom(ConfigPath())
}

func loadFrom(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		cfg := Default()
		if os.IsNotExist(err) {
			_ = cfg.saveTo(path)
		}
		return cfg
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default()
	}

	cfg.normalize()
	return &cfg
}

// Save writes the configuration to the config file.
func (c *Config) Save() error {
	return c.saveTo(ConfigPath())
}

func (c *Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// normalize fills missing or invalid fields with defaults.
func (c *Config) normalize() {
	c.ColorScheme.normalize()
	if c.Theme == "" {
		c.Theme = "default"
	}
}
