// Package config loads CLI defaults from an optional project config file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the project config file looked up next to the inputs.
const ConfigFileName = "twbmeta.yaml"

// Config carries CLI defaults. Flags override config values, and config
// values override the built-in defaults.
type Config struct {
	// OutputDir is the directory for canonical documents.
	OutputDir string `yaml:"output_dir,omitempty"`
	// Mode is the extraction mode (light, standard, verbose).
	Mode string `yaml:"mode,omitempty"`
	// Pretty enables indented JSON output.
	Pretty bool `yaml:"pretty,omitempty"`
	// Workers sizes the batch worker pool; zero means GOMAXPROCS.
	Workers int `yaml:"workers,omitempty"`
}

// Load reads twbmeta.yaml from dir. A .env file in the same directory is
// loaded first so TWBMETA_* environment overrides apply either way.
func Load(dir string) (*Config, error) {
	// Missing .env is fine; it only feeds optional overrides.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			cfg.applyEnv()
			return cfg, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays TWBMETA_* environment variables onto the config.
func (c *Config) applyEnv() {
	if v := os.Getenv("TWBMETA_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("TWBMETA_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("TWBMETA_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
}
