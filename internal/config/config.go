// Package config holds all filemru configuration: storage backend and
// location, server address, and state-saving behavior.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lazypower/filemru/internal/persist"
)

// Config holds all filemru configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	State   StateConfig   `yaml:"state"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"` // "sqlite" or "file"
	Path    string `yaml:"path"`    // db or state file; backend default when empty
	Company string `yaml:"company"`
	Product string `yaml:"product"` // defaults to the host binary name
	Version string `yaml:"version"` // defaults to "1.0a"
}

type ServerConfig struct {
	Bind string `yaml:"bind"`
	Port int    `yaml:"port"`
}

type StateConfig struct {
	SaveLastOpened bool `yaml:"save_last_opened"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend: "sqlite",
			Company: "Lazypower",
		},
		Server: ServerConfig{
			Bind: "127.0.0.1",
			Port: 37710,
		},
		State: StateConfig{
			SaveLastOpened: true,
		},
	}
}

// DefaultPath returns the default config file path: ~/.filemru/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".filemru", "config.yaml")
	}
	return filepath.Join(home, ".filemru", "config.yaml")
}

// Load reads the config file at path, overlaying it on Default(). A missing
// file is not an error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Location returns the persistence storage location for this config.
func (c *Config) Location() persist.Location {
	return persist.Location{
		Company: c.Storage.Company,
		Product: c.Storage.Product,
		Version: c.Storage.Version,
	}
}

// ListenAddr returns the bind:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}
