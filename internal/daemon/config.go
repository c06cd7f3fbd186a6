// Package daemon wires the Bloom engine together: configuration, storage,
// services, and the HTTP API surface.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bloomwell/bloom/internal/domain"
)

// Config holds all engine configuration.
type Config struct {
	Storage    StorageConfig    `toml:"storage"`
	API        APIConfig        `toml:"api"`
	Protection ProtectionConfig `toml:"protection"`
	Logging    LoggingConfig    `toml:"logging"`
}

// StorageConfig controls where persistent state lives.
type StorageConfig struct {
	Dir string `toml:"dir"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
	Metrics     bool     `toml:"metrics"`
}

// ProtectionConfig controls the streak protection quota.
type ProtectionConfig struct {
	MonthlyCap int `toml:"monthly_cap"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	home := bloomHome()
	return Config{
		Storage: StorageConfig{
			Dir: home,
		},
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        8642,
			CORSOrigins: []string{"*"},
			Metrics:     true,
		},
		Protection: ProtectionConfig{
			MonthlyCap: domain.DefaultMonthlyProtectionCap,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(home, "bloom.log"),
		},
	}
}

// LoadConfig reads config from ~/.bloom/config.toml, falling back to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(bloomHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Protection.MonthlyCap <= 0 {
		cfg.Protection.MonthlyCap = domain.DefaultMonthlyProtectionCap
	}

	return cfg, nil
}

// SaveConfig writes the config to ~/.bloom/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(bloomHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// bloomHome returns the Bloom data directory.
func bloomHome() string {
	if env := os.Getenv("BLOOM_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".bloom")
}

// BloomHome is exported for use by other packages.
func BloomHome() string {
	return bloomHome()
}
