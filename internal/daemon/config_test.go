package daemon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bloomwell/bloom/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 8642 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 8642)
	}
	if !cfg.API.Metrics {
		t.Error("API.Metrics should default to enabled")
	}
	if cfg.Protection.MonthlyCap != domain.DefaultMonthlyProtectionCap {
		t.Errorf("Protection.MonthlyCap = %d, want %d",
			cfg.Protection.MonthlyCap, domain.DefaultMonthlyProtectionCap)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("BLOOM_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.API.Port != 8642 {
		t.Errorf("API.Port = %d, want default", cfg.API.Port)
	}
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BLOOM_HOME", home)

	content := "[api]\nport = 9000\n\n[protection]\nmonthly_cap = 5\n"
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.API.Port != 9000 {
		t.Errorf("API.Port = %d, want 9000", cfg.API.Port)
	}
	if cfg.Protection.MonthlyCap != 5 {
		t.Errorf("Protection.MonthlyCap = %d, want 5", cfg.Protection.MonthlyCap)
	}
	// Unset fields keep defaults.
	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want default", cfg.API.Host)
	}
}

func TestLoadConfig_NonPositiveCapFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BLOOM_HOME", home)

	content := "[protection]\nmonthly_cap = -1\n"
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Protection.MonthlyCap != domain.DefaultMonthlyProtectionCap {
		t.Errorf("Protection.MonthlyCap = %d, want default", cfg.Protection.MonthlyCap)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv("BLOOM_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.Port = 7777
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.API.Port != 7777 {
		t.Errorf("API.Port = %d, want 7777", loaded.API.Port)
	}
}
