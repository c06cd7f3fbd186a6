package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bloomwell/bloom/internal/daemon"
)

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.toml to the Bloom home directory",
	RunE:  runConfigInit,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("Config file:    %s\n", filepath.Join(daemon.BloomHome(), "config.toml"))
	fmt.Printf("Storage dir:    %s\n", cfg.Storage.Dir)
	fmt.Printf("API address:    %s:%d\n", cfg.API.Host, cfg.API.Port)
	fmt.Printf("CORS origins:   %s\n", strings.Join(cfg.API.CORSOrigins, ", "))
	fmt.Printf("Metrics:        %v\n", cfg.API.Metrics)
	fmt.Printf("Protection cap: %d/month\n", cfg.Protection.MonthlyCap)
	fmt.Printf("Log level:      %s\n", cfg.Logging.Level)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := filepath.Join(daemon.BloomHome(), "config.toml")

	if err := daemon.SaveConfig(daemon.DefaultConfig()); err != nil {
		return err
	}

	fmt.Printf("Wrote default config to %s\n", path)
	return nil
}
