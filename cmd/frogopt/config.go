package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/frogtech/optimizer/pkg/optimizer/config"
	"github.com/frogtech/optimizer/pkg/optimizer/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  `Create ~/.config/frogopt/config.yaml with documented defaults. An existing file is left untouched.`,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if jsonOutput() {
		return output.JSON(os.Stdout, cfg)
	}

	ledger := cfg.LedgerPath
	if ledger == "" {
		ledger = config.DefaultLedgerPath()
	}

	fmt.Printf("Ledger path:    %s\n", ledger)
	fmt.Printf("Workers:        %d\n", cfg.Workers.Count)
	fmt.Printf("Tweak timeout:  %ds\n", cfg.Workers.TweakTimeout)
	fmt.Printf("Cache enabled:  %t (TTL %dm)\n", cfg.Cache.Enabled, cfg.Cache.TTLMinutes)
	fmt.Printf("Assume yes:     %t\n", cfg.AssumeYes)
	fmt.Printf("Log level:      %s\n", cfg.Logging.Level)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.WriteDefault(); err != nil {
		return err
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Printf("Config file: %s\n", filepath.Join(dir, "config.yaml"))
	return nil
}
