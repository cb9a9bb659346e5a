package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/frogtech/optimizer/pkg/optimizer/config"
	"github.com/frogtech/optimizer/pkg/optimizer/logging"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "frogopt",
		Short: "Windows system optimizer with a persistent tweak ledger",
		Long: `Frogopt applies performance, privacy, and gaming tweaks to Windows
and records every successful application in a local ledger, so you always
know what has been changed on a machine.

Examples:
  frogopt tweaks                     # List the tweak catalogue
  frogopt apply disable_telemetry    # Apply a single tweak
  frogopt profile apply gaming       # Apply a whole profile
  frogopt status                     # Show applied tweaks
  frogopt status --watch             # Follow ledger changes live
  frogopt clean                      # Remove junk files
  frogopt export tweaks.json         # Export the ledger`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/frogopt/config.yaml)")
	rootCmd.PersistentFlags().String("ledger", "", "ledger file path (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "output JSON format")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "skip confirmation prompts")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	_ = viper.BindPFlag("ledger_path", rootCmd.PersistentFlags().Lookup("ledger"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("assume_yes", rootCmd.PersistentFlags().Lookup("yes"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "frogopt"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "frogopt"))
		}
	}

	viper.SetEnvPrefix("FROGOPT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("workers.count", config.DefaultWorkers)
	viper.SetDefault("workers.tweak_timeout", config.DefaultTweakTimeoutSeconds)
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.ttl_minutes", config.DefaultCacheTTLMinutes)

	_ = viper.ReadInConfig()

	initLogging()
}

// initLogging wires the file logger from config; console verbosity follows
// the --verbose flag.
func initLogging() {
	logCfg := logging.DefaultConfig()
	if lvl := viper.GetString("logging.level"); lvl != "" {
		logCfg.Level = lvl
	}
	if path := viper.GetString("logging.path"); path != "" {
		logCfg.Path = path
	}
	logCfg.Components = viper.GetStringMapString("logging.components")
	if viper.GetBool("verbose") {
		logCfg.ConsoleLevel = "debug"
	}

	if err := logging.Init(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging unavailable: %v\n", err)
	}
}

// Execute runs the root command.
func Execute() error {
	defer func() { _ = logging.Close() }()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// jsonOutput reports whether --json was requested.
func jsonOutput() bool {
	return viper.GetBool("json")
}

// assumeYes reports whether confirmation prompts should be skipped.
func assumeYes() bool {
	return viper.GetBool("assume_yes")
}
