package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// RotationConfig configures log file rotation.
type RotationConfig struct {
	MaxSize    string `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
	Daily      bool   `mapstructure:"daily"`
}

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level      string            `mapstructure:"level"`
	Path       string            `mapstructure:"path"`
	Rotation   RotationConfig    `mapstructure:"rotation"`
	Components map[string]string `mapstructure:"components"`
}

// Config represents the application configuration.
type Config struct {
	// LedgerPath is the tweak ledger file. Empty means the XDG default.
	LedgerPath string `mapstructure:"ledger_path"`

	Workers struct {
		Count        int `mapstructure:"count"`
		TweakTimeout int `mapstructure:"tweak_timeout"`
	} `mapstructure:"workers"`

	Cache struct {
		Enabled    bool `mapstructure:"enabled"`
		TTLMinutes int  `mapstructure:"ttl_minutes"`
	} `mapstructure:"cache"`

	// AssumeYes skips interactive confirmation prompts.
	AssumeYes bool `mapstructure:"assume_yes"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/frogopt/config.yaml
//   - $HOME/.config/frogopt/config.yaml
//
// Environment variables are prefixed with FROGOPT_ (e.g., FROGOPT_LEDGER_PATH).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "frogopt"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".config", "frogopt"))

	v.SetEnvPrefix("FROGOPT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("ledger_path", "") // Empty means use DefaultLedgerPath
	v.SetDefault("workers.count", DefaultWorkers)
	v.SetDefault("workers.tweak_timeout", DefaultTweakTimeoutSeconds)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl_minutes", DefaultCacheTTLMinutes)
	v.SetDefault("assume_yes", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.path", "") // Empty means use DefaultLogPath
	v.SetDefault("logging.rotation.max_size", "10MB")
	v.SetDefault("logging.rotation.max_age", 30)
	v.SetDefault("logging.rotation.max_backups", 5)
	v.SetDefault("logging.rotation.daily", true)
	v.SetDefault("logging.components", map[string]string{
		"ledger":  "info",
		"runner":  "info",
		"syscmd":  "warn",
		"sysinfo": "info",
		"watcher": "warn",
	})

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in the ledger path if present.
	if strings.HasPrefix(cfg.LedgerPath, "~") {
		cfg.LedgerPath = filepath.Join(homeDir, cfg.LedgerPath[1:])
	}

	return &cfg, nil
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "frogopt"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "frogopt"), nil
}

// DataDir returns the data directory holding the ledger and caches.
func DataDir() string {
	return filepath.Join(xdg.DataHome, "frogopt")
}

// DefaultLedgerPath returns the ledger file path used when none is configured.
func DefaultLedgerPath() string {
	return filepath.Join(DataDir(), DefaultLedgerFileName)
}

// CacheDir returns the directory for the system information cache.
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, "frogopt")
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	if err := os.MkdirAll(DataDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// WriteDefault writes a default config file if none exists.
// Returns nil if a config file already exists.
func WriteDefault() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configDir, err := ConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	defaultConfig := fmt.Sprintf(`# Frog-Tech Optimizer Configuration

# Tweak ledger file (empty means $XDG_DATA_HOME/frogopt/%s)
ledger_path: ""

# Worker pool configuration
workers:
  count: %d
  tweak_timeout: %d   # seconds per tweak

# System information cache
cache:
  enabled: true
  ttl_minutes: %d

# Skip confirmation prompts
assume_yes: false

# Logging configuration
logging:
  # Log level: debug, info, warn, error
  level: info
  # Log file path (empty means use default: $XDG_STATE_HOME/frogopt/frogopt.log)
  path: ""
  # Log rotation settings
  rotation:
    max_size: 10MB
    max_age: 30       # days
    max_backups: 5
    daily: true
  # Per-component log levels
  components:
    ledger: info
    runner: info
    syscmd: warn
    sysinfo: info
    watcher: warn
`, DefaultLedgerFileName, DefaultWorkers, DefaultTweakTimeoutSeconds, DefaultCacheTTLMinutes)

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	return nil
}
