package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

func TestLoad_Defaults(t *testing.T) {
	// Use a temp directory that doesn't have a config file
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LedgerPath != "" {
		t.Errorf("LedgerPath = %q, want empty", cfg.LedgerPath)
	}

	if cfg.Workers.Count != DefaultWorkers {
		t.Errorf("Workers.Count = %d, want %d", cfg.Workers.Count, DefaultWorkers)
	}

	if cfg.Workers.TweakTimeout != DefaultTweakTimeoutSeconds {
		t.Errorf("Workers.TweakTimeout = %d, want %d", cfg.Workers.TweakTimeout, DefaultTweakTimeoutSeconds)
	}

	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled = false, want true")
	}

	if cfg.Cache.TTLMinutes != DefaultCacheTTLMinutes {
		t.Errorf("Cache.TTLMinutes = %d, want %d", cfg.Cache.TTLMinutes, DefaultCacheTTLMinutes)
	}

	if cfg.AssumeYes {
		t.Error("AssumeYes = true, want false")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_FromFile(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, ".config", "frogopt")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configContent := `
ledger_path: /custom/ledger.json
workers:
  count: 2
  tweak_timeout: 10
cache:
  enabled: false
assume_yes: true
logging:
  level: debug
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LedgerPath != "/custom/ledger.json" {
		t.Errorf("LedgerPath = %q, want %q", cfg.LedgerPath, "/custom/ledger.json")
	}

	if cfg.Workers.Count != 2 {
		t.Errorf("Workers.Count = %d, want 2", cfg.Workers.Count)
	}

	if cfg.Workers.TweakTimeout != 10 {
		t.Errorf("Workers.TweakTimeout = %d, want 10", cfg.Workers.TweakTimeout)
	}

	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled = true, want false")
	}

	if !cfg.AssumeYes {
		t.Error("AssumeYes = false, want true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_TildeExpansion(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, ".config", "frogopt")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configContent := "ledger_path: ~/tweaks/ledger.json\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := filepath.Join(tempDir, "tweaks", "ledger.json")
	if cfg.LedgerPath != want {
		t.Errorf("LedgerPath = %q, want %q", cfg.LedgerPath, want)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("FROGOPT_LEDGER_PATH", "/env/ledger.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LedgerPath != "/env/ledger.json" {
		t.Errorf("LedgerPath = %q, want %q", cfg.LedgerPath, "/env/ledger.json")
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("respects XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")

		dir, err := ConfigDir()
		if err != nil {
			t.Fatalf("ConfigDir() error = %v", err)
		}

		want := filepath.Join("/custom/config", "frogopt")
		if dir != want {
			t.Errorf("ConfigDir() = %q, want %q", dir, want)
		}
	})

	t.Run("falls back to home", func(t *testing.T) {
		tempDir := t.TempDir()
		t.Setenv("HOME", tempDir)
		t.Setenv("XDG_CONFIG_HOME", "")

		dir, err := ConfigDir()
		if err != nil {
			t.Fatalf("ConfigDir() error = %v", err)
		}

		want := filepath.Join(tempDir, ".config", "frogopt")
		if dir != want {
			t.Errorf("ConfigDir() = %q, want %q", dir, want)
		}
	})
}

func TestDefaultLedgerPath(t *testing.T) {
	p := DefaultLedgerPath()
	if !strings.HasSuffix(p, filepath.Join("frogopt", DefaultLedgerFileName)) {
		t.Errorf("DefaultLedgerPath() = %q, want suffix frogopt/%s", p, DefaultLedgerFileName)
	}
}

func TestEnsureDataDir(t *testing.T) {
	origDataHome := os.Getenv("XDG_DATA_HOME")
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()
	defer func() {
		os.Setenv("XDG_DATA_HOME", origDataHome)
		xdg.Reload()
	}()

	if err := EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir() error = %v", err)
	}

	info, err := os.Stat(DataDir())
	if err != nil {
		t.Fatalf("stat data dir: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%q is not a directory", DataDir())
	}

	// Second call on an existing directory is a no-op.
	if err := EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir() second call error = %v", err)
	}
}

func TestWriteDefault(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	if err := WriteDefault(); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	configPath := filepath.Join(tempDir, ".config", "frogopt", "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}
	if !strings.Contains(string(data), "ledger_path") {
		t.Error("written config does not mention ledger_path")
	}

	// A second call must not overwrite.
	if err := os.WriteFile(configPath, []byte("assume_yes: true\n"), 0o644); err != nil {
		t.Fatalf("failed to modify config: %v", err)
	}
	if err := WriteDefault(); err != nil {
		t.Fatalf("WriteDefault() second call error = %v", err)
	}
	data, err = os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to re-read config: %v", err)
	}
	if string(data) != "assume_yes: true\n" {
		t.Error("WriteDefault() overwrote an existing config file")
	}
}
