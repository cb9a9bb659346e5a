package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"INFO", LevelInfo, false},
		{"bogus", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if LevelDebug.String() != "debug" || LevelError.String() != "error" {
		t.Errorf("Level.String() round trip broken")
	}
}

func TestInitAndGet(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	cfg := Config{
		Level: "debug",
		Path:  logPath,
		Components: map[string]string{
			"quiet": "error",
		},
	}
	if err := Init(cfg); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer func() { _ = Close() }()

	logger := Get("ledger")
	logger.Info("tracked tweak", "tweak", "flush_dns")

	quiet := Get("quiet")
	quiet.Info("should be filtered")

	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "tracked tweak") {
		t.Error("info message missing from log file")
	}
	if strings.Contains(content, "should be filtered") {
		t.Error("component level override not applied")
	}
}

func TestInitInvalidLevel(t *testing.T) {
	err := Init(Config{Level: "nope", Path: filepath.Join(t.TempDir(), "x.log")})
	if err == nil {
		t.Fatal("Init() with invalid level should fail")
	}
}

func TestInitRefreshesEarlyLoggers(t *testing.T) {
	// Package-level vars capture loggers before Init runs; those handles
	// must start writing to the file once Init configures it.
	logger := Get("early-bird")
	logger.Warn("lost before init")

	logPath := filepath.Join(t.TempDir(), "early.log")
	if err := Init(Config{Level: "info", Path: logPath}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer func() { _ = Close() }()

	logger.Warn("visible after init", "tweak", "disable_telemetry")

	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "visible after init") {
		t.Error("pre-init logger did not pick up the configured file")
	}
	if strings.Contains(content, "lost before init") {
		t.Error("message logged before init should not appear")
	}

	// After Close the same handle must go quiet again, not panic.
	logger.Warn("after close")
}

func TestGetBeforeInitIsSilent(t *testing.T) {
	// Must not panic or write anywhere.
	logger := Get("uninitialized-component")
	logger.Debug("goes nowhere")
	logger.Error("also nowhere")
}

func TestWithAddsContext(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "with.log")
	if err := Init(Config{Level: "info", Path: logPath}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer func() { _ = Close() }()

	Get("runner").With("run_id", "abc123").Info("batch finished")

	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "abc123") {
		t.Error("With() context missing from output")
	}
}
