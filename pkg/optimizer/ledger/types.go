// Package ledger tracks which system tweaks have been applied, when, and under
// which performance profile, and makes that record durable across restarts.
package ledger

import (
	"runtime"
)

// Record is a single tweak application event. Records are immutable once
// created and are only ever appended to the history.
type Record struct {
	// Tweak is the tweak identifier that was applied.
	Tweak string `json:"tweak"`

	// Timestamp is the local wall-clock time of the application,
	// formatted as "2006-01-02 15:04:05".
	Timestamp string `json:"timestamp"`

	// Success reports whether the tweak applied cleanly.
	Success bool `json:"success"`
}

// SystemInfo identifies the system that wrote a ledger file.
type SystemInfo struct {
	// Platform is the OS and architecture, e.g. "windows/amd64".
	Platform string `json:"platform"`

	// GoVersion is the runtime version that produced the file.
	GoVersion string `json:"go_version"`
}

// fileState is the on-disk JSON shape of the ledger. Field names match the
// persistence file format consumed by earlier releases.
type fileState struct {
	AppliedTweaks   []string   `json:"applied_tweaks"`
	TweakHistory    []Record   `json:"tweak_history"`
	CurrentProfile  *string    `json:"current_profile"`
	Timestamp       string     `json:"timestamp,omitempty"`
	ExportTimestamp string     `json:"export_timestamp,omitempty"`
	SystemInfo      SystemInfo `json:"system_info"`
	LastResolution  []int      `json:"last_resolution"`
	LastRefreshRate int        `json:"last_refresh_rate"`
}

// currentSystemInfo captures the static identification fields written on save.
func currentSystemInfo() SystemInfo {
	return SystemInfo{
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion: runtime.Version(),
	}
}

// Display defaults used when a ledger is created fresh or a field is absent
// from the persistence file.
const (
	DefaultWidth       = 1920
	DefaultHeight      = 1080
	DefaultRefreshRate = 60
)

// TimeFormat is the human-readable local time layout used for history records.
const TimeFormat = "2006-01-02 15:04:05"

// DefaultFileName is the default name of the persistence file.
const DefaultFileName = "frog_tech_tweaks.json"
