// Package config provides configuration management for the optimizer.
package config

// Default configuration values for frogopt.
const (
	// DefaultLedgerFileName is the ledger file name inside the data directory.
	DefaultLedgerFileName = "frog_tech_tweaks.json"

	// DefaultWorkers is the default tweak worker pool size.
	DefaultWorkers = 4

	// DefaultTweakTimeoutSeconds bounds a single tweak application.
	DefaultTweakTimeoutSeconds = 60

	// DefaultCacheTTLMinutes is how long cached system information stays fresh.
	DefaultCacheTTLMinutes = 15
)
