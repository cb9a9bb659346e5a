//go:build !windows

package sysinfo

import "context"

// probeGPUs is only implemented on Windows.
func probeGPUs(_ context.Context) []string { return nil }
