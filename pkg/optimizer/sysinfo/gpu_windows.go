//go:build windows

package sysinfo

import (
	"context"
	"strings"

	"github.com/frogtech/optimizer/pkg/optimizer/syscmd"
)

// probeGPUs lists video controller names through WMI. Failures return nil;
// the snapshot is still useful without GPU names.
func probeGPUs(ctx context.Context) []string {
	out, err := syscmd.Output(ctx, "wmic", "path", "win32_VideoController", "get", "name")
	if err != nil {
		return nil
	}

	var gpus []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.EqualFold(line, "Name") {
			continue
		}
		gpus = append(gpus, line)
	}
	return gpus
}
