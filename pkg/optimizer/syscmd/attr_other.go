//go:build !windows

package syscmd

import "os/exec"

// hideWindow is a no-op outside Windows.
func hideWindow(_ *exec.Cmd) {}
