// Package syscmd runs external system commands (sc, powercfg, netsh, ...)
// without flashing a console window on Windows. Every tweak that shells out
// goes through this package so timeouts and logging are applied uniformly.
package syscmd

import (
	"context"
	"os/exec"
	"strings"

	"github.com/frogtech/optimizer/pkg/optimizer/logging"
)

var logger = logging.Get("syscmd")

// Command creates an exec.Cmd bound to ctx with platform process attributes
// applied (CREATE_NO_WINDOW on Windows).
func Command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	hideWindow(cmd)
	return cmd
}

// Run executes the command and returns its error. Output is discarded.
func Run(ctx context.Context, name string, args ...string) error {
	cmd := Command(ctx, name, args...)
	err := cmd.Run()
	if err != nil {
		logger.Debug("command failed", "cmd", name, "args", strings.Join(args, " "), "error", err)
	}
	return err
}

// Output executes the command and returns its combined output.
func Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := Command(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		logger.Debug("command failed", "cmd", name, "args", strings.Join(args, " "), "error", err)
	}
	return string(out), err
}
