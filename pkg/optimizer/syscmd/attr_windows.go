//go:build windows

package syscmd

import (
	"os/exec"
	"syscall"
)

// hideWindow sets CREATE_NO_WINDOW so subprocesses never open a console.
func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: 0x08000000, // CREATE_NO_WINDOW
	}
}
