// Package elevate detects and requests administrative privileges. Most
// tweaks write machine-wide state and fail without them.
package elevate

import "errors"

// ErrUnsupported indicates relaunching elevated is not available here.
var ErrUnsupported = errors.New("elevation not supported on this platform")

// IsElevated reports whether the current process has administrative
// privileges.
func IsElevated() bool {
	return isElevated()
}

// Relaunch starts a new elevated copy of this process with the same
// arguments. The current process should exit once Relaunch returns nil.
func Relaunch() error {
	return relaunch()
}
