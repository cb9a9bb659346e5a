// Package display reads and changes the primary monitor's mode. Only the
// Windows implementation is functional; elsewhere every operation reports
// ErrUnsupported.
package display

import (
	"errors"
	"fmt"
)

// ErrUnsupported indicates display control is not available on this platform.
var ErrUnsupported = errors.New("display control not supported on this platform")

// Mode is a display resolution and refresh rate.
type Mode struct {
	Width   int
	Height  int
	Refresh int
}

// String formats the mode as "1920x1080 @ 144Hz".
func (m Mode) String() string {
	return fmt.Sprintf("%dx%d @ %dHz", m.Width, m.Height, m.Refresh)
}

// Valid reports whether the mode has positive dimensions and refresh rate.
func (m Mode) Valid() bool {
	return m.Width > 0 && m.Height > 0 && m.Refresh > 0
}

// Current returns the primary monitor's active mode.
func Current() (Mode, error) {
	return currentMode()
}

// Available lists the modes the primary monitor supports, deduplicated, in
// enumeration order.
func Available() ([]Mode, error) {
	return availableModes()
}

// Apply switches the primary monitor to the given mode.
func Apply(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("invalid mode %dx%d@%d", m.Width, m.Height, m.Refresh)
	}
	return applyMode(m)
}
