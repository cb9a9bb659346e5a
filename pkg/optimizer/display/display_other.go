//go:build !windows

package display

func currentMode() (Mode, error)      { return Mode{}, ErrUnsupported }
func availableModes() ([]Mode, error) { return nil, ErrUnsupported }
func applyMode(_ Mode) error          { return ErrUnsupported }
