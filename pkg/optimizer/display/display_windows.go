//go:build windows

package display

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplaySettings  = user32.NewProc("EnumDisplaySettingsW")
	procChangeDisplaySetting = user32.NewProc("ChangeDisplaySettingsW")
)

const (
	enumCurrentSettings = 0xFFFFFFFF

	dmPelsWidth        = 0x00080000
	dmPelsHeight       = 0x00100000
	dmDisplayFrequency = 0x00400000

	dispChangeSuccessful = 0
)

// devMode mirrors the layout of the Win32 DEVMODEW structure.
type devMode struct {
	DeviceName       [32]uint16
	SpecVersion      uint16
	DriverVersion    uint16
	Size             uint16
	DriverExtra      uint16
	Fields           uint32
	Position         struct{ X, Y int32 }
	DisplayOrient    uint32
	DisplayFixedOut  uint32
	Color            int16
	Duplex           int16
	YResolution      int16
	TTOption         int16
	Collate          int16
	FormName         [32]uint16
	LogPixels        uint16
	BitsPerPel       uint32
	PelsWidth        uint32
	PelsHeight       uint32
	DisplayFlags     uint32
	DisplayFrequency uint32
	ICMMethod        uint32
	ICMIntent        uint32
	MediaType        uint32
	DitherType       uint32
	Reserved1        uint32
	Reserved2        uint32
	PanningWidth     uint32
	PanningHeight    uint32
}

func enumSettings(index uint32) (devMode, bool) {
	var dm devMode
	dm.Size = uint16(unsafe.Sizeof(dm))
	ret, _, _ := procEnumDisplaySettings.Call(0, uintptr(index), uintptr(unsafe.Pointer(&dm)))
	return dm, ret != 0
}

func currentMode() (Mode, error) {
	dm, ok := enumSettings(enumCurrentSettings)
	if !ok {
		return Mode{}, fmt.Errorf("query current display settings failed")
	}
	return Mode{
		Width:   int(dm.PelsWidth),
		Height:  int(dm.PelsHeight),
		Refresh: int(dm.DisplayFrequency),
	}, nil
}

func availableModes() ([]Mode, error) {
	var modes []Mode
	seen := make(map[Mode]struct{})

	for i := uint32(0); ; i++ {
		dm, ok := enumSettings(i)
		if !ok {
			break
		}
		m := Mode{
			Width:   int(dm.PelsWidth),
			Height:  int(dm.PelsHeight),
			Refresh: int(dm.DisplayFrequency),
		}
		if !m.Valid() {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		modes = append(modes, m)
	}

	if len(modes) == 0 {
		return nil, fmt.Errorf("no display modes enumerated")
	}
	return modes, nil
}

func applyMode(m Mode) error {
	var dm devMode
	dm.Size = uint16(unsafe.Sizeof(dm))
	dm.PelsWidth = uint32(m.Width)
	dm.PelsHeight = uint32(m.Height)
	dm.DisplayFrequency = uint32(m.Refresh)
	dm.Fields = dmPelsWidth | dmPelsHeight | dmDisplayFrequency

	ret, _, _ := procChangeDisplaySetting.Call(uintptr(unsafe.Pointer(&dm)), 0)
	if int32(ret) != dispChangeSuccessful {
		return fmt.Errorf("change display settings failed with code %d", int32(ret))
	}
	return nil
}
