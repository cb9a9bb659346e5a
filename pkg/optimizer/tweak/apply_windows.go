//go:build windows

package tweak

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/frogtech/optimizer/pkg/optimizer/syscmd"
)

// backgroundApps are well-known background processes terminated by
// kill_background_apps. Failures to kill individual processes are ignored;
// most of these are simply not running.
var backgroundApps = []string{
	"SearchUI.exe",
	"Cortana.exe",
	"OneDrive.exe",
	"GameBar.exe",
	"GameBarPresenceWriter.exe",
	"MicrosoftEdgeUpdate.exe",
	"YourPhone.exe",
	"Widgets.exe",
}

// Well-known power scheme GUIDs.
const (
	highPerformanceGUID = "8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c"
	ultimateSourceGUID  = "e9a42b02-d5df-448d-aa00-03f14749eb61"
)

// corePark is the processor power setting that controls the maximum number
// of parked cores.
const coreParkKey = `SYSTEM\CurrentControlSet\Control\Power\PowerSettings\54533251-82be-4824-96c1-47b60b740d00\0cc5b647-c1df-4637-891a-dec35c318583`

func setRegString(root registry.Key, keyPath, name, value string) error {
	key, _, err := registry.CreateKey(root, keyPath, registry.ALL_ACCESS)
	if err != nil {
		return fmt.Errorf("create key %s: %w", keyPath, err)
	}
	defer key.Close()
	return key.SetStringValue(name, value)
}

func setRegDWORD(root registry.Key, keyPath, name string, value uint32) error {
	key, _, err := registry.CreateKey(root, keyPath, registry.ALL_ACCESS)
	if err != nil {
		return fmt.Errorf("create key %s: %w", keyPath, err)
	}
	defer key.Close()
	return key.SetDWordValue(name, value)
}

func applyDisableTelemetry(ctx context.Context) error {
	if err := setRegDWORD(registry.LOCAL_MACHINE,
		`SOFTWARE\Policies\Microsoft\Windows\DataCollection`,
		"AllowTelemetry", 0); err != nil {
		return err
	}
	// DiagTrack may already be stopped; only the registry write is decisive.
	_ = syscmd.Run(ctx, "sc", "stop", "DiagTrack")
	_ = syscmd.Run(ctx, "sc", "config", "DiagTrack", "start=", "disabled")
	return nil
}

func applyDisableAdvertisingID(_ context.Context) error {
	return setRegDWORD(registry.CURRENT_USER,
		`SOFTWARE\Microsoft\Windows\CurrentVersion\AdvertisingInfo`,
		"Enabled", 0)
}

func applyHighPerformancePlan(ctx context.Context) error {
	return syscmd.Run(ctx, "powercfg", "/setactive", highPerformanceGUID)
}

func applyUltimatePlan(ctx context.Context) error {
	out, err := syscmd.Output(ctx, "powercfg", "/duplicatescheme", ultimateSourceGUID)
	if err == nil {
		if guid := firstGUID(out); guid != "" {
			return syscmd.Run(ctx, "powercfg", "/setactive", guid)
		}
	}

	// The plan may already exist; find it in the scheme list.
	listOut, lerr := syscmd.Output(ctx, "powercfg", "/list")
	if lerr != nil {
		return fmt.Errorf("powercfg list: %w", lerr)
	}
	for _, line := range strings.Split(listOut, "\n") {
		if strings.Contains(strings.ToLower(line), "ultimate") {
			if guid := firstGUID(line); guid != "" {
				return syscmd.Run(ctx, "powercfg", "/setactive", guid)
			}
		}
	}
	return fmt.Errorf("could not create or find ultimate performance plan: %s", strings.TrimSpace(out))
}

// firstGUID extracts the first 8-4-4-4-12 GUID token from powercfg output.
func firstGUID(s string) string {
	for _, field := range strings.Fields(s) {
		field = strings.Trim(field, "()*")
		if isGUID(field) {
			return field
		}
	}
	return ""
}

func isGUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i, c := range s {
		if i == 8 || i == 13 || i == 18 || i == 23 {
			if c != '-' {
				return false
			}
			continue
		}
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

func applyDisableHibernation(ctx context.Context) error {
	return syscmd.Run(ctx, "powercfg", "/hibernate", "off")
}

func applyDisableCoreParking(_ context.Context) error {
	return setRegDWORD(registry.LOCAL_MACHINE, coreParkKey, "ValueMax", 0)
}

func applyDisableSuperfetch(ctx context.Context) error {
	// Already stopped is fine; disabling the start type is what matters.
	_ = syscmd.Run(ctx, "sc", "stop", "SysMain")
	return syscmd.Run(ctx, "sc", "config", "SysMain", "start=", "disabled")
}

func applyDisableSearchIndexing(ctx context.Context) error {
	return syscmd.Run(ctx, "sc", "stop", "WSearch")
}

func applyDisableHPET(ctx context.Context) error {
	return syscmd.Run(ctx, "bcdedit", "/deletevalue", "useplatformclock")
}

func applyTimerResolution(_ context.Context) error {
	return setRegDWORD(registry.LOCAL_MACHINE,
		`SYSTEM\CurrentControlSet\Control\Session Manager\kernel`,
		"GlobalTimerResolutionRequests", 1)
}

func applyCPUPriorityForeground(_ context.Context) error {
	// 0x26 gives foreground applications the maximum priority separation.
	return setRegDWORD(registry.LOCAL_MACHINE,
		`SYSTEM\CurrentControlSet\Control\PriorityControl`,
		"Win32PrioritySeparation", 0x26)
}

func applyVisualEffectsPerformance(_ context.Context) error {
	return setRegDWORD(registry.CURRENT_USER,
		`SOFTWARE\Microsoft\Windows\CurrentVersion\Explorer\VisualEffects`,
		"VisualFXSetting", 2)
}

func applyClearStandbyMemory(ctx context.Context) error {
	return syscmd.Run(ctx, "rundll32.exe", "advapi32.dll,ProcessIdleTasks")
}

func applyKillBackgroundApps(ctx context.Context) error {
	for _, proc := range backgroundApps {
		_ = syscmd.Run(ctx, "taskkill", "/F", "/IM", proc)
	}
	return nil
}

func applyMousePrecisionOff(_ context.Context) error {
	if err := setRegString(registry.CURRENT_USER, `Control Panel\Mouse`, "MouseSpeed", "0"); err != nil {
		return err
	}
	if err := setRegString(registry.CURRENT_USER, `Control Panel\Mouse`, "MouseThreshold1", "0"); err != nil {
		return err
	}
	return setRegString(registry.CURRENT_USER, `Control Panel\Mouse`, "MouseThreshold2", "0")
}

func applyKeyboardRepeatMax(_ context.Context) error {
	if err := setRegString(registry.CURRENT_USER, `Control Panel\Keyboard`, "KeyboardDelay", "0"); err != nil {
		return err
	}
	return setRegString(registry.CURRENT_USER, `Control Panel\Keyboard`, "KeyboardSpeed", "31")
}

func applyDisableGameDVR(_ context.Context) error {
	if err := setRegDWORD(registry.CURRENT_USER, `System\GameConfigStore`, "GameDVR_Enabled", 0); err != nil {
		return err
	}
	return setRegDWORD(registry.CURRENT_USER,
		`SOFTWARE\Microsoft\Windows\CurrentVersion\GameDVR`,
		"AppCaptureEnabled", 0)
}

func applyDisableGameBar(_ context.Context) error {
	if err := setRegDWORD(registry.CURRENT_USER, `Software\Microsoft\GameBar`, "UseNexusForGameBarEnabled", 0); err != nil {
		return err
	}
	return setRegDWORD(registry.CURRENT_USER, `Software\Microsoft\GameBar`, "AutoGameModeEnabled", 0)
}

func applyDisableFullscreenOptimizations(_ context.Context) error {
	key := `System\GameConfigStore`
	if err := setRegDWORD(registry.CURRENT_USER, key, "GameDVR_FSEBehaviorMode", 2); err != nil {
		return err
	}
	if err := setRegDWORD(registry.CURRENT_USER, key, "GameDVR_HonorUserFSEBehaviorMode", 1); err != nil {
		return err
	}
	if err := setRegDWORD(registry.CURRENT_USER, key, "GameDVR_FSEBehavior", 2); err != nil {
		return err
	}
	return setRegDWORD(registry.CURRENT_USER, key, "GameDVR_DXGIHonorFSEWindowsCompatible", 1)
}

func applyDisableNagle(_ context.Context) error {
	basePath := `SYSTEM\CurrentControlSet\Services\Tcpip\Parameters\Interfaces`
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, basePath, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return fmt.Errorf("open interfaces key: %w", err)
	}
	defer key.Close()

	subkeys, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return fmt.Errorf("read interface subkeys: %w", err)
	}

	for _, sk := range subkeys {
		ifPath := basePath + `\` + sk
		_ = setRegDWORD(registry.LOCAL_MACHINE, ifPath, "TcpAckFrequency", 1)
		_ = setRegDWORD(registry.LOCAL_MACHINE, ifPath, "TCPNoDelay", 1)
	}
	return nil
}

func applyFlushDNS(ctx context.Context) error {
	return syscmd.Run(ctx, "ipconfig", "/flushdns")
}

func applyResetWinsock(ctx context.Context) error {
	return syscmd.Run(ctx, "netsh", "winsock", "reset")
}

func applyTCPAutotuningNormal(ctx context.Context) error {
	return syscmd.Run(ctx, "netsh", "int", "tcp", "set", "global", "autotuninglevel=normal")
}

// systemDrive returns the drive holding Windows, defaulting to C:.
func systemDrive() string {
	if d := os.Getenv("SystemDrive"); d != "" {
		return d
	}
	return "C:"
}

func applyDefragSystemDrive(ctx context.Context) error {
	return syscmd.Run(ctx, "defrag", systemDrive(), "/O")
}

func applyCompactOS(ctx context.Context) error {
	return syscmd.Run(ctx, "compact", "/compactos:always")
}

func applyDeleteShadowCopies(ctx context.Context) error {
	return syscmd.Run(ctx, "vssadmin", "delete", "shadows", "/all", "/quiet")
}
