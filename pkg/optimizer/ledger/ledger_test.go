package ledger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	led, err := New(filepath.Join(t.TempDir(), DefaultFileName))
	require.NoError(t, err)
	return led
}

func TestNewRejectsEmptyPath(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestFreshStartDefaults(t *testing.T) {
	led := newTestLedger(t)
	led.Load() // no file yet

	assert.Empty(t, led.Applied())
	assert.Empty(t, led.History())
	assert.Equal(t, "", led.CurrentProfile())

	width, height, refresh := led.DisplayMode()
	assert.Equal(t, DefaultWidth, width)
	assert.Equal(t, DefaultHeight, height)
	assert.Equal(t, DefaultRefreshRate, refresh)
}

func TestTrackSuccess(t *testing.T) {
	led := newTestLedger(t)

	led.Track("disable_telemetry", true)

	assert.True(t, led.IsApplied("disable_telemetry"))
	assert.False(t, led.IsApplied("flush_dns"))

	history := led.History()
	require.Len(t, history, 1)
	assert.Equal(t, "disable_telemetry", history[0].Tweak)
	assert.True(t, history[0].Success)
	assert.NotEmpty(t, history[0].Timestamp)

	// Tracking persists immediately.
	_, err := os.Stat(led.Path())
	assert.NoError(t, err)
}

func TestTrackFailureIsIgnored(t *testing.T) {
	led := newTestLedger(t)

	led.Track("disable_telemetry", false)

	assert.False(t, led.IsApplied("disable_telemetry"))
	assert.Empty(t, led.History())

	_, err := os.Stat(led.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestTrackRepeatGrowsHistoryNotSet(t *testing.T) {
	led := newTestLedger(t)

	led.Track("flush_dns", true)
	led.Track("flush_dns", true)
	led.Track("flush_dns", true)

	assert.Equal(t, []string{"flush_dns"}, led.Applied())
	assert.Len(t, led.History(), 3)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	led := newTestLedger(t)

	led.Track("disable_telemetry", true)
	led.Track("flush_dns", true)
	require.NoError(t, led.SetProfile("gaming"))
	require.NoError(t, led.SetDisplayMode(2560, 1440, 144))

	reloaded, err := New(led.Path())
	require.NoError(t, err)
	reloaded.Load()

	assert.Equal(t, led.Applied(), reloaded.Applied())
	assert.Equal(t, led.History(), reloaded.History())
	assert.Equal(t, "gaming", reloaded.CurrentProfile())

	width, height, refresh := reloaded.DisplayMode()
	assert.Equal(t, 2560, width)
	assert.Equal(t, 1440, height)
	assert.Equal(t, 144, refresh)
}

func TestLoadCorruptFileKeepsState(t *testing.T) {
	led := newTestLedger(t)
	led.Track("flush_dns", true)

	require.NoError(t, os.WriteFile(led.Path(), []byte("{not json"), 0o644))

	led.Load()

	// Parse failure leaves the in-memory state untouched.
	assert.True(t, led.IsApplied("flush_dns"))
}

func TestFileFormat(t *testing.T) {
	led := newTestLedger(t)
	led.Track("flush_dns", true)
	require.NoError(t, led.SetProfile("network"))

	data, err := os.ReadFile(led.Path())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Contains(t, raw, "applied_tweaks")
	assert.Contains(t, raw, "tweak_history")
	assert.Contains(t, raw, "current_profile")
	assert.Contains(t, raw, "timestamp")
	assert.Contains(t, raw, "system_info")
	assert.Contains(t, raw, "last_resolution")
	assert.Contains(t, raw, "last_refresh_rate")

	sys, ok := raw["system_info"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, sys, "platform")
	assert.Contains(t, sys, "go_version")

	res, ok := raw["last_resolution"].([]any)
	require.True(t, ok)
	assert.Len(t, res, 2)
}

func TestClear(t *testing.T) {
	led := newTestLedger(t)
	led.Track("flush_dns", true)
	require.NoError(t, led.SetProfile("network"))

	require.NoError(t, led.Clear())

	assert.Empty(t, led.Applied())
	assert.Empty(t, led.History())
	assert.Equal(t, "", led.CurrentProfile())

	_, err := os.Stat(led.Path())
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-clear ledger is fine.
	assert.NoError(t, led.Clear())
}

func TestExport(t *testing.T) {
	led := newTestLedger(t)
	led.Track("flush_dns", true)

	exportPath := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, led.Export(exportPath))

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "export_timestamp")
	assert.Contains(t, raw, "applied_tweaks")

	// Exporting does not disturb the primary file.
	primary, err := os.ReadFile(led.Path())
	require.NoError(t, err)
	var primaryRaw map[string]any
	require.NoError(t, json.Unmarshal(primary, &primaryRaw))
	assert.NotContains(t, primaryRaw, "export_timestamp")

	assert.Error(t, led.Export(""))
}

func TestImportReplacesNotMerges(t *testing.T) {
	source := newTestLedger(t)
	source.Track("disable_telemetry", true)
	require.NoError(t, source.SetProfile("balanced"))

	exportPath := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, source.Export(exportPath))

	dest := newTestLedger(t)
	dest.Track("flush_dns", true)
	dest.Track("reset_winsock", true)
	require.NoError(t, dest.SetDisplayMode(3840, 2160, 120))

	require.NoError(t, dest.Import(exportPath))

	// Prior applied tweaks are gone, not merged in.
	assert.Equal(t, []string{"disable_telemetry"}, dest.Applied())
	require.Len(t, dest.History(), 1)
	assert.Equal(t, "disable_telemetry", dest.History()[0].Tweak)
	assert.Equal(t, "balanced", dest.CurrentProfile())

	// Display settings belong to this machine and survive the import.
	width, height, refresh := dest.DisplayMode()
	assert.Equal(t, 3840, width)
	assert.Equal(t, 2160, height)
	assert.Equal(t, 120, refresh)

	// The imported state became the new persisted state.
	reloaded, err := New(dest.Path())
	require.NoError(t, err)
	reloaded.Load()
	assert.Equal(t, []string{"disable_telemetry"}, reloaded.Applied())
}

func TestImportMissingFile(t *testing.T) {
	led := newTestLedger(t)
	err := led.Import(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestSetDisplayModeValidation(t *testing.T) {
	led := newTestLedger(t)

	assert.Error(t, led.SetDisplayMode(0, 1080, 60))
	assert.Error(t, led.SetDisplayMode(1920, -1, 60))
	assert.Error(t, led.SetDisplayMode(1920, 1080, 0))

	width, height, refresh := led.DisplayMode()
	assert.Equal(t, DefaultWidth, width)
	assert.Equal(t, DefaultHeight, height)
	assert.Equal(t, DefaultRefreshRate, refresh)
}

func TestConcurrentTracking(t *testing.T) {
	led := newTestLedger(t)

	tweaks := []string{"a", "b", "c", "d", "e"}
	var wg sync.WaitGroup
	for _, name := range tweaks {
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(n string) {
				defer wg.Done()
				led.Track(n, true)
			}(name)
		}
	}
	wg.Wait()

	assert.Equal(t, tweaks, led.Applied())
	assert.Len(t, led.History(), len(tweaks)*4)

	// The file on disk is valid JSON after the concurrent writes.
	data, err := os.ReadFile(led.Path())
	require.NoError(t, err)
	var raw map[string]any
	assert.NoError(t, json.Unmarshal(data, &raw))
}
