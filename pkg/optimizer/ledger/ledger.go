package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/frogtech/optimizer/pkg/optimizer/logging"
)

// logger is the package-level logger for ledger operations.
var logger = logging.Get("ledger")

// Ledger is the in-memory record of applied tweaks backed by a JSON file.
// All mutating operations are serialized by a single mutex so concurrent
// tracking calls cannot interleave writes to the persistence file.
type Ledger struct {
	mu   sync.Mutex
	path string

	applied         map[string]struct{}
	history         []Record
	currentProfile  string // empty means no profile selected
	lastResolution  [2]int
	lastRefreshRate int
}

// New creates an empty ledger backed by the given file path.
// The file is not read until Load is called.
func New(path string) (*Ledger, error) {
	if path == "" {
		return nil, errors.New("ledger path cannot be empty")
	}
	return &Ledger{
		path:            path,
		applied:         make(map[string]struct{}),
		lastResolution:  [2]int{DefaultWidth, DefaultHeight},
		lastRefreshRate: DefaultRefreshRate,
	}, nil
}

// Path returns the persistence file path backing this ledger.
func (l *Ledger) Path() string {
	return l.path
}

// Load reads the persistence file if present and replaces the in-memory
// state with its contents. Missing fields fall back to defaults.
//
// Load fails soft: a missing file is not an error, and a read or parse
// failure is logged and leaves the ledger at its prior state.
func (l *Ledger) Load() {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read ledger file", "path", l.path, "error", err)
		}
		return
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		logger.Warn("failed to parse ledger file", "path", l.path, "error", err)
		return
	}

	l.applyState(&state)
	logger.Debug("ledger loaded", "path", l.path,
		"applied", len(l.applied), "history", len(l.history))
}

// applyState replaces the in-memory state from a decoded file.
// Caller must hold l.mu.
func (l *Ledger) applyState(state *fileState) {
	l.applied = make(map[string]struct{}, len(state.AppliedTweaks))
	for _, name := range state.AppliedTweaks {
		l.applied[name] = struct{}{}
	}

	l.history = append([]Record(nil), state.TweakHistory...)

	l.currentProfile = ""
	if state.CurrentProfile != nil {
		l.currentProfile = *state.CurrentProfile
	}

	l.lastResolution = [2]int{DefaultWidth, DefaultHeight}
	if len(state.LastResolution) == 2 && state.LastResolution[0] > 0 && state.LastResolution[1] > 0 {
		l.lastResolution = [2]int{state.LastResolution[0], state.LastResolution[1]}
	}

	l.lastRefreshRate = DefaultRefreshRate
	if state.LastRefreshRate > 0 {
		l.lastRefreshRate = state.LastRefreshRate
	}
}

// snapshot builds the on-disk representation of the current state.
// Caller must hold l.mu.
func (l *Ledger) snapshot() *fileState {
	applied := make([]string, 0, len(l.applied))
	for name := range l.applied {
		applied = append(applied, name)
	}
	sort.Strings(applied)

	state := &fileState{
		AppliedTweaks:   applied,
		TweakHistory:    append([]Record(nil), l.history...),
		SystemInfo:      currentSystemInfo(),
		LastResolution:  []int{l.lastResolution[0], l.lastResolution[1]},
		LastRefreshRate: l.lastRefreshRate,
	}
	if l.currentProfile != "" {
		profile := l.currentProfile
		state.CurrentProfile = &profile
	}
	return state
}

// Save serializes the current state plus a fresh timestamp to the
// persistence file, overwriting any existing file. The write is atomic
// (temp file and rename). On failure the error is logged and returned;
// callers are expected not to abort on it.
func (l *Ledger) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.saveLocked()
}

// saveLocked writes the state file. Caller must hold l.mu.
func (l *Ledger) saveLocked() error {
	state := l.snapshot()
	state.Timestamp = time.Now().Format(TimeFormat)

	if err := writeFileAtomic(l.path, state); err != nil {
		logger.Error("failed to save ledger", "path", l.path, "error", err)
		return err
	}
	return nil
}

// Track records a tweak application. When success is true the tweak name is
// added to the applied set, a history record is appended, and the ledger is
// saved immediately. Failed applications are not recorded.
func (l *Ledger) Track(name string, success bool) {
	if !success {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.applied[name] = struct{}{}
	l.history = append(l.history, Record{
		Tweak:     name,
		Timestamp: time.Now().Format(TimeFormat),
		Success:   true,
	})

	if err := l.saveLocked(); err != nil {
		logger.Warn("tweak tracked but not persisted", "tweak", name, "error", err)
	}
}

// IsApplied reports whether the named tweak has been applied.
func (l *Ledger) IsApplied(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.applied[name]
	return ok
}

// Applied returns the applied tweak names in sorted order.
func (l *Ledger) Applied() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	names := make([]string, 0, len(l.applied))
	for name := range l.applied {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// History returns a copy of the history records in chronological order.
func (l *Ledger) History() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Record(nil), l.history...)
}

// CurrentProfile returns the last-applied profile name, or "" if none.
func (l *Ledger) CurrentProfile() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.currentProfile
}

// SetProfile records the named profile as current and saves the ledger.
func (l *Ledger) SetProfile(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.currentProfile = name
	return l.saveLocked()
}

// DisplayMode returns the last recorded resolution and refresh rate.
func (l *Ledger) DisplayMode() (width, height, refresh int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastResolution[0], l.lastResolution[1], l.lastRefreshRate
}

// SetDisplayMode records a successfully applied display mode and saves.
func (l *Ledger) SetDisplayMode(width, height, refresh int) error {
	if width <= 0 || height <= 0 || refresh <= 0 {
		return fmt.Errorf("invalid display mode %dx%d@%d", width, height, refresh)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastResolution = [2]int{width, height}
	l.lastRefreshRate = refresh
	return l.saveLocked()
}

// Clear empties the applied set and history, forgets the current profile,
// and removes the persistence file if it exists. Confirmation of the
// operation is the caller's responsibility.
func (l *Ledger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.applied = make(map[string]struct{})
	l.history = nil
	l.currentProfile = ""

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		logger.Error("failed to remove ledger file", "path", l.path, "error", err)
		return fmt.Errorf("removing ledger file: %w", err)
	}
	return nil
}

// Export writes the current state to an arbitrary path with an export
// timestamp. The primary persistence file is not touched.
func (l *Ledger) Export(path string) error {
	if path == "" {
		return errors.New("export path cannot be empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	state := l.snapshot()
	state.ExportTimestamp = time.Now().Format(TimeFormat)

	if err := writeFileAtomic(path, state); err != nil {
		return fmt.Errorf("exporting ledger: %w", err)
	}
	return nil
}

// Import reads a ledger file from an arbitrary path and replaces the
// applied set, history, and current profile wholesale (no merging), then
// persists the imported state as the new primary state. Display settings
// recorded in the primary ledger are preserved.
func (l *Ledger) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("parsing import file: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.applied = make(map[string]struct{}, len(state.AppliedTweaks))
	for _, name := range state.AppliedTweaks {
		l.applied[name] = struct{}{}
	}
	l.history = append([]Record(nil), state.TweakHistory...)
	l.currentProfile = ""
	if state.CurrentProfile != nil {
		l.currentProfile = *state.CurrentProfile
	}

	return l.saveLocked()
}

// writeFileAtomic marshals state and writes it via a temp file and rename so
// a crash mid-write cannot leave a truncated ledger behind.
func writeFileAtomic(path string, state *fileState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
