package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frogtech/optimizer/pkg/optimizer/ledger"
	"github.com/frogtech/optimizer/pkg/optimizer/profile"
	"github.com/frogtech/optimizer/pkg/optimizer/runner"
	"github.com/frogtech/optimizer/pkg/optimizer/tweak"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, map[string]int{"applied": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["applied"])
}

func TestRenderTweakList(t *testing.T) {
	var buf bytes.Buffer
	RenderTweakList(&buf, tweak.Default(), func(id string) bool {
		return id == "flush_dns"
	})

	out := buf.String()
	assert.Contains(t, out, "flush_dns")
	assert.Contains(t, out, "disable_telemetry")
	assert.Contains(t, out, "NETWORK")
}

func TestRenderProfiles(t *testing.T) {
	var buf bytes.Buffer
	RenderProfiles(&buf, profile.All(), "gaming")

	out := buf.String()
	assert.Contains(t, out, "gaming")
	assert.Contains(t, out, "super_computer")
	assert.Contains(t, out, "tweaks)")
}

func TestRenderStatus(t *testing.T) {
	led, err := ledger.New(filepath.Join(t.TempDir(), "ledger.json"))
	require.NoError(t, err)
	led.Track("flush_dns", true)

	var buf bytes.Buffer
	RenderStatus(&buf, led)

	out := buf.String()
	assert.Contains(t, out, "flush_dns")
	assert.Contains(t, out, "1920x1080 @ 60Hz")
}

func TestRenderHistory(t *testing.T) {
	records := []ledger.Record{
		{Tweak: "old_tweak", Timestamp: "2026-08-01 10:00:00", Success: true},
		{Tweak: "new_tweak", Timestamp: "2026-08-02 10:00:00", Success: false},
	}

	var buf bytes.Buffer
	RenderHistory(&buf, records, 0)

	out := buf.String()
	assert.Contains(t, out, "old_tweak")
	assert.Contains(t, out, "new_tweak")
	// Newest first.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("new_tweak")), bytes.Index(buf.Bytes(), []byte("old_tweak")))

	buf.Reset()
	RenderHistory(&buf, records, 1)
	assert.NotContains(t, buf.String(), "old_tweak")

	buf.Reset()
	RenderHistory(&buf, nil, 0)
	assert.Contains(t, buf.String(), "no tweaks recorded")
}

func TestRenderReport(t *testing.T) {
	report := runner.Report{
		RunID: "test-run",
		Results: []runner.Result{
			{Tweak: tweak.New("good", nil), Duration: 12 * time.Millisecond},
			{Tweak: tweak.New("bad", nil), Err: errors.New("denied"), Duration: time.Millisecond},
		},
		Succeeded: 1,
		Failed:    1,
		Duration:  13 * time.Millisecond,
	}

	var buf bytes.Buffer
	RenderReport(&buf, report)

	out := buf.String()
	assert.Contains(t, out, "good")
	assert.Contains(t, out, "bad")
	assert.Contains(t, out, "denied")
	assert.Contains(t, out, "1 succeeded, 1 failed")
}
