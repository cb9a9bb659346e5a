package sysinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	store, err := OpenStore(t.TempDir(), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleInfo() *Info {
	return &Info{
		Hostname:    "frog-box",
		Platform:    "windows",
		GoVersion:   "go1.25",
		CPU:         CPUInfo{Model: "Test CPU", Cores: 8, Threads: 16},
		Memory:      MemoryInfo{Total: 32 << 30, Used: 8 << 30, UsedPercent: 25},
		CollectedAt: time.Now(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t, time.Hour)

	_, err := store.Get()
	assert.ErrorIs(t, err, ErrNotCached)

	want := sampleInfo()
	require.NoError(t, store.Put(want))

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, want.Hostname, got.Hostname)
	assert.Equal(t, want.CPU, got.CPU)
	assert.Equal(t, want.Memory.Total, got.Memory.Total)
}

func TestStoreTTLExpiry(t *testing.T) {
	store := openTestStore(t, 50*time.Millisecond)

	require.NoError(t, store.Put(sampleInfo()))

	_, err := store.Get()
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	_, err = store.Get()
	assert.ErrorIs(t, err, ErrNotCached)
}

func TestStoreInvalidate(t *testing.T) {
	store := openTestStore(t, time.Hour)

	require.NoError(t, store.Put(sampleInfo()))
	require.NoError(t, store.Invalidate())

	_, err := store.Get()
	assert.ErrorIs(t, err, ErrNotCached)

	// Invalidating an empty store is fine.
	assert.NoError(t, store.Invalidate())
}
