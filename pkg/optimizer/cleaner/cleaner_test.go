package cleaner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// junkDir builds a directory tree with a known number of files and bytes.
func junkDir(t *testing.T) (string, int64, int64) {
	t.Helper()
	dir := t.TempDir()

	files := map[string]int{
		"report.tmp":          100,
		"cache.bin":           250,
		"nested/old.log":      50,
		"nested/deep/app.dmp": 600,
	}

	var count, bytes int64
	for name, size := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
		count++
		bytes += int64(size)
	}
	return dir, count, bytes
}

func TestScan(t *testing.T) {
	dir, wantFiles, wantBytes := junkDir(t)
	cat := Category{ID: "test", Name: "Test", Paths: []string{dir}}

	res, err := Scan(context.Background(), cat)
	require.NoError(t, err)
	assert.Equal(t, wantFiles, res.Files)
	assert.Equal(t, wantBytes, res.Bytes)
}

func TestScanMissingPath(t *testing.T) {
	cat := Category{
		ID:    "test",
		Name:  "Test",
		Paths: []string{filepath.Join(t.TempDir(), "does-not-exist")},
	}

	res, err := Scan(context.Background(), cat)
	require.NoError(t, err)
	assert.Zero(t, res.Files)
	assert.Zero(t, res.Bytes)
}

func TestClean(t *testing.T) {
	dir, _, wantBytes := junkDir(t)
	cat := Category{ID: "test", Name: "Test", Paths: []string{dir}}

	res, err := Clean(context.Background(), cat)
	require.NoError(t, err)
	assert.Equal(t, wantBytes, res.BytesFreed)
	assert.Zero(t, res.Skipped)

	// The directory itself survives, its contents do not.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCleanThenScanIsEmpty(t *testing.T) {
	dir, _, _ := junkDir(t)
	cat := Category{ID: "test", Name: "Test", Paths: []string{dir}}

	_, err := Clean(context.Background(), cat)
	require.NoError(t, err)

	res, err := Scan(context.Background(), cat)
	require.NoError(t, err)
	assert.Zero(t, res.Files)
	assert.Zero(t, res.Bytes)
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.NotEmpty(t, cats)

	seen := make(map[string]bool)
	for _, c := range cats {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Paths)
		assert.False(t, seen[c.ID], "duplicate category %s", c.ID)
		seen[c.ID] = true
	}

	_, ok := ByID(cats[0].ID)
	assert.True(t, ok)
	_, ok = ByID("no_such_category")
	assert.False(t, ok)
}
