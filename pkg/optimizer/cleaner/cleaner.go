// Package cleaner scans and empties junk-file locations (temp directories,
// update caches, prefetch data). Scanning walks concurrently; deletion is
// best-effort, skipping files that are locked or privileged.
package cleaner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"github.com/frogtech/optimizer/pkg/optimizer/logging"
)

// Category is one junk location group.
type Category struct {
	// ID is the stable identifier used on the command line.
	ID string

	// Name is the human-readable display name.
	Name string

	// Paths are the directories whose contents are junk. The directories
	// themselves are kept.
	Paths []string
}

// ScanResult summarizes one category's junk.
type ScanResult struct {
	Category Category
	Files    int64
	Bytes    int64
}

// CleanResult summarizes one category's deletion pass.
type CleanResult struct {
	Category     Category
	FilesRemoved int64
	BytesFreed   int64
	Skipped      int64
}

// Categories returns the junk locations for this platform. Categories whose
// directories do not exist are still listed; scanning them yields zero.
func Categories() []Category {
	return platformCategories()
}

// ByID returns the category with the given identifier.
func ByID(id string) (Category, bool) {
	for _, c := range Categories() {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Scan walks a category's paths and totals junk files and bytes.
func Scan(ctx context.Context, cat Category) (ScanResult, error) {
	res := ScanResult{Category: cat}

	var files, bytes atomic.Int64

	conf := fastwalk.Config{Follow: false}
	for _, root := range cat.Paths {
		if _, err := os.Stat(root); err != nil {
			continue
		}

		err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are simply not counted.
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}

			if info, ierr := d.Info(); ierr == nil {
				files.Add(1)
				bytes.Add(info.Size())
			}
			return nil
		})
		if err != nil {
			return res, err
		}
	}

	res.Files = files.Load()
	res.Bytes = bytes.Load()
	return res, nil
}

// Clean removes the contents of a category's paths. Locked or privileged
// entries are skipped and counted, never treated as errors.
func Clean(ctx context.Context, cat Category) (CleanResult, error) {
	logger := logging.Get("cleaner")
	res := CleanResult{Category: cat}

	for _, root := range cat.Paths {
		if _, err := os.Stat(root); err != nil {
			continue
		}

		entries, err := os.ReadDir(root)
		if err != nil {
			logger.Warn("cannot read junk directory", "path", root, "error", err)
			continue
		}

		for _, entry := range entries {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}

			full := filepath.Join(root, entry.Name())

			// Total the size first so BytesFreed is accurate.
			var size int64
			if entry.IsDir() {
				size, _ = dirSize(full)
			} else if info, ierr := entry.Info(); ierr == nil {
				size = info.Size()
			}

			if err := os.RemoveAll(full); err != nil {
				res.Skipped++
				logger.Debug("skipping locked entry", "path", full, "error", err)
				continue
			}

			res.FilesRemoved++
			res.BytesFreed += size
		}
	}

	logger.Info("category cleaned",
		"category", cat.ID,
		"removed", res.FilesRemoved,
		"freed", res.BytesFreed,
		"skipped", res.Skipped)
	return res, nil
}

// dirSize totals the regular files under a directory.
func dirSize(root string) (int64, error) {
	var total atomic.Int64

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if info, ierr := d.Info(); ierr == nil {
			total.Add(info.Size())
		}
		return nil
	})

	return total.Load(), err
}
