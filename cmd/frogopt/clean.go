package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/frogtech/optimizer/pkg/optimizer/cleaner"
	"github.com/frogtech/optimizer/pkg/optimizer/output"
)

var cleanDryRun bool

var cleanCmd = &cobra.Command{
	Use:   "clean [category]...",
	Short: "Remove junk files",
	Long: `Scan and remove temporary files, update caches, and other junk.
Without arguments every category is cleaned; pass category IDs to limit
the run. Locked files are skipped.

Examples:
  frogopt clean                 # Clean everything
  frogopt clean --dry-run       # Only report what would be freed
  frogopt clean user_temp       # Clean one category`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanDryRun, "dry-run", "d", false, "scan only, delete nothing")
	rootCmd.AddCommand(cleanCmd)
}

// selectCategories resolves command-line category IDs, defaulting to all.
func selectCategories(args []string) ([]cleaner.Category, error) {
	if len(args) == 0 {
		return cleaner.Categories(), nil
	}

	cats := make([]cleaner.Category, 0, len(args))
	for _, id := range args {
		cat, ok := cleaner.ByID(id)
		if !ok {
			return nil, fmt.Errorf("unknown category: %s", id)
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

func runClean(cmd *cobra.Command, args []string) error {
	cats, err := selectCategories(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	// Scan first so the user confirms against real numbers.
	scans := make([]cleaner.ScanResult, 0, len(cats))
	var totalBytes int64
	for _, cat := range cats {
		res, err := cleaner.Scan(ctx, cat)
		if err != nil {
			return err
		}
		scans = append(scans, res)
		totalBytes += res.Bytes
	}

	if cleanDryRun {
		if jsonOutput() {
			return output.JSON(os.Stdout, scans)
		}
		output.RenderScanResults(os.Stdout, scans)
		return nil
	}

	if totalBytes == 0 {
		fmt.Println("Nothing to clean.")
		return nil
	}

	if !jsonOutput() {
		output.RenderScanResults(os.Stdout, scans)
		fmt.Println()
	}
	if !confirm(fmt.Sprintf("Delete %s of junk", humanize.IBytes(uint64(totalBytes)))) {
		return fmt.Errorf("aborted")
	}

	results := make([]cleaner.CleanResult, 0, len(cats))
	for _, cat := range cats {
		res, err := cleaner.Clean(ctx, cat)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	if jsonOutput() {
		return output.JSON(os.Stdout, results)
	}

	output.RenderCleanResults(os.Stdout, results)
	return nil
}
