package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/frogtech/optimizer/pkg/optimizer/output"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the tweak application history",
	Long: `Show tweak applications in reverse chronological order. The history
is append-only; re-applying a tweak adds a new record.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum number of entries to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	led, err := openLedger()
	if err != nil {
		return err
	}

	records := led.History()

	if jsonOutput() {
		if historyLimit > 0 && len(records) > historyLimit {
			records = records[len(records)-historyLimit:]
		}
		return output.JSON(os.Stdout, records)
	}

	output.RenderHistory(os.Stdout, records, historyLimit)
	return nil
}
