package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the ledger to a file",
	Long: `Write the ledger state to the given file with an export timestamp,
for backup or for moving a tweak record to another machine.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	led, err := openLedger()
	if err != nil {
		return err
	}

	if err := led.Export(args[0]); err != nil {
		return err
	}

	fmt.Printf("Exported %d applied tweak(s) to %s\n", len(led.Applied()), args[0])
	return nil
}
