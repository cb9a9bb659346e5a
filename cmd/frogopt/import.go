package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a previously exported ledger",
	Long: `Replace the ledger state with the contents of an exported file.
The current applied set, history, and profile are discarded, not merged.
Display settings recorded on this machine are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	led, err := openLedger()
	if err != nil {
		return err
	}

	if len(led.Applied()) > 0 || len(led.History()) > 0 {
		if !confirm("Importing replaces the current ledger state. Continue") {
			return fmt.Errorf("aborted")
		}
	}

	if err := led.Import(args[0]); err != nil {
		return err
	}

	fmt.Printf("Imported %d applied tweak(s) from %s\n", len(led.Applied()), args[0])
	return nil
}
