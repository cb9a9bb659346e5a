package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all tracked tweaks",
	Long: `Empty the ledger: the applied set, the history, and the current
profile are all forgotten and the ledger file is deleted.

This does not undo any tweak. The system keeps whatever state the tweaks
left it in; only the record of them is removed.`,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	led, err := openLedger()
	if err != nil {
		return err
	}

	applied := len(led.Applied())
	if applied == 0 && len(led.History()) == 0 {
		fmt.Println("Ledger is already empty.")
		return nil
	}

	if !confirm(fmt.Sprintf("Forget %d applied tweak(s) and all history", applied)) {
		return fmt.Errorf("aborted")
	}

	if err := led.Clear(); err != nil {
		return err
	}

	fmt.Println("Ledger cleared.")
	return nil
}
