package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frogtech/optimizer/pkg/optimizer/display"
	"github.com/frogtech/optimizer/pkg/optimizer/output"
)

var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Show and change the display mode",
	RunE:  runDisplayShow,
}

var displayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported display modes",
	RunE:  runDisplayList,
}

var displaySetCmd = &cobra.Command{
	Use:   "set <width> <height> <refresh>",
	Short: "Switch the primary monitor's mode",
	Long: `Switch the primary monitor to the given resolution and refresh rate.
A successful switch is recorded in the ledger so the last mode survives
restarts.

Example:
  frogopt display set 1920 1080 144`,
	Args: cobra.ExactArgs(3),
	RunE: runDisplaySet,
}

func init() {
	displayCmd.AddCommand(displayListCmd)
	displayCmd.AddCommand(displaySetCmd)
	rootCmd.AddCommand(displayCmd)
}

func runDisplayShow(cmd *cobra.Command, args []string) error {
	led, err := openLedger()
	if err != nil {
		return err
	}
	width, height, refresh := led.DisplayMode()
	recorded := display.Mode{Width: width, Height: height, Refresh: refresh}

	current, err := display.Current()
	if err != nil {
		// Show what the ledger remembers even when live query is unavailable.
		fmt.Printf("Recorded mode: %s\n", recorded)
		return nil
	}

	if jsonOutput() {
		return output.JSON(os.Stdout, map[string]display.Mode{
			"current":  current,
			"recorded": recorded,
		})
	}

	fmt.Printf("Current mode:  %s\n", current)
	fmt.Printf("Recorded mode: %s\n", recorded)
	return nil
}

func runDisplayList(cmd *cobra.Command, args []string) error {
	modes, err := display.Available()
	if err != nil {
		return err
	}

	if jsonOutput() {
		return output.JSON(os.Stdout, modes)
	}

	for _, m := range modes {
		fmt.Println(m)
	}
	return nil
}

func runDisplaySet(cmd *cobra.Command, args []string) error {
	var mode display.Mode
	if _, err := fmt.Sscanf(args[0]+" "+args[1]+" "+args[2], "%d %d %d",
		&mode.Width, &mode.Height, &mode.Refresh); err != nil {
		return fmt.Errorf("width, height, and refresh must be integers")
	}

	if err := display.Apply(mode); err != nil {
		return err
	}

	led, err := openLedger()
	if err != nil {
		return err
	}
	if err := led.SetDisplayMode(mode.Width, mode.Height, mode.Refresh); err != nil {
		return fmt.Errorf("mode applied but not recorded: %w", err)
	}

	fmt.Printf("Display set to %s\n", mode)
	return nil
}
