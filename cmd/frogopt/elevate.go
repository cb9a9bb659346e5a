package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frogtech/optimizer/pkg/optimizer/elevate"
)

var elevateCmd = &cobra.Command{
	Use:   "elevate",
	Short: "Relaunch frogopt with administrator rights",
	Long: `Start an elevated copy of frogopt. Most machine-wide tweaks need
administrator rights; this saves opening an elevated shell by hand.`,
	RunE: runElevate,
}

func init() {
	rootCmd.AddCommand(elevateCmd)
}

func runElevate(cmd *cobra.Command, args []string) error {
	if elevate.IsElevated() {
		fmt.Println("Already running with administrator rights.")
		return nil
	}

	if !confirm("Relaunch with administrator rights") {
		return fmt.Errorf("aborted")
	}

	return elevate.Relaunch()
}
