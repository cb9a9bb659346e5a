package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/frogtech/optimizer/pkg/optimizer/ledger"
	"github.com/frogtech/optimizer/pkg/optimizer/output"
	"github.com/frogtech/optimizer/pkg/optimizer/watcher"
)

var statusWatch bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied tweaks and the current profile",
	Long: `Show the ledger state: applied tweaks, the current profile, history
size, and the recorded display mode.

With --watch the command keeps running and refreshes whenever the ledger
file changes, for example when tweaks are applied from another terminal.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVarP(&statusWatch, "watch", "w", false, "refresh when the ledger changes")
	rootCmd.AddCommand(statusCmd)
}

// statusView is the JSON shape of the ledger state.
type statusView struct {
	AppliedTweaks  []string        `json:"applied_tweaks"`
	History        []ledger.Record `json:"tweak_history"`
	CurrentProfile string          `json:"current_profile,omitempty"`
	Resolution     [2]int          `json:"last_resolution"`
	RefreshRate    int             `json:"last_refresh_rate"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	led, err := openLedger()
	if err != nil {
		return err
	}

	if statusWatch {
		return watchStatus(cmd, led)
	}

	return printStatus(led)
}

func printStatus(led *ledger.Ledger) error {
	if jsonOutput() {
		width, height, refresh := led.DisplayMode()
		return output.JSON(os.Stdout, statusView{
			AppliedTweaks:  led.Applied(),
			History:        led.History(),
			CurrentProfile: led.CurrentProfile(),
			Resolution:     [2]int{width, height},
			RefreshRate:    refresh,
		})
	}

	output.RenderStatus(os.Stdout, led)
	return nil
}

// watchStatus re-renders the status whenever the ledger file changes, until
// interrupted.
func watchStatus(cmd *cobra.Command, led *ledger.Ledger) error {
	w, err := watcher.New(led.Path())
	if err != nil {
		return fmt.Errorf("watching ledger: %w", err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := printStatus(led); err != nil {
		return err
	}
	if !jsonOutput() {
		fmt.Println(output.MutedStyle.Render("watching for changes, Ctrl-C to stop"))
	}

	w.Run(ctx, func() {
		led.Load()
		if !jsonOutput() {
			fmt.Println()
		}
		_ = printStatus(led)
	})

	return nil
}
