package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frogtech/optimizer/pkg/optimizer/output"
	"github.com/frogtech/optimizer/pkg/optimizer/profile"
	"github.com/frogtech/optimizer/pkg/optimizer/runner"
	"github.com/frogtech/optimizer/pkg/optimizer/tweak"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "List and apply optimization profiles",
	RunE:  runProfileList,
}

var profileApplyCmd = &cobra.Command{
	Use:   "apply <profile>",
	Short: "Apply every tweak in a profile",
	Long: `Apply all tweaks in the named profile. The profile becomes the
current profile once the batch finishes, even if some tweaks failed;
only the failed tweaks stay out of the ledger.

Examples:
  frogopt profile apply gaming
  frogopt profile apply super_computer -y`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileApply,
}

func init() {
	profileCmd.AddCommand(profileApplyCmd)
	rootCmd.AddCommand(profileCmd)
}

// profileView is the JSON shape for one profile.
type profileView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tweaks      []string `json:"tweaks"`
	Current     bool     `json:"current"`
}

func runProfileList(cmd *cobra.Command, args []string) error {
	led, err := openLedger()
	if err != nil {
		return err
	}
	current := led.CurrentProfile()

	if jsonOutput() {
		views := make([]profileView, 0, len(profile.All()))
		for _, p := range profile.All() {
			views = append(views, profileView{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Tweaks:      p.Tweaks,
				Current:     p.ID == current,
			})
		}
		return output.JSON(os.Stdout, views)
	}

	output.RenderProfiles(os.Stdout, profile.All(), current)
	return nil
}

func runProfileApply(cmd *cobra.Command, args []string) error {
	prof, err := profile.ByID(args[0])
	if err != nil {
		return err
	}

	tweaks, err := tweak.Default().Resolve(prof.Tweaks)
	if err != nil {
		return err
	}

	if !confirm(fmt.Sprintf("Apply profile %q (%d tweaks)", prof.ID, len(tweaks))) {
		return fmt.Errorf("aborted")
	}

	if err := checkElevation(tweaks); err != nil {
		if errors.Is(err, errHandedOff) {
			return nil
		}
		return err
	}

	led, err := openLedger()
	if err != nil {
		return err
	}

	var onProgress func(runner.Progress)
	if !jsonOutput() {
		onProgress = func(p runner.Progress) {
			fmt.Printf("[%d/%d] %s\n", p.Done, p.Total, p.Current.Tweak.ID)
		}
	}

	report := newRunner(led, onProgress).Run(cmd.Context(), tweaks)

	if err := led.SetProfile(prof.ID); err != nil {
		return fmt.Errorf("profile applied but not recorded: %w", err)
	}

	if jsonOutput() {
		return output.JSON(os.Stdout, reportView(report))
	}

	fmt.Println()
	output.RenderReport(os.Stdout, report)

	if report.Failed > 0 {
		return fmt.Errorf("%d tweak(s) failed", report.Failed)
	}
	return nil
}
