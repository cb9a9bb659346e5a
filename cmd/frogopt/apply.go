package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frogtech/optimizer/pkg/optimizer/output"
	"github.com/frogtech/optimizer/pkg/optimizer/runner"
	"github.com/frogtech/optimizer/pkg/optimizer/tweak"
)

var applyCmd = &cobra.Command{
	Use:   "apply <tweak>...",
	Short: "Apply one or more tweaks",
	Long: `Apply the named tweaks. Each successful application is recorded in
the ledger; failed applications are reported but not recorded.

Examples:
  frogopt apply flush_dns
  frogopt apply disable_telemetry disable_game_dvr`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	tweaks, err := tweak.Default().Resolve(args)
	if err != nil {
		return err
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

// resultView is the JSON shape for one application result.
type resultView struct {
	Tweak    string `json:"tweak"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
	Duration string `json:"duration"`
}

// runReportView is the JSON shape for a batch report.
type runReportView struct {
	RunID     string       `json:"run_id"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Duration  string       `json:"duration"`
	Results   []resultView `json:"results"`
}

func reportView(report runner.Report) runReportView {
	view := runReportView{
		RunID:     report.RunID,
		Succeeded: report.Succeeded,
		Failed:    report.Failed,
		Duration:  report.Duration.String(),
	}
	for _, res := range report.Results {
		rv := resultView{
			Tweak:    res.Tweak.ID,
			Success:  res.Err == nil,
			Duration: res.Duration.String(),
		}
		if res.Err != nil {
			rv.Error = res.Err.Error()
		}
		view.Results = append(view.Results, rv)
	}
	return view
}
