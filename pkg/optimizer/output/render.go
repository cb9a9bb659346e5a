// Package output renders optimizer state for the terminal. Renderers write
// styled text; the JSON helper serves scripting callers.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/frogtech/optimizer/pkg/optimizer/cleaner"
	"github.com/frogtech/optimizer/pkg/optimizer/ledger"
	"github.com/frogtech/optimizer/pkg/optimizer/profile"
	"github.com/frogtech/optimizer/pkg/optimizer/runner"
	"github.com/frogtech/optimizer/pkg/optimizer/sysinfo"
	"github.com/frogtech/optimizer/pkg/optimizer/tweak"
)

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderTweakList writes the catalogue grouped by category, marking tweaks
// the ledger reports as applied.
func RenderTweakList(w io.Writer, reg *tweak.Registry, isApplied func(string) bool) {
	for _, cat := range reg.Categories() {
		fmt.Fprintln(w, TitleStyle.Render(strings.ToUpper(cat)))
		for _, t := range reg.ByCategory(cat) {
			marker := MutedStyle.Render("[ ]")
			if isApplied != nil && isApplied(t.ID) {
				marker = SuccessStyle.Render("[x]")
			}
			fmt.Fprintf(w, "  %s %s %s\n", marker, IDStyle.Render(t.ID), RiskStyle(string(t.Risk)).Render(string(t.Risk)))
			fmt.Fprintf(w, "      %s\n", MutedStyle.Render(t.Description))
		}
		fmt.Fprintln(w)
	}
}

// RenderProfiles writes the profile table with tweak counts.
func RenderProfiles(w io.Writer, profiles []profile.Profile, current string) {
	fmt.Fprintln(w, TitleStyle.Render("PROFILES"))
	for _, p := range profiles {
		marker := " "
		if p.ID == current {
			marker = SuccessStyle.Render("*")
		}
		fmt.Fprintf(w, " %s %s %s\n", marker, IDStyle.Render(p.ID),
			MutedStyle.Render(fmt.Sprintf("(%d tweaks)", len(p.Tweaks))))
		fmt.Fprintf(w, "     %s\n", MutedStyle.Render(p.Description))
	}
}

// RenderStatus writes a summary of the ledger state.
func RenderStatus(w io.Writer, led *ledger.Ledger) {
	applied := led.Applied()
	history := led.History()

	fmt.Fprintln(w, HeaderBox.Render(TitleStyle.Render("Frog-Tech Optimizer Status")))

	current := led.CurrentProfile()
	if current == "" {
		current = MutedStyle.Render("none")
	} else {
		current = IDStyle.Render(current)
	}
	fmt.Fprintf(w, "%s %s\n", LabelStyle.Render("Profile:"), current)
	fmt.Fprintf(w, "%s %d\n", LabelStyle.Render("Applied tweaks:"), len(applied))
	fmt.Fprintf(w, "%s %d\n", LabelStyle.Render("History entries:"), len(history))

	width, height, refresh := led.DisplayMode()
	fmt.Fprintf(w, "%s %dx%d @ %dHz\n", LabelStyle.Render("Display:"), width, height, refresh)

	if len(applied) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, TitleStyle.Render("APPLIED"))
		for _, id := range applied {
			fmt.Fprintf(w, "  %s %s\n", SuccessStyle.Render("[x]"), id)
		}
	}
}

// RenderHistory writes the most recent history records, newest first.
// A non-positive limit shows everything.
func RenderHistory(w io.Writer, records []ledger.Record, limit int) {
	if len(records) == 0 {
		fmt.Fprintln(w, MutedStyle.Render("no tweaks recorded"))
		return
	}

	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}

	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		status := SuccessStyle.Render("ok")
		if !rec.Success {
			status = ErrorStyle.Render("failed")
		}
		fmt.Fprintf(w, "%s  %s  %s\n", MutedStyle.Render(rec.Timestamp), IDStyle.Render(rec.Tweak), status)
	}
}

// RenderReport writes a batch application report.
func RenderReport(w io.Writer, report runner.Report) {
	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Fprintf(w, "  %s %s %s\n", ErrorStyle.Render("✗"), res.Tweak.ID, MutedStyle.Render(res.Err.Error()))
		} else {
			fmt.Fprintf(w, "  %s %s %s\n", SuccessStyle.Render("✓"), res.Tweak.ID,
				MutedStyle.Render(res.Duration.Round(time.Millisecond).String()))
		}
	}

	fmt.Fprintln(w)
	summary := fmt.Sprintf("%d succeeded, %d failed in %s",
		report.Succeeded, report.Failed, report.Duration.Round(time.Millisecond))
	if report.Failed > 0 {
		fmt.Fprintln(w, WarningStyle.Render(summary))
	} else {
		fmt.Fprintln(w, SuccessStyle.Render(summary))
	}
}

// RenderSysInfo writes a hardware and OS summary.
func RenderSysInfo(w io.Writer, info *sysinfo.Info) {
	fmt.Fprintln(w, HeaderBox.Render(TitleStyle.Render("System Information")))

	fmt.Fprintf(w, "%s %s\n", LabelStyle.Render("Host:"), info.Hostname)
	fmt.Fprintf(w, "%s %s %s\n", LabelStyle.Render("OS:"), info.Platform, info.PlatformVersion)
	fmt.Fprintf(w, "%s %s\n", LabelStyle.Render("Kernel:"), info.Kernel)
	fmt.Fprintf(w, "%s %s\n", LabelStyle.Render("Uptime:"), humanizeUptime(info.Uptime))
	fmt.Fprintf(w, "%s %s (%d cores, %d threads)\n", LabelStyle.Render("CPU:"),
		info.CPU.Model, info.CPU.Cores, info.CPU.Threads)
	fmt.Fprintf(w, "%s %s of %s (%.0f%%)\n", LabelStyle.Render("Memory:"),
		humanize.IBytes(info.Memory.Used), humanize.IBytes(info.Memory.Total), info.Memory.UsedPercent)

	for _, d := range info.Disks {
		fmt.Fprintf(w, "%s %s %s free of %s\n", LabelStyle.Render("Disk:"),
			d.Mount, humanize.IBytes(d.Free), humanize.IBytes(d.Total))
	}
	for _, gpu := range info.GPUs {
		fmt.Fprintf(w, "%s %s\n", LabelStyle.Render("GPU:"), gpu)
	}
	fmt.Fprintf(w, "%s %s\n", LabelStyle.Render("Collected:"), humanize.Time(info.CollectedAt))
}

// RenderScanResults writes junk scan totals per category.
func RenderScanResults(w io.Writer, results []cleaner.ScanResult) {
	var totalFiles, totalBytes int64
	for _, res := range results {
		fmt.Fprintf(w, "  %s %s %s\n", IDStyle.Render(res.Category.Name),
			MutedStyle.Render(fmt.Sprintf("%d files", res.Files)),
			humanize.IBytes(uint64(res.Bytes)))
		totalFiles += res.Files
		totalBytes += res.Bytes
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %d files, %s reclaimable\n", LabelStyle.Render("Total:"),
		totalFiles, humanize.IBytes(uint64(totalBytes)))
}

// RenderCleanResults writes deletion totals per category.
func RenderCleanResults(w io.Writer, results []cleaner.CleanResult) {
	var totalFreed int64
	for _, res := range results {
		line := fmt.Sprintf("  %s freed %s", res.Category.Name, humanize.IBytes(uint64(res.BytesFreed)))
		if res.Skipped > 0 {
			line += MutedStyle.Render(fmt.Sprintf(" (%d locked entries skipped)", res.Skipped))
		}
		fmt.Fprintln(w, line)
		totalFreed += res.BytesFreed
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf("Freed %s", humanize.IBytes(uint64(totalFreed)))))
}

// humanizeUptime formats seconds of uptime as a coarse duration.
func humanizeUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
