package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/viper"

	"github.com/frogtech/optimizer/pkg/optimizer/config"
	"github.com/frogtech/optimizer/pkg/optimizer/elevate"
	"github.com/frogtech/optimizer/pkg/optimizer/ledger"
	"github.com/frogtech/optimizer/pkg/optimizer/runner"
	"github.com/frogtech/optimizer/pkg/optimizer/sysinfo"
	"github.com/frogtech/optimizer/pkg/optimizer/tweak"
)

// ledgerPath resolves the ledger file: flag/env/config first, then the XDG
// default.
func ledgerPath() string {
	if path := viper.GetString("ledger_path"); path != "" {
		return path
	}
	return config.DefaultLedgerPath()
}

// openLedger creates the ledger handle and loads any existing state.
func openLedger() (*ledger.Ledger, error) {
	path := ledgerPath()
	if path == config.DefaultLedgerPath() {
		if err := config.EnsureDataDir(); err != nil {
			return nil, err
		}
	}

	led, err := ledger.New(path)
	if err != nil {
		return nil, err
	}
	led.Load()
	return led, nil
}

// confirm asks a yes/no question. --yes short-circuits to true.
func confirm(question string) bool {
	if assumeYes() {
		return true
	}

	prompt := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err == nil
}

// newRunner builds a worker pool that tracks every result in the ledger.
func newRunner(led *ledger.Ledger, onProgress func(runner.Progress)) *runner.Runner {
	return runner.New(runner.Options{
		Workers:      viper.GetInt("workers.count"),
		TweakTimeout: time.Duration(viper.GetInt("workers.tweak_timeout")) * time.Second,
		OnProgress:   onProgress,
		OnResult: func(res runner.Result) {
			led.Track(res.Tweak.ID, res.Err == nil)
		},
	})
}

// errHandedOff signals that the run continues in a relaunched elevated
// process and this one should exit cleanly.
var errHandedOff = errors.New("handed off to elevated process")

// adminTweakIDs returns the IDs of tweaks that require administrator rights.
func adminTweakIDs(tweaks []tweak.Tweak) []string {
	var needed []string
	for _, t := range tweaks {
		if t.NeedsAdmin {
			needed = append(needed, t.ID)
		}
	}
	return needed
}

// checkElevation warns when a batch contains admin-only tweaks and the
// process is not elevated. It first offers to relaunch elevated; declining
// that, the user can still continue without elevation. With --yes the batch
// runs unelevated without prompting.
func checkElevation(tweaks []tweak.Tweak) error {
	if elevate.IsElevated() {
		return nil
	}

	needed := adminTweakIDs(tweaks)
	if len(needed) == 0 {
		return nil
	}

	fmt.Printf("%d of the selected tweaks need administrator rights and will likely fail:\n", len(needed))
	for _, id := range needed {
		fmt.Printf("  %s\n", id)
	}

	if assumeYes() {
		return nil
	}

	if confirm("Relaunch with administrator rights") {
		if err := elevate.Relaunch(); err != nil {
			return fmt.Errorf("relaunching elevated: %w", err)
		}
		fmt.Println("Continuing in the elevated window.")
		return errHandedOff
	}

	if !confirm("Continue without elevation") {
		return errors.New("aborted: run from an elevated shell or confirm to continue")
	}
	return nil
}

// openSysinfoStore opens the snapshot cache when enabled. A nil return
// means collection runs uncached.
func openSysinfoStore() *sysinfo.Store {
	if !viper.GetBool("cache.enabled") {
		return nil
	}

	ttl := time.Duration(viper.GetInt("cache.ttl_minutes")) * time.Minute
	store, err := sysinfo.OpenStore(config.CacheDir(), ttl)
	if err != nil {
		// A broken cache never blocks collection.
		return nil
	}
	return store
}
