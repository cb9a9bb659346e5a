package main

import (
	"testing"

	"github.com/frogtech/optimizer/pkg/optimizer/tweak"
)

func TestAdminTweakIDs(t *testing.T) {
	tweaks := []tweak.Tweak{
		{ID: "flush_dns", NeedsAdmin: false},
		{ID: "disable_telemetry", NeedsAdmin: true},
		{ID: "ultimate_power_plan", NeedsAdmin: true},
	}

	got := adminTweakIDs(tweaks)
	if len(got) != 2 {
		t.Fatalf("adminTweakIDs() = %v, want 2 entries", got)
	}
	if got[0] != "disable_telemetry" || got[1] != "ultimate_power_plan" {
		t.Errorf("adminTweakIDs() = %v", got)
	}

	if got := adminTweakIDs(nil); got != nil {
		t.Errorf("adminTweakIDs(nil) = %v, want nil", got)
	}
}
