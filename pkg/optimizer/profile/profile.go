// Package profile defines the fixed optimization profiles. A profile is an
// ordered list of tweak identifiers applied as a batch; the current profile
// name is recorded in the ledger once the batch finishes.
package profile

import (
	"fmt"
	"sort"
)

// Profile is a named, ordered set of tweaks.
type Profile struct {
	// ID is the stable identifier recorded in the ledger.
	ID string

	// Name is the human-readable display name.
	Name string

	// Description summarizes the intent of the profile.
	Description string

	// Tweaks lists tweak IDs in application order.
	Tweaks []string
}

// builtin is the fixed profile table. super_computer is a superset of every
// other profile.
var builtin = []Profile{
	{
		ID:          "balanced",
		Name:        "Balanced",
		Description: "Safe everyday tweaks with no behavioral surprises",
		Tweaks: []string{
			"disable_telemetry",
			"disable_advertising_id",
			"visual_effects_performance",
			"flush_dns",
			"clear_standby_memory",
		},
	},
	{
		ID:          "high_performance",
		Name:        "High Performance",
		Description: "Power and scheduling tuned for sustained throughput",
		Tweaks: []string{
			"high_performance_power_plan",
			"disable_hibernation",
			"disable_core_parking",
			"disable_superfetch",
			"cpu_priority_foreground",
			"visual_effects_performance",
			"clear_standby_memory",
		},
	},
	{
		ID:          "gaming",
		Name:        "Gaming",
		Description: "Latency-focused tweaks for gaming sessions",
		Tweaks: []string{
			"ultimate_power_plan",
			"disable_game_dvr",
			"disable_game_bar",
			"disable_fullscreen_optimizations",
			"mouse_precision_off",
			"timer_resolution",
			"disable_nagle",
			"kill_background_apps",
		},
	},
	{
		ID:          "network",
		Name:        "Network",
		Description: "TCP and DNS tuning for lower network latency",
		Tweaks: []string{
			"disable_nagle",
			"flush_dns",
			"tcp_autotuning_normal",
			"reset_winsock",
		},
	},
	{
		ID:          "super_computer",
		Name:        "Super Computer",
		Description: "Everything at once: the union of all other profiles plus deep cleanup",
		Tweaks: []string{
			"disable_telemetry",
			"disable_advertising_id",
			"high_performance_power_plan",
			"ultimate_power_plan",
			"disable_hibernation",
			"disable_core_parking",
			"disable_superfetch",
			"disable_search_indexing",
			"disable_hpet",
			"timer_resolution",
			"cpu_priority_foreground",
			"visual_effects_performance",
			"clear_standby_memory",
			"kill_background_apps",
			"mouse_precision_off",
			"keyboard_repeat_max",
			"disable_game_dvr",
			"disable_game_bar",
			"disable_fullscreen_optimizations",
			"disable_nagle",
			"flush_dns",
			"tcp_autotuning_normal",
			"reset_winsock",
			"defrag_system_drive",
		},
	},
}

// All returns the built-in profiles in declaration order.
func All() []Profile {
	out := make([]Profile, len(builtin))
	copy(out, builtin)
	return out
}

// ByID returns the profile with the given identifier.
func ByID(id string) (Profile, error) {
	for _, p := range builtin {
		if p.ID == id {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("unknown profile: %s", id)
}

// IDs returns the profile identifiers in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(builtin))
	for _, p := range builtin {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return ids
}
