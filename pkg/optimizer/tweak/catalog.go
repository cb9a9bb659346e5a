package tweak

// catalog returns the built-in tweak table. Apply functions are bound per
// platform: see apply_windows.go and apply_other.go.
func catalog() []Tweak {
	return []Tweak{
		// Privacy
		{
			ID:          "disable_telemetry",
			Name:        "Disable Telemetry",
			Description: "Turn off Windows diagnostic data collection and stop the DiagTrack service",
			Category:    "privacy",
			Risk:        RiskSafe,
			Reversible:  true,
			NeedsAdmin:  true,
			apply:       applyDisableTelemetry,
		},
		{
			ID:          "disable_advertising_id",
			Name:        "Disable Advertising ID",
			Description: "Stop apps from using the per-user advertising identifier",
			Category:    "privacy",
			Risk:        RiskSafe,
			Reversible:  true,
			apply:       applyDisableAdvertisingID,
		},

		// Power
		{
			ID:          "high_performance_power_plan",
			Name:        "High Performance Power Plan",
			Description: "Activate the built-in High Performance power scheme",
			Category:    "power",
			Risk:        RiskSafe,
			Reversible:  true,
			NeedsAdmin:  true,
			apply:       applyHighPerformancePlan,
		},
		{
			ID:          "ultimate_power_plan",
			Name:        "Ultimate Performance Power Plan",
			Description: "Duplicate and activate the hidden Ultimate Performance scheme",
			Category:    "power",
			Risk:        RiskLow,
			Reversible:  true,
			NeedsAdmin:  true,
			apply:       applyUltimatePlan,
		},
		{
			ID:          "disable_hibernation",
			Name:        "Disable Hibernation",
			Description: "Turn off hibernation and reclaim hiberfil.sys disk space",
			Category:    "power",
			Risk:        RiskLow,
			Reversible:  true,
			NeedsAdmin:  true,
			apply:       applyDisableHibernation,
		},
		{
			ID:          "disable_core_parking",
			Name:        "Disable Core Parking",
			Description: "Keep all CPU cores unparked under the active power scheme",
			Category:    "power",
			Risk:        RiskLow,
			Reversible:  true,
			NeedsAdmin:  true,
			apply:       applyDisableCoreParking,
		},

		// Services
		{
			ID:          "disable_superfetch",
			Name:        "Disable SysMain (SuperFetch)",
			Description: "Stop and disable the SysMain prefetching service",
			Category:    "services",
			Risk:        RiskLow,
			Reversible:  true,
			NeedsAdmin:  true,
			apply:       applyDisableSuperfetch,
		},
		{
			ID:          "disable_search_indexing",
			Name:        "Disable Search Indexing",
			Description: "Stop the Windows Search indexing service",
			Category:    "services",
			Risk:        RiskLow,
			Reversible:  true,
			NeedsAdmin:  true,
			apply:       applyDisableSearchIndexing,
		},

		// System
		{
			ID:          "disable_hpet",
			Name:        "Disable HPET",
			Description: "Remove the platform clock override for lower timer latency",
			Category:    "system",
			Risk:        RiskMedium,
			Reversible:  true,
			NeedsAdmin:  true,
			apply:       applyDisableHPET,
		},
		{
			ID:          "timer_resolution",
			Name:        "High Timer Resolution",
			Description: "Allow global high-resolution timer requests",
			Category:    "system",
			Risk:        RiskLow,
			Reversible:  true,
			NeedsAdmin:  true,
			apply:       applyTimerResolution,
		},
		{
			ID:          "cpu_priority_foreground",
			Name:        "Foreground CPU Priority Boost",
			Description: "Give foreground applications the maximum scheduling boost",
			Category:    "system",
			Risk:        RiskLow,
			Reversible:  true,
			NeedsAdmin:  true,
			apply:       applyCPUPriorityForeground,
		},
		{
			ID:          "visual_effects_performance",
			Name:        "Visual Effects for Performance",
			Description: "Set visual effects to best performance",
			Category:    "system",
			Risk:        RiskSafe,
			Reversible:  true,
			apply:       applyVisualEffectsPerformance,
		},
		{
			ID:          "clear_standby_memory",
			Name:        "Flush Standby Memory",
			Description: "Trigger idle-task processing to release cached memory",
			Category:    "system",
			Risk:        RiskSafe,
			Reversible:  true,
			apply:       applyClearStandbyMemory,
		},
		{
			ID:          "kill_background_apps",
			Name:        "Kill Background Apps",
			Description: "Terminate known background bloatware processes",
			Category:    "system",
			Risk:        RiskLow,
			Reversible:  true,
			apply:       applyKillBackgroundApps,
		},

		// Input
		{
			ID:          "mouse_precision_off",
			Name:        "Disable Mouse Acceleration",
			Description: "Set MouseSpeed and both thresholds to 0 for raw input",
			Category:    "input",
			Risk:        RiskSafe,
			Reversible:  true,
			apply:       applyMousePrecisionOff,
		},
		{
			ID:          "keyboard_repeat_max",
			Name:        "Max Keyboard Repeat Rate",
			Description: "Set KeyboardDelay=0 and KeyboardSpeed=31",
			Category:    "input",
			Risk:        RiskSafe,
			Reversible:  true,
			apply:       applyKeyboardRepeatMax,
		},

		// Gaming
		{
			ID:          "disable_game_dvr",
			Name:        "Disable Game DVR",
			Description: "Turn off background game recording",
			Category:    "gaming",
			Risk:        RiskSafe,
			Reversible:  true,
			apply:       applyDisableGameDVR,
		},
		{
			ID:          "disable_game_bar",
			Name:        "Disable Game Bar",
			Description: "Turn off the Xbox Game Bar overlay",
			Category:    "gaming",
			Risk:        RiskSafe,
			Reversible:  true,
			apply:       applyDisableGameBar,
		},
		{
			ID:          "disable_fullscreen_optimizations",
			Name:        "Disable Fullscreen Optimizations",
			Description: "Prevent DWM fullscreen optimizations for exclusive fullscreen",
			Category:    "gaming",
			Risk:        RiskSafe,
			Reversible:  true,
			apply:       applyDisableFullscreenOptimizations,
		},

		// Network
		{
			ID:          "disable_nagle",
			Name:        "Disable Nagle Algorithm",
			Description: "Turn off TCP packet batching on every interface for lower latency",
			Category:    "network",
			Risk:        RiskLow,
			Reversible:  true,
			NeedsAdmin:  true,
			apply:       applyDisableNagle,
		},
		{
			ID:          "flush_dns",
			Name:        "Flush DNS Cache",
			Description: "Clear the DNS resolver cache",
			Category:    "network",
			Risk:        RiskSafe,
			Reversible:  true,
			apply:       applyFlushDNS,
		},
		{
			ID:          "reset_winsock",
			Name:        "Reset Winsock",
			Description: "Reset the Winsock catalog (takes effect after reboot)",
			Category:    "network",
			Risk:        RiskMedium,
			Reversible:  false,
			NeedsAdmin:  true,
			apply:       applyResetWinsock,
		},
		{
			ID:          "tcp_autotuning_normal",
			Name:        "TCP Autotuning Normal",
			Description: "Set the TCP receive window autotuning level to normal",
			Category:    "network",
			Risk:        RiskSafe,
			Reversible:  true,
			NeedsAdmin:  true,
			apply:       applyTCPAutotuningNormal,
		},

		// Storage
		{
			ID:          "defrag_system_drive",
			Name:        "Optimize System Drive",
			Description: "Run defrag with storage-tier optimization on the system drive",
			Category:    "storage",
			Risk:        RiskMedium,
			Reversible:  true,
			NeedsAdmin:  true,
			apply:       applyDefragSystemDrive,
		},
		{
			ID:          "compact_os",
			Name:        "Enable CompactOS",
			Description: "Compress OS binaries to reclaim disk space",
			Category:    "storage",
			Risk:        RiskMedium,
			Reversible:  true,
			NeedsAdmin:  true,
			apply:       applyCompactOS,
		},
		{
			ID:          "delete_shadow_copies",
			Name:        "Delete Shadow Copies",
			Description: "Remove all volume shadow copies (restore points)",
			Category:    "storage",
			Risk:        RiskHigh,
			Reversible:  false,
			NeedsAdmin:  true,
			apply:       applyDeleteShadowCopies,
		},
	}
}
