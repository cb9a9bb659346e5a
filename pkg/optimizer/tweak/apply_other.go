//go:build !windows

package tweak

import "context"

// Every tweak mutates Windows state; on other platforms the catalogue stays
// browsable but each application fails with ErrUnsupported.

func applyDisableTelemetry(_ context.Context) error               { return ErrUnsupported }
func applyDisableAdvertisingID(_ context.Context) error           { return ErrUnsupported }
func applyHighPerformancePlan(_ context.Context) error            { return ErrUnsupported }
func applyUltimatePlan(_ context.Context) error                   { return ErrUnsupported }
func applyDisableHibernation(_ context.Context) error             { return ErrUnsupported }
func applyDisableCoreParking(_ context.Context) error             { return ErrUnsupported }
func applyDisableSuperfetch(_ context.Context) error              { return ErrUnsupported }
func applyDisableSearchIndexing(_ context.Context) error          { return ErrUnsupported }
func applyDisableHPET(_ context.Context) error                    { return ErrUnsupported }
func applyTimerResolution(_ context.Context) error                { return ErrUnsupported }
func applyCPUPriorityForeground(_ context.Context) error          { return ErrUnsupported }
func applyVisualEffectsPerformance(_ context.Context) error       { return ErrUnsupported }
func applyClearStandbyMemory(_ context.Context) error             { return ErrUnsupported }
func applyKillBackgroundApps(_ context.Context) error             { return ErrUnsupported }
func applyMousePrecisionOff(_ context.Context) error              { return ErrUnsupported }
func applyKeyboardRepeatMax(_ context.Context) error              { return ErrUnsupported }
func applyDisableGameDVR(_ context.Context) error                 { return ErrUnsupported }
func applyDisableGameBar(_ context.Context) error                 { return ErrUnsupported }
func applyDisableFullscreenOptimizations(_ context.Context) error { return ErrUnsupported }
func applyDisableNagle(_ context.Context) error                   { return ErrUnsupported }
func applyFlushDNS(_ context.Context) error                       { return ErrUnsupported }
func applyResetWinsock(_ context.Context) error                   { return ErrUnsupported }
func applyTCPAutotuningNormal(_ context.Context) error            { return ErrUnsupported }
func applyDefragSystemDrive(_ context.Context) error              { return ErrUnsupported }
func applyCompactOS(_ context.Context) error                      { return ErrUnsupported }
func applyDeleteShadowCopies(_ context.Context) error             { return ErrUnsupported }
