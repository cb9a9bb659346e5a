// Package runner applies batches of tweaks through a fixed worker pool.
// Workers only execute apply functions; all bookkeeping (progress callbacks
// and ledger tracking) happens on the single collector goroutine, so callers
// never need their own locking.
package runner

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/frogtech/optimizer/pkg/optimizer/logging"
	"github.com/frogtech/optimizer/pkg/optimizer/tweak"
)

// DefaultWorkers is the pool size when Options.Workers is zero.
const DefaultWorkers = 4

// DefaultTweakTimeout bounds a single tweak application.
const DefaultTweakTimeout = 60 * time.Second

// Result is the outcome of one tweak application.
type Result struct {
	// Tweak is the tweak that was applied.
	Tweak tweak.Tweak

	// Err is nil when the application succeeded.
	Err error

	// Duration is the wall time the application took.
	Duration time.Duration
}

// Progress reports batch completion as results arrive.
type Progress struct {
	// Done is the number of tweaks finished so far.
	Done int

	// Total is the batch size.
	Total int

	// Current is the result that just completed.
	Current Result
}

// Report summarizes a finished batch.
type Report struct {
	// RunID uniquely identifies this batch run.
	RunID string

	// Results holds one entry per tweak, in completion order.
	Results []Result

	// Succeeded and Failed count the outcomes.
	Succeeded int
	Failed    int

	// Duration is the wall time of the whole batch.
	Duration time.Duration
}

// Options configures a Runner.
type Options struct {
	// Workers is the pool size. Zero means DefaultWorkers.
	Workers int

	// TweakTimeout bounds each tweak application. Zero means
	// DefaultTweakTimeout.
	TweakTimeout time.Duration

	// OnProgress, if set, is called from the collector goroutine after each
	// tweak finishes.
	OnProgress func(Progress)

	// OnResult, if set, is called from the collector goroutine for each
	// result. This is where ledger tracking hooks in; calls are serialized.
	OnResult func(Result)
}

// Runner applies tweak batches.
type Runner struct {
	opts   Options
	logger *logging.Logger
}

// New creates a Runner with the given options.
func New(opts Options) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.TweakTimeout <= 0 {
		opts.TweakTimeout = DefaultTweakTimeout
	}
	return &Runner{
		opts:   opts,
		logger: logging.Get("runner"),
	}
}

// Run applies the given tweaks and returns the batch report. Cancellation of
// ctx stops dispatching new tweaks; in-flight applications finish under their
// own timeout. Run always returns a report covering the tweaks that did run.
func (r *Runner) Run(ctx context.Context, tweaks []tweak.Tweak) Report {
	start := time.Now()
	report := Report{RunID: uuid.NewString()}

	if len(tweaks) == 0 {
		report.Duration = time.Since(start)
		return report
	}

	r.logger.Info("starting batch", "run_id", report.RunID, "tweaks", len(tweaks), "workers", r.opts.Workers)

	queue := make(chan tweak.Tweak)
	results := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < r.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, queue, results)
		}()
	}

	// Dispatcher closes the queue when done or cancelled.
	go func() {
		defer close(queue)
		for _, t := range tweaks {
			select {
			case queue <- t:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Close results once every worker exits.
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: the only goroutine that touches callbacks.
	for res := range results {
		report.Results = append(report.Results, res)
		if res.Err == nil {
			report.Succeeded++
		} else {
			report.Failed++
		}
		if r.opts.OnResult != nil {
			r.opts.OnResult(res)
		}
		if r.opts.OnProgress != nil {
			r.opts.OnProgress(Progress{
				Done:    len(report.Results),
				Total:   len(tweaks),
				Current: res,
			})
		}
	}

	report.Duration = time.Since(start)
	r.logger.Info("batch finished",
		"run_id", report.RunID,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
		"duration", report.Duration)
	return report
}

// worker applies tweaks from the queue until it closes or ctx is cancelled.
func (r *Runner) worker(ctx context.Context, queue <-chan tweak.Tweak, results chan<- Result) {
	for {
		select {
		case <-ctx.Done():
			return

		case t, ok := <-queue:
			if !ok {
				return
			}
			results <- r.applyOne(ctx, t)
		}
	}
}

// applyOne runs a single tweak under its timeout.
func (r *Runner) applyOne(ctx context.Context, t tweak.Tweak) Result {
	tctx, cancel := context.WithTimeout(ctx, r.opts.TweakTimeout)
	defer cancel()

	start := time.Now()
	err := t.Apply(tctx)
	dur := time.Since(start)

	if err != nil {
		r.logger.Warn("tweak failed", "tweak", t.ID, "error", err, "duration", dur)
	} else {
		r.logger.Debug("tweak applied", "tweak", t.ID, "duration", dur)
	}

	return Result{Tweak: t, Err: err, Duration: dur}
}
